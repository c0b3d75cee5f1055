package component

import "go-tower-siege/internal/defs"

// EnemyState - состояние жизненного цикла врага
type EnemyState int

const (
	EnemyAlive EnemyState = iota
	EnemyDead
	EnemyBrokeThrough
)

// Enemy представляет вражескую сущность.
type Enemy struct {
	Kind   defs.EnemyKind
	Reward int
	Wave   int // номер волны, с единицы
	State  EnemyState
}

// Alive сообщает, жив ли враг
func (e *Enemy) Alive() bool {
	return e.State == EnemyAlive
}

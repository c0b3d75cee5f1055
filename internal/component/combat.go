package component

import (
	"go-tower-siege/internal/defs"
	"go-tower-siege/internal/types"
)

// Health - компонент здоровья
type Health struct {
	Value int
	Max   int
}

// Combat - компонент для башен, управляющий атакой.
// Выстрел разрешён, когда now - LastFireTime >= FireInterval.
type Combat struct {
	Damage       int
	Range        float64 // радиус действия в пикселях
	FireInterval float64 // секунды между выстрелами
	LastFireTime float64 // время последнего выстрела по часам уровня
	Targeting    defs.TargetingPolicy
	Attack       defs.AttackMode
	TargetID     types.EntityID // цель на последнем тике, 0 - нет цели
	Angle        float64        // направление ствола, радианы
}

// Income - компонент пассивного дохода денежной башни
type Income struct {
	Amount             int
	Interval           float64
	LastGenerationTime float64
}

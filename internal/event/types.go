// internal/event/types.go
package event

import (
	"go-tower-siege/internal/defs"
	"go-tower-siege/internal/types"
	"go-tower-siege/pkg/grid"
)

const (
	EnemySpawned      EventType = "EnemySpawned"      // враг появился
	EnemyHit          EventType = "EnemyHit"          // враг получил урон
	EnemyKilled       EventType = "EnemyKilled"       // враг убит, награда начислена
	EnemyBreakthrough EventType = "EnemyBreakthrough" // враг дошёл до базы
	TowerPlaced       EventType = "TowerPlaced"       // башня построена
	TowerUpgraded     EventType = "TowerUpgraded"     // башня улучшена
	TowerSold         EventType = "TowerSold"         // башня продана
	TowerFired        EventType = "TowerFired"        // выстрел
	IncomeGenerated   EventType = "IncomeGenerated"   // денежная башня принесла доход
	ProjectileExpired EventType = "ProjectileExpired" // снаряд пропал без попадания
	WaveStarted       EventType = "WaveStarted"       // началась волна
	WaveCleared       EventType = "WaveCleared"       // волна полностью зачищена
	LevelCompleted    EventType = "LevelCompleted"    // все волны уровня пройдены
	GameOver          EventType = "GameOver"          // игра закончена (победа или поражение)
)

// EnemyPayload is attached to EnemySpawned, EnemyKilled and EnemyBreakthrough.
type EnemyPayload struct {
	ID     types.EntityID
	Kind   defs.EnemyKind
	Reward int
	Wave   int
}

// HitPayload is attached to EnemyHit.
type HitPayload struct {
	EnemyID  types.EntityID
	SourceID types.EntityID
	Damage   int
	Health   int
}

// TowerPayload is attached to tower events.
type TowerPayload struct {
	ID     types.EntityID
	Kind   defs.TowerKind
	Cell   grid.Cell
	Level  int
	Amount int // стоимость, возврат или доход
}

// FirePayload is attached to TowerFired.
type FirePayload struct {
	TowerID  types.EntityID
	TargetID types.EntityID
	Hitscan  bool
}

// WavePayload is attached to WaveStarted and WaveCleared.
type WavePayload struct {
	Level string
	Wave  int // с единицы
	Total int
}

// GameOverPayload is attached to GameOver.
type GameOverPayload struct {
	Won    bool
	Reason string
}

// LevelPayload is attached to LevelCompleted.
type LevelPayload struct {
	Level string
	Index int
}

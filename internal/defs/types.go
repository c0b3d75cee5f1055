// internal/defs/types.go
package defs

// TowerKind identifies a tower type ("basic", "sniper", "money").
type TowerKind string

const (
	TowerBasic  TowerKind = "basic"
	TowerSniper TowerKind = "sniper"
	TowerMoney  TowerKind = "money"
)

// EnemyKind identifies an enemy type and its sprite.
type EnemyKind string

const (
	EnemyBasic  EnemyKind = "basic"
	EnemyFast   EnemyKind = "fast"
	EnemyStrong EnemyKind = "strong"
	EnemyBoss   EnemyKind = "boss"
)

// TargetingPolicy defines how a tower picks among enemies in range.
type TargetingPolicy string

const (
	TargetNearest   TargetingPolicy = "nearest"   // ближайший в радиусе
	TargetStrongest TargetingPolicy = "strongest" // с наибольшим текущим здоровьем
	TargetNone      TargetingPolicy = "none"      // башня не стреляет
)

// AttackMode defines what a tower produces when it acts.
type AttackMode string

const (
	AttackProjectile AttackMode = "projectile" // летящий снаряд
	AttackHitscan    AttackMode = "hitscan"    // мгновенное попадание
	AttackIncome     AttackMode = "income"     // пассивный доход
)

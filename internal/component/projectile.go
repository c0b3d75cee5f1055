// internal/component/projectile.go
package component

import "go-tower-siege/internal/types"

// Projectile представляет летящий снаряд.
type Projectile struct {
	SourceID types.EntityID
	TargetID types.EntityID
	Speed    float64 // пикселей в секунду
	Damage   int
	Radius   float64
	TimeLeft float64 // секунд до исчезновения
}

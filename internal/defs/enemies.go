// internal/defs/enemies.go
package defs

import "fmt"

// EnemyDefinition holds the default stats for a specific type of enemy.
// The kill reward is not a property of the kind: it comes from the spawn
// group and defaults to config.DefaultReward.
// Speed is in pixels per frame at config.FrameRate.
type EnemyDefinition struct {
	ID     EnemyKind `json:"id"`
	Name   string    `json:"name"`
	Speed  float64   `json:"speed"`
	Health int       `json:"health"`
}

// Validate checks the definition for impossible values.
func (d EnemyDefinition) Validate() error {
	if d.ID == "" {
		return fmt.Errorf("enemy without id: %w", ErrInvalidDefinition)
	}
	if d.Speed <= 0 || d.Health <= 0 {
		return fmt.Errorf("enemy %s: speed and health must be positive: %w", d.ID, ErrInvalidDefinition)
	}
	return nil
}

// internal/defs/towers.go
package defs

import "fmt"

// TowerDefinition holds all the static data for a specific type of tower.
// Intervals are in seconds, ranges in pixels.
type TowerDefinition struct {
	ID             TowerKind       `json:"id"`
	Name           string          `json:"name"`
	Cost           int             `json:"cost"`
	Targeting      TargetingPolicy `json:"targeting"`
	Attack         AttackMode      `json:"attack"`
	Damage         int             `json:"damage,omitempty"`
	Range          float64         `json:"range,omitempty"`
	FireInterval   float64         `json:"fire_interval,omitempty"`
	IncomeAmount   int             `json:"income_amount,omitempty"`
	IncomeInterval float64         `json:"income_interval,omitempty"`
}

// Validate checks that the stats make sense for the attack mode.
func (d TowerDefinition) Validate() error {
	if d.ID == "" {
		return fmt.Errorf("tower without id: %w", ErrInvalidDefinition)
	}
	if d.Cost < 0 {
		return fmt.Errorf("tower %s: negative cost: %w", d.ID, ErrInvalidDefinition)
	}
	switch d.Attack {
	case AttackProjectile, AttackHitscan:
		if d.Damage <= 0 || d.Range <= 0 || d.FireInterval <= 0 {
			return fmt.Errorf("tower %s: damage, range and fire_interval must be positive: %w", d.ID, ErrInvalidDefinition)
		}
		if d.Targeting != TargetNearest && d.Targeting != TargetStrongest {
			return fmt.Errorf("tower %s: unknown targeting %q: %w", d.ID, d.Targeting, ErrInvalidDefinition)
		}
	case AttackIncome:
		if d.IncomeAmount <= 0 || d.IncomeInterval <= 0 {
			return fmt.Errorf("tower %s: income_amount and income_interval must be positive: %w", d.ID, ErrInvalidDefinition)
		}
	default:
		return fmt.Errorf("tower %s: unknown attack %q: %w", d.ID, d.Attack, ErrInvalidDefinition)
	}
	return nil
}

package system

import (
	"go-tower-siege/internal/component"
	"go-tower-siege/internal/config"
	"math"
)

// UpgradeCost - стоимость улучшения башни уровня level.
func UpgradeCost(level int) int {
	return config.UpgradeBaseCost * level
}

// ApplyUpgrade поднимает уровень башни: урон растёт в DamageGrowth раз
// (с округлением), интервалы сокращаются в IntervalDecay раз, но не ниже
// MinFireInterval. Для денежной башни так же растёт доход.
// Деньги здесь не списываются, это делает вызывающая сторона.
func ApplyUpgrade(tower *component.Tower, combat *component.Combat, income *component.Income) {
	tower.Level++
	if combat != nil {
		combat.Damage = growInt(combat.Damage)
		combat.FireInterval = decayInterval(combat.FireInterval)
	}
	if income != nil {
		income.Amount = growInt(income.Amount)
		income.Interval = decayInterval(income.Interval)
	}
}

func growInt(v int) int {
	return int(math.Round(float64(v) * config.DamageGrowth))
}

func decayInterval(v float64) float64 {
	return math.Max(v*config.IntervalDecay, config.MinFireInterval)
}

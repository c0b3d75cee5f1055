package app

import (
	"go-tower-siege/internal/defs"
	"go-tower-siege/internal/event"
	"go-tower-siege/internal/system"
	"go-tower-siege/internal/types"
)

// Stats - счётчики уровня, собираются из событий.
type Stats struct {
	Spawned            int `json:"spawned"`
	Killed             int `json:"killed"`
	Breakthroughs      int `json:"breakthroughs"`
	ShotsFired         int `json:"shots_fired"`
	ProjectilesExpired int `json:"projectiles_expired"`
	RewardsEarned      int `json:"rewards_earned"`
	IncomeEarned       int `json:"income_earned"`
	TowersPlaced       int `json:"towers_placed"`
	TowersUpgraded     int `json:"towers_upgraded"`
	TowersSold         int `json:"towers_sold"`
}

// OnEvent обновляет счётчики
func (s *Stats) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemySpawned:
		s.Spawned++
	case event.EnemyKilled:
		s.Killed++
		if p, ok := e.Data.(event.EnemyPayload); ok {
			s.RewardsEarned += p.Reward
		}
	case event.EnemyBreakthrough:
		s.Breakthroughs++
	case event.TowerFired:
		s.ShotsFired++
	case event.ProjectileExpired:
		s.ProjectilesExpired++
	case event.IncomeGenerated:
		if p, ok := e.Data.(event.TowerPayload); ok {
			s.IncomeEarned += p.Amount
		}
	case event.TowerPlaced:
		s.TowersPlaced++
	case event.TowerUpgraded:
		s.TowersUpgraded++
	case event.TowerSold:
		s.TowersSold++
	}
}

// TowerInfo - сводка по башне для подсказки в HUD.
type TowerInfo struct {
	ID           types.EntityID `json:"id"`
	Kind         defs.TowerKind `json:"kind"`
	Level        int            `json:"level"`
	Damage       int            `json:"damage,omitempty"`
	Range        float64        `json:"range,omitempty"`
	FireInterval float64        `json:"fire_interval,omitempty"`
	Income       int            `json:"income,omitempty"`
	UpgradeCost  int            `json:"upgrade_cost"`
	SellValue    int            `json:"sell_value"`
}

// TowerInfo возвращает сводку по башне id.
func (l *Level) TowerInfo(id types.EntityID) (TowerInfo, bool) {
	tower, ok := l.ECS.Towers[id]
	if !ok {
		return TowerInfo{}, false
	}
	info := TowerInfo{
		ID:          id,
		Kind:        tower.Kind,
		Level:       tower.Level,
		UpgradeCost: system.UpgradeCost(tower.Level),
		SellValue:   sellValue(tower),
	}
	if combat, ok := l.ECS.Combats[id]; ok {
		info.Damage = combat.Damage
		info.Range = combat.Range
		info.FireInterval = combat.FireInterval
	}
	if income, ok := l.ECS.Incomes[id]; ok {
		info.Income = income.Amount
		info.FireInterval = income.Interval
	}
	return info, true
}

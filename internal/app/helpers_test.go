package app

import (
	"go-tower-siege/internal/defs"
	"go-tower-siege/internal/event"
	"go-tower-siege/pkg/geom"
)

const towerLaser defs.TowerKind = "laser"

// fixedChooser всегда выбирает первый путь из пула.
type fixedChooser struct{}

func (fixedChooser) Intn(int) int { return 0 }

type recorder struct {
	events []event.Event
}

func (r *recorder) OnEvent(e event.Event) {
	r.events = append(r.events, e)
}

func (r *recorder) count(t event.EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func intPtr(v int) *int { return &v }

func testLibrary(levels ...defs.LevelDefinition) *defs.Library {
	return &defs.Library{
		Towers: map[defs.TowerKind]defs.TowerDefinition{
			defs.TowerBasic: {
				ID: defs.TowerBasic, Cost: 100, Targeting: defs.TargetNearest, Attack: defs.AttackProjectile,
				Damage: 20, Range: 1000, FireInterval: 0.5,
			},
			defs.TowerSniper: {
				ID: defs.TowerSniper, Cost: 150, Targeting: defs.TargetStrongest, Attack: defs.AttackHitscan,
				Damage: 40, Range: 300, FireInterval: 2.0,
			},
			defs.TowerMoney: {
				ID: defs.TowerMoney, Cost: 200, Targeting: defs.TargetNone, Attack: defs.AttackIncome,
				IncomeAmount: 10, IncomeInterval: 1.0,
			},
			towerLaser: {
				ID: towerLaser, Cost: 100, Targeting: defs.TargetNearest, Attack: defs.AttackHitscan,
				Damage: 100, Range: 1000, FireInterval: 0.1,
			},
		},
		Enemies: map[defs.EnemyKind]defs.EnemyDefinition{
			defs.EnemyBasic: {ID: defs.EnemyBasic, Speed: 1, Health: 100},
		},
		Paths: map[string]*geom.Path{
			"long":  geom.MustPath(geom.Vec{X: 0, Y: 300}, geom.Vec{X: 960, Y: 300}),
			"short": geom.MustPath(geom.Vec{X: 0, Y: 300}, geom.Vec{X: 60, Y: 300}),
		},
		PathIDs: []string{"long", "short"},
		Levels:  levels,
	}
}

func oneWaveLevel(id, path string, count, health int, reward *int) defs.LevelDefinition {
	return defs.LevelDefinition{
		ID:    id,
		Name:  id,
		Paths: []string{path},
		Waves: []defs.WaveDefinition{{Groups: []defs.SpawnGroup{{
			Enemy:  defs.EnemyBasic,
			Health: health,
			Reward: reward,
			Count:  count,
		}}}},
	}
}

package system

import (
	"go-tower-siege/internal/component"
	"go-tower-siege/internal/defs"
	"go-tower-siege/internal/economy"
	"go-tower-siege/internal/entity"
	"go-tower-siege/internal/event"
	"go-tower-siege/internal/types"
	"go-tower-siege/pkg/geom"
)

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

type world struct {
	ecs        *entity.ECS
	dispatcher *event.Dispatcher
	econ       *economy.Economy
	rec        *recorder
	damage     *DamageSystem
	projectile *ProjectileSystem
	combat     *CombatSystem
	movement   *MovementSystem
}

func newWorld(money int) *world {
	w := &world{
		ecs:        entity.NewECS(),
		dispatcher: event.NewDispatcher(),
		econ:       economy.New(money, 20),
		rec:        &recorder{},
	}
	w.dispatcher.SubscribeAll(w.rec)
	w.damage = NewDamageSystem(w.ecs, w.econ, w.dispatcher)
	w.projectile = NewProjectileSystem(w.ecs, w.dispatcher, w.damage)
	w.combat = NewCombatSystem(w.ecs, w.dispatcher, w.damage, w.projectile)
	w.movement = NewMovementSystem(w.ecs, w.dispatcher)
	return w
}

// addEnemy ставит живого врага в (x, y) на горизонтальный путь.
func (w *world) addEnemy(x, y float64, health, reward int) types.EntityID {
	id := w.ecs.NewEntity()
	w.ecs.Positions[id] = &component.Position{X: x, Y: y}
	w.ecs.Velocities[id] = &component.Velocity{Speed: 1}
	w.ecs.Paths[id] = &component.Path{Route: geom.MustPath(geom.Vec{X: x, Y: y}, geom.Vec{X: x + 1000, Y: y})}
	w.ecs.Healths[id] = &component.Health{Value: health, Max: health}
	w.ecs.Enemies[id] = &component.Enemy{Kind: defs.EnemyBasic, Reward: reward, Wave: 1}
	return id
}

func (w *world) addTower(x, y float64, combat component.Combat) types.EntityID {
	id := w.ecs.NewEntity()
	w.ecs.Positions[id] = &component.Position{X: x, Y: y}
	w.ecs.Towers[id] = &component.Tower{Kind: defs.TowerBasic, Level: 1}
	c := combat
	w.ecs.Combats[id] = &c
	return id
}

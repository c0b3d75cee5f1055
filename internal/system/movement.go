// internal/system/movement.go
package system

import (
	"go-tower-siege/internal/component"
	"go-tower-siege/internal/config"
	"go-tower-siege/internal/entity"
	"go-tower-siege/internal/event"
	"go-tower-siege/internal/types"
	"go-tower-siege/pkg/geom"
)

// MovementSystem ведёт врагов по их путям и фиксирует прорывы к базе.
type MovementSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewMovementSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *MovementSystem {
	return &MovementSystem{ecs: ecs, eventDispatcher: eventDispatcher}
}

// Update продвигает всех живых врагов в порядке их появления.
func (s *MovementSystem) Update(deltaTime float64) {
	for _, id := range s.ecs.EnemyIDs() {
		s.Advance(id, deltaTime)
	}
}

// Advance сдвигает врага на speed вдоль текущего отрезка. Если до конца
// отрезка осталось не больше шага, враг встаёт в его конец и переходит к
// следующему отрезку; остаток шага теряется. Достижение последней точки
// пути - прорыв: враг удаляется и рассылается EnemyBreakthrough.
// Возвращает true, если враг прорвался.
func (s *MovementSystem) Advance(id types.EntityID, deltaTime float64) bool {
	enemy, isEnemy := s.ecs.Enemies[id]
	pos, hasPos := s.ecs.Positions[id]
	vel, hasVel := s.ecs.Velocities[id]
	path, hasPath := s.ecs.Paths[id]
	if !isEnemy || !hasPos || !hasVel || !hasPath || !enemy.Alive() {
		return false
	}

	step := vel.Speed * deltaTime * config.FrameRate
	end := path.Route.Point(path.Index + 1)
	toEnd := end.Sub(pos.Vec())
	if toEnd.Len() > step {
		dir := toEnd.Normalize()
		pos.X += dir.X * step
		pos.Y += dir.Y * step
		return false
	}

	pos.X, pos.Y = end.X, end.Y
	if path.Index+1 < path.Route.Len()-1 {
		path.Index++
		return false
	}

	enemy.State = component.EnemyBrokeThrough
	payload := event.EnemyPayload{ID: id, Kind: enemy.Kind, Reward: enemy.Reward, Wave: enemy.Wave}
	s.ecs.RemoveEntity(id)
	s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyBreakthrough, Data: payload})
	return true
}

// Progress returns how far along its route an enemy is, from 0 to 1.
func Progress(ecs *entity.ECS, id types.EntityID) float64 {
	path, ok := ecs.Paths[id]
	pos, hasPos := ecs.Positions[id]
	if !ok || !hasPos {
		return 0
	}
	total := path.Route.Length()
	if total == 0 {
		return 0
	}
	walked := 0.0
	for i := 0; i < path.Index; i++ {
		walked += geom.Distance(path.Route.Point(i), path.Route.Point(i+1))
	}
	walked += geom.Distance(path.Route.Point(path.Index), pos.Vec())
	return walked / total
}

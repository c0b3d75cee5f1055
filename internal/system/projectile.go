// internal/system/projectile.go
package system

import (
	"go-tower-siege/internal/component"
	"go-tower-siege/internal/config"
	"go-tower-siege/internal/entity"
	"go-tower-siege/internal/event"
	"go-tower-siege/internal/types"
	"go-tower-siege/pkg/geom"
)

// boundsMargin - насколько снаряд может вылететь за экран до удаления
const boundsMargin = 50.0

// ProjectileSystem управляет движением снарядов и нанесением урона.
// Снаряд летит за своей целью; при пересечении с любым живым врагом
// урон наносится ровно один раз и снаряд удаляется.
type ProjectileSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	damageSystem    *DamageSystem
}

func NewProjectileSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, damageSystem *DamageSystem) *ProjectileSystem {
	return &ProjectileSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		damageSystem:    damageSystem,
	}
}

// Spawn создаёт снаряд в точке from, летящий к targetID.
func (s *ProjectileSystem) Spawn(sourceID, targetID types.EntityID, from geom.Vec, damage int) types.EntityID {
	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{X: from.X, Y: from.Y}
	s.ecs.Projectiles[id] = &component.Projectile{
		SourceID: sourceID,
		TargetID: targetID,
		Speed:    config.ProjectileSpeed,
		Damage:   damage,
		Radius:   config.ProjectileRadius,
		TimeLeft: config.ProjectileLifetime,
	}
	s.ecs.Renderables[id] = &component.Renderable{
		Color:  config.ProjectileColor,
		Radius: config.ProjectileRadius,
	}
	return id
}

// Update двигает снаряды. Снаряд без живой цели, с истёкшим временем жизни
// или вылетевший за экран удаляется без эффекта.
func (s *ProjectileSystem) Update(deltaTime float64) {
	for _, id := range s.ecs.ProjectileIDs() {
		proj := s.ecs.Projectiles[id]
		pos, hasPos := s.ecs.Positions[id]
		if !hasPos {
			s.removeProjectile(id, false)
			continue
		}

		proj.TimeLeft -= deltaTime
		if proj.TimeLeft <= 0 {
			s.removeProjectile(id, true)
			continue
		}

		// Проверяем, существует ли цель
		enemy, isEnemy := s.ecs.Enemies[proj.TargetID]
		targetPos, targetExists := s.ecs.Positions[proj.TargetID]
		if !isEnemy || !targetExists || !enemy.Alive() {
			s.removeProjectile(id, true)
			continue
		}

		toTarget := targetPos.Vec().Sub(pos.Vec())
		step := proj.Speed * deltaTime
		if toTarget.Len() <= step {
			pos.X, pos.Y = targetPos.X, targetPos.Y
		} else {
			dir := toTarget.Normalize()
			pos.X += dir.X * step
			pos.Y += dir.Y * step
		}

		if pos.X < -boundsMargin || pos.X > config.ScreenWidth+boundsMargin ||
			pos.Y < -boundsMargin || pos.Y > config.ScreenHeight+boundsMargin {
			s.removeProjectile(id, true)
		}
	}
}

// ResolveCollisions проверяет пересечение каждого снаряда с живыми врагами
// в порядке их появления. Первый пересечённый враг получает урон, снаряд
// удаляется. Возвращает число попаданий.
func (s *ProjectileSystem) ResolveCollisions() int {
	hits := 0
	for _, id := range s.ecs.ProjectileIDs() {
		proj := s.ecs.Projectiles[id]
		pos, hasPos := s.ecs.Positions[id]
		if !hasPos {
			continue
		}
		for _, enemyID := range s.ecs.EnemyIDs() {
			enemyPos, ok := s.ecs.Positions[enemyID]
			if !ok {
				continue
			}
			if geom.Distance(pos.Vec(), enemyPos.Vec()) > proj.Radius+config.EnemyRadius {
				continue
			}
			s.removeProjectile(id, false)
			s.damageSystem.ApplyDamage(enemyID, proj.SourceID, proj.Damage)
			hits++
			break
		}
	}
	return hits
}

// Вспомогательная функция для удаления снаряда
func (s *ProjectileSystem) removeProjectile(id types.EntityID, expired bool) {
	s.ecs.RemoveEntity(id)
	if expired {
		s.eventDispatcher.Dispatch(event.Event{Type: event.ProjectileExpired, Data: id})
	}
}

package system

import (
	"go-tower-siege/internal/component"
	"go-tower-siege/internal/config"
	"go-tower-siege/internal/defs"
	"go-tower-siege/internal/entity"
	"go-tower-siege/internal/event"
	"go-tower-siege/internal/types"
	"go-tower-siege/pkg/geom"
	"math"
)

// CombatSystem управляет атакой башен: поиск цели каждый тик и стрельба
// не чаще одного раза в FireInterval.
type CombatSystem struct {
	ecs              *entity.ECS
	eventDispatcher  *event.Dispatcher
	damageSystem     *DamageSystem
	projectileSystem *ProjectileSystem
}

func NewCombatSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, damageSystem *DamageSystem, projectileSystem *ProjectileSystem) *CombatSystem {
	return &CombatSystem{
		ecs:              ecs,
		eventDispatcher:  eventDispatcher,
		damageSystem:     damageSystem,
		projectileSystem: projectileSystem,
	}
}

// Update заново выбирает цель для каждой башни (без захвата цели)
// и стреляет, если позволяет перезарядка.
func (s *CombatSystem) Update(now float64) {
	for _, id := range s.ecs.TowerIDs() {
		combat, ok := s.ecs.Combats[id]
		if !ok {
			continue
		}
		targetID, found := FindTarget(s.ecs, id)
		combat.TargetID = targetID
		if !found {
			continue
		}
		s.TryFire(id, targetID, now)
	}
}

// TryFire стреляет по цели, если с прошлого выстрела прошло не меньше
// FireInterval. Без живой цели выстрела нет и таймер не сбрасывается.
func (s *CombatSystem) TryFire(towerID, targetID types.EntityID, now float64) bool {
	combat, ok := s.ecs.Combats[towerID]
	towerPos, hasPos := s.ecs.Positions[towerID]
	if !ok || !hasPos {
		return false
	}
	enemy, isEnemy := s.ecs.Enemies[targetID]
	targetPos, hasTargetPos := s.ecs.Positions[targetID]
	if !isEnemy || !hasTargetPos || !enemy.Alive() {
		return false
	}
	if !elapsed(now, combat.LastFireTime, combat.FireInterval) {
		return false
	}

	combat.LastFireTime = now
	combat.Angle = geom.Angle(towerPos.Vec(), targetPos.Vec())
	hitscan := combat.Attack == defs.AttackHitscan
	s.eventDispatcher.Dispatch(event.Event{Type: event.TowerFired, Data: event.FirePayload{
		TowerID:  towerID,
		TargetID: targetID,
		Hitscan:  hitscan,
	}})

	if hitscan {
		s.addLaser(towerPos, targetPos)
		s.damageSystem.ApplyDamage(targetID, towerID, combat.Damage)
	} else {
		s.projectileSystem.Spawn(towerID, targetID, towerPos.Vec(), combat.Damage)
	}
	return true
}

func (s *CombatSystem) addLaser(from, to *component.Position) {
	id := s.ecs.NewEntity()
	s.ecs.Lasers[id] = &component.Laser{
		FromX:    from.X,
		FromY:    from.Y,
		ToX:      to.X,
		ToY:      to.Y,
		Color:    config.TowerColors[string(defs.TowerSniper)],
		Duration: config.LaserDuration,
	}
}

// FindTarget выбирает цель по политике башни среди живых врагов в радиусе.
// Враги перебираются в порядке появления, при равенстве побеждает
// встреченный первым. Возвращает false, если подходящей цели нет.
func FindTarget(ecs *entity.ECS, towerID types.EntityID) (types.EntityID, bool) {
	combat, ok := ecs.Combats[towerID]
	towerPos, hasPos := ecs.Positions[towerID]
	if !ok || !hasPos {
		return 0, false
	}
	switch combat.Targeting {
	case defs.TargetNearest:
		return findNearestEnemyInRange(ecs, towerPos.Vec(), combat.Range)
	case defs.TargetStrongest:
		return findStrongestEnemyInRange(ecs, towerPos.Vec(), combat.Range)
	default:
		return 0, false
	}
}

func findNearestEnemyInRange(ecs *entity.ECS, from geom.Vec, rangeRadius float64) (types.EntityID, bool) {
	var nearestEnemy types.EntityID
	minDistance := math.MaxFloat64
	for _, enemyID := range ecs.EnemyIDs() {
		enemyPos, ok := ecs.Positions[enemyID]
		if !ok {
			continue
		}
		distance := geom.Distance(from, enemyPos.Vec())
		if distance <= rangeRadius && distance < minDistance {
			minDistance = distance
			nearestEnemy = enemyID
		}
	}
	return nearestEnemy, nearestEnemy != 0
}

func findStrongestEnemyInRange(ecs *entity.ECS, from geom.Vec, rangeRadius float64) (types.EntityID, bool) {
	var strongest types.EntityID
	maxHealth := 0
	for _, enemyID := range ecs.EnemyIDs() {
		enemyPos, ok := ecs.Positions[enemyID]
		health, hasHealth := ecs.Healths[enemyID]
		if !ok || !hasHealth {
			continue
		}
		if geom.Distance(from, enemyPos.Vec()) <= rangeRadius && health.Value > maxHealth {
			maxHealth = health.Value
			strongest = enemyID
		}
	}
	return strongest, strongest != 0
}

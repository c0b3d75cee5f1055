// internal/entity/ecs.go
package entity

import (
	"go-tower-siege/internal/component"
	"go-tower-siege/internal/types"
	"slices"
)

// ECS хранит компоненты всех сущностей уровня. Map-и не упорядочены,
// поэтому системы, которым важен порядок, обходят сущности через
// EnemyIDs/TowerIDs/ProjectileIDs - в порядке создания.
type ECS struct {
	GameTime      float64
	NextID        types.EntityID
	Positions     map[types.EntityID]*component.Position
	Velocities    map[types.EntityID]*component.Velocity
	Paths         map[types.EntityID]*component.Path
	Healths       map[types.EntityID]*component.Health
	Renderables   map[types.EntityID]*component.Renderable
	Enemies       map[types.EntityID]*component.Enemy
	Towers        map[types.EntityID]*component.Tower
	Combats       map[types.EntityID]*component.Combat
	Incomes       map[types.EntityID]*component.Income
	Projectiles   map[types.EntityID]*component.Projectile
	DamageFlashes map[types.EntityID]*component.DamageFlash
	Lasers        map[types.EntityID]*component.Laser
	Wave          *component.Wave
	Phase         component.LevelPhase
}

func NewECS() *ECS {
	return &ECS{
		NextID:        1,
		Positions:     make(map[types.EntityID]*component.Position),
		Velocities:    make(map[types.EntityID]*component.Velocity),
		Paths:         make(map[types.EntityID]*component.Path),
		Healths:       make(map[types.EntityID]*component.Health),
		Renderables:   make(map[types.EntityID]*component.Renderable),
		Enemies:       make(map[types.EntityID]*component.Enemy),
		Towers:        make(map[types.EntityID]*component.Tower),
		Combats:       make(map[types.EntityID]*component.Combat),
		Incomes:       make(map[types.EntityID]*component.Income),
		Projectiles:   make(map[types.EntityID]*component.Projectile),
		DamageFlashes: make(map[types.EntityID]*component.DamageFlash),
		Lasers:        make(map[types.EntityID]*component.Laser),
		Phase:         component.PhaseSpawning,
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// RemoveEntity удаляет все компоненты сущности
func (ecs *ECS) RemoveEntity(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Velocities, id)
	delete(ecs.Paths, id)
	delete(ecs.Healths, id)
	delete(ecs.Renderables, id)
	delete(ecs.Enemies, id)
	delete(ecs.Towers, id)
	delete(ecs.Combats, id)
	delete(ecs.Incomes, id)
	delete(ecs.Projectiles, id)
	delete(ecs.DamageFlashes, id)
	delete(ecs.Lasers, id)
}

// EnemyIDs возвращает живых врагов в порядке появления.
func (ecs *ECS) EnemyIDs() []types.EntityID {
	ids := make([]types.EntityID, 0, len(ecs.Enemies))
	for id, enemy := range ecs.Enemies {
		if enemy.Alive() {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)
	return ids
}

// TowerIDs возвращает башни в порядке постройки.
func (ecs *ECS) TowerIDs() []types.EntityID {
	return sortedKeys(ecs.Towers)
}

// ProjectileIDs возвращает снаряды в порядке выстрелов.
func (ecs *ECS) ProjectileIDs() []types.EntityID {
	return sortedKeys(ecs.Projectiles)
}

// LiveEnemies возвращает число живых врагов
func (ecs *ECS) LiveEnemies() int {
	n := 0
	for _, enemy := range ecs.Enemies {
		if enemy.Alive() {
			n++
		}
	}
	return n
}

func sortedKeys[V any](m map[types.EntityID]V) []types.EntityID {
	ids := make([]types.EntityID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

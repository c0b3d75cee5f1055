// internal/system/damage.go
package system

import (
	"go-tower-siege/internal/component"
	"go-tower-siege/internal/config"
	"go-tower-siege/internal/economy"
	"go-tower-siege/internal/entity"
	"go-tower-siege/internal/event"
	"go-tower-siege/internal/types"
)

// DamageResult - итог применения урона
type DamageResult int

const (
	DamageIgnored DamageResult = iota // цель мертва, прорвалась или не существует
	DamageApplied                     // урон нанесён, враг жив
	DamageKilled                      // урон нанёс смертельный удар
)

// DamageSystem наносит урон врагам и выдаёт награду за убийство ровно один раз.
type DamageSystem struct {
	ecs             *entity.ECS
	wallet          economy.Wallet
	eventDispatcher *event.Dispatcher
}

func NewDamageSystem(ecs *entity.ECS, wallet economy.Wallet, eventDispatcher *event.Dispatcher) *DamageSystem {
	return &DamageSystem{
		ecs:             ecs,
		wallet:          wallet,
		eventDispatcher: eventDispatcher,
	}
}

// ApplyDamage наносит amount урона врагу. Отрицательный урон считается нулевым.
// Урон по уже мёртвому (или прорвавшемуся) врагу игнорируется, поэтому
// событие EnemyKilled и награда случаются не больше одного раза.
func (s *DamageSystem) ApplyDamage(enemyID, sourceID types.EntityID, amount int) DamageResult {
	enemy, isEnemy := s.ecs.Enemies[enemyID]
	health, hasHealth := s.ecs.Healths[enemyID]
	if !isEnemy || !hasHealth || !enemy.Alive() {
		return DamageIgnored
	}
	if amount < 0 {
		amount = 0
	}

	health.Value -= amount
	if health.Value < 0 {
		health.Value = 0
	}
	s.ecs.DamageFlashes[enemyID] = &component.DamageFlash{Timer: config.DamageFlashDuration}
	s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyHit, Data: event.HitPayload{
		EnemyID:  enemyID,
		SourceID: sourceID,
		Damage:   amount,
		Health:   health.Value,
	}})

	if health.Value > 0 {
		return DamageApplied
	}

	enemy.State = component.EnemyDead
	s.wallet.Credit(enemy.Reward)
	payload := event.EnemyPayload{ID: enemyID, Kind: enemy.Kind, Reward: enemy.Reward, Wave: enemy.Wave}
	s.ecs.RemoveEntity(enemyID)
	s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyKilled, Data: payload})
	return DamageKilled
}

// internal/system/wave.go
package system

import (
	"go-tower-siege/internal/component"
	"go-tower-siege/internal/config"
	"go-tower-siege/internal/defs"
	"go-tower-siege/internal/entity"
	"go-tower-siege/internal/event"
	"go-tower-siege/internal/types"
	"log"
)

// WaveSystem ведёт уровень по волнам:
// spawning(i) → waiting_for_clear(i) → spawning(i+1) → … → all_waves_complete.
type WaveSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	levelID         string
	waves           [][]defs.SpawnOrder
	spawnInterval   float64
}

func NewWaveSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, levelID string, waves [][]defs.SpawnOrder) *WaveSystem {
	return &WaveSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		levelID:         levelID,
		waves:           waves,
		spawnInterval:   config.SpawnDelay,
	}
}

// SetSpawnInterval меняет задержку между врагами для следующих волн.
func (s *WaveSystem) SetSpawnInterval(seconds float64) {
	if seconds > 0 {
		s.spawnInterval = seconds
	}
}

// Start запускает первую волну.
func (s *WaveSystem) Start(now float64) {
	if len(s.waves) == 0 {
		s.ecs.Wave = nil
		s.ecs.Phase = component.PhaseAllWavesComplete
		return
	}
	s.startWave(1, now)
}

// TotalWaves возвращает количество волн уровня
func (s *WaveSystem) TotalWaves() int {
	return len(s.waves)
}

// Update - шаг спавна. Первый враг волны появляется сразу, следующие -
// не чаще одного раза в spawnInterval. Когда очередь исчерпана, уровень
// переходит в ожидание зачистки.
func (s *WaveSystem) Update(now float64) {
	wave := s.ecs.Wave
	if s.ecs.Phase != component.PhaseSpawning || wave == nil {
		return
	}
	if wave.Remaining() > 0 && (wave.Spawned == 0 || elapsed(now, wave.LastSpawnTime, wave.SpawnInterval)) {
		s.spawnEnemy(wave, wave.Orders[wave.Spawned])
		wave.Spawned++
		wave.LastSpawnTime = now
	}
	if wave.Remaining() == 0 {
		s.ecs.Phase = component.PhaseWaitingForClear
	}
}

// CheckCleared - последний шаг тика. Если волна полностью выпущена и все
// её враги убиты или прорвались, запускается следующая волна или уровень
// завершается. Возвращает true, если уровень только что завершён.
func (s *WaveSystem) CheckCleared(now float64) bool {
	if s.ecs.Phase != component.PhaseWaitingForClear || s.ecs.LiveEnemies() > 0 {
		return false
	}
	number := s.ecs.Wave.Number
	s.eventDispatcher.Dispatch(event.Event{Type: event.WaveCleared, Data: event.WavePayload{
		Level: s.levelID,
		Wave:  number,
		Total: len(s.waves),
	}})
	if number < len(s.waves) {
		s.startWave(number+1, now)
		return false
	}
	s.ecs.Phase = component.PhaseAllWavesComplete
	log.Printf("Level %s: all %d waves complete", s.levelID, len(s.waves))
	return true
}

func (s *WaveSystem) startWave(number int, now float64) {
	s.ecs.Wave = &component.Wave{
		Number:        number,
		Orders:        s.waves[number-1],
		LastSpawnTime: now,
		SpawnInterval: s.spawnInterval,
	}
	s.ecs.Phase = component.PhaseSpawning
	s.eventDispatcher.Dispatch(event.Event{Type: event.WaveStarted, Data: event.WavePayload{
		Level: s.levelID,
		Wave:  number,
		Total: len(s.waves),
	}})
}

func (s *WaveSystem) spawnEnemy(wave *component.Wave, order defs.SpawnOrder) types.EntityID {
	id := s.ecs.NewEntity()
	start := order.Path.Start()
	s.ecs.Positions[id] = &component.Position{X: start.X, Y: start.Y}
	s.ecs.Velocities[id] = &component.Velocity{Speed: order.Speed}
	s.ecs.Paths[id] = &component.Path{Route: order.Path, Index: 0}
	s.ecs.Healths[id] = &component.Health{Value: order.Health, Max: order.Health}
	s.ecs.Enemies[id] = &component.Enemy{
		Kind:   order.Kind,
		Reward: order.Reward,
		Wave:   wave.Number,
		State:  component.EnemyAlive,
	}
	enemyColor, ok := config.EnemyColors[string(order.Kind)]
	if !ok {
		enemyColor = config.FallbackColor
	}
	s.ecs.Renderables[id] = &component.Renderable{
		Color:     enemyColor,
		Radius:    config.EnemyRadius,
		HasStroke: order.Kind == defs.EnemyBoss,
	}
	s.eventDispatcher.Dispatch(event.Event{Type: event.EnemySpawned, Data: event.EnemyPayload{
		ID:     id,
		Kind:   order.Kind,
		Reward: order.Reward,
		Wave:   wave.Number,
	}})
	return id
}

// internal/defs/waves.go
package defs

import (
	"fmt"
	"go-tower-siege/internal/config"
	"go-tower-siege/pkg/geom"
)

// SpawnGroup описывает группу одинаковых врагов внутри волны.
// Нулевые Speed/Health берутся из определения врага, отсутствующий Reward
// равен config.DefaultReward.
// Пустой Path означает случайный путь из пула уровня, выбранный один раз на группу.
type SpawnGroup struct {
	Path   string    `json:"path,omitempty"`
	Enemy  EnemyKind `json:"enemy"`
	Speed  float64   `json:"speed,omitempty"`
	Health int       `json:"health,omitempty"`
	Reward *int      `json:"reward,omitempty"`
	Count  int       `json:"count"`
}

// WaveDefinition - упорядоченный набор групп одной волны.
type WaveDefinition struct {
	Groups []SpawnGroup `json:"groups"`
}

// LevelDefinition - упорядоченная последовательность волн.
type LevelDefinition struct {
	ID    string           `json:"id"`
	Name  string           `json:"name"`
	Paths []string         `json:"paths"` // пул путей для случайного выбора
	Waves []WaveDefinition `json:"waves"`
	// SpawnDelay - секунды между врагами одной волны, 0 - config.SpawnDelay
	SpawnDelay float64 `json:"spawn_delay,omitempty"`
}

// SpawnOrder - запрос на создание одного врага.
type SpawnOrder struct {
	Kind   EnemyKind
	PathID string
	Path   *geom.Path
	Speed  float64
	Health int
	Reward int
}

// Chooser - источник случайности для выбора пути.
type Chooser interface {
	Intn(n int) int
}

// BuildWaves разворачивает определение уровня в очереди запросов на спавн.
// Путь выбирается один раз на группу, а не на каждого врага: все враги
// группы идут одним маршрутом.
func (lib *Library) BuildWaves(level LevelDefinition, rng Chooser) ([][]SpawnOrder, error) {
	waves := make([][]SpawnOrder, 0, len(level.Waves))
	for wi, wave := range level.Waves {
		var orders []SpawnOrder
		for gi, group := range wave.Groups {
			enemyDef, ok := lib.Enemies[group.Enemy]
			if !ok {
				return nil, fmt.Errorf("level %s wave %d group %d: unknown enemy %q: %w", level.ID, wi+1, gi, group.Enemy, ErrInvalidDefinition)
			}
			pathID := group.Path
			if pathID == "" {
				if len(level.Paths) == 0 {
					return nil, fmt.Errorf("level %s wave %d group %d: no path pool: %w", level.ID, wi+1, gi, ErrUnknownPath)
				}
				pathID = level.Paths[rng.Intn(len(level.Paths))]
			}
			path, ok := lib.Paths[pathID]
			if !ok {
				return nil, fmt.Errorf("level %s wave %d group %d: %q: %w", level.ID, wi+1, gi, pathID, ErrUnknownPath)
			}
			order := SpawnOrder{
				Kind:   group.Enemy,
				PathID: pathID,
				Path:   path,
				Speed:  enemyDef.Speed,
				Health: enemyDef.Health,
				Reward: config.DefaultReward,
			}
			if group.Speed > 0 {
				order.Speed = group.Speed
			}
			if group.Health > 0 {
				order.Health = group.Health
			}
			if group.Reward != nil && *group.Reward >= 0 {
				order.Reward = *group.Reward
			}
			for i := 0; i < group.Count; i++ {
				orders = append(orders, order)
			}
		}
		waves = append(waves, orders)
	}
	return waves, nil
}

package app

import (
	"go-tower-siege/internal/defs"
	"go-tower-siege/internal/system"
	"go-tower-siege/internal/types"
	"go-tower-siege/pkg/grid"
)

// EnemySnapshot - враг в снимке состояния
type EnemySnapshot struct {
	ID        types.EntityID `json:"id"`
	Kind      defs.EnemyKind `json:"kind"`
	X         float64        `json:"x"`
	Y         float64        `json:"y"`
	Health    int            `json:"health"`
	MaxHealth int            `json:"max_health"`
	PathIndex int            `json:"path_index"`
	Progress  float64        `json:"progress"` // доля пройденного пути, 0..1
}

// TowerSnapshot - башня в снимке состояния
type TowerSnapshot struct {
	TowerInfo
	Cell grid.Cell `json:"cell"`
	X    float64   `json:"x"`
	Y    float64   `json:"y"`
}

// Snapshot is a read-only copy of the session state taken between ticks.
// It is safe to hand to other goroutines.
type Snapshot struct {
	Level       string          `json:"level"`
	LevelIndex  int             `json:"level_index"`
	TotalLevels int             `json:"total_levels"`
	Wave        int             `json:"wave"`
	TotalWaves  int             `json:"total_waves"`
	Phase       string          `json:"phase"`
	GameTime    float64         `json:"game_time"`
	Money       int             `json:"money"`
	Lives       int             `json:"lives"`
	Over        bool            `json:"over"`
	Won         bool            `json:"won"`
	Reason      string          `json:"reason,omitempty"`
	Enemies     []EnemySnapshot `json:"enemies"`
	Towers      []TowerSnapshot `json:"towers"`
	Projectiles int             `json:"projectiles"`
	Stats       Stats           `json:"stats"`
}

func (l *Level) fillSnapshot(s *Snapshot) {
	s.Level = l.Def.ID
	s.LevelIndex = l.Index
	s.Wave = l.WaveNumber()
	s.TotalWaves = l.TotalWaves()
	s.Phase = l.Phase().String()
	s.GameTime = l.ECS.GameTime
	s.Stats = l.Stats()
	s.Projectiles = len(l.ECS.Projectiles)

	s.Enemies = make([]EnemySnapshot, 0, len(l.ECS.Enemies))
	for _, id := range l.ECS.EnemyIDs() {
		pos := l.ECS.Positions[id]
		health := l.ECS.Healths[id]
		es := EnemySnapshot{
			ID:        id,
			Kind:      l.ECS.Enemies[id].Kind,
			X:         pos.X,
			Y:         pos.Y,
			Health:    health.Value,
			MaxHealth: health.Max,
			Progress:  system.Progress(l.ECS, id),
		}
		if path, ok := l.ECS.Paths[id]; ok {
			es.PathIndex = path.Index
		}
		s.Enemies = append(s.Enemies, es)
	}

	s.Towers = make([]TowerSnapshot, 0, len(l.ECS.Towers))
	for _, id := range l.ECS.TowerIDs() {
		info, _ := l.TowerInfo(id)
		pos := l.ECS.Positions[id]
		s.Towers = append(s.Towers, TowerSnapshot{
			TowerInfo: info,
			Cell:      l.ECS.Towers[id].Cell,
			X:         pos.X,
			Y:         pos.Y,
		})
	}
}

package audio

import "go-tower-siege/internal/event"

// Listener переводит игровые события в звуки.
type Listener struct {
	player Player
}

func NewListener(player Player) *Listener {
	return &Listener{player: player}
}

// CueFor возвращает имя звука для события или "" если звука нет.
func CueFor(e event.Event) string {
	switch e.Type {
	case event.EnemySpawned:
		return CueSpawn
	case event.EnemyHit:
		return CueHit
	case event.EnemyKilled:
		return CueKill
	case event.EnemyBreakthrough:
		return CueBreakthrough
	case event.TowerPlaced:
		return CuePlace
	case event.TowerUpgraded:
		return CueUpgrade
	case event.TowerSold:
		return CueSell
	case event.TowerFired:
		if p, ok := e.Data.(event.FirePayload); ok && p.Hitscan {
			return CueLaser
		}
		return CueShoot
	case event.IncomeGenerated:
		return CueCoin
	case event.WaveStarted:
		return CueWave
	case event.GameOver:
		if p, ok := e.Data.(event.GameOverPayload); ok && p.Won {
			return CueVictory
		}
		return CueDefeat
	default:
		return ""
	}
}

func (l *Listener) OnEvent(e event.Event) {
	if name := CueFor(e); name != "" {
		l.player.PlayEffect(name)
	}
}

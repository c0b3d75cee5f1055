// internal/metrics/metrics.go
package metrics

import (
	"go-tower-siege/internal/app"
	"go-tower-siege/internal/event"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// SnapshotSource отдаёт последний опубликованный снимок сессии.
type SnapshotSource interface {
	Snapshot() *app.Snapshot
}

// Metrics собирает счётчики из событий и длительность тиков.
// Метки ограничены видами башен и врагов, их число фиксировано.
type Metrics struct {
	TickDuration    prometheus.Histogram
	EnemiesSpawned  prometheus.Counter
	EnemiesKilled   *prometheus.CounterVec
	Breakthroughs   prometheus.Counter
	ShotsFired      *prometheus.CounterVec
	ProjectilesLost prometheus.Counter
	TowersPlaced    *prometheus.CounterVec
	TowerUpgrades   prometheus.Counter
	TowersSold      prometheus.Counter
	Rewards         prometheus.Counter
	Income          prometheus.Counter
	WavesCleared    prometheus.Counter
	LevelsCompleted prometheus.Counter
}

// New регистрирует коллекторы в reg. source может быть nil, тогда
// gauge-метрики состояния не создаются.
func New(reg prometheus.Registerer, source SnapshotSource) *Metrics {
	f := promauto.With(reg)
	m := &Metrics{
		TickDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "td_tick_duration_seconds",
			Help:    "Time spent in one simulation tick",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025},
		}),
		EnemiesSpawned: f.NewCounter(prometheus.CounterOpts{
			Name: "td_enemies_spawned_total",
			Help: "Enemies spawned",
		}),
		EnemiesKilled: f.NewCounterVec(prometheus.CounterOpts{
			Name: "td_enemies_killed_total",
			Help: "Enemies killed by towers",
		}, []string{"kind"}),
		Breakthroughs: f.NewCounter(prometheus.CounterOpts{
			Name: "td_breakthroughs_total",
			Help: "Enemies that reached the base",
		}),
		ShotsFired: f.NewCounterVec(prometheus.CounterOpts{
			Name: "td_shots_fired_total",
			Help: "Tower shots",
		}, []string{"mode"}), // projectile, hitscan
		ProjectilesLost: f.NewCounter(prometheus.CounterOpts{
			Name: "td_projectiles_expired_total",
			Help: "Projectiles discarded without a hit",
		}),
		TowersPlaced: f.NewCounterVec(prometheus.CounterOpts{
			Name: "td_towers_placed_total",
			Help: "Towers built",
		}, []string{"kind"}),
		TowerUpgrades: f.NewCounter(prometheus.CounterOpts{
			Name: "td_tower_upgrades_total",
			Help: "Tower upgrades",
		}),
		TowersSold: f.NewCounter(prometheus.CounterOpts{
			Name: "td_towers_sold_total",
			Help: "Towers sold",
		}),
		Rewards: f.NewCounter(prometheus.CounterOpts{
			Name: "td_rewards_total",
			Help: "Money credited for kills",
		}),
		Income: f.NewCounter(prometheus.CounterOpts{
			Name: "td_income_total",
			Help: "Money credited by money towers",
		}),
		WavesCleared: f.NewCounter(prometheus.CounterOpts{
			Name: "td_waves_cleared_total",
			Help: "Waves cleared",
		}),
		LevelsCompleted: f.NewCounter(prometheus.CounterOpts{
			Name: "td_levels_completed_total",
			Help: "Levels completed",
		}),
	}

	if source != nil {
		gauge := func(name, help string, value func(*app.Snapshot) float64) {
			f.NewGaugeFunc(prometheus.GaugeOpts{Name: name, Help: help}, func() float64 {
				s := source.Snapshot()
				if s == nil {
					return 0
				}
				return value(s)
			})
		}
		gauge("td_money", "Current money", func(s *app.Snapshot) float64 { return float64(s.Money) })
		gauge("td_lives", "Remaining lives", func(s *app.Snapshot) float64 { return float64(s.Lives) })
		gauge("td_live_enemies", "Enemies on the field", func(s *app.Snapshot) float64 { return float64(len(s.Enemies)) })
		gauge("td_level_index", "Zero-based index of the current level", func(s *app.Snapshot) float64 { return float64(s.LevelIndex) })
	}
	return m
}

// ObserveTick записывает длительность тика
func (m *Metrics) ObserveTick(d time.Duration) {
	m.TickDuration.Observe(d.Seconds())
}

// OnEvent обновляет счётчики по событиям сессии.
func (m *Metrics) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemySpawned:
		m.EnemiesSpawned.Inc()
	case event.EnemyKilled:
		if p, ok := e.Data.(event.EnemyPayload); ok {
			m.EnemiesKilled.WithLabelValues(string(p.Kind)).Inc()
			m.Rewards.Add(float64(p.Reward))
		}
	case event.EnemyBreakthrough:
		m.Breakthroughs.Inc()
	case event.TowerFired:
		mode := "projectile"
		if p, ok := e.Data.(event.FirePayload); ok && p.Hitscan {
			mode = "hitscan"
		}
		m.ShotsFired.WithLabelValues(mode).Inc()
	case event.ProjectileExpired:
		m.ProjectilesLost.Inc()
	case event.TowerPlaced:
		if p, ok := e.Data.(event.TowerPayload); ok {
			m.TowersPlaced.WithLabelValues(string(p.Kind)).Inc()
		}
	case event.TowerUpgraded:
		m.TowerUpgrades.Inc()
	case event.TowerSold:
		m.TowersSold.Inc()
	case event.IncomeGenerated:
		if p, ok := e.Data.(event.TowerPayload); ok {
			m.Income.Add(float64(p.Amount))
		}
	case event.WaveCleared:
		m.WavesCleared.Inc()
	case event.LevelCompleted:
		m.LevelsCompleted.Inc()
	}
}

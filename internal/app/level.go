// internal/app/level.go
package app

import (
	"errors"
	"fmt"
	"go-tower-siege/internal/component"
	"go-tower-siege/internal/config"
	"go-tower-siege/internal/defs"
	"go-tower-siege/internal/economy"
	"go-tower-siege/internal/entity"
	"go-tower-siege/internal/event"
	"go-tower-siege/internal/system"
	"go-tower-siege/internal/types"
	"go-tower-siege/pkg/geom"
	"go-tower-siege/pkg/grid"
	"math"
)

var (
	ErrCellOccupied     = errors.New("cell occupied")
	ErrCellOutOfBounds  = errors.New("cell out of bounds")
	ErrUnknownTowerType = errors.New("unknown tower type")
	ErrUnknownTower     = errors.New("unknown tower")
	ErrLevelOver        = errors.New("level is over")
)

// Bank - всё, что уровню нужно от экономики: начислять и списывать деньги.
type Bank interface {
	economy.Wallet
	economy.Funds
}

// Level owns the entities of one level and drives them tick by tick.
// Every mutation of the level happens either inside Update or through
// AttemptPlaceTower, UpgradeTower and SellTower; callers must not run
// them concurrently.
type Level struct {
	Def   defs.LevelDefinition
	Index int
	ECS   *entity.ECS
	Grid  *grid.Grid
	Paths []*geom.Path

	lib             *defs.Library
	bank            Bank
	eventDispatcher *event.Dispatcher
	stats           *Stats

	waveSystem         *system.WaveSystem
	movementSystem     *system.MovementSystem
	damageSystem       *system.DamageSystem
	combatSystem       *system.CombatSystem
	projectileSystem   *system.ProjectileSystem
	incomeSystem       *system.IncomeSystem
	visualEffectSystem *system.VisualEffectSystem
}

// NewLevel строит очереди волн, системы и запускает первую волну.
// Все события уровня, кроме внутренних подписчиков, пересылаются в upstream
// (может быть nil).
func NewLevel(lib *defs.Library, def defs.LevelDefinition, index int, bank Bank, rng defs.Chooser, upstream event.Listener) (*Level, error) {
	waves, err := lib.BuildWaves(def, rng)
	if err != nil {
		return nil, fmt.Errorf("failed to build level %s: %w", def.ID, err)
	}

	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	l := &Level{
		Def:             def,
		Index:           index,
		ECS:             ecs,
		Grid:            newLevelGrid(),
		lib:             lib,
		bank:            bank,
		eventDispatcher: eventDispatcher,
		stats:           &Stats{},
	}
	for _, id := range def.Paths {
		if path, ok := lib.Paths[id]; ok {
			l.Paths = append(l.Paths, path)
		}
	}

	l.damageSystem = system.NewDamageSystem(ecs, bank, eventDispatcher)
	l.movementSystem = system.NewMovementSystem(ecs, eventDispatcher)
	l.projectileSystem = system.NewProjectileSystem(ecs, eventDispatcher, l.damageSystem)
	l.combatSystem = system.NewCombatSystem(ecs, eventDispatcher, l.damageSystem, l.projectileSystem)
	l.incomeSystem = system.NewIncomeSystem(ecs, bank, eventDispatcher)
	l.waveSystem = system.NewWaveSystem(ecs, eventDispatcher, def.ID, waves)
	l.waveSystem.SetSpawnInterval(def.SpawnDelay)
	l.visualEffectSystem = system.NewVisualEffectSystem(ecs)

	eventDispatcher.SubscribeAll(l.stats)
	if upstream != nil {
		eventDispatcher.SubscribeAll(upstream)
	}

	l.waveSystem.Start(ecs.GameTime)
	return l, nil
}

func newLevelGrid() *grid.Grid {
	return grid.New(config.GridCols, config.GridRows, config.GridCellSize).WithBuildable(grid.Area{
		MinCol: config.BuildMinCol,
		MinRow: config.BuildMinRow,
		MaxCol: config.GridCols,
		MaxRow: config.GridRows,
	})
}

// Update выполняет один тик в фиксированном порядке:
// спавн → движение → стрельба и доход → снаряды → столкновения → проверка волны.
func (l *Level) Update(deltaTime float64) {
	if deltaTime < 0 {
		deltaTime = 0
	}
	if l.Over() {
		l.visualEffectSystem.Update(deltaTime)
		return
	}
	l.ECS.GameTime += deltaTime
	now := l.ECS.GameTime

	l.waveSystem.Update(now)
	l.movementSystem.Update(deltaTime)
	l.combatSystem.Update(now)
	l.incomeSystem.Update(now)
	l.projectileSystem.Update(deltaTime)
	l.projectileSystem.ResolveCollisions()
	if l.waveSystem.CheckCleared(now) {
		l.eventDispatcher.Dispatch(event.Event{Type: event.LevelCompleted, Data: event.LevelPayload{
			Level: l.Def.ID,
			Index: l.Index,
		}})
	}

	l.visualEffectSystem.Update(deltaTime)
}

// AttemptPlaceTower ставит башню kind на клетку cell. Проверки идут в порядке:
// тип башни, деньги, границы, занятость. При любой ошибке состояние не меняется.
func (l *Level) AttemptPlaceTower(kind defs.TowerKind, cell grid.Cell) (types.EntityID, error) {
	if l.Over() {
		return 0, ErrLevelOver
	}
	def, ok := l.lib.Tower(kind)
	if !ok {
		return 0, fmt.Errorf("%q: %w", kind, ErrUnknownTowerType)
	}
	if !l.bank.CanAfford(def.Cost) {
		return 0, fmt.Errorf("place %s costs %d: %w", kind, def.Cost, economy.ErrInsufficientFunds)
	}
	if !l.Grid.CanBuild(cell) {
		return 0, fmt.Errorf("cell %v: %w", cell, ErrCellOutOfBounds)
	}
	if l.Grid.IsOccupied(cell) {
		return 0, fmt.Errorf("cell %v: %w", cell, ErrCellOccupied)
	}
	if err := l.bank.TryDebit(def.Cost); err != nil {
		return 0, fmt.Errorf("place %s: %w", kind, err)
	}
	l.Grid.Reserve(cell)

	id := l.createTowerEntity(def, cell)
	l.eventDispatcher.Dispatch(event.Event{Type: event.TowerPlaced, Data: event.TowerPayload{
		ID:     id,
		Kind:   kind,
		Cell:   cell,
		Level:  1,
		Amount: def.Cost,
	}})
	return id, nil
}

func (l *Level) createTowerEntity(def defs.TowerDefinition, cell grid.Cell) types.EntityID {
	id := l.ECS.NewEntity()
	now := l.ECS.GameTime
	center := l.Grid.Center(cell)
	l.ECS.Positions[id] = &component.Position{X: center.X, Y: center.Y}
	l.ECS.Towers[id] = &component.Tower{
		Kind:     def.ID,
		Cell:     cell,
		Level:    1,
		Invested: def.Cost,
	}

	towerColor, ok := config.TowerColors[string(def.ID)]
	if !ok {
		towerColor = config.FallbackColor
	}
	l.ECS.Renderables[id] = &component.Renderable{
		Color:     towerColor,
		Radius:    config.TowerRadius,
		HasStroke: true,
	}

	// Таймеры стартуют с момента постройки: первый выстрел через интервал
	if def.Attack == defs.AttackIncome {
		l.ECS.Incomes[id] = &component.Income{
			Amount:             def.IncomeAmount,
			Interval:           def.IncomeInterval,
			LastGenerationTime: now,
		}
	} else {
		l.ECS.Combats[id] = &component.Combat{
			Damage:       def.Damage,
			Range:        def.Range,
			FireInterval: def.FireInterval,
			LastFireTime: now,
			Targeting:    def.Targeting,
			Attack:       def.Attack,
		}
	}
	return id
}

// UpgradeTower поднимает уровень башни за UpgradeCost(level).
// Без денег возвращает ErrInsufficientFunds и ничего не меняет.
func (l *Level) UpgradeTower(id types.EntityID) error {
	if l.Over() {
		return ErrLevelOver
	}
	tower, ok := l.ECS.Towers[id]
	if !ok {
		return fmt.Errorf("tower %d: %w", id, ErrUnknownTower)
	}
	cost := system.UpgradeCost(tower.Level)
	if err := l.bank.TryDebit(cost); err != nil {
		return fmt.Errorf("upgrade tower %d to level %d costs %d: %w", id, tower.Level+1, cost, err)
	}
	system.ApplyUpgrade(tower, l.ECS.Combats[id], l.ECS.Incomes[id])
	tower.Invested += cost

	l.eventDispatcher.Dispatch(event.Event{Type: event.TowerUpgraded, Data: event.TowerPayload{
		ID:     id,
		Kind:   tower.Kind,
		Cell:   tower.Cell,
		Level:  tower.Level,
		Amount: cost,
	}})
	return nil
}

// SellTower убирает башню, освобождает клетку и возвращает часть вложенных денег.
func (l *Level) SellTower(id types.EntityID) (int, error) {
	if l.Over() {
		return 0, ErrLevelOver
	}
	tower, ok := l.ECS.Towers[id]
	if !ok {
		return 0, fmt.Errorf("tower %d: %w", id, ErrUnknownTower)
	}
	refund := sellValue(tower)
	payload := event.TowerPayload{
		ID:     id,
		Kind:   tower.Kind,
		Cell:   tower.Cell,
		Level:  tower.Level,
		Amount: refund,
	}
	l.bank.Credit(refund)
	l.Grid.Release(tower.Cell)
	l.ECS.RemoveEntity(id)
	l.eventDispatcher.Dispatch(event.Event{Type: event.TowerSold, Data: payload})
	return refund, nil
}

func sellValue(tower *component.Tower) int {
	return int(math.Floor(float64(tower.Invested) * config.SellRefundRatio))
}

// TowerAt возвращает башню на клетке
func (l *Level) TowerAt(cell grid.Cell) (types.EntityID, bool) {
	for _, id := range l.ECS.TowerIDs() {
		if l.ECS.Towers[id].Cell == cell {
			return id, true
		}
	}
	return 0, false
}

// Phase возвращает фазу уровня
func (l *Level) Phase() component.LevelPhase {
	return l.ECS.Phase
}

// Over сообщает, что все волны пройдены.
func (l *Level) Over() bool {
	return l.ECS.Phase == component.PhaseAllWavesComplete
}

// WaveNumber возвращает номер текущей волны (0 до старта).
func (l *Level) WaveNumber() int {
	if l.ECS.Wave == nil {
		return 0
	}
	return l.ECS.Wave.Number
}

func (l *Level) TotalWaves() int {
	return l.waveSystem.TotalWaves()
}

// Stats возвращает копию счётчиков уровня.
func (l *Level) Stats() Stats {
	return *l.stats
}

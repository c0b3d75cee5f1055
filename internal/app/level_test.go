package app

import (
	"errors"
	"go-tower-siege/internal/component"
	"go-tower-siege/internal/config"
	"go-tower-siege/internal/defs"
	"go-tower-siege/internal/economy"
	"go-tower-siege/internal/event"
	"go-tower-siege/pkg/grid"
	"math"
	"testing"
)

func newTestLevel(t *testing.T, def defs.LevelDefinition, money int) (*Level, *economy.Economy, *recorder) {
	t.Helper()
	lib := testLibrary(def)
	econ := economy.New(money, 20)
	rec := &recorder{}
	level, err := NewLevel(lib, def, 0, econ, fixedChooser{}, rec)
	if err != nil {
		t.Fatalf("NewLevel: %v", err)
	}
	return level, econ, rec
}

func runUntilOver(t *testing.T, level *Level, dt float64) {
	t.Helper()
	for i := 0; i < 10000 && !level.Over(); i++ {
		level.Update(dt)
	}
	if !level.Over() {
		t.Fatalf("level did not finish, phase %v", level.Phase())
	}
}

var buildCell = grid.Cell{Col: 1, Row: 3}

func TestAttemptPlaceTowerFailures(t *testing.T) {
	level, econ, rec := newTestLevel(t, oneWaveLevel("l", "long", 1, 0, nil), 150)

	if _, err := level.AttemptPlaceTower("mortar", buildCell); !errors.Is(err, ErrUnknownTowerType) {
		t.Errorf("unknown type: err = %v", err)
	}
	if _, err := level.AttemptPlaceTower(defs.TowerMoney, buildCell); !errors.Is(err, economy.ErrInsufficientFunds) {
		t.Errorf("expensive tower: err = %v", err)
	}
	if econ.Money() != 150 || level.Grid.IsOccupied(buildCell) {
		t.Errorf("failed placement changed state: money %d occupied %v", econ.Money(), level.Grid.IsOccupied(buildCell))
	}
	for _, cell := range []grid.Cell{{Col: 0, Row: 0}, {Col: 5, Row: 1}, {Col: 99, Row: 99}, {Col: -1, Row: 4}} {
		if _, err := level.AttemptPlaceTower(defs.TowerBasic, cell); !errors.Is(err, ErrCellOutOfBounds) {
			t.Errorf("cell %v: err = %v", cell, err)
		}
	}

	id, err := level.AttemptPlaceTower(defs.TowerBasic, buildCell)
	if err != nil {
		t.Fatalf("place: %v", err)
	}
	if econ.Money() != 50 || !level.Grid.IsOccupied(buildCell) {
		t.Errorf("after placement money %d occupied %v", econ.Money(), level.Grid.IsOccupied(buildCell))
	}
	if got, ok := level.TowerAt(buildCell); !ok || got != id {
		t.Errorf("TowerAt = %d, %v; want %d", got, ok, id)
	}

	econ.Credit(100)
	if _, err := level.AttemptPlaceTower(defs.TowerBasic, buildCell); !errors.Is(err, ErrCellOccupied) {
		t.Errorf("occupied: err = %v", err)
	}
	if econ.Money() != 150 {
		t.Errorf("occupied placement charged money: %d", econ.Money())
	}
	if n := rec.count(event.TowerPlaced); n != 1 {
		t.Errorf("TowerPlaced = %d, want 1", n)
	}
}

func TestUpgradeTower(t *testing.T) {
	level, econ, _ := newTestLevel(t, oneWaveLevel("l", "long", 1, 0, nil), 3000)
	id, err := level.AttemptPlaceTower(defs.TowerBasic, buildCell)
	if err != nil {
		t.Fatal(err)
	}

	want := []struct {
		money    int
		level    int
		damage   int
		interval float64
	}{
		{2800, 2, 24, 0.4},
		{2600, 3, 29, 0.32},
		{2300, 4, 35, 0.256},
	}
	for _, w := range want {
		if err := level.UpgradeTower(id); err != nil {
			t.Fatalf("upgrade to %d: %v", w.level, err)
		}
		tower, combat := level.ECS.Towers[id], level.ECS.Combats[id]
		if econ.Money() != w.money || tower.Level != w.level || combat.Damage != w.damage ||
			math.Abs(combat.FireInterval-w.interval) > 1e-9 {
			t.Errorf("level %d: money %d damage %d interval %v", tower.Level, econ.Money(), combat.Damage, combat.FireInterval)
		}
	}

	if err := level.UpgradeTower(12345); !errors.Is(err, ErrUnknownTower) {
		t.Errorf("unknown tower: err = %v", err)
	}
}

func TestUpgradeTowerInsufficientFunds(t *testing.T) {
	level, econ, rec := newTestLevel(t, oneWaveLevel("l", "long", 1, 0, nil), 150)
	id, err := level.AttemptPlaceTower(defs.TowerBasic, buildCell)
	if err != nil {
		t.Fatal(err)
	}
	if err := level.UpgradeTower(id); !errors.Is(err, economy.ErrInsufficientFunds) {
		t.Fatalf("err = %v, want ErrInsufficientFunds", err)
	}
	tower, combat := level.ECS.Towers[id], level.ECS.Combats[id]
	if econ.Money() != 50 || tower.Level != 1 || combat.Damage != 20 || combat.FireInterval != 0.5 {
		t.Errorf("failed upgrade changed state: money %d level %d damage %d interval %v",
			econ.Money(), tower.Level, combat.Damage, combat.FireInterval)
	}
	if rec.count(event.TowerUpgraded) != 0 {
		t.Error("failed upgrade dispatched TowerUpgraded")
	}
}

func TestSellTower(t *testing.T) {
	level, econ, _ := newTestLevel(t, oneWaveLevel("l", "long", 1, 0, nil), 3000)
	id, _ := level.AttemptPlaceTower(defs.TowerBasic, buildCell)
	if err := level.UpgradeTower(id); err != nil {
		t.Fatal(err)
	}
	refund, err := level.SellTower(id)
	if err != nil {
		t.Fatal(err)
	}
	if refund != 150 || econ.Money() != 2950 {
		t.Errorf("refund %d money %d, want 150 and 2950", refund, econ.Money())
	}
	if level.Grid.IsOccupied(buildCell) || len(level.ECS.Towers) != 0 {
		t.Error("sold tower still occupies the grid")
	}
	if _, err := level.SellTower(id); !errors.Is(err, ErrUnknownTower) {
		t.Errorf("second sell: err = %v", err)
	}
	if _, err := level.AttemptPlaceTower(defs.TowerBasic, buildCell); err != nil {
		t.Errorf("cell not reusable after sell: %v", err)
	}
}

func TestTowerInfo(t *testing.T) {
	level, _, _ := newTestLevel(t, oneWaveLevel("l", "long", 1, 0, nil), 3000)
	basic, _ := level.AttemptPlaceTower(defs.TowerBasic, buildCell)
	money, _ := level.AttemptPlaceTower(defs.TowerMoney, grid.Cell{Col: 2, Row: 3})

	info, ok := level.TowerInfo(basic)
	if !ok || info.Damage != 20 || info.UpgradeCost != 100 || info.SellValue != 75 || info.Level != 1 {
		t.Errorf("basic info = %+v", info)
	}
	info, ok = level.TowerInfo(money)
	if !ok || info.Income != 10 || info.Damage != 0 || info.SellValue != 150 {
		t.Errorf("money info = %+v", info)
	}
	if _, ok := level.TowerInfo(999); ok {
		t.Error("info for a missing tower")
	}
}

// Пять врагов по 100 здоровья и 10 награды, все убиты башнями:
// ровно +50 денег, пустое поле и all_waves_complete.
func TestLevelClearedByTowers(t *testing.T) {
	level, econ, rec := newTestLevel(t, oneWaveLevel("l", "long", 5, 100, intPtr(10)), 1000)
	if _, err := level.AttemptPlaceTower(towerLaser, buildCell); err != nil {
		t.Fatal(err)
	}
	runUntilOver(t, level, 0.05)

	stats := level.Stats()
	if econ.Money() != 950 {
		t.Errorf("money = %d, want 950", econ.Money())
	}
	if stats.Spawned != 5 || stats.Killed != 5 || stats.RewardsEarned != 50 || stats.Breakthroughs != 0 {
		t.Errorf("stats = %+v", stats)
	}
	if level.ECS.LiveEnemies() != 0 || level.Phase() != component.PhaseAllWavesComplete {
		t.Errorf("live %d phase %v", level.ECS.LiveEnemies(), level.Phase())
	}
	if n := rec.count(event.LevelCompleted); n != 1 {
		t.Errorf("LevelCompleted = %d, want 1", n)
	}
}

// Враг со здоровьем 10 умирает от одного снаряда с уроном 20, награда начисляется один раз.
func TestProjectileKillsWeakEnemyInOneHit(t *testing.T) {
	level, econ, rec := newTestLevel(t, oneWaveLevel("l", "long", 1, 10, intPtr(7)), 100)
	if _, err := level.AttemptPlaceTower(defs.TowerBasic, buildCell); err != nil {
		t.Fatal(err)
	}
	runUntilOver(t, level, 0.05)

	if econ.Money() != 7 {
		t.Errorf("money = %d, want 7", econ.Money())
	}
	if hits, kills := rec.count(event.EnemyHit), rec.count(event.EnemyKilled); hits != 1 || kills != 1 {
		t.Errorf("hits %d kills %d, want 1 and 1", hits, kills)
	}
}

func TestTowerTargetsEnemySpawnedSameTick(t *testing.T) {
	level, _, _ := newTestLevel(t, oneWaveLevel("l", "long", 2, 100, nil), 1000)
	if _, err := level.AttemptPlaceTower(towerLaser, buildCell); err != nil {
		t.Fatal(err)
	}
	level.Update(0.2)
	if stats := level.Stats(); stats.Spawned != 1 || stats.Killed != 1 {
		t.Errorf("after one tick stats = %+v", stats)
	}
}

func TestBreakthroughIsReportedNotPunished(t *testing.T) {
	level, econ, rec := newTestLevel(t, oneWaveLevel("l", "short", 2, 0, nil), 0)
	runUntilOver(t, level, 0.05)

	if n := rec.count(event.EnemyBreakthrough); n != 2 {
		t.Errorf("breakthroughs = %d, want 2", n)
	}
	if level.Stats().Breakthroughs != 2 || econ.Lives() != 20 || econ.Money() != 0 {
		t.Errorf("stats %+v lives %d money %d", level.Stats(), econ.Lives(), econ.Money())
	}
	if _, err := level.AttemptPlaceTower(defs.TowerBasic, buildCell); !errors.Is(err, ErrLevelOver) {
		t.Errorf("placement after level end: err = %v", err)
	}
}

func TestMoneyTowerIncome(t *testing.T) {
	level, econ, _ := newTestLevel(t, oneWaveLevel("l", "long", 1, 0, nil), 200)
	if _, err := level.AttemptPlaceTower(defs.TowerMoney, buildCell); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 8; i++ {
		level.Update(0.25)
	}
	if econ.Money() != 20 {
		t.Errorf("money after 2 s = %d, want 20", econ.Money())
	}
	if level.Stats().IncomeEarned != 20 {
		t.Errorf("income stat = %d", level.Stats().IncomeEarned)
	}
}

func TestMoneyTowerIncomeAtFrameRate(t *testing.T) {
	level, econ, _ := newTestLevel(t, oneWaveLevel("l", "long", 1, 0, nil), 200)
	if _, err := level.AttemptPlaceTower(defs.TowerMoney, buildCell); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 600; i++ {
		level.Update(1.0 / config.FrameRate)
	}
	if econ.Money() != 100 {
		t.Errorf("money after 600 frames = %d, want 100 (game time %v)", econ.Money(), level.ECS.GameTime)
	}
}

func TestLevelSpawnDelay(t *testing.T) {
	def := oneWaveLevel("l", "long", 3, 0, nil)
	def.SpawnDelay = 0.5
	level, _, _ := newTestLevel(t, def, 0)
	for i := 0; i < 5; i++ {
		level.Update(0.25)
	}
	// Спавны на 0.25, 0.75 и 1.25 вместо шага config.SpawnDelay
	if n := level.Stats().Spawned; n != 3 {
		t.Errorf("spawned by t=1.25 = %d, want 3", n)
	}
}

func TestSnapshotEnemyProgress(t *testing.T) {
	level, _, _ := newTestLevel(t, oneWaveLevel("l", "long", 1, 0, nil), 0)
	for i := 0; i < 4; i++ {
		level.Update(1)
	}
	s := &Snapshot{}
	level.fillSnapshot(s)
	if len(s.Enemies) != 1 {
		t.Fatalf("enemies = %+v", s.Enemies)
	}
	// Враг двигается и в тик появления: 4 шага по 60 px из 960
	if got := s.Enemies[0].Progress; got != 0.25 {
		t.Errorf("progress = %v, want 0.25", got)
	}
}

package system

import (
	"go-tower-siege/internal/component"
	"go-tower-siege/internal/defs"
	"go-tower-siege/internal/event"
	"go-tower-siege/pkg/geom"
	"testing"
)

func orders(n int) []defs.SpawnOrder {
	path := geom.MustPath(geom.Vec{X: 0, Y: 100}, geom.Vec{X: 500, Y: 100})
	out := make([]defs.SpawnOrder, n)
	for i := range out {
		out[i] = defs.SpawnOrder{Kind: defs.EnemyBasic, PathID: "p", Path: path, Speed: 1, Health: 100, Reward: 10}
	}
	return out
}

func killAll(w *world) {
	for _, id := range w.ecs.EnemyIDs() {
		w.damage.ApplyDamage(id, 0, 1_000_000)
	}
}

func TestWaveSpawnsOnInterval(t *testing.T) {
	w := newWorld(0)
	waves := NewWaveSystem(w.ecs, w.dispatcher, "test", [][]defs.SpawnOrder{orders(3)})
	waves.Start(0)

	steps := []struct {
		now     float64
		spawned int
		phase   component.LevelPhase
	}{
		{0.1, 1, component.PhaseSpawning}, // первый враг сразу
		{0.5, 1, component.PhaseSpawning},
		{1.1, 2, component.PhaseSpawning},
		{1.5, 2, component.PhaseSpawning},
		{2.1, 3, component.PhaseWaitingForClear},
		{5.0, 3, component.PhaseWaitingForClear},
	}
	for _, s := range steps {
		waves.Update(s.now)
		if got := w.rec.count(event.EnemySpawned); got != s.spawned {
			t.Errorf("at %v spawned = %d, want %d", s.now, got, s.spawned)
		}
		if w.ecs.Phase != s.phase {
			t.Errorf("at %v phase = %v, want %v", s.now, w.ecs.Phase, s.phase)
		}
	}

	for _, id := range w.ecs.EnemyIDs() {
		path := w.ecs.Paths[id]
		pos := w.ecs.Positions[id]
		if path.Index != 0 || pos.X != 0 || pos.Y != 100 {
			t.Errorf("enemy %d not at path start: index %d pos (%v,%v)", id, path.Index, pos.X, pos.Y)
		}
	}
}

func TestWaveWaitsForClearThenAdvances(t *testing.T) {
	w := newWorld(0)
	waves := NewWaveSystem(w.ecs, w.dispatcher, "test", [][]defs.SpawnOrder{orders(1), orders(2)})
	waves.Start(0)

	waves.Update(0.1)
	if w.ecs.Phase != component.PhaseWaitingForClear {
		t.Fatalf("phase = %v, want waiting_for_clear", w.ecs.Phase)
	}
	if waves.CheckCleared(0.2) {
		t.Fatal("cleared while an enemy is alive")
	}
	killAll(w)
	if waves.CheckCleared(0.3) {
		t.Fatal("level reported complete after the first of two waves")
	}
	if w.ecs.Phase != component.PhaseSpawning || w.ecs.Wave.Number != 2 {
		t.Fatalf("phase %v wave %d, want spawning wave 2", w.ecs.Phase, w.ecs.Wave.Number)
	}

	waves.Update(0.4)
	waves.Update(1.5)
	// Прорыв тоже освобождает волну
	for _, id := range w.ecs.EnemyIDs() {
		w.ecs.Positions[id].X = 499.5
		w.movement.Advance(id, 1)
	}
	if !waves.CheckCleared(1.6) {
		t.Fatal("last wave cleared but level not complete")
	}
	if w.ecs.Phase != component.PhaseAllWavesComplete {
		t.Errorf("phase = %v, want all_waves_complete", w.ecs.Phase)
	}
	if waves.CheckCleared(1.7) {
		t.Error("completion reported twice")
	}
	if n := w.rec.count(event.WaveCleared); n != 2 {
		t.Errorf("WaveCleared = %d, want 2", n)
	}
	if n := w.rec.count(event.EnemyBreakthrough); n != 2 {
		t.Errorf("breakthroughs = %d, want 2", n)
	}
}

func TestWaveEmptyLevel(t *testing.T) {
	w := newWorld(0)
	waves := NewWaveSystem(w.ecs, w.dispatcher, "empty", nil)
	waves.Start(0)
	if w.ecs.Phase != component.PhaseAllWavesComplete {
		t.Errorf("phase = %v, want all_waves_complete", w.ecs.Phase)
	}
	waves.Update(1)
	if len(w.ecs.Enemies) != 0 {
		t.Error("empty level spawned enemies")
	}
}

func TestSetSpawnInterval(t *testing.T) {
	w := newWorld(0)
	waves := NewWaveSystem(w.ecs, w.dispatcher, "test", [][]defs.SpawnOrder{orders(2)})
	waves.SetSpawnInterval(0.25)
	waves.SetSpawnInterval(-1) // игнорируется
	waves.Start(0)
	waves.Update(0.1)
	waves.Update(0.4)
	if n := w.rec.count(event.EnemySpawned); n != 2 {
		t.Errorf("spawned = %d, want 2", n)
	}
}

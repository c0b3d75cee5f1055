package system

import (
	"go-tower-siege/internal/component"
	"go-tower-siege/internal/defs"
	"go-tower-siege/internal/event"
	"go-tower-siege/internal/types"
	"testing"
)

func basicCombat() component.Combat {
	return component.Combat{
		Damage:       20,
		Range:        100,
		FireInterval: 1.0,
		Targeting:    defs.TargetNearest,
		Attack:       defs.AttackProjectile,
	}
}

func TestFindTargetNearest(t *testing.T) {
	w := newWorld(0)
	tower := w.addTower(0, 0, basicCombat())
	far := w.addEnemy(50, 0, 10, 10)
	near := w.addEnemy(30, 0, 10, 10)
	w.addEnemy(150, 0, 10, 10) // вне радиуса

	got, ok := FindTarget(w.ecs, tower)
	if !ok || got != near {
		t.Errorf("FindTarget = %d, %v; want %d", got, ok, near)
	}

	w.damage.ApplyDamage(near, 0, 100)
	if got, _ := FindTarget(w.ecs, tower); got != far {
		t.Errorf("after kill FindTarget = %d, want %d", got, far)
	}
}

func TestFindTargetTieGoesToFirstSpawned(t *testing.T) {
	w := newWorld(0)
	tower := w.addTower(0, 0, basicCombat())
	first := w.addEnemy(0, 40, 10, 10)
	w.addEnemy(40, 0, 10, 10)
	w.addEnemy(0, -40, 10, 10)
	for i := 0; i < 10; i++ {
		if got, _ := FindTarget(w.ecs, tower); got != first {
			t.Fatalf("FindTarget = %d, want %d", got, first)
		}
	}
}

func TestFindTargetRangeBoundary(t *testing.T) {
	tests := []struct {
		name string
		x    float64
		want bool
	}{
		{"inside", 99, true},
		{"on edge", 100, true},
		{"outside", 100.5, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newWorld(0)
			tower := w.addTower(0, 0, basicCombat())
			w.addEnemy(tt.x, 0, 10, 10)
			_, ok := FindTarget(w.ecs, tower)
			if ok != tt.want {
				t.Errorf("found = %v, want %v", ok, tt.want)
			}
		})
	}
}

func TestFindTargetNoneInRange(t *testing.T) {
	w := newWorld(0)
	tower := w.addTower(0, 0, basicCombat())
	if id, ok := FindTarget(w.ecs, tower); ok || id != 0 {
		t.Errorf("empty field: FindTarget = %d, %v", id, ok)
	}
	w.addEnemy(500, 500, 10, 10)
	if _, ok := FindTarget(w.ecs, tower); ok {
		t.Error("selected an enemy out of range")
	}
}

func TestFindTargetStrongest(t *testing.T) {
	w := newWorld(0)
	c := basicCombat()
	c.Range = 300
	c.Targeting = defs.TargetStrongest
	tower := w.addTower(0, 0, c)
	w.addEnemy(10, 0, 50, 10)
	w.addEnemy(400, 0, 500, 10) // сильнее, но вне радиуса
	strong := w.addEnemy(200, 0, 60, 10)
	w.addEnemy(100, 0, 60, 10) // столько же здоровья, но появился позже

	got, ok := FindTarget(w.ecs, tower)
	if !ok || got != strong {
		t.Errorf("FindTarget = %d, %v; want %d", got, ok, strong)
	}
}

func TestFindTargetNoneForIncomeTower(t *testing.T) {
	w := newWorld(0)
	c := basicCombat()
	c.Targeting = defs.TargetNone
	tower := w.addTower(0, 0, c)
	w.addEnemy(10, 0, 10, 10)
	if _, ok := FindTarget(w.ecs, tower); ok {
		t.Error("tower without targeting found a target")
	}
}

func TestTryFireRespectsInterval(t *testing.T) {
	w := newWorld(0)
	tower := w.addTower(0, 0, basicCombat())
	target := w.addEnemy(50, 0, 1000, 10)

	tests := []struct {
		now  float64
		want bool
	}{
		{0.5, false},
		{1.0, true},
		{1.5, false},
		{1.99, false},
		{2.0, true},
		{3.5, true},
	}
	for _, tt := range tests {
		if got := w.combat.TryFire(tower, target, tt.now); got != tt.want {
			t.Errorf("TryFire at %v = %v, want %v", tt.now, got, tt.want)
		}
	}
	if n := len(w.ecs.Projectiles); n != 3 {
		t.Errorf("projectiles = %d, want 3", n)
	}
	if last := w.ecs.Combats[tower].LastFireTime; last != 3.5 {
		t.Errorf("LastFireTime = %v, want 3.5", last)
	}
}

func TestTryFireWithoutTargetKeepsTimer(t *testing.T) {
	w := newWorld(0)
	tower := w.addTower(0, 0, basicCombat())
	target := w.addEnemy(50, 0, 10, 10)
	w.damage.ApplyDamage(target, 0, 10)

	if w.combat.TryFire(tower, target, 5) {
		t.Error("fired at a dead enemy")
	}
	if w.combat.TryFire(tower, types.EntityID(999), 5) {
		t.Error("fired at a missing enemy")
	}
	if last := w.ecs.Combats[tower].LastFireTime; last != 0 {
		t.Errorf("LastFireTime changed to %v", last)
	}
	w.combat.Update(5)
	if n := w.rec.count(event.TowerFired); n != 0 {
		t.Errorf("TowerFired = %d with no targets", n)
	}
}

func TestTryFireHitscan(t *testing.T) {
	w := newWorld(0)
	c := basicCombat()
	c.Attack = defs.AttackHitscan
	c.Damage = 40
	tower := w.addTower(0, 0, c)
	target := w.addEnemy(50, 0, 100, 10)

	if !w.combat.TryFire(tower, target, 1) {
		t.Fatal("hitscan tower did not fire")
	}
	if h := w.ecs.Healths[target].Value; h != 60 {
		t.Errorf("health = %d, want 60", h)
	}
	if len(w.ecs.Projectiles) != 0 {
		t.Error("hitscan tower spawned a projectile")
	}
	if len(w.ecs.Lasers) != 1 {
		t.Errorf("lasers = %d, want 1", len(w.ecs.Lasers))
	}
}

// Башня никогда не стреляет чаще FireInterval, при любом шаге тика.
func TestCombatUpdateNeverFiresWithinInterval(t *testing.T) {
	for _, dt := range []float64{0.01, 0.05, 0.3, 0.7} {
		w := newWorld(0)
		tower := w.addTower(0, 0, basicCombat())
		w.addEnemy(50, 0, 1_000_000, 10)

		var shots []float64
		w.dispatcher.Subscribe(event.TowerFired, event.ListenerFunc(func(event.Event) {
			shots = append(shots, w.ecs.GameTime)
		}))
		for i := 0; i < 200; i++ {
			w.ecs.GameTime += dt
			w.combat.Update(w.ecs.GameTime)
		}
		if len(shots) == 0 {
			t.Fatalf("dt %v: tower never fired", dt)
		}
		for i := 1; i < len(shots); i++ {
			if shots[i]-shots[i-1] < w.ecs.Combats[tower].FireInterval-1e-9 {
				t.Fatalf("dt %v: shots at %v and %v", dt, shots[i-1], shots[i])
			}
		}
	}
}

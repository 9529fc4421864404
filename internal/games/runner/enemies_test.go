package runner

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

func newTestManager(seed int64) *EnemyManager {
	cfg := config.DefaultRunnerConfig()
	return NewEnemyManager(seed, &cfg, config.NewDifficultyManager(cfg.Difficulty))
}

func TestEnemyManagerJitterRange(t *testing.T) {
	for seed := int64(0); seed < 200; seed++ {
		em := newTestManager(seed)
		if j := em.Jitter(); j < 500 || j >= 1500 {
			t.Fatalf("seed %d: jitter %v outside [500, 1500)", seed, j)
		}
	}
}

func TestEnemyManagerSpawnSchedule(t *testing.T) {
	em := newTestManager(7)
	s := &recordingSurface{}
	threshold := em.Threshold(core.GameState{})

	frames := 0
	for len(em.Enemies()) == 0 {
		before := em.Timer()
		em.Tick(16, s, core.GameState{})
		frames++

		if len(em.Enemies()) == 0 {
			if em.Timer() != before+16 {
				t.Fatalf("timer should accumulate dt, got %v after %v", em.Timer(), before)
			}
		} else if before <= threshold {
			t.Fatalf("spawned with timer %v not above threshold %v", before, threshold)
		}
		if frames > 1000 {
			t.Fatal("no spawn within 1000 frames")
		}
	}

	if em.Timer() != 0 {
		t.Errorf("timer should reset on spawn, got %v", em.Timer())
	}
	if j := em.Jitter(); j < 500 || j >= 1500 {
		t.Errorf("redrawn jitter %v outside range", j)
	}

	e := em.Enemies()[0]
	// Spawned, drawn and updated in the same tick
	if e.X != 792 || e.Y != 601 {
		t.Errorf("new enemy at (%v, %v), expected (792, 601)", e.X, e.Y)
	}
}

func TestEnemyManagerDeterministic(t *testing.T) {
	a, b := newTestManager(99), newTestManager(99)
	for i := 0; i < 600; i++ {
		a.Tick(16.6, core.NopSurface{}, core.GameState{})
		b.Tick(16.6, core.NopSurface{}, core.GameState{})
	}
	if len(a.Enemies()) != len(b.Enemies()) || a.Jitter() != b.Jitter() || a.Timer() != b.Timer() {
		t.Error("same seed should produce identical spawn schedules")
	}
}

func TestEnemyManagerDrawsExitingEnemyThenCulls(t *testing.T) {
	em := newTestManager(1)
	e := em.Spawn()
	e.X = -155

	s := &recordingSurface{}
	exited := em.Tick(16, s, core.GameState{})

	if exited != 1 {
		t.Errorf("exited = %d, expected 1", exited)
	}
	if len(s.blitsOf(core.ImageEnemy)) != 1 {
		t.Error("enemy should still be drawn on the frame it exits")
	}
	if len(em.Enemies()) != 0 {
		t.Errorf("exited enemy should be culled, %d left", len(em.Enemies()))
	}
}

func TestEnemyManagerCullKeepsOrder(t *testing.T) {
	em := newTestManager(1)
	first := em.Spawn()
	middle := em.Spawn()
	last := em.Spawn()
	first.X, middle.X, last.X = 500, -159, 300

	exited := em.Tick(0, core.NopSurface{}, core.GameState{})
	if exited != 1 {
		t.Fatalf("exited = %d, expected 1", exited)
	}

	live := em.Enemies()
	if len(live) != 2 || live[0] != first || live[1] != last {
		t.Errorf("survivors out of order: %v", live)
	}
}

func TestEnemyManagerDifficultySpeed(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	config.ApplyRunnerPreset(&cfg, config.DifficultyEasy)
	cfg.Difficulty.Progression = config.ProgressionConfig{Type: "score", MaxAt: 10}
	em := NewEnemyManager(3, &cfg, config.NewDifficultyManager(cfg.Difficulty))

	// Force a spawn at max difficulty
	for len(em.Enemies()) == 0 {
		em.Tick(100, core.NopSurface{}, core.GameState{Score: 10})
	}
	if got := em.Enemies()[0].Speed; got != 16 {
		t.Errorf("speed at max difficulty = %v, expected 16", got)
	}
	if got := em.Threshold(core.GameState{Score: 10}) - em.Jitter(); math.Abs(got-500) > 1e-9 {
		t.Errorf("base interval at max difficulty = %v, expected 500", got)
	}
}

func TestEnemyManagerReset(t *testing.T) {
	em := newTestManager(5)
	em.Spawn()
	em.Tick(10, core.NopSurface{}, core.GameState{})

	em.Reset(5)
	if len(em.Enemies()) != 0 || em.Timer() != 0 {
		t.Error("Reset should clear enemies and timer")
	}
	if em.Jitter() != newTestManager(5).Jitter() {
		t.Error("Reset with the same seed should redraw the same first jitter")
	}
}

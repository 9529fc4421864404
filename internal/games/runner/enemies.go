package runner

import (
	"math/rand"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// EnemyManager handles spawning, movement, drawing and removal of enemies.
type EnemyManager struct {
	enemies    []*Enemy
	rng        *rand.Rand
	timer      float64 // Milliseconds since the last spawn
	jitter     float64 // Random delay added to the base interval, redrawn per spawn
	cfg        *config.RunnerConfig
	difficulty *config.DifficultyManager
}

// NewEnemyManager creates an enemy manager with the given RNG seed.
// The first jitter is drawn immediately.
func NewEnemyManager(seed int64, cfg *config.RunnerConfig, diff *config.DifficultyManager) *EnemyManager {
	em := &EnemyManager{
		enemies:    make([]*Enemy, 0, 8),
		cfg:        cfg,
		difficulty: diff,
	}
	em.Reset(seed)
	return em
}

// Reset clears all enemies, re-seeds the RNG and restarts the spawn timer.
func (em *EnemyManager) Reset(seed int64) {
	em.enemies = em.enemies[:0]
	em.rng = rand.New(rand.NewSource(seed))
	em.timer = 0
	em.jitter = em.drawJitter()
}

// drawJitter returns a uniform value in [jitter_min_ms, jitter_max_ms).
func (em *EnemyManager) drawJitter() float64 {
	lo, hi := em.cfg.Spawn.JitterMinMS, em.cfg.Spawn.JitterMaxMS
	return lo + em.rng.Float64()*(hi-lo)
}

// Threshold returns the spawn timer value that must be exceeded before the
// next spawn, given the current progress.
func (em *EnemyManager) Threshold(st core.GameState) float64 {
	base := em.difficulty.SpawnInterval(em.cfg.Spawn.BaseIntervalMS, st.Score, st.Frames)
	return base + em.jitter
}

// Tick runs the manager for one frame: spawn or accumulate time, then draw
// and update every enemy, then drop those that left the world. An enemy is
// drawn before it is updated, so it is still drawn on the frame it exits.
// Returns how many enemies exited this frame.
func (em *EnemyManager) Tick(dt float64, dst core.Surface, st core.GameState) int {
	if em.timer > em.Threshold(st) {
		em.spawn(st)
		em.jitter = em.drawJitter()
		em.timer = 0
	} else {
		em.timer += dt
	}

	exited := 0
	for _, e := range em.enemies {
		e.Draw(dst)
		if e.Update(dt) {
			exited++
		}
	}

	em.cull()
	return exited
}

// Spawn appends a new enemy at the right edge of the world.
func (em *EnemyManager) Spawn() *Enemy {
	return em.spawn(core.GameState{})
}

func (em *EnemyManager) spawn(st core.GameState) *Enemy {
	speed := em.difficulty.EnemySpeed(em.cfg.Enemy.Speed, st.Score, st.Frames)
	e := NewEnemy(em.cfg.Enemy, em.cfg.World, speed)
	em.enemies = append(em.enemies, e)
	return e
}

// cull removes marked enemies in place, keeping survivors in order.
func (em *EnemyManager) cull() {
	live := em.enemies[:0]
	for _, e := range em.enemies {
		if !e.MarkedForDeletion() {
			live = append(live, e)
		}
	}
	// Drop references held past the new length
	for i := len(live); i < len(em.enemies); i++ {
		em.enemies[i] = nil
	}
	em.enemies = live
}

// Enemies returns the live enemies. Callers must treat the slice as read-only.
func (em *EnemyManager) Enemies() []*Enemy {
	return em.enemies
}

// Timer returns the milliseconds accumulated since the last spawn.
func (em *EnemyManager) Timer() float64 {
	return em.timer
}

// Jitter returns the current random spawn delay.
func (em *EnemyManager) Jitter() float64 {
	return em.jitter
}

package runner

import (
	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Sprite sheet rows of the player image.
const (
	rowRunning  = 0
	rowAirborne = 1
)

// Player is the controllable runner.
type Player struct {
	Animator

	X, Y       float64 // Top-left corner in world pixels
	XVel, YVel float64
	W, H       float64

	cfg    config.PlayerConfig
	worldW float64
	worldH float64
}

// NewPlayer creates a player standing on the ground at the left edge.
func NewPlayer(cfg config.PlayerConfig, world config.WorldConfig) *Player {
	p := &Player{
		Animator: NewAnimator(cfg.FPS, cfg.GroundFrames),
		W:        cfg.Width,
		H:        cfg.Height,
		cfg:      cfg,
		worldW:   world.Width,
		worldH:   world.Height,
	}
	p.Y = p.groundY()
	return p
}

// groundY is the y at which the player stands on the ground.
func (p *Player) groundY() float64 {
	return p.worldH - p.H
}

// OnGround reports whether the player is standing on the ground.
func (p *Player) OnGround() bool {
	return p.Y >= p.groundY()
}

// Bounds returns the player's rectangle in world pixels.
func (p *Player) Bounds() core.RectF {
	return core.NewRectF(p.X, p.Y, p.W, p.H)
}

// Collides reports whether the player's circle overlaps the enemy's circle.
// Both radii are half the sprite width; touching circles do not collide.
func (p *Player) Collides(e *Enemy) bool {
	distance := core.Distance(p.Bounds().Center(), e.Bounds().Center())
	return distance < e.W/2+p.W/2
}

// Update advances the player by one frame and returns true if it touched any
// enemy. Collision is tested first, against enemy positions from the start of
// the frame.
func (p *Player) Update(in *core.InputState, dt float64, enemies []*Enemy) bool {
	collided := false
	for _, e := range enemies {
		if p.Collides(e) {
			collided = true
		}
	}

	p.Advance(dt)

	// Jump impulse only from the ground; holding Up in the air does nothing
	if in.IsActive(core.KeyUp) && p.OnGround() {
		p.YVel -= p.cfg.JumpImpulse
	}
	p.Y += p.YVel

	// Horizontal velocity is re-derived every frame. Right wins a tie.
	switch {
	case in.IsActive(core.KeyRight):
		p.XVel = p.cfg.Speed
	case in.IsActive(core.KeyLeft):
		p.XVel = -p.cfg.Speed
	default:
		p.XVel = 0
	}
	p.X += p.XVel
	p.X = core.ClampF(p.X, 0, p.worldW-p.W)

	// Gravity is per frame, not scaled by dt
	if !p.OnGround() {
		p.YVel += p.cfg.Weight
		p.SetSheet(p.cfg.AirFrames, rowAirborne)
	} else {
		p.YVel = 0
		p.SetSheet(p.cfg.GroundFrames, rowRunning)
	}
	p.Y = core.ClampF(p.Y, 0, p.groundY())

	return collided
}

// Draw blits the current animation frame at the player's position.
func (p *Player) Draw(dst core.Surface) {
	dst.Blit(core.ImagePlayer, p.SourceRect(p.W, p.H), p.Bounds())
}

// Package character implements the kinematic character controller:
// gravity and jump integration, camera-relative horizontal movement, and
// animation selection.
package character

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/coopbri/foxtrot/internal/config"
	"github.com/coopbri/foxtrot/internal/game/entity"
)

// JumpState tracks the phase of the current jump.
type JumpState int

// Jump phases.
const (
	JumpDone JumpState = iota
	JumpInProgress
)

// Input is the per-frame control state feeding the controller.
type Input struct {
	// Move is the raw planar movement intent: X sideward, Y forward.
	Move mgl32.Vec2

	// Jump is set while the jump control is held.
	Jump bool

	// CameraOffset points from the character to the camera; forward
	// movement heads away from the camera on the horizontal plane.
	CameraOffset mgl32.Vec3

	// Grounded is the physics ground-contact report for this frame.
	Grounded bool
}

// Controller integrates per-frame velocity for a kinematic character.
// Velocity accumulates within one Update and is consumed at its end, so
// the returned translation is the full frame displacement.
type Controller struct {
	cfg config.GameConfig

	velocity          mgl32.Vec3
	timeSinceGrounded float32
	jumpState         JumpState
	timeSinceJump     float32
}

// NewController creates a controller with the given movement settings.
func NewController(cfg config.GameConfig) *Controller {
	return &Controller{
		cfg:           cfg,
		jumpState:     JumpDone,
		timeSinceJump: gomath.MaxFloat32,
	}
}

// Update advances the controller by dt seconds and returns the frame
// translation to apply to the character.
func (c *Controller) Update(dt float32, in Input) mgl32.Vec3 {
	c.updateGrounded(dt, in.Grounded)
	c.applyGravity()
	c.handleJump(dt, in.Jump)
	c.handleHorizontal(dt, in)

	translation := c.velocity
	c.velocity = mgl32.Vec3{}
	return translation
}

// Airborne reports whether the character has been off the ground for more
// than a contact jitter tolerance.
func (c *Controller) Airborne() bool {
	return c.timeSinceGrounded > 1e-4
}

// Action selects the animation for the current frame from the controller
// state and the applied translation.
func (c *Controller) Action(translation mgl32.Vec3) int {
	horizontal := mgl32.Vec2{translation.X(), translation.Z()}
	switch {
	case c.Airborne():
		return entity.ActionJump
	case horizontal.Len() > 1e-4:
		return entity.ActionWalk
	default:
		return entity.ActionIdle
	}
}

func (c *Controller) updateGrounded(dt float32, grounded bool) {
	if grounded {
		c.timeSinceGrounded = 0
	} else {
		c.timeSinceGrounded += dt
	}
}

// applyGravity accelerates the fall with time spent off the ground,
// discounting time covered by an active jump. The clamp bounds look
// swapped because gravity is negative.
func (c *Controller) applyGravity() {
	if c.jumpState == JumpInProgress {
		return
	}
	g := c.cfg.Gravity
	dt := c.timeSinceGrounded - minf(c.timeSinceJump, c.cfg.JumpDuration)
	gravity := clampf(g*dt, g*5, g*0.1)
	c.velocity[1] += gravity
}

func (c *Controller) handleJump(dt float32, requested bool) {
	if requested && c.timeSinceGrounded < 1e-5 {
		c.timeSinceJump = 0
		c.jumpState = JumpInProgress
	} else {
		c.timeSinceJump += dt
		if c.timeSinceJump >= c.cfg.JumpDuration {
			c.jumpState = JumpDone
		}
	}
	if c.jumpState == JumpInProgress {
		c.velocity[1] += c.jumpSpeedFraction() * c.cfg.JumpSpeed * dt
	}
}

// jumpSpeedFraction fades the jump impulse out over the jump duration.
func (c *Controller) jumpSpeedFraction() float32 {
	f := 1 - c.timeSinceJump/c.cfg.JumpDuration
	if f < 0 {
		return 0
	}
	return f
}

func (c *Controller) handleHorizontal(dt float32, in Input) {
	if in.Move.Len() < 1e-5 {
		return
	}

	// Forward is away from the camera, projected onto the plane.
	forward := mgl32.Vec2{-in.CameraOffset.X(), -in.CameraOffset.Z()}
	if forward.Len() < 1e-5 {
		forward = mgl32.Vec2{0, 1}
	} else {
		forward = forward.Normalize()
	}
	sideward := mgl32.Vec2{-forward.Y(), forward.X()}

	movement := forward.Mul(in.Move.Y()).Add(sideward.Mul(in.Move.X()))
	if movement.Len() < 1e-5 {
		return
	}
	movement = movement.Normalize().Mul(c.cfg.MoveSpeed * dt)

	c.velocity[0] += movement.X()
	c.velocity[2] += movement.Y()
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func clampf(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

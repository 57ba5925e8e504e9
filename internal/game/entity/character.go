// Package entity provides game entities driven by the navigation systems.
package entity

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"
)

// Action constants for character animations.
const (
	ActionIdle = 0
	ActionWalk = 1
	ActionJump = 2
)

// ArrivalThreshold is the planar distance at which a character is
// considered to have reached its destination.
const ArrivalThreshold = 0.05

// Character represents a game character with position, movement, and
// animation state. Vertical position is handled by the character
// controller; destinations are planar.
type Character struct {
	Position  mgl32.Vec3
	MoveSpeed float32 // Units per second

	// Steering destination on the horizontal plane
	Dest           mgl32.Vec2
	HasDestination bool

	// Facing angle around the vertical axis, radians
	Facing float32

	// Animation state
	CurrentAction int
}

// NewCharacter creates a new character at the given position.
func NewCharacter(pos mgl32.Vec3) *Character {
	return &Character{
		Position:  pos,
		MoveSpeed: 6.0,
	}
}

// Planar returns the character's position projected onto the horizontal
// plane: X carries world X, Y carries world Z.
func (c *Character) Planar() mgl32.Vec2 {
	return mgl32.Vec2{c.Position.X(), c.Position.Z()}
}

// SetDestination sets a planar steering destination.
func (c *Character) SetDestination(p mgl32.Vec2) {
	c.Dest = p
	c.HasDestination = true
}

// ClearDestination clears the current destination.
func (c *Character) ClearDestination() {
	c.HasDestination = false
	if c.CurrentAction == ActionWalk {
		c.CurrentAction = ActionIdle
	}
}

// Update advances the character towards its destination. dt is the frame
// time in seconds. Returns true when the character moved.
func (c *Character) Update(dt float32) bool {
	if !c.HasDestination {
		return false
	}

	d := c.Dest.Sub(c.Planar())
	dist := d.Len()
	if dist < ArrivalThreshold {
		c.ClearDestination()
		return false
	}

	move := c.MoveSpeed * dt
	if move > dist {
		move = dist
	}
	step := d.Mul(move / dist)

	c.Position = c.Position.Add(mgl32.Vec3{step.X(), 0, step.Y()})
	c.Facing = float32(gomath.Atan2(float64(step.Y()), float64(step.X())))
	c.CurrentAction = ActionWalk
	return true
}

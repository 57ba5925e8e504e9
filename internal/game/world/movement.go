package world

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/coopbri/foxtrot/internal/game/entity"
	"github.com/coopbri/foxtrot/internal/nav"
)

// MovementController steers a character along navmesh paths. It queries
// the mesh for a waypoint path once per MoveTo and then feeds the
// character one waypoint at a time.
type MovementController struct {
	char *entity.Character
	mesh *nav.Mesh

	path []mgl32.Vec2
	next int
}

// NewMovementController creates a controller steering char over mesh.
func NewMovementController(char *entity.Character, mesh *nav.Mesh) *MovementController {
	return &MovementController{char: char, mesh: mesh}
}

// MoveTo plans a path from the character's current position to target.
// Returns false when no path exists, leaving any previous path cleared.
func (mc *MovementController) MoveTo(target mgl32.Vec2) bool {
	mc.ClearPath()
	if mc.mesh == nil {
		return false
	}
	path := mc.mesh.FindPath(mc.char.Planar(), target)
	if path == nil {
		return false
	}
	mc.path = path
	mc.next = 0
	mc.char.SetDestination(mc.path[mc.next])
	return true
}

// Update advances the character along the current path. dt is the frame
// time in seconds.
func (mc *MovementController) Update(dt float32) {
	if mc.path == nil {
		return
	}

	mc.char.Update(dt)
	if mc.char.HasDestination {
		return
	}

	// Waypoint reached, advance to the next one.
	mc.next++
	if mc.next >= len(mc.path) {
		mc.path = nil
		mc.next = 0
		return
	}
	mc.char.SetDestination(mc.path[mc.next])
}

// Moving reports whether the controller is still following a path.
func (mc *MovementController) Moving() bool {
	return mc.path != nil
}

// Path returns the remaining planned waypoints, nil when idle.
func (mc *MovementController) Path() []mgl32.Vec2 {
	if mc.path == nil {
		return nil
	}
	return mc.path[mc.next:]
}

// ClearPath stops the character and forgets the planned path.
func (mc *MovementController) ClearPath() {
	mc.path = nil
	mc.next = 0
	mc.char.ClearDestination()
}

// Package world ties the scene, baked navmeshes, and moving entities
// together.
package world

import (
	"go.uber.org/zap"

	"github.com/coopbri/foxtrot/internal/config"
	"github.com/coopbri/foxtrot/internal/nav"
	"github.com/coopbri/foxtrot/internal/scene"
)

// World owns the scene registry and the navmesh baker, and drives the
// movement controllers of its entities.
type World struct {
	Registry *scene.Registry
	Baker    *nav.Baker

	controllers []*MovementController
}

// New creates an empty world.
func New(cfg *config.Config, log *zap.Logger) *World {
	reg := scene.NewRegistry()
	return &World{
		Registry: reg,
		Baker:    nav.NewBaker(reg, cfg.Nav.Tag, log),
	}
}

// AddController registers a movement controller to be driven by Update.
func (w *World) AddController(mc *MovementController) {
	w.controllers = append(w.controllers, mc)
}

// Update bakes navmeshes for newly spawned sources and advances all
// movement controllers. dt is the frame time in seconds.
func (w *World) Update(dt float32) {
	w.Baker.ProcessAdded()
	for _, mc := range w.controllers {
		mc.Update(dt)
	}
}

// NavMesh returns the baked navmesh for a source node, or nil.
func (w *World) NavMesh(source scene.NodeID) *nav.Mesh {
	return w.Baker.Mesh(source)
}

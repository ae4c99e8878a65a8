// Package scene supplies the tagged-variant entity/update pass, glTF mesh
// loading, and a harmonica-based orbit controller that the rendering core
// leaves to external collaborators.
package scene

import (
	"time"

	"github.com/taigrr/vcam/pkg/math3d"
)

// Entity is a positioned, rotated, scaled thing in scene space, driven by
// zero or more Updaters. This replaces the original inheritance-based
// IComponent hierarchy with a single per-entity update pass: components
// are just Updater values appended to Updaters, not subclasses.
type Entity struct {
	Position math3d.Vec3
	Rotation math3d.Vec3 // Euler Y (yaw), X (pitch), Z (roll), radians
	Scale    math3d.Vec3

	Updaters []Updater
}

// NewEntity returns an Entity at the origin with unit scale.
func NewEntity() *Entity {
	return &Entity{Scale: math3d.V3(1, 1, 1)}
}

// Transform returns the entity's model-to-scene matrix.
func (e *Entity) Transform() math3d.Mat4 {
	return math3d.TransformMatrix(e.Position, e.Rotation, e.Scale)
}

// Updater is one behavior driven once per frame for an Entity: moving it,
// or pushing its pose into the render system as a camera, light, or mesh
// instance.
type Updater interface {
	Update(e *Entity, dt time.Duration)
}

// Scene is an ordered collection of entities, updated and then (for
// entities carrying a RenderUpdater) submitted to the render system each
// frame.
type Scene struct {
	Entities []*Entity
}

// Update runs every entity's updaters in order.
func (s *Scene) Update(dt time.Duration) {
	for _, e := range s.Entities {
		for _, u := range e.Updaters {
			u.Update(e, dt)
		}
	}
}

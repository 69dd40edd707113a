package systems

import (
	"github.com/bowker/gravitywar/ecs"
	"github.com/bowker/gravitywar/ecs/components"
)

// PhysicsSystem steps the physics space and copies the integrated body
// positions and angles back into the transforms. It must run last so
// every other system saw a consistent transform snapshot.
type PhysicsSystem struct {
	Input *components.InputState
}

// NewPhysicsSystem creates a PhysicsSystem.
func NewPhysicsSystem(input *components.InputState) *PhysicsSystem {
	return &PhysicsSystem{Input: input}
}

// Update advances the space by the tick delta and syncs transforms.
func (s *PhysicsSystem) Update(w *ecs.World) {
	if w == nil || s == nil {
		return
	}
	pw := w.PhysicsWorld()
	if pw == nil {
		return
	}
	dt := 1.0 / 60.0
	if s.Input != nil && s.Input.DT > 0 {
		dt = s.Input.DT
	}
	pw.Step(dt)

	bodies := w.PhysicsBodies()
	for _, id := range bodies.Entities() {
		body, ok := bodies.Get(id).(*components.PhysicsBody)
		if !ok || body == nil || body.Body == nil {
			continue
		}
		tr, ok := w.Transforms().Get(id).(*components.Transform)
		if !ok || tr == nil {
			continue
		}
		pos := body.Body.Position()
		tr.X = pos.X
		tr.Y = pos.Y
		tr.Angle = body.Body.Angle()
	}
}

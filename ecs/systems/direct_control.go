package systems

import (
	"github.com/jakecoffman/cp"

	"github.com/bowker/gravitywar/ecs"
	"github.com/bowker/gravitywar/ecs/components"
)

// ControlledFaction is the faction that accepts direct keyboard
// control in addition to autonomous steering.
const ControlledFaction uint32 = 1

const directControlSpeed = 1000.0

// DirectControlSystem moves ships of the controlled faction by a fixed
// positional delta per held direction key. The delta bypasses the
// force model and is written straight to the body position; autonomous
// steering still runs for the same ships in the same tick.
type DirectControlSystem struct {
	Input *components.InputState
}

// NewDirectControlSystem creates a DirectControlSystem.
func NewDirectControlSystem(input *components.InputState) *DirectControlSystem {
	return &DirectControlSystem{Input: input}
}

// Update applies the cardinal deltas to controlled ships.
func (s *DirectControlSystem) Update(w *ecs.World) {
	if w == nil || s == nil || s.Input == nil {
		return
	}
	var dx, dy float64
	step := directControlSpeed * s.Input.DT
	if s.Input.Up {
		dy += step
	}
	if s.Input.Down {
		dy -= step
	}
	if s.Input.Left {
		dx -= step
	}
	if s.Input.Right {
		dx += step
	}
	if dx == 0 && dy == 0 {
		return
	}

	ships := w.Spaceships()
	for _, id := range ships.Entities() {
		f, ok := w.Factions().Get(id).(*components.Faction)
		if !ok || f == nil || f.ID != ControlledFaction {
			continue
		}
		tr, ok := w.Transforms().Get(id).(*components.Transform)
		if !ok || tr == nil {
			continue
		}
		tr.X += dx
		tr.Y += dy
		if body := w.GetPhysicsBody(ecs.Entity{ID: id}); body != nil && body.Body != nil {
			pos := body.Body.Position()
			body.Body.SetPosition(cp.Vector{X: pos.X + dx, Y: pos.Y + dy})
		}
	}
}

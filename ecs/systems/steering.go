package systems

import (
	"image/color"

	"github.com/jakecoffman/cp"

	"github.com/bowker/gravitywar/common"
	"github.com/bowker/gravitywar/config"
	"github.com/bowker/gravitywar/ecs"
	"github.com/bowker/gravitywar/ecs/components"
)

const headingLineLength = 100.0

// DebugLine is one diagnostic segment for the renderer.
type DebugLine struct {
	X1, Y1 float64
	X2, Y2 float64
	Color  color.RGBA
}

// DebugLines collects diagnostic segments for one tick.
type DebugLines struct {
	lines []DebugLine
}

// Reset clears the buffer for a new tick.
func (d *DebugLines) Reset() {
	if d == nil {
		return
	}
	d.lines = d.lines[:0]
}

// Add appends a segment.
func (d *DebugLines) Add(l DebugLine) {
	if d == nil {
		return
	}
	d.lines = append(d.lines, l)
}

// Lines returns the segments collected this tick.
func (d *DebugLines) Lines() []DebugLine {
	if d == nil {
		return nil
	}
	return d.lines
}

// SteeringSystem converts each ship's target bearing into a clamped
// torque and a forward propulsion force, written to the ship's
// ForceCommand and its physics body. Ships without an acquired target
// coast under damping.
type SteeringSystem struct {
	Config *config.Store
	Lines  *DebugLines
}

// NewSteeringSystem creates a SteeringSystem. lines may be nil to skip
// diagnostics.
func NewSteeringSystem(store *config.Store, lines *DebugLines) *SteeringSystem {
	return &SteeringSystem{Config: store, Lines: lines}
}

// Update computes and applies force commands for all ships.
func (s *SteeringSystem) Update(w *ecs.World) {
	if w == nil || s == nil || s.Config == nil {
		return
	}
	cfg := s.Config.Get()
	s.Lines.Reset()

	ships := w.Spaceships()
	for _, id := range ships.Entities() {
		e := ecs.Entity{ID: id}
		tr, ok := w.Transforms().Get(id).(*components.Transform)
		if !ok || tr == nil {
			continue
		}
		f, ok := w.Factions().Get(id).(*components.Faction)
		if !ok || f == nil {
			continue
		}
		target, ok := w.Targets().Get(id).(*components.Target)
		if !ok || target == nil || !target.Acquired {
			continue
		}
		fc, ok := w.ForceCommands().Get(id).(*components.ForceCommand)
		if !ok || fc == nil {
			continue
		}

		fc.Torque, fc.FX, fc.FY = steerCommand(cfg, tr, target)

		if body := w.GetPhysicsBody(e); body != nil && body.Body != nil {
			body.Body.SetTorque(fc.Torque)
			body.Body.SetForce(cp.Vector{X: fc.FX, Y: fc.FY})
		}

		if s.Lines != nil {
			hx, hy := common.Heading(tr.Angle)
			s.Lines.Add(DebugLine{
				X1: tr.X, Y1: tr.Y,
				X2: tr.X + hx*headingLineLength, Y2: tr.Y + hy*headingLineLength,
				Color: f.Color(),
			})
		}
	}
}

// steerCommand computes the torque and force for one ship. Propulsion
// is always full magnitude along the current heading; it is not gated
// by distance or alignment, so ships thrust while still turning.
func steerCommand(cfg config.Config, tr *components.Transform, target *components.Target) (torque, fx, fy float64) {
	hx, hy := common.Heading(tr.Angle)
	angle := common.SignedAngle(hx, hy, target.X-tr.X, target.Y-tr.Y)
	torque = common.Clamp(angle*cfg.RotationForce, -cfg.RotationMax, cfg.RotationMax)
	fx = hx * cfg.PropulsionForce
	fy = hy * cfg.PropulsionForce
	return torque, fx, fy
}

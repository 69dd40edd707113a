package systems

import (
	"github.com/bowker/gravitywar/ecs"
	"github.com/bowker/gravitywar/ecs/components"
)

// Pointer buttons map to factions: primary spawns the player's
// faction, secondary spawns faction 2.
const (
	primarySpawnFaction   uint32 = 1
	secondarySpawnFaction uint32 = 2
)

// SpawnSystem turns pointer clicks into ship spawn events and drains
// them. Cursor coordinates translate to world space by subtracting
// half the viewport.
type SpawnSystem struct {
	Input     *components.InputState
	ViewportW float64
	ViewportH float64
}

// NewSpawnSystem creates a SpawnSystem for a viewport size.
func NewSpawnSystem(input *components.InputState, viewportW, viewportH float64) *SpawnSystem {
	return &SpawnSystem{Input: input, ViewportW: viewportW, ViewportH: viewportH}
}

// Update pushes spawn requests for this tick's clicks, then creates
// ships for all pending requests.
func (s *SpawnSystem) Update(w *ecs.World) {
	if w == nil || s == nil {
		return
	}
	if s.Input != nil {
		x := s.Input.CursorX - s.ViewportW/2
		y := s.Input.CursorY - s.ViewportH/2
		if s.Input.SpawnPrimary {
			w.Events().Push(ecs.Event{Type: ecs.EventTypeSpawn, Data: ecs.SpawnRequest{Faction: primarySpawnFaction, X: x, Y: y}})
		}
		if s.Input.SpawnSecondary {
			w.Events().Push(ecs.Event{Type: ecs.EventTypeSpawn, Data: ecs.SpawnRequest{Faction: secondarySpawnFaction, X: x, Y: y}})
		}
	}

	for _, evt := range w.Events().Drain() {
		if evt.Type != ecs.EventTypeSpawn {
			continue
		}
		req, ok := evt.Data.(ecs.SpawnRequest)
		if !ok {
			continue
		}
		SpawnShip(w, req.Faction, req.X, req.Y)
	}
}

// SpawnShip creates one ship entity with every component the faction
// index and steering controller depend on: transform, faction,
// zero-valued target and force command, and a physics body when the
// world has a physics space attached.
func SpawnShip(w *ecs.World, faction uint32, x, y float64) ecs.Entity {
	if w == nil {
		return ecs.Entity{}
	}
	e := w.CreateEntity()
	w.SetSpaceship(e)
	w.SetTransform(e, &components.Transform{X: x, Y: y})
	w.SetFaction(e, &components.Faction{ID: faction})
	w.SetTarget(e, &components.Target{})
	w.SetForceCommand(e, &components.ForceCommand{})
	if pw := w.PhysicsWorld(); pw != nil {
		if body := pw.NewShipBody(x, y, 0); body != nil {
			w.SetPhysicsBody(e, body)
		}
	}
	return e
}

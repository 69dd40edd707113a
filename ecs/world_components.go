package ecs

import "github.com/bowker/gravitywar/ecs/components"

// Transforms returns the transform storage.
func (w *World) Transforms() *SparseSet {
	if w == nil {
		return nil
	}
	if w.transforms == nil {
		w.transforms = &SparseSet{}
	}
	return w.transforms
}

// Factions returns the faction storage.
func (w *World) Factions() *SparseSet {
	if w == nil {
		return nil
	}
	if w.factions == nil {
		w.factions = &SparseSet{}
	}
	return w.factions
}

// Targets returns the target storage.
func (w *World) Targets() *SparseSet {
	if w == nil {
		return nil
	}
	if w.targets == nil {
		w.targets = &SparseSet{}
	}
	return w.targets
}

// ForceCommands returns the force command storage.
func (w *World) ForceCommands() *SparseSet {
	if w == nil {
		return nil
	}
	if w.forces == nil {
		w.forces = &SparseSet{}
	}
	return w.forces
}

// Spaceships returns the spaceship marker storage.
func (w *World) Spaceships() *SparseSet {
	if w == nil {
		return nil
	}
	if w.ships == nil {
		w.ships = &SparseSet{}
	}
	return w.ships
}

// PhysicsBodies returns the physics body storage.
func (w *World) PhysicsBodies() *SparseSet {
	if w == nil {
		return nil
	}
	if w.physBodies == nil {
		w.physBodies = &SparseSet{}
	}
	return w.physBodies
}

// SetTransform attaches a transform component.
func (w *World) SetTransform(e Entity, t *components.Transform) {
	if w == nil || t == nil {
		return
	}
	w.Transforms().Set(e.ID, t)
}

// GetTransform returns a transform component.
func (w *World) GetTransform(e Entity) *components.Transform {
	if w == nil {
		return nil
	}
	if t, ok := w.Transforms().Get(e.ID).(*components.Transform); ok {
		return t
	}
	return nil
}

// SetFaction attaches a faction component.
func (w *World) SetFaction(e Entity, f *components.Faction) {
	if w == nil || f == nil {
		return
	}
	w.Factions().Set(e.ID, f)
}

// GetFaction returns a faction component.
func (w *World) GetFaction(e Entity) *components.Faction {
	if w == nil {
		return nil
	}
	if f, ok := w.Factions().Get(e.ID).(*components.Faction); ok {
		return f
	}
	return nil
}

// RemoveFaction detaches the faction component if present.
func (w *World) RemoveFaction(e Entity) {
	if w == nil {
		return
	}
	w.Factions().Remove(e.ID)
}

// SetTarget attaches a target component.
func (w *World) SetTarget(e Entity, t *components.Target) {
	if w == nil || t == nil {
		return
	}
	w.Targets().Set(e.ID, t)
}

// GetTarget returns a target component.
func (w *World) GetTarget(e Entity) *components.Target {
	if w == nil {
		return nil
	}
	if t, ok := w.Targets().Get(e.ID).(*components.Target); ok {
		return t
	}
	return nil
}

// SetForceCommand attaches a force command component.
func (w *World) SetForceCommand(e Entity, f *components.ForceCommand) {
	if w == nil || f == nil {
		return
	}
	w.ForceCommands().Set(e.ID, f)
}

// GetForceCommand returns a force command component.
func (w *World) GetForceCommand(e Entity) *components.ForceCommand {
	if w == nil {
		return nil
	}
	if f, ok := w.ForceCommands().Get(e.ID).(*components.ForceCommand); ok {
		return f
	}
	return nil
}

// SetSpaceship attaches the spaceship marker.
func (w *World) SetSpaceship(e Entity) {
	if w == nil {
		return
	}
	w.Spaceships().Set(e.ID, &components.Spaceship{})
}

// IsSpaceship reports whether the entity carries the spaceship marker.
func (w *World) IsSpaceship(e Entity) bool {
	if w == nil {
		return false
	}
	return w.Spaceships().Has(e.ID)
}

// SetPhysicsBody attaches a physics body component.
func (w *World) SetPhysicsBody(e Entity, b *components.PhysicsBody) {
	if w == nil || b == nil {
		return
	}
	w.PhysicsBodies().Set(e.ID, b)
}

// GetPhysicsBody returns a physics body component.
func (w *World) GetPhysicsBody(e Entity) *components.PhysicsBody {
	if w == nil {
		return nil
	}
	if b, ok := w.PhysicsBodies().Get(e.ID).(*components.PhysicsBody); ok {
		return b
	}
	return nil
}

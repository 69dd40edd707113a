package ecs

// System updates a world each tick.
type System interface {
	Update(w *World)
}

// World owns entities, components, and system order.
type World struct {
	entities entityStore
	systems  []System
	events   EventQueue

	transforms *SparseSet
	factions   *SparseSet
	targets    *SparseSet
	forces     *SparseSet
	ships      *SparseSet
	physBodies *SparseSet

	physicsWorld *PhysicsWorld
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{}
}

// CreateEntity allocates a new entity.
func (w *World) CreateEntity() Entity {
	return w.entities.create()
}

// DestroyEntity marks an entity as dead and drops its components. The
// physics body, if any, is removed from the physics world first.
func (w *World) DestroyEntity(e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	if body := w.GetPhysicsBody(e); body != nil && w.physicsWorld != nil {
		w.physicsWorld.RemoveBody(body)
	}
	w.Transforms().Remove(e.ID)
	w.Factions().Remove(e.ID)
	w.Targets().Remove(e.ID)
	w.ForceCommands().Remove(e.ID)
	w.Spaceships().Remove(e.ID)
	w.PhysicsBodies().Remove(e.ID)
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is valid.
func (w *World) IsAlive(e Entity) bool {
	return w.entities.isAlive(e)
}

// AddSystem appends a system to the update order.
func (w *World) AddSystem(s System) {
	if s == nil {
		return
	}
	w.systems = append(w.systems, s)
}

// Update runs all systems once in registration order.
func (w *World) Update() {
	if w == nil {
		return
	}
	for _, s := range w.systems {
		if s != nil {
			s.Update(w)
		}
	}
	w.events.flush()
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// SetPhysicsWorld attaches a physics world to this ECS world.
func (w *World) SetPhysicsWorld(pw *PhysicsWorld) {
	if w == nil {
		return
	}
	w.physicsWorld = pw
}

// PhysicsWorld returns the attached physics world, if any.
func (w *World) PhysicsWorld() *PhysicsWorld {
	if w == nil {
		return nil
	}
	return w.physicsWorld
}

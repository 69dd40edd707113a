package ecs

import (
	"math"

	"github.com/jakecoffman/cp"

	"github.com/bowker/gravitywar/ecs/components"
)

// Ship body defaults. New ships spawn with a fixed collision box, some
// restitution, no gravity, and damped linear/angular motion.
const (
	shipMass       = 1.0
	shipWidth      = 20.0
	shipHeight     = 60.0
	shipElasticity = 0.7

	shipLinearDamping  = 1.0
	shipAngularDamping = 2.0
)

// PhysicsWorld owns the Chipmunk space the ships live in. The space
// has no gravity; ships move only under steering forces and damping.
type PhysicsWorld struct {
	space *cp.Space
}

// NewPhysicsWorld creates an empty zero-gravity space.
func NewPhysicsWorld() *PhysicsWorld {
	space := cp.NewSpace()
	space.Iterations = 10
	space.SetGravity(cp.Vector{})
	return &PhysicsWorld{space: space}
}

// Space returns the underlying Chipmunk space.
func (pw *PhysicsWorld) Space() *cp.Space {
	if pw == nil {
		return nil
	}
	return pw.space
}

// NewShipBody creates a dynamic ship body at a position and
// orientation, with the default collision shape and damping.
func (pw *PhysicsWorld) NewShipBody(x, y, angle float64) *components.PhysicsBody {
	if pw == nil || pw.space == nil {
		return nil
	}

	moment := cp.MomentForBox(shipMass, shipWidth, shipHeight)
	body := cp.NewBody(shipMass, moment)
	body.SetPosition(cp.Vector{X: x, Y: y})
	body.SetAngle(angle)
	// Chipmunk damping is space-global; ships need their own linear
	// and angular damping, so integrate velocity ourselves.
	body.SetVelocityUpdateFunc(shipVelocityUpdate)

	shape := cp.NewBox(body, shipWidth, shipHeight, 0)
	shape.SetElasticity(shipElasticity)
	shape.SetSensor(true)

	pw.space.AddBody(body)
	pw.space.AddShape(shape)

	return &components.PhysicsBody{Body: body, Shape: shape}
}

// RemoveBody detaches a ship body and its shape from the space.
func (pw *PhysicsWorld) RemoveBody(b *components.PhysicsBody) {
	if pw == nil || pw.space == nil || b == nil {
		return
	}
	if b.Shape != nil {
		pw.space.RemoveShape(b.Shape)
	}
	if b.Body != nil {
		pw.space.RemoveBody(b.Body)
	}
}

// Step advances the physics simulation.
func (pw *PhysicsWorld) Step(dt float64) {
	if pw == nil || pw.space == nil {
		return
	}
	pw.space.Step(dt)
}

func shipVelocityUpdate(body *cp.Body, gravity cp.Vector, damping float64, dt float64) {
	cp.BodyUpdateVelocity(body, cp.Vector{}, math.Exp(-shipLinearDamping*dt), dt)
	// BodyUpdateVelocity already applied the linear factor to angular
	// velocity; multiply in the remainder.
	body.SetAngularVelocity(body.AngularVelocity() * math.Exp((shipLinearDamping-shipAngularDamping)*dt))
}

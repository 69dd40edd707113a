package components

import "github.com/jakecoffman/cp"

// PhysicsBody stores the Chipmunk body and shape for an entity.
type PhysicsBody struct {
	Body  *cp.Body
	Shape *cp.Shape
}

package components

// Transform stores position and orientation in world space. Angle 0
// faces +Y; positive angles rotate counterclockwise.
type Transform struct {
	X, Y  float64
	Angle float64
}

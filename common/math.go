package common

import "math"

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Heading returns the unit forward vector for an orientation angle.
// Angle 0 faces +Y; positive angles rotate counterclockwise.
func Heading(angle float64) (float64, float64) {
	return -math.Sin(angle), math.Cos(angle)
}

// SignedAngle returns the signed angle in radians from vector a to
// vector b, in (-pi, pi]. Positive means b is counterclockwise from a.
func SignedAngle(ax, ay, bx, by float64) float64 {
	cross := ax*by - ay*bx
	dot := ax*bx + ay*by
	if cross == 0 {
		// Opposite vectors can yield a negative zero cross, which
		// atan2 maps to -pi instead of +pi.
		cross = 0
	}
	return math.Atan2(cross, dot)
}

// Dist returns the Euclidean distance between two points.
func Dist(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

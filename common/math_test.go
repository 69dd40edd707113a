package common

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestClamp(t *testing.T) {
	cases := []struct {
		name      string
		v, lo, hi float64
		want      float64
	}{
		{"inside", 0.5, -1, 1, 0.5},
		{"below", -2, -1, 1, -1},
		{"above", 3, -1, 1, 1},
		{"at_bound", 1, -1, 1, 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Clamp(c.v, c.lo, c.hi); got != c.want {
				t.Fatalf("Clamp(%v, %v, %v) = %v, want %v", c.v, c.lo, c.hi, got, c.want)
			}
		})
	}
}

func TestHeading(t *testing.T) {
	cases := []struct {
		name   string
		angle  float64
		wx, wy float64
	}{
		{"zero_faces_up", 0, 0, 1},
		{"quarter_turn_ccw", math.Pi / 2, -1, 0},
		{"half_turn", math.Pi, 0, -1},
		{"quarter_turn_cw", -math.Pi / 2, 1, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			x, y := Heading(c.angle)
			if !almostEqual(x, c.wx) || !almostEqual(y, c.wy) {
				t.Fatalf("Heading(%v) = (%v, %v), want (%v, %v)", c.angle, x, y, c.wx, c.wy)
			}
		})
	}
}

func TestSignedAngle(t *testing.T) {
	cases := []struct {
		name           string
		ax, ay, bx, by float64
		want           float64
	}{
		{"aligned", 0, 1, 0, 1, 0},
		{"target_cw", 0, 1, 1, 0, -math.Pi / 2},
		{"target_ccw", 0, 1, -1, 0, math.Pi / 2},
		{"opposite", 0, 1, 0, -1, math.Pi},
		{"opposite_x", 1, 0, -1, 0, math.Pi},
		{"opposite_diagonal", 1, 1, -2, -2, math.Pi},
		{"magnitude_invariant", 0, 1, 100, 0, -math.Pi / 2},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := SignedAngle(c.ax, c.ay, c.bx, c.by)
			if !almostEqual(got, c.want) {
				t.Fatalf("SignedAngle = %v, want %v", got, c.want)
			}
		})
	}
}

func TestSignedAngleRange(t *testing.T) {
	for i := 0; i < 360; i += 7 {
		a := float64(i) * math.Pi / 180
		got := SignedAngle(0, 1, math.Cos(a), math.Sin(a))
		if got < -math.Pi || got > math.Pi {
			t.Fatalf("SignedAngle out of range at %d deg: %v", i, got)
		}
	}
}

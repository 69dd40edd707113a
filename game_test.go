package main

import "testing"

func TestWorldToScreen(t *testing.T) {
	g := &Game{camera: &Camera{}}

	t.Run("camera_center_maps_to_screen_center", func(t *testing.T) {
		x, y := g.worldToScreen(0, 0)
		if x != baseWidth/2 || y != baseHeight/2 {
			t.Fatalf("origin maps to (%v, %v), want screen center", x, y)
		}
	})

	t.Run("world_up_is_screen_up", func(t *testing.T) {
		_, y0 := g.worldToScreen(0, 0)
		_, y1 := g.worldToScreen(0, 100)
		if y1 >= y0 {
			t.Fatalf("raising world Y moved screen y from %v to %v", y0, y1)
		}
	})

	t.Run("camera_offset", func(t *testing.T) {
		g := &Game{camera: &Camera{X: 50, Y: -20}}
		x, y := g.worldToScreen(50, -20)
		if x != baseWidth/2 || y != baseHeight/2 {
			t.Fatalf("camera position maps to (%v, %v), want screen center", x, y)
		}
	})

	// A click at screen (sx, sy) with the camera at the origin spawns
	// at world (cursor - viewport/2), which must render back under the
	// pointer. The cursor cell stores bottom-origin coordinates.
	t.Run("click_round_trip", func(t *testing.T) {
		g := &Game{camera: &Camera{}}
		sx, sy := 740.0, 200.0
		cursorX, cursorY := sx, baseHeight-sy
		wx := cursorX - baseWidth/2
		wy := cursorY - baseHeight/2
		gx, gy := g.worldToScreen(wx, wy)
		if gx != sx || gy != sy {
			t.Fatalf("spawn rendered at (%v, %v), clicked (%v, %v)", gx, gy, sx, sy)
		}
	})
}

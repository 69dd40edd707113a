package main

import (
	"github.com/bowker/gravitywar/ecs"
	"github.com/bowker/gravitywar/ecs/components"
)

// Camera frames the battle by following the mean ship position.
type Camera struct {
	X, Y float64
}

// Follow recenters on the average position of all ships. With no ships
// the camera stays put.
func (c *Camera) Follow(w *ecs.World) {
	if c == nil || w == nil {
		return
	}
	ships := w.Spaceships().Entities()
	if len(ships) == 0 {
		return
	}
	var sx, sy float64
	n := 0
	for _, id := range ships {
		tr, ok := w.Transforms().Get(id).(*components.Transform)
		if !ok || tr == nil {
			continue
		}
		sx += tr.X
		sy += tr.Y
		n++
	}
	if n == 0 {
		return
	}
	c.X = sx / float64(n)
	c.Y = sy / float64(n)
}

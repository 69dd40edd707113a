package main

import (
	"image/color"
	"math/rand"
)

const (
	starCount       = 100
	starFieldSeed   = 42
	starFieldExtent = 1000.0
)

var starColor = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

// Star is a background decoration point.
type Star struct {
	X, Y float64
}

// generateStars scatters a deterministic starfield around the origin.
func generateStars() []Star {
	rng := rand.New(rand.NewSource(starFieldSeed))
	stars := make([]Star, starCount)
	for i := range stars {
		stars[i] = Star{
			X: rng.Float64()*2*starFieldExtent - starFieldExtent,
			Y: rng.Float64()*2*starFieldExtent - starFieldExtent,
		}
	}
	return stars
}

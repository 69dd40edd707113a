package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/bowker/gravitywar/ecs/components"
)

// Input polls the keyboard and mouse into a per-tick snapshot that the
// systems read. Polling happens once at tick start; the systems never
// touch the input devices.
type Input struct {
	state components.InputState
}

func NewInput() *Input {
	return &Input{}
}

// State returns the shared snapshot the systems were built around.
func (i *Input) State() *components.InputState {
	return &i.state
}

// Update refreshes the snapshot. CursorPosition already holds only the
// latest pointer position, which gives the "last event wins" policy
// for pointer moves.
func (i *Input) Update() {
	i.state.Up = ebiten.IsKeyPressed(ebiten.KeyArrowUp)
	i.state.Down = ebiten.IsKeyPressed(ebiten.KeyArrowDown)
	i.state.Left = ebiten.IsKeyPressed(ebiten.KeyArrowLeft)
	i.state.Right = ebiten.IsKeyPressed(ebiten.KeyArrowRight)

	i.state.SpawnPrimary = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	i.state.SpawnSecondary = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight)

	// CursorPosition has its origin at the top left; the world axes
	// are +Y up, so measure the cursor from the bottom edge.
	cx, cy := ebiten.CursorPosition()
	i.state.CursorX = float64(cx)
	i.state.CursorY = float64(baseHeight - cy)

	i.state.DT = 1.0 / float64(ebiten.TPS())
}

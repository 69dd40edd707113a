package main

import (
	"fmt"
	"math"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/bowker/gravitywar/config"
	"github.com/bowker/gravitywar/ecs"
	"github.com/bowker/gravitywar/ecs/systems"
	"github.com/bowker/gravitywar/scenario"
)

const (
	baseWidth  = 1280
	baseHeight = 720
)

type Game struct {
	frames int
	debug  bool

	world  *ecs.World
	input  *Input
	camera *Camera
	lines  *systems.DebugLines
	stars  []Star
	store  *config.Store

	ui     *ebitenui.UI
	tuning *tuningPanel
	showUI bool
}

func NewGame(store *config.Store, placements []scenario.Placement, debug bool) *Game {
	world := ecs.NewWorld()
	world.SetPhysicsWorld(ecs.NewPhysicsWorld())

	input := NewInput()
	lines := &systems.DebugLines{}
	index := systems.NewFactionIndex()

	world.AddSystem(systems.NewFactionIndexSystem(index))
	world.AddSystem(systems.NewTargetSystem(index))
	world.AddSystem(systems.NewSteeringSystem(store, lines))
	world.AddSystem(systems.NewDirectControlSystem(input.State()))
	world.AddSystem(systems.NewSpawnSystem(input.State(), baseWidth, baseHeight))
	world.AddSystem(systems.NewPhysicsSystem(input.State()))

	for _, p := range placements {
		systems.SpawnShip(world, p.Faction, p.X, p.Y)
	}

	ui, tuning := newTuningUI(store)

	return &Game{
		debug:  debug,
		world:  world,
		input:  input,
		camera: &Camera{},
		lines:  lines,
		stars:  generateStars(),
		store:  store,
		ui:     ui,
		tuning: tuning,
	}
}

func (g *Game) Update() error {
	g.frames++

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.showUI = !g.showUI
	}

	g.input.Update()
	if g.showUI {
		// Clicks belong to the panel while it is open.
		g.input.State().SpawnPrimary = false
		g.input.State().SpawnSecondary = false
		g.tuning.refresh()
		g.ui.Update()
	}

	g.world.Update()
	g.camera.Follow(g.world)
	return nil
}

// worldToScreen maps world coordinates (+Y up) to screen coordinates
// (+Y down), centered on the camera.
func (g *Game) worldToScreen(wx, wy float64) (float64, float64) {
	return wx - g.camera.X + baseWidth/2, baseHeight/2 - (wy - g.camera.Y)
}

func (g *Game) Draw(screen *ebiten.Image) {
	for _, s := range g.stars {
		sx, sy := g.worldToScreen(s.X, s.Y)
		vector.DrawFilledCircle(screen, float32(sx), float32(sy), 1, starColor, false)
	}

	g.drawShips(screen)

	if g.debug {
		for _, l := range g.lines.Lines() {
			x1, y1 := g.worldToScreen(l.X1, l.Y1)
			x2, y2 := g.worldToScreen(l.X2, l.Y2)
			vector.StrokeLine(screen, float32(x1), float32(y1), float32(x2), float32(y2), 1, l.Color, true)
		}
	}

	ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f  Ships: %d  [Tab] tuning  [LMB/RMB] spawn", ebiten.ActualFPS(), g.world.Spaceships().Len()))

	if g.showUI {
		g.ui.Draw(screen)
	}
}

func (g *Game) drawShips(screen *ebiten.Image) {
	ships := g.world.Spaceships()
	for _, id := range ships.Entities() {
		e := ecs.Entity{ID: id}
		tr := g.world.GetTransform(e)
		f := g.world.GetFaction(e)
		if tr == nil || f == nil {
			continue
		}
		clr := f.Color()

		// Triangle outline: nose forward, two rear corners.
		local := [3][2]float64{{0, 30}, {-10, -30}, {10, -30}}
		sin, cos := math.Sin(tr.Angle), math.Cos(tr.Angle)
		var px, py [3]float64
		for i, p := range local {
			px[i], py[i] = g.worldToScreen(tr.X+p[0]*cos-p[1]*sin, tr.Y+p[0]*sin+p[1]*cos)
		}
		for i := 0; i < 3; i++ {
			j := (i + 1) % 3
			vector.StrokeLine(screen, float32(px[i]), float32(py[i]), float32(px[j]), float32(py[j]), 2, clr, true)
		}
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return baseWidth, baseHeight
}

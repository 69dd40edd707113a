package main

import (
	"fmt"
	"image/color"

	"golang.org/x/image/font/basicfont"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/bowker/gravitywar/config"
)

// tuningParam binds one config field to a UI row.
type tuningParam struct {
	name string
	step float64
	get  func(c config.Config) float64
	set  func(c *config.Config, v float64)
}

var tuningParams = []tuningParam{
	{
		name: "rotation_force",
		step: 0.005,
		get:  func(c config.Config) float64 { return c.RotationForce },
		set:  func(c *config.Config, v float64) { c.RotationForce = v },
	},
	{
		name: "propulsion_force",
		step: 5,
		get:  func(c config.Config) float64 { return c.PropulsionForce },
		set:  func(c *config.Config, v float64) { c.PropulsionForce = v },
	},
	{
		name: "aim_distance",
		step: 10,
		get:  func(c config.Config) float64 { return c.AimDistance },
		set:  func(c *config.Config, v float64) { c.AimDistance = v },
	},
	{
		name: "rotation_max",
		step: 0.005,
		get:  func(c config.Config) float64 { return c.RotationMax },
		set:  func(c *config.Config, v float64) { c.RotationMax = v },
	},
}

type tuningPanel struct {
	store  *config.Store
	labels []*widget.Text
}

// refresh syncs the row labels with the store, picking up both UI
// edits and file-watcher reloads.
func (p *tuningPanel) refresh() {
	if p == nil || p.store == nil {
		return
	}
	cfg := p.store.Get()
	for i, param := range tuningParams {
		if i < len(p.labels) {
			p.labels[i].Label = fmt.Sprintf("%-17s %.3f", param.name, param.get(cfg))
		}
	}
}

// newTuningUI builds the tuning panel: one row per parameter with -/+
// buttons mutating the shared config store.
func newTuningUI(store *config.Store) (*ebitenui.UI, *tuningPanel) {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 200})
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255})

	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace

	btnTextColor := &widget.ButtonTextColor{Idle: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}}
	textColor := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(8),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 16, Bottom: 16, Left: 16, Right: 16}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)

	title := widget.NewText(
		widget.TextOpts.Text("Tuning", &face, textColor),
	)
	panel.AddChild(title)

	tuning := &tuningPanel{store: store}

	for _, param := range tuningParams {
		param := param

		row := widget.NewContainer(
			widget.ContainerOpts.Layout(widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
				widget.RowLayoutOpts.Spacing(6),
			)),
		)

		minus := widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnImg}),
			widget.ButtonOpts.Text(" - ", &face, btnTextColor),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				store.Update(func(c *config.Config) {
					param.set(c, param.get(*c)-param.step)
				})
			}),
		)
		plus := widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnImg}),
			widget.ButtonOpts.Text(" + ", &face, btnTextColor),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				store.Update(func(c *config.Config) {
					param.set(c, param.get(*c)+param.step)
				})
			}),
		)

		label := widget.NewText(
			widget.TextOpts.Text(param.name, &face, textColor),
			widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
		)
		tuning.labels = append(tuning.labels, label)

		row.AddChild(minus)
		row.AddChild(plus)
		row.AddChild(label)
		panel.AddChild(row)
	}

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	tuning.refresh()
	return &ebitenui.UI{Container: root}, tuning
}

package components

import "image/color"

// Spaceship marks an entity as a steerable ship.
type Spaceship struct{}

// Faction attaches a side identifier to an entity. Ships only target
// entities of other factions. Immutable for the entity's lifetime.
type Faction struct {
	ID uint32
}

var factionPalette = []color.RGBA{
	{R: 0x00, G: 0x00, B: 0xff, A: 0xff}, // blue
	{R: 0xff, G: 0x00, B: 0x00, A: 0xff}, // red
	{R: 0x00, G: 0xff, B: 0x00, A: 0xff}, // green
	{R: 0xff, G: 0xff, B: 0x00, A: 0xff}, // yellow
	{R: 0x80, G: 0x00, B: 0x80, A: 0xff}, // purple
}

// Color returns the display color for the faction. Ids outside the
// palette wrap around, so the lookup is total.
func (f Faction) Color() color.RGBA {
	return factionPalette[int(f.ID)%len(factionPalette)]
}

// PaletteSize returns the number of distinct faction colors.
func PaletteSize() int {
	return len(factionPalette)
}

// Target caches the nearest hostile position for a ship. It is
// recomputed every tick; when no hostile exists the previous value is
// kept, so Acquired distinguishes "never resolved" from "stale".
type Target struct {
	X, Y     float64
	Distance float64
	Acquired bool
}

// ForceCommand is the steering output for one tick, consumed by the
// physics integrator.
type ForceCommand struct {
	Torque float64
	FX, FY float64
}

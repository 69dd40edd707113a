package components

// InputState is the per-tick input snapshot. It is filled once before
// system dispatch and read-only during the tick. CursorX/CursorY hold
// the latest pointer position only, in window coordinates with the
// origin at the bottom left (+Y up, matching the world axes); earlier
// moves within a frame are dropped (last event wins).
type InputState struct {
	Up, Down, Left, Right bool

	SpawnPrimary   bool
	SpawnSecondary bool
	CursorX        float64
	CursorY        float64

	DT float64
}

// Package scenario runs tengo scripts that place the initial fleet.
// A script calls the host-provided spawn(faction, x, y) for each ship.
package scenario

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

//go:embed default.tengo
var defaultScript []byte

// Placement is one scripted ship spawn.
type Placement struct {
	Faction uint32
	X, Y    float64
}

// Default runs the embedded scenario script.
func Default() ([]Placement, error) {
	return Run(defaultScript)
}

// Load reads and runs a scenario script from disk.
func Load(path string) ([]Placement, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: read %s: %w", path, err)
	}
	placements, err := Run(src)
	if err != nil {
		return nil, fmt.Errorf("scenario: run %s: %w", path, err)
	}
	return placements, nil
}

// Run executes a scenario script and collects its spawn calls in
// order.
func Run(src []byte) ([]Placement, error) {
	var placements []Placement

	script := tengo.NewScript(src)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	spawn := &tengo.UserFunction{
		Name: "spawn",
		Value: func(args ...tengo.Object) (tengo.Object, error) {
			if len(args) != 3 {
				return nil, tengo.ErrWrongNumArguments
			}
			faction, ok := tengo.ToInt64(args[0])
			if !ok || faction < 0 {
				return nil, tengo.ErrInvalidArgumentType{Name: "faction", Expected: "int", Found: args[0].TypeName()}
			}
			x, ok := tengo.ToFloat64(args[1])
			if !ok {
				return nil, tengo.ErrInvalidArgumentType{Name: "x", Expected: "float", Found: args[1].TypeName()}
			}
			y, ok := tengo.ToFloat64(args[2])
			if !ok {
				return nil, tengo.ErrInvalidArgumentType{Name: "y", Expected: "float", Found: args[2].TypeName()}
			}
			placements = append(placements, Placement{Faction: uint32(faction), X: x, Y: y})
			return tengo.UndefinedValue, nil
		},
	}
	if err := script.Add("spawn", spawn); err != nil {
		return nil, fmt.Errorf("scenario: bind spawn: %w", err)
	}

	if _, err := script.Run(); err != nil {
		return nil, fmt.Errorf("scenario: %w", err)
	}
	return placements, nil
}

package scenario

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRunCollectsSpawnsInOrder(t *testing.T) {
	src := `
spawn(1, -100.0, 0.0)
spawn(2, 100.0, 0.0)
spawn(2, 100.0, 50.0)
`
	got, err := Run([]byte(src))
	if err != nil {
		t.Fatal(err)
	}
	want := []Placement{
		{Faction: 1, X: -100, Y: 0},
		{Faction: 2, X: 100, Y: 0},
		{Faction: 2, X: 100, Y: 50},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d placements, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("placement %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestRunScriptLogic(t *testing.T) {
	src := `
for i := 0; i < 4; i++ {
	spawn(1, float(i) * 10.0, -50.0)
}
`
	got, err := Run([]byte(src))
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 4 {
		t.Fatalf("got %d placements, want 4", len(got))
	}
	for i, p := range got {
		if p.X != float64(i)*10 {
			t.Errorf("placement %d X = %v, want %v", i, p.X, float64(i)*10)
		}
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{name: "syntax_error", src: `spawn(1,`},
		{name: "wrong_arg_count", src: `spawn(1, 2.0)`},
		{name: "bad_faction_type", src: `spawn("blue", 0.0, 0.0)`},
		{name: "negative_faction", src: `spawn(-1, 0.0, 0.0)`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Run([]byte(tt.src)); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fleet.tengo")
	if err := os.WriteFile(path, []byte(`spawn(3, 1.0, 2.0)`), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0] != (Placement{Faction: 3, X: 1, Y: 2}) {
		t.Errorf("Load() = %+v", got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.tengo")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestDefaultScenario(t *testing.T) {
	got, err := Default()
	if err != nil {
		t.Fatal(err)
	}
	if len(got) == 0 {
		t.Fatal("default scenario spawned no ships")
	}
	factions := map[uint32]int{}
	for _, p := range got {
		factions[p.Faction]++
	}
	if len(factions) < 2 {
		t.Errorf("default scenario has %d factions, want at least 2 so targeting has work to do", len(factions))
	}
}

package systems

import (
	"math"
	"math/rand"
	"testing"

	"github.com/bowker/gravitywar/common"
	"github.com/bowker/gravitywar/config"
	"github.com/bowker/gravitywar/ecs"
)

func newTargetingWorld() (*ecs.World, *FactionIndexSystem, *TargetSystem) {
	w := ecs.NewWorld()
	ix := NewFactionIndex()
	return w, NewFactionIndexSystem(ix), NewTargetSystem(ix)
}

func addShip(w *ecs.World, faction uint32, x, y float64) ecs.Entity {
	return SpawnShip(w, faction, x, y)
}

// Each entity's resolved target must be the minimum-distance entity
// strictly outside its own faction, over randomized populations.
func TestNearestTargetCorrectness(t *testing.T) {
	rng := rand.New(rand.NewSource(99))

	for trial := 0; trial < 20; trial++ {
		w, ixSys, tgtSys := newTargetingWorld()

		n := 2 + rng.Intn(40)
		type ship struct {
			e       ecs.Entity
			faction uint32
			x, y    float64
		}
		ships := make([]ship, 0, n)
		for i := 0; i < n; i++ {
			f := uint32(1 + rng.Intn(3))
			x := rng.Float64()*2000 - 1000
			y := rng.Float64()*2000 - 1000
			ships = append(ships, ship{e: addShip(w, f, x, y), faction: f, x: x, y: y})
		}

		ixSys.Update(w)
		tgtSys.Update(w)

		for _, s := range ships {
			// Brute-force expectation.
			best := math.Inf(1)
			found := false
			for _, o := range ships {
				if o.faction == s.faction {
					continue
				}
				if d := common.Dist(s.x, s.y, o.x, o.y); d < best {
					best = d
					found = true
				}
			}

			target := w.GetTarget(s.e)
			if target == nil {
				t.Fatalf("trial %d: ship %v has no target component", trial, s.e)
			}
			if !found {
				if target.Acquired {
					t.Fatalf("trial %d: ship %v acquired a target with no hostiles", trial, s.e)
				}
				continue
			}
			if !target.Acquired {
				t.Fatalf("trial %d: ship %v did not acquire a target", trial, s.e)
			}
			if math.Abs(target.Distance-best) > 1e-9 {
				t.Fatalf("trial %d: ship %v target distance %v, want %v", trial, s.e, target.Distance, best)
			}
			if d := common.Dist(s.x, s.y, target.X, target.Y); math.Abs(d-best) > 1e-9 {
				t.Fatalf("trial %d: ship %v target position inconsistent with distance", trial, s.e)
			}
		}
	}
}

// An entity whose faction is the only one present keeps its previous
// target value unchanged.
func TestNoTargetStability(t *testing.T) {
	w, ixSys, tgtSys := newTargetingWorld()

	a := addShip(w, 1, 0, 0)
	b := addShip(w, 2, 300, 400)
	ixSys.Update(w)
	tgtSys.Update(w)

	target := w.GetTarget(a)
	if !target.Acquired || target.Distance != 500 {
		t.Fatalf("expected acquired target at distance 500, got %+v", target)
	}

	// The hostile disappears; the cached target must survive.
	w.DestroyEntity(b)
	ixSys.Update(w)
	tgtSys.Update(w)

	after := w.GetTarget(a)
	if !after.Acquired || after.X != 300 || after.Y != 400 || after.Distance != 500 {
		t.Fatalf("target changed after hostiles vanished: %+v", after)
	}
}

func TestSingleFactionNeverAcquires(t *testing.T) {
	w, ixSys, tgtSys := newTargetingWorld()
	a := addShip(w, 1, 0, 0)
	addShip(w, 1, 10, 10)

	for i := 0; i < 3; i++ {
		ixSys.Update(w)
		tgtSys.Update(w)
	}
	if w.GetTarget(a).Acquired {
		t.Fatal("same-faction entities must not be targets")
	}
}

// Two ships, factions 1 and 2, at (0,0) and (100,0), both facing +Y.
// One tick: the first resolves target (100,0) at distance 100, gets a
// clamped torque turning toward +X, and full thrust along +Y.
func TestEndToEndScenario(t *testing.T) {
	w, ixSys, tgtSys := newTargetingWorld()
	w.SetPhysicsWorld(ecs.NewPhysicsWorld())

	cfg := config.Default()
	store := config.NewStore(cfg)
	steer := NewSteeringSystem(store, &DebugLines{})

	a := addShip(w, 1, 0, 0)
	addShip(w, 2, 100, 0)

	ixSys.Update(w)
	tgtSys.Update(w)
	steer.Update(w)

	target := w.GetTarget(a)
	if target.X != 100 || target.Y != 0 || target.Distance != 100 {
		t.Fatalf("target = %+v, want (100,0) at distance 100", target)
	}

	fc := w.GetForceCommand(a)
	if fc.Torque >= 0 {
		t.Fatalf("torque %v should be negative (turn clockwise toward +X)", fc.Torque)
	}
	wantTorque := -math.Pi / 2 * cfg.RotationForce
	if wantTorque < -cfg.RotationMax {
		wantTorque = -cfg.RotationMax
	}
	if math.Abs(fc.Torque-wantTorque) > 1e-9 {
		t.Fatalf("torque = %v, want %v", fc.Torque, wantTorque)
	}

	// Thrust is along the current heading (+Y), not toward the target.
	if math.Abs(fc.FX) > 1e-9 || math.Abs(fc.FY-cfg.PropulsionForce) > 1e-9 {
		t.Fatalf("force = (%v, %v), want (0, %v)", fc.FX, fc.FY, cfg.PropulsionForce)
	}

	// One debug line per ship, colored by faction.
	if got := len(steer.Lines.Lines()); got != 2 {
		t.Fatalf("debug lines = %d, want 2", got)
	}
}

func TestDebugLineFollowsHeading(t *testing.T) {
	w, ixSys, tgtSys := newTargetingWorld()
	store := config.NewStore(config.Default())
	steer := NewSteeringSystem(store, &DebugLines{})

	a := addShip(w, 1, 10, 20)
	addShip(w, 2, 500, 0)
	ixSys.Update(w)
	tgtSys.Update(w)
	steer.Update(w)

	var line *DebugLine
	for i := range steer.Lines.Lines() {
		l := &steer.Lines.Lines()[i]
		if l.X1 == 10 && l.Y1 == 20 {
			line = l
		}
	}
	if line == nil {
		t.Fatal("no debug line for ship a")
	}
	tr := w.GetTransform(a)
	hx, hy := common.Heading(tr.Angle)
	if math.Abs(line.X2-(10+hx*100)) > 1e-9 || math.Abs(line.Y2-(20+hy*100)) > 1e-9 {
		t.Fatalf("debug line end (%v, %v) not along heading", line.X2, line.Y2)
	}
	fa := w.GetFaction(a)
	if line.Color != fa.Color() {
		t.Fatal("debug line not colored by faction")
	}
}

// Headless runs the arena simulation without a window: random fleets,
// a fixed number of ticks, and a battle summary on stdout. Useful for
// tuning experiments and profiling the targeting scan.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"sort"

	"github.com/bowker/gravitywar/config"
	"github.com/bowker/gravitywar/ecs"
	"github.com/bowker/gravitywar/ecs/components"
	"github.com/bowker/gravitywar/ecs/systems"
)

func main() {
	ticks := flag.Int("ticks", 600, "simulation ticks to run")
	ships := flag.Int("ships", 20, "ships per faction")
	factions := flag.Int("factions", 2, "number of factions")
	seed := flag.Int64("seed", 1, "placement seed")
	configPath := flag.String("config", "", "yaml config file with steering tunables")
	flag.Parse()

	if *factions < 2 {
		log.Fatal("headless: need at least 2 factions for any targeting to happen")
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatal(err)
		}
		cfg = loaded
	}
	store := config.NewStore(cfg)

	world := ecs.NewWorld()
	world.SetPhysicsWorld(ecs.NewPhysicsWorld())

	input := &components.InputState{DT: 1.0 / 60.0}
	index := systems.NewFactionIndex()

	world.AddSystem(systems.NewFactionIndexSystem(index))
	world.AddSystem(systems.NewTargetSystem(index))
	world.AddSystem(systems.NewSteeringSystem(store, nil))
	world.AddSystem(systems.NewPhysicsSystem(input))

	rng := rand.New(rand.NewSource(*seed))
	for f := 1; f <= *factions; f++ {
		for i := 0; i < *ships; i++ {
			x := rng.Float64()*2000 - 1000
			y := rng.Float64()*2000 - 1000
			systems.SpawnShip(world, uint32(f), x, y)
		}
	}

	for i := 0; i < *ticks; i++ {
		world.Update()
	}

	report(world)
}

func report(w *ecs.World) {
	groups := systems.GroupByFaction(w)

	ids := make([]uint32, 0, len(groups))
	for f := range groups {
		ids = append(ids, f)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, f := range ids {
		members := groups[f]
		var sum float64
		n := 0
		for _, id := range members {
			t, ok := w.Targets().Get(id).(*components.Target)
			if !ok || t == nil || !t.Acquired {
				continue
			}
			sum += t.Distance
			n++
		}
		mean := 0.0
		if n > 0 {
			mean = sum / float64(n)
		}
		fmt.Printf("faction %d: %d ships, mean target distance %.1f\n", f, len(members), mean)
	}
}

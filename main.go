package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/bowker/gravitywar/config"
	"github.com/bowker/gravitywar/scenario"
)

func main() {
	configPath := flag.String("config", "", "yaml config file with steering tunables (hot-reloaded)")
	scenarioPath := flag.String("scenario", "", "tengo scenario script for the initial fleet")
	debug := flag.Bool("debug", false, "draw heading debug lines")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatal(err)
		}
		cfg = loaded
	}
	store := config.NewStore(cfg)

	if *configPath != "" {
		watcher, err := config.Watch(*configPath, store)
		if err != nil {
			log.Printf("config: watch disabled: %v", err)
		} else {
			defer watcher.Close()
		}
	}

	placements, err := loadScenario(*scenarioPath)
	if err != nil {
		log.Fatal(err)
	}

	game := NewGame(store, placements, *debug)

	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("Gravity War")

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}

func loadScenario(path string) ([]scenario.Placement, error) {
	if path == "" {
		return scenario.Default()
	}
	return scenario.Load(path)
}

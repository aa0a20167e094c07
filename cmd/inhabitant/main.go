package main

import (
	"flag"
	"log"

	"github.com/CB2Moon/InhabitantHunter/config"
	"github.com/CB2Moon/InhabitantHunter/saves"
	"github.com/CB2Moon/InhabitantHunter/scenario"
	"github.com/CB2Moon/InhabitantHunter/viewer"
	"github.com/CB2Moon/InhabitantHunter/worldgen"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Configuration file")
	savePath := flag.String("scenario", "", "Scenario save file to open")
	slot := flag.String("slot", "", "Storage slot to open")
	name := flag.String("name", "", "Generate a fresh scenario with this name")
	seed := flag.Int("seed", 0, "Seed for generated scenarios")
	list := flag.Bool("list", false, "List save files in the saves directory and exit")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if *list {
		entries, err := saves.ScanDir(cfg.SavesDir)
		if err != nil {
			log.Fatalf("Failed to scan saves: %v", err)
		}
		if len(entries) == 0 {
			log.Printf("No save files in %s", cfg.SavesDir)
			return
		}
		for _, e := range entries {
			log.Printf("%s\t%s", e.Name, e.Path)
		}
		return
	}

	s, err := openScenario(cfg, *savePath, *slot, *name, *seed)
	if err != nil {
		log.Fatalf("Failed to open scenario: %v", err)
	}

	log.Printf("Loaded scenario: %s (%dx%d, %d entities)",
		s.Name(),
		s.Grid().Width(),
		s.Grid().Height(),
		len(s.Entities()))

	if err := viewer.Run(s, cfg.Window.TileSize, cfg.Window.Title); err != nil {
		log.Fatal(err)
	}
}

// openScenario resolves the scenario to play: an explicit save file wins,
// then a storage slot, then a freshly generated scenario. With no source
// given, the first save file in the saves directory is opened.
func openScenario(cfg *config.Config, savePath, slot, name string, seed int) (*scenario.Scenario, error) {
	switch {
	case savePath != "":
		return saves.ReadFile(savePath)
	case slot != "":
		store, err := saves.NewStore("inhabitant_hunter")
		if err != nil {
			return nil, err
		}
		return store.Load(slot)
	case name != "":
		return worldgen.NewGenerator(cfg.GeneratorConfigFor(name, seed)).Generate()
	}

	entries, err := saves.ScanDir(cfg.SavesDir)
	if err != nil {
		return nil, err
	}
	if len(entries) > 0 {
		log.Printf("Opening %s", entries[0].Path)
		return saves.ReadFile(entries[0].Path)
	}

	log.Printf("No saves found, generating a scenario with seed %d", seed)
	return worldgen.NewGenerator(cfg.GeneratorConfigFor("Generated Expedition", seed)).Generate()
}

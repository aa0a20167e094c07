// Command scenariogen generates a scenario save file from the configured
// generation defaults.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/CB2Moon/InhabitantHunter/config"
	"github.com/CB2Moon/InhabitantHunter/saves"
	"github.com/CB2Moon/InhabitantHunter/worldgen"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Configuration file")
	name := flag.String("name", "Generated Expedition", "Scenario name")
	seed := flag.Int("seed", 0, "Random seed")
	out := flag.String("out", "", "Output file (default: <saves dir>/<name>.scenario)")
	stdout := flag.Bool("stdout", false, "Print the encoded scenario instead of writing a file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	s, err := worldgen.NewGenerator(cfg.GeneratorConfigFor(*name, *seed)).Generate()
	if err != nil {
		log.Fatalf("Failed to generate scenario: %v", err)
	}

	if *stdout {
		fmt.Fprintln(os.Stdout, s.Encode())
		return
	}

	path := *out
	if path == "" {
		path = filepath.Join(cfg.SavesDir, *name+saves.Extension)
	}
	if err := saves.WriteFile(path, s); err != nil {
		log.Fatalf("Failed to write scenario: %v", err)
	}
	log.Printf("Wrote %s (%dx%d, seed %d, %d entities)",
		path,
		s.Grid().Width(),
		s.Grid().Height(),
		s.Seed(),
		len(s.Entities()))
}

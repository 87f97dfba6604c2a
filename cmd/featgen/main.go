package main

import (
	"flag"
	"fmt"
	"os"

	"dprsim/cmd/featgen/engine"
)

func main() {
	profile := flag.String("profile", "typical", "Profile to generate: typical, favorable, stressed, remote")
	outDir := flag.String("out", "./.fixtures", "Output directory for feature files")
	count := flag.Int("count", 20, "Number of feature vectors to generate")
	seed := flag.Int64("seed", 42, "Deterministic random seed")
	flag.Parse()

	cfg := engine.GeneratorConfig{
		Profile: *profile,
		Count:   *count,
		Seed:    *seed,
	}

	fmt.Printf("Generating profile '%s' (Count: %d, Seed: %d) to %s...\n", cfg.Profile, cfg.Count, cfg.Seed, *outDir)

	vectors := engine.Generate(cfg)

	if err := engine.Save(*outDir, cfg.Profile, vectors); err != nil {
		fmt.Printf("Failed to save feature files: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Done.")
}

package config

import (
	"os"
	"strconv"
)

type Config struct {
	CatalogPath string // YAML catalog document (prizes + layouts)
	SimRounds   int    // Monte Carlo rounds per layout; 0 disables simulation
	Seed        uint64 // seed for deterministic simulation draws
	Verbose     bool   // enable debug-level diagnostics
}

func Load() *Config {
	catalogPath := os.Getenv("CATALOG_PATH")
	if catalogPath == "" {
		catalogPath = "catalog.yaml"
	}
	rounds := 0
	if r := os.Getenv("SIM_ROUNDS"); r != "" {
		if v, err := strconv.Atoi(r); err == nil && v > 0 {
			rounds = v
		}
	}
	var seed uint64 = 1
	if s := os.Getenv("SIM_SEED"); s != "" {
		if v, err := strconv.ParseUint(s, 10, 64); err == nil {
			seed = v
		}
	}
	verbose := os.Getenv("VERBOSE") == "1" || os.Getenv("VERBOSE") == "true"
	return &Config{
		CatalogPath: catalogPath,
		SimRounds:   rounds,
		Seed:        seed,
		Verbose:     verbose,
	}
}

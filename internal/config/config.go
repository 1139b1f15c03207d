package config

import (
	"github.com/BurntSushi/toml"

	"github.com/solverkit/allocsolver/alloc"
	"github.com/solverkit/allocsolver/annealing"
	"github.com/solverkit/allocsolver/astar"
	"github.com/solverkit/allocsolver/greedy"
	"github.com/solverkit/allocsolver/router"
)

// Config is the on-disk shape of allocsolver's settings file.
type Config struct {
	Floors map[string]int `toml:"floors"`
	Step   int            `toml:"step"`

	AstarMaxIterations  int `toml:"astar_max_iterations"`
	GreedyMaxIterations int `toml:"greedy_max_iterations"`
	AnnealingSteps      int `toml:"annealing_steps"`

	AnnealingSeed int64 `toml:"annealing_seed"`

	ServerAddr   string `toml:"server_addr"`
	ScheduleCron string `toml:"schedule_cron"`
	SnapshotPath string `toml:"snapshot_path"`
}

// Default returns the reference configuration: default floors, a 50,000
// step, every engine's own defaults, and a snapshot-based schedule running
// once a day.
func Default() Config {
	return Config{
		Floors:              alloc.DefaultFloors().ToState().ToMap(),
		Step:                50_000,
		AstarMaxIterations:  astar.DefaultMaxIterations,
		GreedyMaxIterations: greedy.DefaultMaxIterations,
		AnnealingSteps:      annealing.DefaultSteps,
		ServerAddr:          ":8080",
		ScheduleCron:        "@daily",
		SnapshotPath:        "allocsolver-snapshot.json",
	}
}

// Load reads and decodes a TOML settings file at path, starting from
// Default() so a partial file only overrides what it sets.
func Load(path string) (Config, error) {
	cfg := Default()
	_, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// AllocFloors converts the configured floor map into alloc.Floors.
func (c Config) AllocFloors() (alloc.Floors, error) {
	return alloc.FloorsFromMap(c.Floors)
}

// RouterOptions builds router.Options from the configured iteration/step
// overrides, leaving anything unset at zero to fall back to each engine's
// own default inside its own Solve call.
func (c Config) RouterOptions() router.Options {
	return router.Options{
		Astar:     astar.Options{MaxIterations: c.AstarMaxIterations},
		Greedy:    greedy.Options{MaxIterations: c.GreedyMaxIterations},
		Annealing: annealing.Options{Steps: c.AnnealingSteps, Seed: c.AnnealingSeed},
	}
}

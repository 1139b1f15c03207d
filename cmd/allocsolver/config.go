package main

import "github.com/solverkit/allocsolver/internal/config"

// loadConfig returns config.Default() when no --config file was given,
// otherwise the decoded file layered over the defaults.
func loadConfig() (config.Config, error) {
	if configPath == "" {
		return config.Default(), nil
	}
	return config.Load(configPath)
}

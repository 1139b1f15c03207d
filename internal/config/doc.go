// Package config loads the ambient settings for cmd/allocsolver from a TOML
// file: default floors, step size, and engine iteration/step overrides.
// None of it is read by the solver core packages (alloc through router),
// which always take their inputs by value from the caller; config only
// exists to build those values once at process startup.
//
// Grounded on NikeGunn-tutu's go.mod, which carries github.com/BurntSushi/toml
// as a real dependency for exactly this kind of settings file.
package config

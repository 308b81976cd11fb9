// Package repository implements the in-memory activity registry.
package repository

import (
	"github.com/pandacall/skills-getting-started-with-github-copilot/internal/domain/model"
)

type options struct {
	seed     []model.Activity
	seedFile string
}

func defaultOptions() *options {
	return &options{seed: DefaultSeed()}
}

// Option applies a configuration option to the Registry.
type Option func(*options)

// WithSeed replaces the built-in seed dataset.
func WithSeed(seed []model.Activity) Option {
	return func(o *options) {
		if seed != nil {
			o.seed = seed
		}
	}
}

// WithSeedFile loads the seed dataset from a YAML file instead of the
// built-in fixtures. An empty path keeps the default seed.
func WithSeedFile(path string) Option {
	return func(o *options) {
		o.seedFile = path
	}
}

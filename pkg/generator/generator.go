package generator

import (
	"context"

	"github.com/tamasfe/scaffold/pkg/registry"
	"github.com/tamasfe/scaffold/pkg/render"
)

// Generator maps registry entries to files.
type Generator interface {
	// The name of the generator.
	Name() string

	// A short description of the generator.
	Description() string

	// DefaultOptions Returns the default options of the generator, or nil if it has none.
	DefaultOptions() interface{}

	// Validate checks the options before anything is generated.
	Validate(options interface{}) error

	// Identifiers returns the entries of the registry the generator
	// works on, in registry order.
	Identifiers(reg *registry.Registry) []string

	// Generate renders the files of a single entry. Every path
	// is rooted under the identifier.
	Generate(ctx context.Context, options interface{}, reg *registry.Registry, identifier string) ([]*render.File, error)
}

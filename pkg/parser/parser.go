package parser

import (
	"context"

	"github.com/tamasfe/scaffold/pkg/registry"
)

// Parser parses a registry document.
type Parser interface {
	// The name of the parser.
	Name() string

	// A short description of the parser.
	Description() string

	// Parse parses a registry from data.
	Parse(ctx context.Context, data []byte) (*registry.Registry, error)

	// ParseFile parses a registry from a file.
	ParseFile(ctx context.Context, path string) (*registry.Registry, error)
}

package transformer

import (
	"context"

	"github.com/tamasfe/scaffold/pkg/common"
	"github.com/tamasfe/scaffold/pkg/registry"
)

// Transformer transforms a registry
// before generation.
type Transformer interface {
	common.DescriptionMarkdown

	// The name of the transformer.
	Name() string

	// A short description of the transformer.
	Description() string

	// DefaultOptions Returns the default options of the transformer, or nil if it has none.
	DefaultOptions() interface{}

	// Transform returns a transformed copy of the registry based on options.
	Transform(ctx context.Context, options interface{}, reg *registry.Registry) (*registry.Registry, error)
}

package frontend

import (
	"context"
	"fmt"
	"strings"

	"github.com/tamasfe/scaffold/pkg/errs"
	"github.com/tamasfe/scaffold/pkg/registry"
	"github.com/tamasfe/scaffold/pkg/render"
	"github.com/tamasfe/scaffold/pkg/templates"
	"github.com/tamasfe/scaffold/pkg/util"
	"github.com/tamasfe/scaffold/pkg/util/cli"
)

// IndexOptions are options of the Index generator.
type IndexOptions struct {
	Extension   string `yaml:"extension" mapstructure:"extension" description:"File extension of the entry page"`
	PagePattern string `yaml:"pagePattern" mapstructure:"pagePattern" description:"Path of the entry page inside the entry directory, Go template with sprig functions"`
}

// MarshalYAML implements YAML Marshaler
func (o *IndexOptions) MarshalYAML() (interface{}, error) {
	return util.MarshalYAMLWithDescriptions(o)
}

// Index generates only the entry page of every use case.
type Index struct{}

// Name implements Generator
func (g *Index) Name() string {
	return "index"
}

// Description implements Generator
func (g *Index) Description() string {
	return "Generates the entry page of every use case"
}

// DefaultOptions implements Generator
func (g *Index) DefaultOptions() interface{} {
	return &IndexOptions{
		Extension:   "tsx",
		PagePattern: "pages/index.{{ .Extension }}",
	}
}

// DescriptionMarkdown implements DescriptionMarkdown
func (g *Index) DescriptionMarkdown() string {
	return describe(g.Name(),
		"This generator writes a single wallet-connect entry page for every use case of the registry, with the title of the use case.",
		g.DefaultOptions(),
		"- `<identifier>/pages/index.tsx`",
	)
}

// Options decodes raw options over the defaults.
func (g *Index) Options(raw interface{}) (*IndexOptions, error) {
	if opts, ok := raw.(*IndexOptions); ok {
		return opts, nil
	}

	opts := g.DefaultOptions().(*IndexOptions)
	if err := decodeOptions(raw, opts); err != nil {
		return nil, err
	}
	return opts, nil
}

// Validate implements Generator
func (g *Index) Validate(options interface{}) error {
	opts, err := g.Options(options)
	if err != nil {
		return err
	}

	if strings.TrimSpace(opts.Extension) == "" {
		return errs.ErrMissing("extension", g.Name())
	}

	_, err = entryPage("x", opts.PagePattern, opts.Extension)
	return err
}

// Identifiers implements Generator
func (g *Index) Identifiers(reg *registry.Registry) []string {
	return reg.UseCaseIdentifiers()
}

// Generate implements Generator
func (g *Index) Generate(ctx context.Context, options interface{}, reg *registry.Registry, identifier string) ([]*render.File, error) {
	opts, err := g.Options(options)
	if err != nil {
		return nil, err
	}

	entry, ok := reg.UseCase(identifier)
	if !ok {
		return nil, fmt.Errorf("use case %v is not in the registry", identifier)
	}

	if err := registry.CheckTitle(entry.Title); err != nil {
		return nil, fmt.Errorf("%v: %w", identifier, err)
	}

	bindings := render.Bindings{
		"title": entry.Title,
	}
	cli.Dump(identifier+" bindings", bindings)

	page, err := render.Render(templates.IndexPage, bindings)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", identifier, err)
	}

	pagePath, err := entryPage(identifier, opts.PagePattern, opts.Extension)
	if err != nil {
		return nil, err
	}

	return []*render.File{
		render.NewFile(identifier, pagePath, page),
	}, nil
}

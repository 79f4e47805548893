package frontend

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/iancoleman/strcase"
	"github.com/tamasfe/scaffold/pkg/errs"
	"github.com/tamasfe/scaffold/pkg/registry"
	"github.com/tamasfe/scaffold/pkg/render"
	"github.com/tamasfe/scaffold/pkg/templates"
	"github.com/tamasfe/scaffold/pkg/util"
	"github.com/tamasfe/scaffold/pkg/util/cli"
)

var networkClasses = map[string]string{
	"mainnet": "StacksMainnet",
	"testnet": "StacksTestnet",
}

// ProjectOptions are options of the Project generator.
type ProjectOptions struct {
	Extension    string            `yaml:"extension" mapstructure:"extension" description:"File extension of the entry page"`
	PagePattern  string            `yaml:"pagePattern" mapstructure:"pagePattern" description:"Path of the entry page inside the entry directory, Go template with sprig functions"`
	Network      string            `yaml:"network" mapstructure:"network" description:"Stacks network of the generated app, mainnet or testnet"`
	Dependencies map[string]string `yaml:"dependencies" mapstructure:"dependencies" description:"Dependencies of package.json mapped to semver ranges"`
}

// MarshalYAML implements YAML Marshaler
func (o *ProjectOptions) MarshalYAML() (interface{}, error) {
	return util.MarshalYAMLWithDescriptions(o)
}

// Project generates a complete Next.js app shell for every contract.
type Project struct{}

// Name implements Generator
func (g *Project) Name() string {
	return "project"
}

// Description implements Generator
func (g *Project) Description() string {
	return "Generates a Next.js app shell for every contract project"
}

// DefaultOptions implements Generator
func (g *Project) DefaultOptions() interface{} {
	return &ProjectOptions{
		Extension:    "tsx",
		PagePattern:  "pages/index.{{ .Extension }}",
		Network:      "mainnet",
		Dependencies: templates.DefaultDependencies(),
	}
}

// DescriptionMarkdown implements DescriptionMarkdown
func (g *Project) DescriptionMarkdown() string {
	return describe(g.Name(),
		"This generator writes a Next.js app shell for every contract project of the registry. "+
			"The entry page has a button for every write and read operation of the contract, "+
			"the dev server listens on the port of the project.",
		g.DefaultOptions(),
		strings.Join([]string{
			"- `<identifier>/pages/index.tsx`",
			"- `<identifier>/package.json`",
			"- `<identifier>/.env.local`",
			"- `<identifier>/.gitignore`",
			"- `<identifier>/tsconfig.json`",
			"- `<identifier>/next.config.js`",
		}, "\n"),
	)
}

// Options decodes raw options over the defaults.
func (g *Project) Options(raw interface{}) (*ProjectOptions, error) {
	if opts, ok := raw.(*ProjectOptions); ok {
		return opts, nil
	}

	opts := g.DefaultOptions().(*ProjectOptions)

	// Configured dependencies replace the defaults instead of being merged.
	if m, ok := raw.(map[string]interface{}); ok {
		if _, ok := m["dependencies"]; ok {
			opts.Dependencies = nil
		}
	}

	if err := decodeOptions(raw, opts); err != nil {
		return nil, err
	}
	return opts, nil
}

// Validate implements Generator
func (g *Project) Validate(options interface{}) error {
	opts, err := g.Options(options)
	if err != nil {
		return err
	}

	if strings.TrimSpace(opts.Extension) == "" {
		return errs.ErrMissing("extension", g.Name())
	}

	if _, ok := networkClasses[opts.Network]; !ok {
		return fmt.Errorf("unknown network %q, expected mainnet or testnet", opts.Network)
	}

	names := make([]string, 0, len(opts.Dependencies))
	for name := range opts.Dependencies {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if _, err := semver.NewConstraint(opts.Dependencies[name]); err != nil {
			return fmt.Errorf("invalid version %q of dependency %v: %w", opts.Dependencies[name], name, err)
		}
	}

	_, err = entryPage("x", opts.PagePattern, opts.Extension)
	return err
}

// Identifiers implements Generator
func (g *Project) Identifiers(reg *registry.Registry) []string {
	return reg.ProjectIdentifiers()
}

// Generate implements Generator
func (g *Project) Generate(ctx context.Context, options interface{}, reg *registry.Registry, identifier string) ([]*render.File, error) {
	opts, err := g.Options(options)
	if err != nil {
		return nil, err
	}

	p, ok := reg.Project(identifier)
	if !ok {
		return nil, fmt.Errorf("project %v is not in the registry", identifier)
	}

	if p.Title == "" {
		return nil, errs.ErrMissing("title", identifier)
	}

	if err := registry.CheckTitle(p.Title); err != nil {
		return nil, fmt.Errorf("%v: %w", identifier, err)
	}

	page, err := g.page(&p, opts)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", identifier, err)
	}

	pagePath, err := entryPage(identifier, opts.PagePattern, opts.Extension)
	if err != nil {
		return nil, err
	}

	manifest, err := render.JSON(&templates.PackageManifest{
		Name:    identifier + "-frontend",
		Version: "0.1.0",
		Private: true,
		Scripts: templates.PackageScripts{
			Dev:   fmt.Sprintf("next dev -p %v", p.Port),
			Build: "next build",
			Start: fmt.Sprintf("next start -p %v", p.Port),
		},
		Dependencies: opts.Dependencies,
	})
	if err != nil {
		return nil, fmt.Errorf("%v: package.json: %w", identifier, err)
	}

	tsconfig, err := render.JSON(templates.DefaultTSConfig())
	if err != nil {
		return nil, fmt.Errorf("%v: tsconfig.json: %w", identifier, err)
	}

	envLocal, err := render.Render(templates.EnvLocal, render.Bindings{"network": opts.Network})
	if err != nil {
		return nil, fmt.Errorf("%v: %w", identifier, err)
	}

	return []*render.File{
		render.NewFile(identifier, pagePath, page),
		render.NewFile(identifier, "package.json", manifest),
		render.NewFile(identifier, ".env.local", envLocal),
		render.NewFile(identifier, ".gitignore", templates.GitIgnore),
		render.NewFile(identifier, "tsconfig.json", tsconfig),
		render.NewFile(identifier, "next.config.js", templates.NextConfig),
	}, nil
}

func (g *Project) page(p *registry.ContractProjectSpec, opts *ProjectOptions) (string, error) {
	handlerNames := make(map[string]string)

	write, err := operations(p.WriteOperations, "call", templates.WriteHandler, handlerNames)
	if err != nil {
		return "", err
	}

	read, err := operations(p.ReadOperations, "query", templates.ReadHandler, handlerNames)
	if err != nil {
		return "", err
	}

	bindings := render.Bindings{
		"title":         p.Title,
		"network":       opts.Network,
		"networkClass":  networkClasses[opts.Network],
		"writeHandlers": write.handlers,
		"readHandlers":  read.handlers,
		"writeSections": write.sections,
		"readSections":  read.sections,
	}
	cli.Dump(p.Identifier+" bindings", bindings)

	return render.Render(templates.ProjectPage, bindings)
}

type renderedOperations struct {
	handlers string
	sections string
}

// operations renders a handler and a button for every operation.
// The lists are rendered here, templates only substitute single values.
func operations(ops []string, prefix, handlerTemplate string, seen map[string]string) (*renderedOperations, error) {
	var handlers strings.Builder
	sections := make([]string, 0, len(ops))

	for _, op := range ops {
		handler := prefix + strcase.ToCamel(op)
		if other, ok := seen[handler]; ok {
			return nil, fmt.Errorf("operations %v and %v have the same handler name %v", other, op, handler)
		}
		seen[handler] = op

		h, err := render.Render(handlerTemplate, render.Bindings{
			"handler":   handler,
			"operation": op,
		})
		if err != nil {
			return nil, err
		}
		handlers.WriteString(h)

		s, err := render.Render(templates.OperationSection, render.Bindings{
			"handler": handler,
			"label":   util.TitleFromSlug(op),
		})
		if err != nil {
			return nil, err
		}
		sections = append(sections, strings.Join(util.IndentLines(strings.Split(s, "\n"), " ", 10), "\n"))
	}

	return &renderedOperations{
		handlers: handlers.String(),
		sections: strings.Join(sections, "\n"),
	}, nil
}

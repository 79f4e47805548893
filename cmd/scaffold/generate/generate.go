package generate

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/tamasfe/scaffold/cmd/scaffold/config"
	"github.com/tamasfe/scaffold/pkg/common"
	"github.com/tamasfe/scaffold/pkg/errs"
	"github.com/tamasfe/scaffold/pkg/materialize"
	"github.com/tamasfe/scaffold/pkg/registry"
	"github.com/tamasfe/scaffold/pkg/scripts"
	"github.com/tamasfe/scaffold/pkg/util/cli"
)

// LoadRegistry parses the registry file at path,
// or returns the built-in registry if path is empty.
func LoadRegistry(ctx context.Context, path string) (*registry.Registry, error) {
	if path == "" {
		cli.Verboseln("Using the built-in registry.")
		return registry.Default(), nil
	}

	var lastErr error
	for _, p := range config.Parsers {
		reg, err := p.ParseFile(ctx, path)
		if err != nil {
			lastErr = fmt.Errorf("%v: %w", p.Name(), err)
			continue
		}

		cli.Verbosef("Registry was successfully parsed by the %v parser.\n", p.Name())
		return reg, nil
	}

	return nil, lastErr
}

// Prepare transforms and validates the registry, then validates the options
// of the generator. Nothing is written.
func Prepare(ctx context.Context, options *config.Options, name string, reg *registry.Registry) (*registry.Registry, error) {
	g, err := config.GetGenerator(name)
	if err != nil {
		return nil, err
	}

	genOpts, ok := options.Generators[name]
	if !ok || genOpts == nil {
		return nil, errs.ErrMissing("generator configuration", name)
	}

	for _, tOpts := range options.Transformers {
		t, err := config.GetTransformer(tOpts.Name)
		if err != nil {
			return nil, err
		}

		reg, err = t.Transform(ctx, tOpts.Options, reg)
		if err != nil {
			return nil, fmt.Errorf("transform failed: %w", err)
		}
	}

	if err := registry.Validate(reg); err != nil {
		return nil, err
	}

	if err := g.Validate(genOpts.Options); err != nil {
		return nil, fmt.Errorf("generator %v: %w", name, err)
	}

	return reg, nil
}

// Generate runs the named generator for every identifier of the
// registry, in registry order. Root overrides the configured root if set.
func Generate(ctx context.Context, options *config.Options, name string, reg *registry.Registry, root string, dryRun bool) (*common.State, error) {
	reg, err := Prepare(ctx, options, name, reg)
	if err != nil {
		return nil, err
	}

	g, _ := config.GetGenerator(name)
	genOpts := options.Generators[name]

	if root == "" {
		root = genOpts.Root
	}

	state := &common.State{}
	ctx = context.WithValue(ctx, common.ContextState, state)

	m := materialize.New(root, dryRun)

	for _, id := range g.Identifiers(reg) {
		files, err := g.Generate(ctx, genOpts.Options, reg, id)
		if err != nil {
			return state, fmt.Errorf("generator %v failed: %w", name, err)
		}

		paths, err := m.Materialize(id, files)
		if err != nil {
			return state, err
		}

		state.Record(id, paths)
		cli.Successf("Created %v\n", filepath.Join(root, id))
		for _, p := range paths {
			cli.Verbosef("  %v\n", p)
		}
	}

	if dryRun {
		cli.Warningf("Dry run, nothing was written.\n")
	}
	cli.Successf("Completed! Created files for %v entries.\n", len(state.Processed()))

	return state, nil
}

// Scripts creates the launcher and environment files below the
// scripts root. Root overrides the configured root if set.
func Scripts(options *config.Options, root string, dryRun bool) (*scripts.Result, error) {
	if options.Scripts == nil {
		return nil, errs.ErrMissing("scripts configuration")
	}

	if root == "" {
		root = options.Scripts.Root
	}

	res, err := scripts.New(options.Scripts.Options, dryRun).Synthesize(root)
	if err != nil {
		return res, err
	}

	if dryRun {
		cli.Warningf("Dry run, nothing was written.\n")
	}
	cli.Successf("All done! Created files for %v contracts.\n", len(res.Pairs))

	return res, nil
}

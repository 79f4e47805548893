package config

import (
	"fmt"
	"io/ioutil"
	"os"
	"sort"
	"strings"

	"github.com/imdario/mergo"
	"github.com/spf13/viper"
	"github.com/tamasfe/scaffold/pkg/errs"
	"github.com/tamasfe/scaffold/pkg/generator"
	"github.com/tamasfe/scaffold/pkg/generator/frontend"
	"github.com/tamasfe/scaffold/pkg/parser"
	"github.com/tamasfe/scaffold/pkg/scripts"
	"github.com/tamasfe/scaffold/pkg/transformer"
	"github.com/tamasfe/scaffold/pkg/util"
	"gopkg.in/yaml.v3"
)

// DefaultConfigName is looked up in the working directory
// if no configuration file is given.
const DefaultConfigName = "scaffold.yaml"

// Generators supported by the CLI.
var Generators = []generator.Generator{
	&frontend.Index{},
	&frontend.Project{},
}

// Parsers supported by the CLI.
var Parsers = []parser.Parser{
	&parser.YAML{},
}

// Transformers supported by the CLI.
var Transformers = []transformer.Transformer{
	&transformer.Titles{},
}

// Generator groups the output root and options for generator.Generator
type Generator struct {
	Root    string      `yaml:"root" mapstructure:"root" description:"Root directory of the output"`
	Options interface{} `yaml:"options,omitempty" mapstructure:"options" description:"Options for the generator"`
}

// MarshalYAML implements YAML Marshaler
func (g *Generator) MarshalYAML() (interface{}, error) {
	return util.MarshalYAMLWithDescriptions(g)
}

// Transformer groups the transformer name and its options
type Transformer struct {
	Name    string      `yaml:"name" mapstructure:"name" description:"Name of the transformer"`
	Options interface{} `yaml:"options,omitempty" mapstructure:"options" description:"Options for the transformer"`
}

// MarshalYAML implements YAML Marshaler
func (t *Transformer) MarshalYAML() (interface{}, error) {
	return util.MarshalYAMLWithDescriptions(t)
}

// Scripts groups the root and options of the script synthesizer.
type Scripts struct {
	Root    string           `yaml:"root" mapstructure:"root" description:"Directory containing one directory per contract"`
	Options *scripts.Options `yaml:"options,omitempty" mapstructure:"options" description:"Options for the launcher and environment files"`
}

// MarshalYAML implements YAML Marshaler
func (s *Scripts) MarshalYAML() (interface{}, error) {
	return util.MarshalYAMLWithDescriptions(s)
}

// GenerateOptions contains options for the CLI.
type GenerateOptions struct {
	ConfigPath   string
	RegistryPath string
	Root         string
	DryRun       bool
}

// GetOptions contains options for the CLI.
type GetOptions struct {
	Force      bool
	NoComments bool
	OutPath    string
}

// Options for Scaffold.
type Options struct {
	Registry     string                `yaml:"registry,omitempty" mapstructure:"registry" description:"Path of a registry file, the built-in registry is used if empty"`
	Transformers []*Transformer        `yaml:"transformers" mapstructure:"transformers" description:"Transformers to alter the registry with before generation, and their options"`
	Generators   map[string]*Generator `yaml:"generators" mapstructure:"generators" description:"Generators and their options"`
	Scripts      *Scripts              `yaml:"scripts" mapstructure:"scripts" description:"Batch-call script synthesis"`
}

// MarshalYAML implements YAML Marshaler
func (o *Options) MarshalYAML() (interface{}, error) {
	return util.MarshalYAMLWithDescriptions(o)
}

// DefaultOptions returns the default config
func DefaultOptions() *Options {
	opts := &Options{
		Generators: map[string]*Generator{
			"index": {
				Root: "frontend",
			},
			"project": {
				Root: "frontend",
			},
		},
		Scripts: &Scripts{
			Root:    "scripts/batch-call/with-no-event-fetching",
			Options: scripts.DefaultOptions(),
		},
	}

	for _, t := range Transformers {
		opts.Transformers = append(opts.Transformers, &Transformer{
			Name:    t.Name(),
			Options: t.DefaultOptions(),
		})
	}

	for _, g := range Generators {
		if gen, ok := opts.Generators[g.Name()]; ok {
			gen.Options = g.DefaultOptions()
		}
	}

	return opts
}

// Load reads the configuration file at path, or scaffold.yaml
// in the working directory if path is empty. Missing values are
// taken from the defaults.
func Load(path string) (*Options, error) {
	if path == "" {
		if _, err := os.Stat(DefaultConfigName); err != nil {
			if os.IsNotExist(err) {
				return DefaultOptions(), nil
			}
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		path = DefaultConfigName
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %v: %w", path, err)
	}

	opts := &Options{}
	if err := v.Unmarshal(opts); err != nil {
		return nil, fmt.Errorf("invalid config file %v: %w", path, err)
	}

	if err := restoreDependencies(path, opts); err != nil {
		return nil, err
	}

	if err := Merge(opts, DefaultOptions()); err != nil {
		return nil, err
	}

	return opts, nil
}

// Merge fills the missing values of opts from defaults.
// Generator options are left as they are, generators decode
// them over their own defaults.
func Merge(opts, defaults *Options) error {
	normalizeNames(opts)

	if opts.Generators == nil {
		opts.Generators = make(map[string]*Generator, len(defaults.Generators))
	}

	for name, def := range defaults.Generators {
		gen := opts.Generators[name]
		if gen == nil {
			opts.Generators[name] = def
			continue
		}

		if strings.TrimSpace(gen.Root) == "" {
			gen.Root = def.Root
		}

		if gen.Options == nil {
			gen.Options = def.Options
		}
	}

	if len(opts.Transformers) == 0 {
		opts.Transformers = defaults.Transformers
	}

	if opts.Scripts == nil {
		opts.Scripts = defaults.Scripts
		return nil
	}

	if err := mergo.Merge(opts.Scripts, defaults.Scripts); err != nil {
		return fmt.Errorf("scripts: %w", err)
	}

	return nil
}

// restoreDependencies replaces the dependency maps of the generator
// options with the ones in the file. Viper lowercases keys and splits
// them on dots, so "lodash.merge" would become a nested map.
func restoreDependencies(path string, opts *Options) error {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %v: %w", path, err)
	}

	var doc struct {
		Generators map[string]struct {
			Options struct {
				Dependencies map[string]interface{} `yaml:"dependencies"`
			} `yaml:"options"`
		} `yaml:"generators"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("invalid config file %v: %w", path, err)
	}

	for name, gen := range doc.Generators {
		if gen.Options.Dependencies == nil {
			continue
		}

		loaded := opts.Generators[strings.ToLower(strings.TrimSpace(name))]
		if loaded == nil {
			continue
		}

		if raw, ok := loaded.Options.(map[string]interface{}); ok {
			raw["dependencies"] = gen.Options.Dependencies
		}
	}

	return nil
}

// ValidateOptions validates options
func ValidateOptions(opts *Options) error {
	names := make([]string, 0, len(opts.Generators))
	for name := range opts.Generators {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		g, err := GetGenerator(name)
		if err != nil {
			return err
		}

		gen := opts.Generators[name]
		if gen == nil || strings.TrimSpace(gen.Root) == "" {
			return errs.ErrMissing("root", name)
		}

		if err := g.Validate(gen.Options); err != nil {
			return fmt.Errorf("generator %v: %w", name, err)
		}
	}

	for _, t := range opts.Transformers {
		if _, err := GetTransformer(t.Name); err != nil {
			return err
		}
	}

	if opts.Scripts == nil || strings.TrimSpace(opts.Scripts.Root) == "" {
		return errs.ErrMissing("root", "scripts")
	}

	if opts.Scripts.Options != nil {
		return opts.Scripts.Options.Validate()
	}

	return nil
}

// GetGenerator looks up a generator by name.
func GetGenerator(name string) (generator.Generator, error) {
	for _, g := range Generators {
		if g.Name() == name {
			return g, nil
		}
	}
	return nil, fmt.Errorf(`generator with name "%v" not found`, name)
}

// GetTransformer looks up a transformer by name.
func GetTransformer(name string) (transformer.Transformer, error) {
	for _, t := range Transformers {
		if t.Name() == name {
			return t, nil
		}
	}
	return nil, fmt.Errorf(`transformer with name "%v" not found`, name)
}

func normalizeNames(options *Options) {
	for gName, gVal := range options.Generators {
		normalizedName := strings.ToLower(strings.TrimSpace(gName))

		if normalizedName != gName {
			options.Generators[normalizedName] = gVal
			delete(options.Generators, gName)
		}
	}

	for _, transformer := range options.Transformers {
		transformer.Name = strings.ToLower(strings.TrimSpace(transformer.Name))
	}
}

// Package scripts creates the launcher and environment files
// of the batch-call scripts, one pair per contract directory.
package scripts

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/tamasfe/scaffold/pkg/errs"
	"github.com/tamasfe/scaffold/pkg/materialize"
	"github.com/tamasfe/scaffold/pkg/render"
	"github.com/tamasfe/scaffold/pkg/templates"
	"github.com/tamasfe/scaffold/pkg/util"
	"github.com/tamasfe/scaffold/pkg/util/cli"
)

// Options are options of the synthesizer.
type Options struct {
	SkipList         []string `yaml:"skipList" mapstructure:"skipList" description:"Directories that are already configured and never touched"`
	Suffix           string   `yaml:"suffix" mapstructure:"suffix" description:"Suffix of the script source after the directory name"`
	Extension        string   `yaml:"extension" mapstructure:"extension" description:"File extension of the script source"`
	EnvPath          string   `yaml:"envPath" mapstructure:"envPath" description:"Path of the shared environment file, relative to the directory of the launcher"`
	Runner           string   `yaml:"runner" mapstructure:"runner" description:"Command that runs the script source"`
	Network          string   `yaml:"network" mapstructure:"network" description:"Value of STACKS_NETWORK"`
	Deployer         string   `yaml:"deployer" mapstructure:"deployer" description:"Address of the contract deployer"`
	User             string   `yaml:"user" mapstructure:"user" description:"Address of USER_1"`
	SenderPrivateKey string   `yaml:"senderPrivateKey" mapstructure:"senderPrivateKey" description:"Value of SENDER_PRIVATE_KEY, left empty by default"`
}

// MarshalYAML implements YAML Marshaler
func (o *Options) MarshalYAML() (interface{}, error) {
	return util.MarshalYAMLWithDescriptions(o)
}

// DefaultOptions returns the default options.
func DefaultOptions() *Options {
	return &Options{
		SkipList:  []string{"asset-based-lending"},
		Suffix:    "_batch-call_with-no-event-fetching",
		Extension: "ts",
		EnvPath:   "../../../../.env",
		Runner:    "npx tsx",
		Network:   "mainnet",
		Deployer:  "SP1V95DB4JK47QVPJBXCEN6MT35JK84CQ4CWS15DQ",
		User:      "SP1V95DB4JK47QVPJBXCEN6MT35JK84CQ4CWS15DQ",
	}
}

// Validate checks the options before anything is written.
func (o *Options) Validate() error {
	if strings.TrimSpace(o.Extension) == "" {
		return errs.ErrMissing("extension", "scripts")
	}

	if strings.TrimSpace(o.Runner) == "" {
		return errs.ErrMissing("runner", "scripts")
	}

	if strings.TrimSpace(o.EnvPath) == "" {
		return errs.ErrMissing("envPath", "scripts")
	}

	if strings.TrimSpace(o.Deployer) == "" {
		return errs.ErrMissing("deployer", "scripts")
	}

	return nil
}

// ScriptPair is the launcher and environment file of a directory.
type ScriptPair struct {
	Identifier string
	Launcher   string
	Env        string
}

// Skip is a directory that was left alone.
type Skip struct {
	Identifier string
	Reason     string
}

// Result is the outcome of a run.
type Result struct {
	Pairs   []ScriptPair
	Skipped []Skip
}

// Synthesizer creates script pairs below a root directory.
type Synthesizer struct {
	Options *Options
	DryRun  bool
}

// New creates a Synthesizer, nil options mean the defaults.
func New(options *Options, dryRun bool) *Synthesizer {
	if options == nil {
		options = DefaultOptions()
	}

	return &Synthesizer{
		Options: options,
		DryRun:  dryRun,
	}
}

// SourceName is the name of the script source of the identifier.
func (s *Synthesizer) SourceName(identifier string) string {
	return identifier + s.Options.Suffix + "." + s.Options.Extension
}

// Files renders the launcher and the environment file of the identifier.
func (s *Synthesizer) Files(identifier string) ([]*render.File, error) {
	o := s.Options

	launcher, err := render.Render(templates.Launcher, render.Bindings{
		"envPath":    o.EnvPath,
		"identifier": identifier,
		"runner":     o.Runner,
		"source":     s.SourceName(identifier),
	})
	if err != nil {
		return nil, err
	}

	env, err := render.Render(templates.EnvFile, render.Bindings{
		"network":          o.Network,
		"deployer":         o.Deployer,
		"user":             o.User,
		"senderPrivateKey": o.SenderPrivateKey,
		"addressKey":       util.ContractAddressKey(identifier),
		"identifier":       identifier,
	})
	if err != nil {
		return nil, err
	}

	values, err := godotenv.Unmarshal(env)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid environment file for %v", identifier)
	}
	cli.Dump(identifier+" environment", values)

	return []*render.File{
		render.NewExecutable(identifier, identifier+".sh", launcher),
		render.NewFile(identifier, ".env", env),
	}, nil
}

// Synthesize processes every immediate subdirectory of root in
// lexicographic order. Directories on the skip-list or without a script
// source are skipped, filesystem errors abort the run.
func (s *Synthesizer) Synthesize(root string) (*Result, error) {
	if err := s.Options.Validate(); err != nil {
		return nil, err
	}

	entries, err := ioutil.ReadDir(root)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read directory %v", root)
	}

	dirs := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			dirs = append(dirs, e.Name())
		}
	}
	sort.Strings(dirs)

	skip := make(map[string]bool, len(s.Options.SkipList))
	for _, id := range s.Options.SkipList {
		skip[id] = true
	}

	m := materialize.New(root, s.DryRun)
	res := &Result{}

	for _, id := range dirs {
		if skip[id] {
			cli.Infof("Skipping %v (already configured)\n", id)
			res.Skipped = append(res.Skipped, Skip{Identifier: id, Reason: "already configured"})
			continue
		}

		source := filepath.Join(root, id, s.SourceName(id))
		if _, err := os.Stat(source); err != nil {
			if !os.IsNotExist(err) {
				return res, errors.Wrapf(err, "failed to stat %v", source)
			}

			absent := &errs.ErrSourceAbsent{Identifier: id, Path: source}
			cli.Debug("skipping directory", "err", absent)
			cli.Infof("Skipping %v (no source file found)\n", id)
			res.Skipped = append(res.Skipped, Skip{Identifier: id, Reason: "no source file found"})
			continue
		}

		files, err := s.Files(id)
		if err != nil {
			return res, err
		}

		paths, err := m.Materialize(id, files)
		if err != nil {
			return res, err
		}

		for _, p := range paths {
			cli.Successf("Created %v\n", p)
		}

		res.Pairs = append(res.Pairs, ScriptPair{
			Identifier: id,
			Launcher:   paths[0],
			Env:        paths[1],
		})
	}

	return res, nil
}

package parser

import (
	"context"
	"fmt"
	"io/ioutil"

	"github.com/mitchellh/mapstructure"
	"github.com/tamasfe/scaffold/pkg/registry"
	"gopkg.in/yaml.v3"
)

// document is the layout of a registry file. Lists keep
// the order of the entries.
type document struct {
	UseCases []map[string]interface{} `yaml:"useCases"`
	Projects []map[string]interface{} `yaml:"projects"`
}

// YAML parses registry files in YAML (or JSON) format.
//
//	useCases:
//	  - identifier: chip-atp-process
//	    title: Chip ATP Process
//	    template: testing
//	projects:
//	  - identifier: chip-atp-process
//	    port: 3009
//	    write: [start-test-process]
//	    read: [get-test-info]
type YAML struct{}

// Name implements Parser
func (y *YAML) Name() string {
	return "yaml"
}

// Description implements Parser
func (y *YAML) Description() string {
	return "Parses registry documents in YAML or JSON format"
}

// Parse implements Parser
func (y *YAML) Parse(ctx context.Context, data []byte) (*registry.Registry, error) {
	if err := registry.ValidateDocument(data); err != nil {
		return nil, err
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid registry document: %w", err)
	}

	useCases := make([]registry.UseCaseEntry, len(doc.UseCases))
	for i, raw := range doc.UseCases {
		if err := decode(raw, &useCases[i]); err != nil {
			return nil, fmt.Errorf("use case #%v: %w", i+1, err)
		}
	}

	projects := make([]registry.ContractProjectSpec, len(doc.Projects))
	for i, raw := range doc.Projects {
		if err := decode(raw, &projects[i]); err != nil {
			return nil, fmt.Errorf("project #%v: %w", i+1, err)
		}
	}

	return registry.New(useCases, projects), nil
}

// ParseFile implements Parser
func (y *YAML) ParseFile(ctx context.Context, path string) (*registry.Registry, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read registry: %w", err)
	}

	reg, err := y.Parse(ctx, data)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", path, err)
	}

	return reg, nil
}

func decode(raw map[string]interface{}, out interface{}) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused: true,
		Result:      out,
	})
	if err != nil {
		return err
	}
	return dec.Decode(raw)
}

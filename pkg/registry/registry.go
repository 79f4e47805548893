// Package registry holds the use cases scaffolds are generated for.
//
// A Registry is created once with New and never changes afterwards,
// every accessor returns a copy. Iteration always follows the
// order the entries were given in.
package registry

import (
	"github.com/mohae/deepcopy"
)

// UseCaseEntry is an entry of the index page generator.
type UseCaseEntry struct {
	Identifier string `yaml:"identifier" mapstructure:"identifier" description:"Slug used as the directory name"`
	Title      string `yaml:"title" mapstructure:"title" description:"Display title"`
	// Template is a variant tag, it is stored but does not change the output.
	Template string `yaml:"template,omitempty" mapstructure:"template" description:"Template variant tag"`
}

// ContractProjectSpec is an entry of the project generator.
type ContractProjectSpec struct {
	Identifier      string   `yaml:"identifier" mapstructure:"identifier" description:"Slug used as the directory name and environment prefix"`
	Title           string   `yaml:"title,omitempty" mapstructure:"title" description:"Display title, derived from the identifier if empty"`
	Port            int      `yaml:"port" mapstructure:"port" description:"Dev server port, unique across entries"`
	WriteOperations []string `yaml:"write" mapstructure:"write" description:"State-changing contract calls, in display order"`
	ReadOperations  []string `yaml:"read" mapstructure:"read" description:"Read-only contract calls, in display order"`
}

// Registry is an ordered, immutable collection of entries.
type Registry struct {
	useCases []UseCaseEntry
	projects []ContractProjectSpec
}

// New creates a registry from copies of the given entries.
func New(useCases []UseCaseEntry, projects []ContractProjectSpec) *Registry {
	return &Registry{
		useCases: copyUseCases(useCases),
		projects: copyProjects(projects),
	}
}

// UseCases returns the use case entries.
func (r *Registry) UseCases() []UseCaseEntry {
	return copyUseCases(r.useCases)
}

// Projects returns the project specs.
func (r *Registry) Projects() []ContractProjectSpec {
	return copyProjects(r.projects)
}

// UseCase looks up a use case entry.
func (r *Registry) UseCase(identifier string) (UseCaseEntry, bool) {
	for _, u := range r.useCases {
		if u.Identifier == identifier {
			return u, true
		}
	}
	return UseCaseEntry{}, false
}

// Project looks up a project spec.
func (r *Registry) Project(identifier string) (ContractProjectSpec, bool) {
	for _, p := range r.projects {
		if p.Identifier == identifier {
			return deepcopy.Copy(p).(ContractProjectSpec), true
		}
	}
	return ContractProjectSpec{}, false
}

// UseCaseIdentifiers returns the use case identifiers in order.
func (r *Registry) UseCaseIdentifiers() []string {
	ids := make([]string, 0, len(r.useCases))
	for _, u := range r.useCases {
		ids = append(ids, u.Identifier)
	}
	return ids
}

// ProjectIdentifiers returns the project identifiers in order.
func (r *Registry) ProjectIdentifiers() []string {
	ids := make([]string, 0, len(r.projects))
	for _, p := range r.projects {
		ids = append(ids, p.Identifier)
	}
	return ids
}

func copyUseCases(u []UseCaseEntry) []UseCaseEntry {
	if u == nil {
		return nil
	}
	return deepcopy.Copy(u).([]UseCaseEntry)
}

func copyProjects(p []ContractProjectSpec) []ContractProjectSpec {
	if p == nil {
		return nil
	}
	return deepcopy.Copy(p).([]ContractProjectSpec)
}

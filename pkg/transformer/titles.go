package transformer

import (
	"context"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/tamasfe/scaffold/pkg/registry"
	"github.com/tamasfe/scaffold/pkg/util"
)

// TitlesOptions are options of the Titles transformer.
type TitlesOptions struct {
	FromUseCases bool `yaml:"fromUseCases" mapstructure:"fromUseCases" description:"Use the title of the use case with the same identifier"`
}

// MarshalYAML implements YAML Marshaler
func (o *TitlesOptions) MarshalYAML() (interface{}, error) {
	return util.MarshalYAMLWithDescriptions(o)
}

// Titles fills in missing project titles.
type Titles struct{}

// Name implements Transformer
func (t *Titles) Name() string {
	return "titles"
}

// Description implements Transformer
func (t *Titles) Description() string {
	return "Fills in missing project titles"
}

// DescriptionMarkdown implements DescriptionMarkdown
func (t *Titles) DescriptionMarkdown() string {
	return `Trims every title and fills in the title of projects that have none.

If ` + "`fromUseCases`" + ` is set, the title of the use case with the same identifier is used first,
otherwise the title is derived from the identifier, ` + "`chip-atp-process`" + ` becomes ` + "`Chip Atp Process`" + `.
`
}

// DefaultOptions implements Transformer
func (t *Titles) DefaultOptions() interface{} {
	return &TitlesOptions{
		FromUseCases: true,
	}
}

// Transform implements Transformer
func (t *Titles) Transform(ctx context.Context, options interface{}, reg *registry.Registry) (*registry.Registry, error) {
	opts, ok := options.(*TitlesOptions)
	if !ok {
		opts = t.DefaultOptions().(*TitlesOptions)
		if options != nil {
			dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
				ErrorUnused: true,
				Result:      opts,
			})
			if err != nil {
				return nil, err
			}
			if err := dec.Decode(options); err != nil {
				return nil, err
			}
		}
	}

	useCases := reg.UseCases()
	for i := range useCases {
		useCases[i].Title = strings.TrimSpace(useCases[i].Title)
	}

	projects := reg.Projects()
	for i := range projects {
		p := &projects[i]
		p.Title = strings.TrimSpace(p.Title)
		if p.Title != "" {
			continue
		}

		if opts.FromUseCases {
			if u, ok := reg.UseCase(p.Identifier); ok {
				p.Title = strings.TrimSpace(u.Title)
			}
		}

		if p.Title == "" {
			p.Title = util.TitleFromSlug(p.Identifier)
		}
	}

	return registry.New(useCases, projects), nil
}

// Package frontend contains the generators of the frontend app shells.
package frontend

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/mitchellh/mapstructure"
	"github.com/tamasfe/scaffold/internal/markdown"
	"github.com/tamasfe/scaffold/pkg/render"
	"github.com/tamasfe/scaffold/pkg/util"
)

// decodeOptions decodes raw options over the defaults.
func decodeOptions(raw interface{}, defaults interface{}) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused: true,
		Result:      defaults,
	})
	if err != nil {
		return err
	}

	err = dec.Decode(raw)
	if err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}
	return nil
}

func entryPage(identifier, pattern, extension string) (string, error) {
	return render.Path(pattern, &render.PathValues{
		Identifier: identifier,
		Extension:  extension,
	})
}

var descriptionTemplate = `
# Description

{{ .Description }}

# Options

## List of all options

{{ .OptionsTable }}

## Example usage in the configuration

{{ .OptionsExample }}

# Output

{{ .Files }}
`[1:]

func describe(name, description string, options interface{}, files string) string {
	templ, err := template.New("desc").Parse(descriptionTemplate)
	if err != nil {
		panic(err)
	}

	yamlComments := util.DisableYAMLMarshalComments
	util.DisableYAMLMarshalComments = true
	defer func() {
		util.DisableYAMLMarshalComments = yamlComments
	}()

	buf := &bytes.Buffer{}
	err = templ.Execute(buf,
		map[string]interface{}{
			"Description":  description,
			"OptionsTable": markdown.OptionsTable(options),
			"OptionsExample": "```yaml\n" + string(util.MustMarshalYAML(
				map[string]interface{}{
					"generators": map[string]interface{}{
						name: map[string]interface{}{
							"options": options,
						},
					},
				},
			)) + "```\n",
			"Files": files,
		},
	)
	if err != nil {
		panic(err)
	}

	return buf.String()
}

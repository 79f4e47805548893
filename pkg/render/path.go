package render

import (
	"bytes"
	"fmt"
	"path"
	"text/template"

	"github.com/Masterminds/sprig"
)

// PathValues are available in path patterns.
type PathValues struct {
	Identifier string `description:"Identifier of the entry"`
	Extension  string `description:"File extension of the entry page"`
}

// Path expands an output path pattern. Patterns are Go
// templates with sprig functions, e.g. "pages/index.{{ .Extension }}".
func Path(pattern string, values *PathValues) (string, error) {
	tmpl, err := template.New("path").
		Funcs(sprig.TxtFuncMap()).
		Option("missingkey=error").
		Parse(pattern)
	if err != nil {
		return "", fmt.Errorf("invalid path pattern: %w", err)
	}

	buf := &bytes.Buffer{}
	err = tmpl.Execute(buf, values)
	if err != nil {
		return "", fmt.Errorf("invalid path pattern: %w", err)
	}

	p := buf.String()
	if p == "" || path.IsAbs(p) {
		return "", fmt.Errorf("path pattern %q must produce a relative path, got %q", pattern, p)
	}

	return p, nil
}

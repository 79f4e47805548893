package errs

import (
	"fmt"
	"strings"
)

// ErrMissingValue is returned if a value is not given
type ErrMissingValue struct {
	// What is missing
	Kind string

	// Additional info
	Info []string
}

// ErrMissing creates a "missing" error
func ErrMissing(kind string, info ...string) *ErrMissingValue {
	return &ErrMissingValue{
		Kind: kind,
		Info: info,
	}
}

func (e *ErrMissingValue) Error() string {
	if len(e.Info) > 0 {
		return fmt.Sprintf(`%v is missing (%v)`, e.Kind, strings.Join(e.Info, ", "))
	}
	return fmt.Sprintf(`%v is missing`, e.Kind)
}

// ErrMissingBinding is returned when a template
// placeholder has no value bound to it.
type ErrMissingBinding struct {
	Placeholder string
}

func (e *ErrMissingBinding) Error() string {
	return fmt.Sprintf(`no binding for placeholder "%v"`, e.Placeholder)
}

// ErrSourceAbsent is returned when the source file
// an identifier needs does not exist.
type ErrSourceAbsent struct {
	Identifier string
	Path       string
}

func (e *ErrSourceAbsent) Error() string {
	return fmt.Sprintf(`no source file found for %v at "%v"`, e.Identifier, e.Path)
}

// Issue is a single problem found in a registry.
type Issue struct {
	Identifier string
	Message    string
}

func (i Issue) String() string {
	if i.Identifier == "" {
		return i.Message
	}
	return i.Identifier + ": " + i.Message
}

// ErrInvalidRegistry collects every issue found
// while validating a registry.
type ErrInvalidRegistry struct {
	Issues []Issue
}

// Add records an issue.
func (e *ErrInvalidRegistry) Add(identifier, format string, values ...interface{}) {
	e.Issues = append(e.Issues, Issue{
		Identifier: identifier,
		Message:    fmt.Sprintf(format, values...),
	})
}

// OrNil returns nil if there are no issues.
func (e *ErrInvalidRegistry) OrNil() error {
	if e == nil || len(e.Issues) == 0 {
		return nil
	}
	return e
}

func (e *ErrInvalidRegistry) Error() string {
	lines := make([]string, 0, len(e.Issues))
	for _, i := range e.Issues {
		lines = append(lines, "  "+i.String())
	}
	return fmt.Sprintf("invalid registry, %v issue(s):\n%v", len(e.Issues), strings.Join(lines, "\n"))
}

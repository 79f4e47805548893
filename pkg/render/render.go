// Package render turns templates and bindings into file contents.
//
// Placeholders are written as {% key %}. Keys are trimmed and
// matched case-insensitively. Everything else in a template is
// copied as-is, so braces used by JSX or JSON need no escaping.
// The only escape sequence is {%%}, which renders a literal "{%".
//
// Rendering is pure, files are written by the materialize package.
package render

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/tamasfe/scaffold/pkg/errs"
	"github.com/valyala/fasttemplate"
)

// Delimiters of a placeholder.
const (
	StartTag = "{%"
	EndTag   = "%}"
)

var keyRe = regexp.MustCompile(`^[a-zA-Z0-9_.-]+$`)

// Bindings are substitution values for templating.
type Bindings map[string]string

// Render substitutes every placeholder in the template.
//
// Bindings without a placeholder are ignored, a placeholder
// without a binding results in *errs.ErrMissingBinding.
// Binding keys that only differ in case are rejected.
func Render(template string, bindings Bindings) (string, error) {
	if err := checkClosed(template); err != nil {
		return "", err
	}

	vals := make(map[string]string, len(bindings))
	keys := make(map[string]string, len(bindings))
	for k, v := range bindings {
		key := normalizeKey(k)
		if other, ok := keys[key]; ok {
			if other > k {
				other, k = k, other
			}
			return "", fmt.Errorf("bindings %q and %q have the same key", other, k)
		}
		keys[key] = k
		vals[key] = v
	}

	return fasttemplate.ExecuteFuncStringWithErr(template, StartTag, EndTag, func(w io.Writer, tag string) (int, error) {
		if tag == "" {
			return io.WriteString(w, StartTag)
		}

		key, err := placeholderKey(tag)
		if err != nil {
			return 0, err
		}

		v, ok := vals[key]
		if !ok {
			return 0, &errs.ErrMissingBinding{Placeholder: key}
		}

		return io.WriteString(w, v)
	})
}

// MustRender is like Render, but panics on error.
func MustRender(template string, bindings Bindings) string {
	s, err := Render(template, bindings)
	if err != nil {
		panic(err)
	}
	return s
}

// Placeholders returns the keys the template declares,
// in the order of their first appearance.
func Placeholders(template string) ([]string, error) {
	if err := checkClosed(template); err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	keys := make([]string, 0)

	_, err := fasttemplate.ExecuteFuncStringWithErr(template, StartTag, EndTag, func(w io.Writer, tag string) (int, error) {
		if tag == "" {
			return 0, nil
		}

		key, err := placeholderKey(tag)
		if err != nil {
			return 0, err
		}

		if !seen[key] {
			seen[key] = true
			keys = append(keys, key)
		}
		return 0, nil
	})
	if err != nil {
		return nil, err
	}

	return keys, nil
}

// checkClosed returns an error for the first start tag
// without an end tag after it.
func checkClosed(template string) error {
	offset := 0
	for {
		start := strings.Index(template[offset:], StartTag)
		if start < 0 {
			return nil
		}
		start += offset

		end := strings.Index(template[start+len(StartTag):], EndTag)
		if end < 0 {
			line := strings.Count(template[:start], "\n") + 1
			col := start - strings.LastIndex(template[:start], "\n")
			return fmt.Errorf("unclosed placeholder at line %v, column %v", line, col)
		}
		offset = start + len(StartTag) + end + len(EndTag)
	}
}

func placeholderKey(tag string) (string, error) {
	key := normalizeKey(tag)
	if !keyRe.MatchString(key) {
		return "", fmt.Errorf("invalid placeholder \"%v%v%v\"", StartTag, tag, EndTag)
	}
	return key, nil
}

func normalizeKey(k string) string {
	return strings.ToLower(strings.TrimSpace(k))
}

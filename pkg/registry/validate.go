package registry

import (
	"fmt"
	"strings"

	"github.com/tamasfe/scaffold/pkg/errs"
	"github.com/tamasfe/scaffold/pkg/util"
)

// Validate checks the whole registry before anything is generated.
// Every problem is reported in a single *errs.ErrInvalidRegistry.
func Validate(r *Registry) error {
	issues := &errs.ErrInvalidRegistry{}

	seen := make(map[string]bool, len(r.useCases))
	for i, u := range r.useCases {
		id := checkIdentifier(issues, "use case", i, u.Identifier, seen)
		if strings.TrimSpace(u.Title) == "" {
			issues.Add(id, "title is empty")
		} else if err := CheckTitle(u.Title); err != nil {
			issues.Add(id, "%v", err)
		}
	}

	seen = make(map[string]bool, len(r.projects))
	ports := make(map[int]string, len(r.projects))
	for i, p := range r.projects {
		id := checkIdentifier(issues, "project", i, p.Identifier, seen)

		if err := CheckTitle(p.Title); err != nil {
			issues.Add(id, "%v", err)
		}

		if p.Port < 1 || p.Port > 65535 {
			issues.Add(id, "port %v is out of range", p.Port)
		} else if other, ok := ports[p.Port]; ok {
			issues.Add(id, "port %v is already used by %v", p.Port, other)
		} else {
			ports[p.Port] = id
		}

		checkOperations(issues, id, "write", p.WriteOperations)
		checkOperations(issues, id, "read", p.ReadOperations)
	}

	return issues.OrNil()
}

// titleForbidden are the characters that cannot appear in a title.
// Titles are placed in single-quoted strings and JSX text.
const titleForbidden = "'\\\n\r{}<>"

// CheckTitle rejects titles that would break the generated pages.
// An empty title passes.
func CheckTitle(title string) error {
	if i := strings.IndexAny(title, titleForbidden); i >= 0 {
		return fmt.Errorf("title %q contains %q", title, title[i])
	}
	return nil
}

func checkIdentifier(issues *errs.ErrInvalidRegistry, kind string, idx int, id string, seen map[string]bool) string {
	if id == "" {
		issues.Add("", "%v #%v has no identifier", kind, idx+1)
		return ""
	}

	if !util.IsSlug(id) {
		issues.Add(id, "identifier must be a lowercase, hyphen-separated slug")
	}

	if seen[id] {
		issues.Add(id, "duplicate %v identifier", kind)
	}
	seen[id] = true

	return id
}

func checkOperations(issues *errs.ErrInvalidRegistry, id, kind string, ops []string) {
	seen := make(map[string]bool, len(ops))
	for _, op := range ops {
		if strings.TrimSpace(op) == "" || strings.ContainsAny(op, " \t\n'\"") {
			issues.Add(id, "invalid %v operation name %q", kind, op)
			continue
		}
		if seen[op] {
			issues.Add(id, "duplicate %v operation %v", kind, op)
		}
		seen[op] = true
	}
}

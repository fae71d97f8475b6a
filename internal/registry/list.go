package registry

import (
	"cmp"
	"fmt"
	"iter"
	"path/filepath"
	"slices"
	"strings"
)

// Entry is one row of a listing.
type Entry struct {
	Scope   string
	Alias   string
	Command string
}

// Scoped reports whether the entry is restricted to a directory.
func (e Entry) Scoped() bool { return e.Scope != Unscoped }

func compareEntries(a, b Entry) int {
	if c := cmp.Compare(a.Scope, b.Scope); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Alias, b.Alias); c != 0 {
		return c
	}
	return cmp.Compare(a.Command, b.Command)
}

// List returns the bindings ordered by scope, then alias, then command, so
// unscoped entries come first. Unless all is set, only entries visible from
// the working directory are yielded: unscoped ones, and those whose scope is
// the working directory or one of its ancestors.
//
// The entries are snapshotted when List is called and filtered as they are
// consumed.
func (r *Registry) List(all bool) (iter.Seq[Entry], error) {
	var wd string
	if !all {
		var err error
		if wd, err = r.getwd(); err != nil {
			return nil, fmt.Errorf("resolve working directory: %w", err)
		}
	}

	entries := make([]Entry, 0, len(r.commands))
	for alias, cmd := range r.commands {
		entries = append(entries, Entry{Scope: r.scopes[alias], Alias: alias, Command: cmd})
	}
	slices.SortFunc(entries, compareEntries)

	return func(yield func(Entry) bool) {
		for _, e := range entries {
			if !all && !Within(wd, e.Scope) {
				continue
			}
			if !yield(e) {
				return
			}
		}
	}, nil
}

// Within reports whether dir is scope or lies beneath it. Paths are compared
// by component, so /projects is not within /proj. Unscoped contains everything.
func Within(dir, scope string) bool {
	if scope == Unscoped {
		return true
	}
	rel, err := filepath.Rel(filepath.Clean(scope), filepath.Clean(dir))
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}

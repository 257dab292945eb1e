// Package diff describes how edited values differ from the values they
// replace, using word-diff markers: removed text as [-text-] and inserted
// text as {+text+}.
package diff

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Inline marks the differences between before and after. Identical input
// yields the empty string.
func Inline(before, after string) string {
	if before == after {
		return ""
	}

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffCleanupSemantic(dmp.DiffMain(before, after, false))

	var b strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			b.WriteString("[-" + d.Text + "-]")
		case diffmatchpatch.DiffInsert:
			b.WriteString("{+" + d.Text + "+}")
		default:
			b.WriteString(d.Text)
		}
	}
	return b.String()
}

// Change is one named value that was edited.
type Change struct {
	Field  string
	Before string
	After  string
}

func (c Change) String() string {
	return c.Field + ": " + Inline(c.Before, c.After)
}

// Fields compares the named values read through before and after, keeping
// the order of names and skipping the ones that did not change.
func Fields(names []string, before, after func(string) string) []Change {
	var changes []Change
	for _, name := range names {
		b, a := before(name), after(name)
		if b == a {
			continue
		}
		changes = append(changes, Change{Field: name, Before: b, After: a})
	}
	return changes
}

// Summary joins changes for a status line; no changes reads "no changes".
func Summary(changes []Change) string {
	if len(changes) == 0 {
		return "no changes"
	}
	parts := make([]string, 0, len(changes))
	for _, c := range changes {
		parts = append(parts, c.String())
	}
	return strings.Join(parts, ", ")
}

package testing

import (
	"fmt"
	"strings"

	"github.com/go-drift/shadcn/pkg/graphics"
	"github.com/go-drift/shadcn/pkg/ui"
)

// Finder selects commands from a display list.
type Finder interface {
	// Match reports whether c is selected.
	Match(c ui.Command) bool
	// Description returns a human-readable description for error messages.
	Description() string
}

// FinderResult wraps matched commands, in paint order.
type FinderResult struct {
	commands []ui.Command
	finder   Finder
}

// Find evaluates f against list.
func Find(list *ui.DisplayList, f Finder) FinderResult {
	var out []ui.Command
	for _, c := range list.Sorted() {
		if f.Match(c) {
			out = append(out, c)
		}
	}
	return FinderResult{commands: out, finder: f}
}

// FindText finds text commands whose text equals text.
func FindText(list *ui.DisplayList, text string) FinderResult {
	return Find(list, ByText(text))
}

// First returns the first match. Panics if no matches.
func (r FinderResult) First() ui.Command {
	if len(r.commands) == 0 {
		panic(fmt.Sprintf("Finder found no commands: %s", r.describe()))
	}
	return r.commands[0]
}

// All returns all matches.
func (r FinderResult) All() []ui.Command { return r.commands }

// Count returns the number of matches.
func (r FinderResult) Count() int { return len(r.commands) }

// Exists returns true if at least one match was found.
func (r FinderResult) Exists() bool { return len(r.commands) > 0 }

// Rect returns the rect of the first match. Panics if no matches.
func (r FinderResult) Rect() graphics.Rect { return r.First().Rect }

func (r FinderResult) describe() string {
	if r.finder == nil {
		return "unknown"
	}
	return r.finder.Description()
}

type textFinder struct {
	text     string
	contains bool
}

// ByText matches text commands with exactly text.
func ByText(text string) Finder { return textFinder{text: text} }

// ByTextContaining matches text commands containing substr.
func ByTextContaining(substr string) Finder { return textFinder{text: substr, contains: true} }

func (f textFinder) Match(c ui.Command) bool {
	if c.Kind != ui.CommandText {
		return false
	}
	if f.contains {
		return strings.Contains(c.Text, f.text)
	}
	return c.Text == f.text
}

func (f textFinder) Description() string {
	if f.contains {
		return fmt.Sprintf("text containing %q", f.text)
	}
	return fmt.Sprintf("text %q", f.text)
}

type layerFinder struct{ layer ui.Layer }

// ByLayer matches every command on layer.
func ByLayer(l ui.Layer) Finder { return layerFinder{layer: l} }

func (f layerFinder) Match(c ui.Command) bool { return c.Layer == f.layer }

func (f layerFinder) Description() string { return "layer " + f.layer.String() }

type predicateFinder struct {
	fn   func(ui.Command) bool
	desc string
}

// ByPredicate matches commands for which fn returns true.
func ByPredicate(desc string, fn func(ui.Command) bool) Finder {
	return predicateFinder{fn: fn, desc: desc}
}

func (f predicateFinder) Match(c ui.Command) bool { return f.fn(c) }

func (f predicateFinder) Description() string { return f.desc }

// And matches commands selected by every finder.
func And(finders ...Finder) Finder {
	var names []string
	for _, f := range finders {
		names = append(names, f.Description())
	}
	return ByPredicate(strings.Join(names, " and "), func(c ui.Command) bool {
		for _, f := range finders {
			if !f.Match(c) {
				return false
			}
		}
		return true
	})
}

package matching

import "github.com/grokify/go-metametric/metricpath"

// Hooks is a prefix-scoped view over a set of Selectors: Advance
// re-scopes every selector whose next component covers the given step,
// stripping that step off so the remainder can match paths relative to a
// nested root. This mirrors the original source's Hooks.advance. No
// combinator in this module calls Advance; RunWithHooks matches each
// selector against a match's whole path instead.
type Hooks struct {
	selectors []Selector
}

// NewHooks wraps a flat selector list for prefix-scoped traversal.
func NewHooks(selectors []Selector) Hooks {
	return Hooks{selectors: selectors}
}

// Empty reports whether there are no selectors left to dispatch.
func (h Hooks) Empty() bool { return len(h.selectors) == 0 }

// Selectors returns the current (already-advanced) selector list.
func (h Hooks) Selectors() []Selector { return h.selectors }

// Advance returns a new Hooks containing, for every selector whose first
// remaining path component covers step, the remainder of that selector's
// path with step stripped off.
func (h Hooks) Advance(step metricpath.Component) Hooks {
	var next []Selector
	for _, s := range h.selectors {
		if s.Path.Len() == 0 {
			continue
		}
		if !componentCovers(s.Path.At(0), step) {
			continue
		}
		next = append(next, Selector{Path: dropFirst(s.Path), Hook: s.Hook})
	}
	return Hooks{selectors: next}
}

func componentCovers(selector, step metricpath.Component) bool {
	probe := metricpath.Root().Append(step)
	sel := metricpath.Root().Append(selector)
	return sel.Selects(probe)
}

func dropFirst(p metricpath.Path) metricpath.Path {
	out := metricpath.Root()
	for i := 1; i < p.Len(); i++ {
		out = out.Append(p.At(i))
	}
	return out
}

// Package matching holds the matching-witness model (C1): Match records,
// the lazily-iterated Matching collection they travel in, and the hook
// mechanism that observes matches as a Matching is traversed.
package matching

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/grokify/go-metametric/metricpath"
)

// Match records one pairing discovered while scoring two objects: the
// predicted side's path and value, the reference side's path and value,
// and the local score assigned to the pair.
type Match struct {
	PredPath metricpath.Path
	Pred     any
	RefPath  metricpath.Path
	Ref      any
	Score    float64
}

func (m Match) String() string {
	return fmt.Sprintf("%s -> %s (%v)", m.PredPath, m.RefPath, m.Score)
}

// Matching is a finite, lazily-producible sequence of Match values. It is
// never mutated after construction; the zero value is the empty
// matching. Construct one from a pre-built slice with Of, or stream
// matches one at a time from an emission function with FromFunc.
type Matching struct {
	emit func(yield func(Match) bool)
}

// Of wraps a fixed slice of matches as a Matching.
func Of(matches []Match) Matching {
	return Matching{emit: func(yield func(Match) bool) {
		for _, m := range matches {
			if !yield(m) {
				return
			}
		}
	}}
}

// Single returns a Matching containing exactly one Match.
func Single(m Match) Matching { return Of([]Match{m}) }

// Empty is the Matching with no matches.
func Empty() Matching { return Of(nil) }

// FromFunc builds a Matching from an emission function, for cases where
// materializing every match up front would be wasteful; emit must call
// yield once per Match in emission order and stop if yield returns
// false.
func FromFunc(emit func(yield func(Match) bool)) Matching {
	return Matching{emit: emit}
}

// Each iterates the matches of m in emission order, calling fn for each.
// If fn returns false, iteration stops early.
func (m Matching) Each(fn func(Match) bool) {
	if m.emit == nil {
		return
	}
	m.emit(fn)
}

// Slice materializes every match of m into a slice, in emission order.
func (m Matching) Slice() []Match {
	var out []Match
	m.Each(func(match Match) bool {
		out = append(out, match)
		return true
	})
	return out
}

// MapPaths returns a new Matching where every match's PredPath and
// RefPath have been transformed by f. Used by collection combinators to
// prepend a field name or index when a sub-matching is lifted into its
// parent's path space.
func (m Matching) MapPaths(f func(metricpath.Path) metricpath.Path) Matching {
	return FromFunc(func(yield func(Match) bool) {
		m.Each(func(match Match) bool {
			match.PredPath = f(match.PredPath)
			match.RefPath = f(match.RefPath)
			return yield(match)
		})
	})
}

// Concat returns a Matching that emits every match of each argument, in
// order.
func Concat(ms ...Matching) Matching {
	return FromFunc(func(yield func(Match) bool) {
		for _, m := range ms {
			cont := true
			m.Each(func(match Match) bool {
				if !yield(match) {
					cont = false
					return false
				}
				return true
			})
			if !cont {
				return
			}
		}
	})
}

// Hook is a closure invoked synchronously for every Match selected by
// its companion selector: (dataID, predPath, pred, refPath, ref, score).
type Hook func(dataID uuid.UUID, predPath metricpath.Path, pred any, refPath metricpath.Path, ref any, score float64)

// Selector pairs a path selector with the Hook to invoke when a match's
// PredPath is selected by it.
type Selector struct {
	Path metricpath.Path
	Hook Hook
}

// RunWithHooks iterates m in emission order; for each Match and each
// Selector in hooks, invokes Hook when Selector.Path.Selects(match.PredPath).
func (m Matching) RunWithHooks(hooks []Selector, dataID uuid.UUID) {
	if len(hooks) == 0 {
		return
	}
	m.Each(func(match Match) bool {
		for _, h := range hooks {
			if h.Path.Selects(match.PredPath) {
				h.Hook(dataID, match.PredPath, match.Pred, match.RefPath, match.Ref, match.Score)
			}
		}
		return true
	})
}

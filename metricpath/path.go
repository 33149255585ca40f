// Package metricpath implements the Path selector algebra used to
// address nodes inside a Matching witness: an ordered sequence of field
// names and/or indices, rendered in JMESPath-like dot/bracket notation
// and compared for prefix/selection with "*" as a wildcard.
package metricpath

import (
	"strconv"
	"strings"
)

// Component is one step of a Path: either a field name (string) or an
// index (integer, with -1 reserved as the wildcard "*"). Exactly one of
// IsIndex's two branches is meaningful at a time.
type Component struct {
	name    string
	index   int
	isIndex bool
}

// Wildcard is the distinguished index component that selects any
// concrete index or name at its position, rendered "[*]".
const Wildcard = -1

// Name builds a field-name path component.
func Name(s string) Component { return Component{name: s} }

// Index builds an integer index path component. Passing Wildcard builds
// the "[*]" wildcard component.
func Index(i int) Component { return Component{index: i, isIndex: true} }

// IsIndex reports whether c is an index component (as opposed to a field
// name).
func (c Component) IsIndex() bool { return c.isIndex }

// IsWildcard reports whether c is the "[*]" wildcard index.
func (c Component) IsWildcard() bool { return c.isIndex && c.index == Wildcard }

// covers reports whether the receiver, used as a selector, covers other
// as a path component: equal, or either side is a wildcard (the Wildcard
// index or the name "*").
func (c Component) covers(other Component) bool {
	cWild := c.IsWildcard() || (!c.isIndex && c.name == "*")
	otherWild := other.IsWildcard() || (!other.isIndex && other.name == "*")
	if cWild || otherWild {
		return true
	}
	if c.isIndex != other.isIndex {
		return false
	}
	if c.isIndex {
		return c.index == other.index
	}
	return c.name == other.name
}

func (c Component) String() string {
	if c.isIndex {
		if c.index == Wildcard {
			return "[*]"
		}
		return "[" + strconv.Itoa(c.index) + "]"
	}
	return c.name
}

// Path is an ordered, immutable sequence of Components. The zero value is
// the root path.
type Path struct {
	components []Component
}

// Root is the empty path, rendered "@".
func Root() Path { return Path{} }

// IsRoot reports whether p has no components.
func (p Path) IsRoot() bool { return len(p.components) == 0 }

// Len returns the number of components in p.
func (p Path) Len() int { return len(p.components) }

// At returns the i-th component of p.
func (p Path) At(i int) Component { return p.components[i] }

// Prepend returns a new Path with c inserted at the front.
func (p Path) Prepend(c Component) Path {
	out := make([]Component, 0, len(p.components)+1)
	out = append(out, c)
	out = append(out, p.components...)
	return Path{components: out}
}

// Append returns a new Path with c inserted at the back.
func (p Path) Append(c Component) Path {
	out := make([]Component, 0, len(p.components)+1)
	out = append(out, p.components...)
	out = append(out, c)
	return Path{components: out}
}

// PrependName is a convenience for Prepend(Name(s)).
func (p Path) PrependName(s string) Path { return p.Prepend(Name(s)) }

// PrependIndex is a convenience for Prepend(Index(i)).
func (p Path) PrependIndex(i int) Path { return p.Prepend(Index(i)) }

// Key returns a string uniquely determined by p's component sequence,
// suitable for use as a map key (Path itself holds a slice and so is not
// comparable with ==).
func (p Path) Key() string {
	var b strings.Builder
	for _, c := range p.components {
		if c.isIndex {
			b.WriteByte('#')
			b.WriteString(strconv.Itoa(c.index))
		} else {
			b.WriteByte('.')
			b.WriteString(c.name)
		}
	}
	return b.String()
}

// Selects reports whether other is selected by the receiver used as a
// selector: same length, and every component of the receiver covers the
// corresponding component of other (a "*" on either side matches any
// index or name at that position).
func (p Path) Selects(other Path) bool {
	if len(p.components) != len(other.components) {
		return false
	}
	for i, c := range p.components {
		if !c.covers(other.components[i]) {
			return false
		}
	}
	return true
}

// String renders p in dot/bracket notation: "@" for the root, the bare
// name for a leading field step and ".name" for a later one, "[n]" for an
// integer index (e.g. "a.b[0].c").
func (p Path) String() string {
	if len(p.components) == 0 {
		return "@"
	}
	var b strings.Builder
	for i, c := range p.components {
		if c.isIndex {
			b.WriteString(c.String())
		} else {
			if i != 0 {
				b.WriteByte('.')
			}
			b.WriteString(c.name)
		}
	}
	return b.String()
}

// Parse parses a path rendered in dot/bracket notation, tokenizing on
// "@.[]" exactly as String renders it. Parse(p.String()) == p for every
// Path p.
func Parse(s string) Path {
	var tokens []string
	var cur strings.Builder
	flush := func() {
		if cur.Len() > 0 {
			tokens = append(tokens, cur.String())
			cur.Reset()
		}
	}
	for _, r := range s {
		switch r {
		case '@', '.', '[', ']':
			flush()
			tokens = append(tokens, string(r))
		default:
			cur.WriteRune(r)
		}
	}
	flush()

	var components []Component
	i := 0
	for i < len(tokens) {
		switch tokens[i] {
		case "@", ".":
			i++
		case "[":
			// tokens[i+1] is the index text, tokens[i+2] is "]"
			text := tokens[i+1]
			if text == "*" {
				components = append(components, Index(Wildcard))
			} else {
				n, _ := strconv.Atoi(text)
				components = append(components, Index(n))
			}
			i += 3
		default:
			if tokens[i] == "*" {
				components = append(components, Name("*"))
			} else {
				components = append(components, Name(tokens[i]))
			}
			i++
		}
	}
	return Path{components: components}
}

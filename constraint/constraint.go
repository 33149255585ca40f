// Package constraint defines the matching-cardinality enum shared by the
// assignment solver, the ILP solver and every collection combinator.
package constraint

import (
	"fmt"

	"github.com/grokify/go-metametric/mmerr"
)

// Kind governs the cardinality allowed between matched elements of two
// collections being compared.
type Kind int

const (
	// OneToOne allows each element of X to match at most one element of
	// Y and vice versa (strings "<->", "1:1").
	OneToOne Kind = iota
	// OneToMany allows each element of Y to match at most one element of
	// X, with no limit on how many Y elements a given X element covers
	// (strings "<-", "1:*").
	OneToMany
	// ManyToOne is the mirror of OneToMany: each element of X matches at
	// most one element of Y (strings "->", "*:1").
	ManyToOne
	// ManyToMany places no cardinality constraint at all (strings "~",
	// "*:*").
	ManyToMany
)

// String renders the canonical "1:1"-style form of k.
func (k Kind) String() string {
	switch k {
	case OneToOne:
		return "1:1"
	case OneToMany:
		return "1:*"
	case ManyToOne:
		return "*:1"
	case ManyToMany:
		return "*:*"
	default:
		return fmt.Sprintf("constraint.Kind(%d)", int(k))
	}
}

// Parse maps the matching-kind strings tabulated in the specification
// (§4.8 and the GLOSSARY) onto a Kind. Unknown strings return a
// *mmerr.ConfigError satisfying errors.Is(err, metametric.ErrInvalidConfiguration).
func Parse(s string) (Kind, error) {
	switch s {
	case "<->", "1:1":
		return OneToOne, nil
	case "<-", "1:*":
		return OneToMany, nil
	case "->", "*:1":
		return ManyToOne, nil
	case "~", "*:*":
		return ManyToMany, nil
	default:
		return 0, mmerr.NewConfigError("matching constraint", s)
	}
}

// MustParse is Parse but panics on an unknown string; useful in tests and
// package-level variable initializers where the constraint literal is a
// compile-time constant.
func MustParse(s string) Kind {
	k, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return k
}

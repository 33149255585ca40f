package derive

import (
	"reflect"

	"github.com/grokify/go-metametric/metric"
)

// HasMetric lets a type attach its own metric instead of going through
// structural derivation, the Go analogue of wrapping a dataclass field in
// `Annotated[T, some_metric]` in the original implementation. Derive calls
// DerivedMetric on a zero value of the type, so an implementation must not
// depend on receiver state.
type HasMetric interface {
	DerivedMetric() metric.Metric
}

// HasLatentMetric attaches a metric to a type the same way HasMetric does:
// Derive uses DerivedLatentMetric as the type's own metric, consulted after
// HasMetric. It is the Go analogue of the original's separate
// `latent_metric` class attribute, and Variable implements it. Whether a
// collection is scored with LatentSetMatching rather than SetMatching does
// not depend on this interface: Derive decides that from whether the
// element type has a Variable field.
type HasLatentMetric interface {
	DerivedLatentMetric() metric.Metric
}

// Registry supplies the information Derive cannot recover from
// reflect.Type alone: which concrete types implement a given union
// interface (Go has no sum types, so this stands in for Python's
// `typing.Union[...]` introspection).
type Registry struct {
	unions map[reflect.Type][]reflect.Type
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{unions: make(map[reflect.Type][]reflect.Type)}
}

// RegisterUnion declares that values of interface type iface (obtained via
// reflect.TypeOf((*SomeInterface)(nil)).Elem()) are, for derivation
// purposes, one of the given concrete case types. Derive dispatches on a
// value's dynamic type the way the original dispatches on a Python Union's
// member types.
func (r *Registry) RegisterUnion(iface reflect.Type, cases ...reflect.Type) *Registry {
	r.unions[iface] = append(r.unions[iface], cases...)
	return r
}

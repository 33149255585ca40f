// Package derive builds a Metric for a Go type by structural recursion
// over its reflect.Type, mirroring original_source's `derive_metric`
// fallback chain: an attached metric wins outright; otherwise a struct
// derives a Product over its exported fields, a registered union
// interface derives a Union over its case types, a slice or array derives
// a Set- or LatentSetMatching over its element type, and anything left
// with equality derives Discrete. A type satisfying none of these returns
// *mmerr.UnderivableTypeError.
package derive

import (
	"reflect"

	"github.com/grokify/go-metametric/collection"
	"github.com/grokify/go-metametric/constraint"
	"github.com/grokify/go-metametric/metric"
	"github.com/grokify/go-metametric/mmerr"
)

var (
	hasMetricType       = reflect.TypeOf((*HasMetric)(nil)).Elem()
	hasLatentMetricType = reflect.TypeOf((*HasLatentMetric)(nil)).Elem()
	variableType        = reflect.TypeOf(Variable{})
)

// Derive returns the metric for typ under matching constraint kind,
// consulting reg (which may be nil) for union-case registrations.
func Derive(typ reflect.Type, kind constraint.Kind, reg *Registry) (metric.Metric, error) {
	if m, ok := tryAttachedMetric(typ); ok {
		return m, nil
	}

	switch typ.Kind() {
	case reflect.Struct:
		return deriveStruct(typ, kind, reg)

	case reflect.Interface:
		if reg != nil {
			if cases, ok := reg.unions[typ]; ok {
				return deriveUnion(typ, cases, kind, reg)
			}
		}

	case reflect.Slice, reflect.Array:
		return deriveCollection(typ, kind, reg)

	case reflect.Ptr:
		inner, err := Derive(typ.Elem(), kind, reg)
		if err != nil {
			return nil, err
		}
		return metric.Contramap1(inner, derefPtr), nil

	case reflect.Func, reflect.Chan, reflect.UnsafePointer, reflect.Map:
		return nil, mmerr.NewUnderivableTypeError(typ.String())
	}

	// Anything else (numeric kinds, string, bool, interface with no
	// registered cases) has well-defined equality: fall back to Discrete,
	// matching the original's final `getattr(cls, "__eq__", None)` branch.
	return metric.Discrete(), nil
}

func derefPtr(v any) any {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return nil
		}
		return rv.Elem().Interface()
	}
	return v
}

// tryAttachedMetric looks for HasMetric/HasLatentMetric implementations on
// typ or *typ, calling the method on a zero value. A pointer-receiver
// implementation on *typ still attaches to typ itself: the field or
// element being derived is a value of typ, not *typ.
func tryAttachedMetric(typ reflect.Type) (metric.Metric, bool) {
	if typ.Implements(hasMetricType) {
		return reflect.New(typ).Elem().Interface().(HasMetric).DerivedMetric(), true
	}
	if reflect.PointerTo(typ).Implements(hasMetricType) {
		return reflect.New(typ).Interface().(HasMetric).DerivedMetric(), true
	}
	if typ.Implements(hasLatentMetricType) {
		return reflect.New(typ).Elem().Interface().(HasLatentMetric).DerivedLatentMetric(), true
	}
	if reflect.PointerTo(typ).Implements(hasLatentMetricType) {
		return reflect.New(typ).Interface().(HasLatentMetric).DerivedLatentMetric(), true
	}
	return nil, false
}

func deriveStruct(typ reflect.Type, kind constraint.Kind, reg *Registry) (metric.Metric, error) {
	var fields []metric.FieldMetric
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		if !f.IsExported() {
			continue
		}
		fm, err := Derive(f.Type, kind, reg)
		if err != nil {
			return nil, err
		}
		idx := i
		fields = append(fields, metric.FieldMetric{
			Name:   f.Name,
			Metric: fm,
			Get: func(v any) any {
				return reflect.ValueOf(v).Field(idx).Interface()
			},
		})
	}
	return metric.Product(fields...), nil
}

func deriveUnion(iface reflect.Type, cases []reflect.Type, kind constraint.Kind, reg *Registry) (metric.Metric, error) {
	caseMetrics := make([]metric.CaseMetric, 0, len(cases))
	for _, c := range cases {
		cm, err := Derive(c, kind, reg)
		if err != nil {
			return nil, err
		}
		caseMetrics = append(caseMetrics, metric.CaseMetric{Tag: c, Metric: cm})
	}
	tagOf := func(v any) any { return reflect.TypeOf(v) }
	return metric.Union(tagOf, caseMetrics), nil
}

func deriveCollection(typ reflect.Type, kind constraint.Kind, reg *Registry) (metric.Metric, error) {
	elemType := typ.Elem()
	inner, err := Derive(elemType, kind, reg)
	if err != nil {
		return nil, err
	}

	var collMetric metric.Metric
	if hasVariableField(elemType) {
		collMetric = collection.LatentSetMatching(inner, kind, allVariables, bindingsForType(elemType))
	} else {
		collMetric = collection.SetMatching(inner, kind)
	}
	return metric.Contramap1(collMetric, sliceToAny), nil
}

func sliceToAny(v any) any {
	rv := reflect.ValueOf(v)
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out
}

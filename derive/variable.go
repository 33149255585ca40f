package derive

import (
	"reflect"

	"github.com/grokify/go-metametric/collection"
	"github.com/grokify/go-metametric/metric"
)

// Variable marks a field as a latent binding site: a slot whose actual
// identity is not itself scored, but which two matched items must bind
// to the same reference-side counterpart. A record type's Variable-typed
// fields are what makes LatentSetMatching's ILP variable-binding
// constraint meaningful for that type's collections — see
// original_source's `metametric.core.metric.Variable` marker class.
type Variable struct {
	Name string
}

// DerivedLatentMetric always scores 1: a Variable's own name never
// affects a match, only which reference-side Variable it gets bound to
// by the enclosing collection's ILP constraint. Mirrors Variable's
// `latent_metric: ClassVar[Metric] = Metric.from_function(lambda x, y: 1.0)`.
func (Variable) DerivedLatentMetric() metric.Metric {
	return metric.FromFunction(func(_, _ any) float64 { return 1 })
}

// hasVariableField reports whether typ is itself Variable, or a struct
// with a direct field of type Variable — the Go analogue of
// `dataclass_has_variable`, which gates whether a collection's element
// type derives as SetMatching or LatentSetMatching. Unlike allVariables
// below, this only looks one level deep: a collection only needs ILP
// variable binding when the *matched items themselves* carry a Variable
// slot, not when one is buried inside a nested sub-record.
func hasVariableField(typ reflect.Type) bool {
	if typ == variableType {
		return true
	}
	if typ.Kind() != reflect.Struct {
		return false
	}
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		if f.IsExported() && f.Type == variableType {
			return true
		}
	}
	return false
}

// allVariables recursively collects every Variable value reachable from
// v, walking into struct fields, slices/arrays and interface/pointer
// indirections — the Go analogue of the original's `_all_variables`.
func allVariables(v any) []any {
	var out []any
	var walk func(rv reflect.Value)
	walk = func(rv reflect.Value) {
		if !rv.IsValid() {
			return
		}
		switch rv.Kind() {
		case reflect.Interface:
			walk(rv.Elem())
		case reflect.Ptr:
			if !rv.IsNil() {
				walk(rv.Elem())
			}
		case reflect.Struct:
			if rv.Type() == variableType {
				out = append(out, rv.Interface())
				return
			}
			for i := 0; i < rv.NumField(); i++ {
				if rv.Type().Field(i).IsExported() {
					walk(rv.Field(i))
				}
			}
		case reflect.Slice, reflect.Array:
			for i := 0; i < rv.Len(); i++ {
				walk(rv.Index(i))
			}
		}
	}
	walk(reflect.ValueOf(v))
	return out
}

// bindingsForType returns a collection.LatentSetMatching bindingsOf
// function for element type elemType: it reports, for a candidate pair of
// elemType values, the direct Variable-typed fields present on both
// sides — the Go analogue of the original's
// `LatentVariableConstraintBuilder`, which only binds a dataclass's own
// top-level Variable fields, not ones nested inside sub-records.
func bindingsForType(elemType reflect.Type) func(a, b any) []collection.FieldBinding {
	if elemType == variableType {
		return func(a, b any) []collection.FieldBinding {
			return []collection.FieldBinding{{A: a, B: b}}
		}
	}
	return func(a, b any) []collection.FieldBinding {
		ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
		if ra.Kind() != reflect.Struct || rb.Kind() != reflect.Struct {
			return nil
		}
		var out []collection.FieldBinding
		for i := 0; i < ra.NumField(); i++ {
			f := ra.Type().Field(i)
			if !f.IsExported() || f.Type != variableType {
				continue
			}
			bf := rb.FieldByName(f.Name)
			if !bf.IsValid() || bf.Type() != variableType {
				continue
			}
			out = append(out, collection.FieldBinding{A: ra.Field(i).Interface(), B: bf.Interface()})
		}
		return out
	}
}

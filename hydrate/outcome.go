package hydrate

import (
	"encoding/json"
	"math"
	"reflect"
)

// Unresolved marks a class-instance node that could not be built. It is
// distinct from nil, which is a genuine JSON null.
type Unresolved struct {
	// Type is the type name the node declared.
	Type string
}

// IsResolved reports whether v is anything other than Unresolved.
func IsResolved(v any) bool {
	_, unresolved := v.(Unresolved)
	return !unresolved
}

// Truthy reports whether v counts as present for property resolution.
//
// Falsy values are nil, false, numeric zero, NaN, the empty string, a zero
// json.Number, nil pointers, funcs, maps and slices, and Unresolved.
// Non-nil containers are truthy even when empty.
func Truthy(v any) bool {
	switch t := v.(type) {
	case nil, Unresolved:
		return false
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return t != ""
		}

		return f != 0 && !math.IsNaN(f)
	}

	rv := reflect.ValueOf(v)

	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool()
	case reflect.String:
		return rv.Len() > 0
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f != 0 && !math.IsNaN(f)
	case reflect.Func, reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Chan:
		return !rv.IsNil()
	default:
		return true
	}
}

package hydrate

import (
	"encoding/json"
	"reflect"

	"json-converter/expression"
)

// Placeholders used by Render for callable values.
const (
	AccessorPlaceholder = "<accessor>"
	FunctionPlaceholder = "<function>"
)

// Render converts a hydrated tree into data that encoding/json can marshal:
// accessors and functions become placeholders, Unresolved becomes nil, and
// instances implementing json.Marshaler are kept so they render themselves.
// Other instances are returned as is.
func Render(v any) any {
	switch t := v.(type) {
	case []any:
		out := make([]any, len(t))
		for i, element := range t {
			out[i] = Render(element)
		}

		return out

	case map[string]any:
		out := make(map[string]any, len(t))
		for k, element := range t {
			out[k] = Render(element)
		}

		return out

	case Unresolved:
		return nil

	case expression.Accessor:
		return AccessorPlaceholder

	case expression.Function:
		return FunctionPlaceholder

	case json.Marshaler:
		return t
	}

	if v != nil && reflect.TypeOf(v).Kind() == reflect.Func {
		return FunctionPlaceholder
	}

	return v
}

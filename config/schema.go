package config

import (
	"fmt"

	"github.com/invopop/jsonschema"
)

// kindExtra is the jsonschema_extras key carrying a property kind.
const kindExtra = "kind"

// SchemaOf reflects the Go struct T into a PropertySchema. Property names
// follow the json tags; properties without a kind extra are KindValue.
//
// Fields of T should use data types (any, strings, numbers, maps, slices);
// func and chan fields are not representable in JSON Schema.
func SchemaOf[T any]() (PropertySchema, error) {
	r := &jsonschema.Reflector{
		DoNotReference:            true,
		ExpandedStruct:            true,
		AllowAdditionalProperties: true,
	}

	s := r.Reflect(new(T))
	if s == nil || s.Type != "object" {
		return nil, fmt.Errorf("%w: props type %T is not a struct", ErrInvalidConfiguration, *new(T))
	}

	schema := make(PropertySchema)
	if s.Properties == nil {
		return schema, nil
	}

	for el := s.Properties.Oldest(); el != nil; el = el.Next() {
		kind := KindValue

		if raw, ok := el.Value.Extras[kindExtra]; ok {
			parsed, err := ParseKind(fmt.Sprint(raw))
			if err != nil {
				return nil, fmt.Errorf("%w: property %q: %w", ErrInvalidConfiguration, el.Key, err)
			}

			kind = parsed
		}

		schema[el.Key] = kind
	}

	return schema, nil
}

// MustSchemaOf is like SchemaOf but panics on error. Intended for package-level
// class registrations.
func MustSchemaOf[T any]() PropertySchema {
	schema, err := SchemaOf[T]()
	if err != nil {
		panic(err)
	}

	return schema
}

package hydrate

import (
	"strings"

	"json-converter/config"
	"json-converter/expression"
)

// AccessorPrefix marks a property as an accessor regardless of its schema.
const AccessorPrefix = "get"

// parseFunc compiles an expression source; see expression.Parse.
type parseFunc func(source string, isAccessor bool) (any, bool)

// invalidFunc is told about string values dropped because they did not compile.
type invalidFunc func(name, source string, kind config.Kind)

// ResolveProperties returns a new map holding the truthy entries of props,
// with accessor and function strings compiled into expressions.
// The schema may be nil.
func ResolveProperties(schema config.PropertySchema, props map[string]any, cfg *config.Configuration) map[string]any {
	return resolveProperties(schema, props, parserFor(cfg), nil)
}

// PropertyKind returns the effective kind of a property: the "get" prefix
// forces KindAccessor, otherwise the declared kind applies.
func PropertyKind(schema config.PropertySchema, name string) config.Kind {
	if strings.HasPrefix(name, AccessorPrefix) {
		return config.KindAccessor
	}

	return schema.KindOf(name)
}

func resolveProperties(
	schema config.PropertySchema,
	props map[string]any,
	parse parseFunc,
	invalid invalidFunc,
) map[string]any {
	resolved := make(map[string]any, len(props))

	for name, value := range props {
		if s, ok := value.(string); ok {
			value = resolveString(PropertyKind(schema, name), name, s, parse, invalid)
		}

		// falsy values are dropped so the consumer's defaults apply
		if Truthy(value) {
			resolved[name] = value
		}
	}

	return resolved
}

func resolveString(kind config.Kind, name, s string, parse parseFunc, invalid invalidFunc) any {
	var isAccessor bool

	switch kind {
	case config.KindAccessor:
		isAccessor = true
	case config.KindFunction:
		isAccessor = false
	default:
		return s
	}

	fn, ok := parse(s, isAccessor)
	if !ok {
		if invalid != nil && s != "" {
			invalid(name, s, kind)
		}

		return nil
	}

	return fn
}

func parserFor(cfg *config.Configuration) parseFunc {
	return func(source string, isAccessor bool) (any, bool) {
		return expression.Parse(source, cfg, isAccessor)
	}
}

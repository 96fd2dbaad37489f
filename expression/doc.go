// Package expression compiles the string mini-language embedded in JSON
// property values into callable Go values.
//
// # Grammar
//
// Expressions are evaluated by github.com/expr-lang/expr and support
// arithmetic, comparison, boolean logic, the ternary operator, member access
// ("d.value", "row['name']") and calls to registered functions:
//
//	x * 2
//	a + 1
//	scale(elevation) > 100 ? 1 : 0
//	COORDINATE_SYSTEM.LNGLAT
//	-
//
// The single dash is the identity accessor.
//
// # Name resolution
//
// Names resolve, from lowest to highest priority, against the configuration's
// enumerations, its functions, and then the input: for accessors the fields of
// the record (when it is a map) plus "datum" bound to the record itself; for
// functions "args" bound to the call arguments.
//
// # Failure policy
//
// Parse never panics and never returns an error: a source that does not
// compile yields ok == false, so that callers can drop the property and fall
// back to a default.
package expression

// Package hydrate converts plain JSON trees into trees of live objects.
//
// A node is dispatched as follows:
//
//   - array: a new []any, elements converted in order
//   - object with a truthy value under the type key: a class instance; the
//     registered constructor receives the remaining properties, converted and
//     then resolved against the class's PropertySchema
//   - any other object: a new map with the same keys, values converted
//   - string, number, boolean, null: returned unchanged
//
// An object naming an unregistered class converts to Unresolved and a warning
// is logged; the rest of the tree is still converted. The only error a
// conversion can return is a configuration error, detected before traversal.
//
// # Property resolution
//
// ResolveProperties decides, per property, whether a string value is an
// expression. Properties declared as accessors (or whose name starts with
// "get") are compiled into expression.Accessor values, properties declared as
// functions into expression.Function values. Falsy values, including
// expressions that fail to compile, are dropped so that the consumer's own
// defaults apply.
package hydrate

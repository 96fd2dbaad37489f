// Package config defines the configuration that drives a hydration pass.
//
// A Configuration is a passive registry: it maps type names to class
// descriptors, and carries the enumerations and functions that string
// expressions may reference. The converter reads it but never mutates it.
//
// # Key types
//
//   - Configuration: type key, class registry, enumerations, functions, logger
//   - Class: constructor plus an optional PropertySchema
//   - PropertySchema: property name to Kind (value, accessor, function)
//
// # Schemas from Go types
//
// SchemaOf reflects a Go struct describing a class's props into a
// PropertySchema. The kind of each property is read from the
// jsonschema_extras tag:
//
//	type scatterplotProps struct {
//		Data        any `json:"data"`
//		GetPosition any `json:"getPosition" jsonschema_extras:"kind=accessor"`
//		OnHover     any `json:"onHover" jsonschema_extras:"kind=function"`
//	}
package config

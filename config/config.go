package config

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
)

// DefaultTypeKey is the JSON property that selects a constructor when
// Configuration.TypeKey is empty.
const DefaultTypeKey = "type"

// ErrInvalidConfiguration is returned, wrapped, for any malformed configuration.
var ErrInvalidConfiguration = errors.New("JSON conversion error: invalid configuration")

// Constructor builds an instance from a resolved property bag.
type Constructor func(props map[string]any) (any, error)

// Class describes a constructible type. Schema may be nil, in which case no
// property has a declared kind.
type Class struct {
	New    Constructor
	Schema PropertySchema
}

// Logger is the sink for non-fatal warnings. *slog.Logger satisfies it.
type Logger interface {
	Warn(msg string, args ...any)
}

// Configuration governs one hydration pass.
type Configuration struct {
	// TypeKey names the JSON property holding the type name.
	// Empty means DefaultTypeKey.
	TypeKey string

	// Classes maps type names to class descriptors. Required.
	Classes map[string]Class

	// Enumerations maps symbolic names to runtime values, e.g. named constants.
	Enumerations map[string]any

	// Functions maps symbolic names to callables or plain values usable from
	// string expressions.
	Functions map[string]any

	// Logger receives warnings. Nil means slog.Default().
	Logger Logger
}

// Validate checks the shape of the configuration. It is called once before
// any traversal.
func (c *Configuration) Validate() error {
	if c == nil {
		return fmt.Errorf("%w: configuration is nil", ErrInvalidConfiguration)
	}

	if c.Classes == nil {
		return fmt.Errorf("%w: classes must be a mapping", ErrInvalidConfiguration)
	}

	for _, name := range c.ClassNames() {
		if c.Classes[name].New == nil {
			return fmt.Errorf("%w: class %q has no constructor", ErrInvalidConfiguration, name)
		}
	}

	return nil
}

// TypeKeyOrDefault returns the effective type key.
func (c *Configuration) TypeKeyOrDefault() string {
	if c.TypeKey == "" {
		return DefaultTypeKey
	}

	return c.TypeKey
}

// LoggerOrDefault returns the effective warning sink.
func (c *Configuration) LoggerOrDefault() Logger {
	if c.Logger == nil {
		return slog.Default()
	}

	return c.Logger
}

// Lookup returns the class registered under name.
func (c *Configuration) Lookup(name string) (Class, bool) {
	class, ok := c.Classes[name]
	return class, ok
}

// ClassNames returns the registered type names in sorted order.
func (c *Configuration) ClassNames() []string {
	names := make([]string, 0, len(c.Classes))
	for name := range c.Classes {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

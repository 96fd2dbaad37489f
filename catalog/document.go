package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"json-converter/config"
)

// Document is the root of a YAML configuration document.
type Document struct {
	// TypeKey overrides config.DefaultTypeKey.
	TypeKey string `yaml:"typeKey,omitempty"`

	// Classes declares the constructible classes by name.
	Classes map[string]ClassDef `yaml:"classes"`

	// Enumerations are named constants, usually nested mappings.
	Enumerations map[string]any `yaml:"enumerations,omitempty"`

	// Constants are bound into the configuration's functions so that
	// expressions can reference them by name.
	Constants map[string]any `yaml:"constants,omitempty"`
}

// ClassDef declares one class.
type ClassDef struct {
	// Props declares property kinds; undeclared properties have no kind.
	Props config.PropertySchema `yaml:"props,omitempty"`
}

// LoadFile loads and parses a YAML configuration document from the given path.
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Document. Shape errors wrap
// config.ErrInvalidConfiguration.
func Parse(data []byte) (*Document, error) {
	var root yaml.Node

	err := yaml.Unmarshal(data, &root)
	if err != nil {
		return nil, fmt.Errorf("failed to parse configuration YAML: %w", err)
	}

	if err := checkShape(&root); err != nil {
		return nil, err
	}

	var doc Document
	if err := root.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}

	applyDefaults(&doc)

	return &doc, nil
}

// checkShape enforces the configuration invariants on the raw node tree,
// where a non-string type key is still observable.
func checkShape(root *yaml.Node) error {
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return fmt.Errorf("%w: classes must be a mapping", config.ErrInvalidConfiguration)
	}

	body := root.Content[0]
	if body.Kind != yaml.MappingNode {
		return fmt.Errorf("%w: configuration must be a mapping, got %v", config.ErrInvalidConfiguration, body.Kind)
	}

	hasClasses := false

	for i := 0; i+1 < len(body.Content); i += 2 {
		key, value := body.Content[i], body.Content[i+1]

		switch key.Value {
		case "typeKey":
			if value.Kind != yaml.ScalarNode || (value.ShortTag() != "!!str" && value.ShortTag() != "!!null") {
				return fmt.Errorf("%w: typeKey must be a string (line %d)", config.ErrInvalidConfiguration, value.Line)
			}

		case "classes":
			if value.Kind != yaml.MappingNode {
				return fmt.Errorf("%w: classes must be a mapping (line %d)", config.ErrInvalidConfiguration, value.Line)
			}

			hasClasses = true
		}
	}

	if !hasClasses {
		return fmt.Errorf("%w: classes must be a mapping", config.ErrInvalidConfiguration)
	}

	return nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(doc *Document) {
	if doc.TypeKey == "" {
		doc.TypeKey = config.DefaultTypeKey
	}

	if doc.Classes == nil {
		doc.Classes = map[string]ClassDef{}
	}
}

// Configuration builds a configuration from the document, with the entries
// of extra layered on top (extra wins on name clashes).
func (d *Document) Configuration(extra config.Configuration) config.Configuration {
	classes := make(map[string]config.Class, len(d.Classes))
	for name, def := range d.Classes {
		classes[name] = Class(name, def.Props)
	}

	base := config.Configuration{
		TypeKey:      d.TypeKey,
		Classes:      classes,
		Enumerations: d.Enumerations,
		Functions:    d.Constants,
	}

	return config.Merge(base, extra)
}

package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:generate go tool stringer -type=Kind -linecomment -output=kind_string.go

// Kind tells the post-processor how to treat a string-valued property.
type Kind int

const (
	KindNone     Kind = iota // none
	KindValue                // value
	KindAccessor             // accessor
	KindFunction             // function

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

// ParseKind parses the textual form used in configuration documents.
func ParseKind(s string) (Kind, error) {
	for k := KindValue; int(k) < KindTotal; k++ {
		if k.String() == s {
			return k, nil
		}
	}

	return KindNone, fmt.Errorf("unknown property kind %q (expected 'value', 'accessor' or 'function')", s)
}

// UnmarshalYAML implements custom YAML unmarshaling for Kind.
func (k *Kind) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("expected property kind string, got %v", node.Kind)
	}

	parsed, err := ParseKind(node.Value)
	if err != nil {
		return err
	}

	*k = parsed

	return nil
}

// MarshalYAML implements custom YAML marshaling for Kind.
func (k Kind) MarshalYAML() (any, error) {
	return k.String(), nil
}

// PropertySchema maps property names to their declared kind.
type PropertySchema map[string]Kind

// KindOf returns the declared kind of a property, or KindNone.
func (s PropertySchema) KindOf(name string) Kind {
	return s[name]
}

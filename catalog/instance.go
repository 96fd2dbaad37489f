package catalog

import (
	"encoding/json"
	"maps"

	"json-converter/config"
	"json-converter/hydrate"
)

// ClassField is the key under which an Instance renders its class name.
const ClassField = "@class"

// Instance is the object built for a class declared in a document.
type Instance struct {
	Class string
	Props map[string]any
}

// Get returns a resolved property.
func (i *Instance) Get(name string) (any, bool) {
	v, ok := i.Props[name]
	return v, ok
}

// MarshalJSON renders the instance with its class name under ClassField.
func (i *Instance) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(i.Props)+1)
	maps.Copy(out, hydrate.Render(i.Props).(map[string]any))
	out[ClassField] = i.Class

	return json.Marshal(out)
}

// Class returns a config.Class building Instances of the named class.
func Class(name string, schema config.PropertySchema) config.Class {
	return config.Class{
		New: func(props map[string]any) (any, error) {
			return &Instance{Class: name, Props: props}, nil
		},
		Schema: schema,
	}
}

package deck

import (
	"errors"
	"maps"

	"json-converter/config"
	"json-converter/hydrate"
)

// DefaultMapStyle is the base map style used when only a map object is given.
const DefaultMapStyle = "mapbox://styles/mapbox/light-v9"

// Top-level prop names the adapter rewrites.
const (
	PropInitialViewState = "initialViewState"
	PropViewState        = "viewState"
	PropMap              = "map"
	PropMapStyle         = "mapStyle"
)

// ErrRootNotObject is returned when the hydrated document is not an object.
var ErrRootNotObject = errors.New("deck: JSON root must be an object")

// Convert hydrates doc and normalizes its top-level props.
func Convert(doc any, cfg *config.Configuration) (map[string]any, error) {
	out, err := hydrate.Convert(doc, cfg)
	if err != nil {
		return nil, err
	}

	props, ok := out.(map[string]any)
	if !ok {
		return nil, ErrRootNotObject
	}

	if initial, ok := props[PropInitialViewState]; ok && !hydrate.Truthy(props[PropViewState]) {
		props[PropViewState] = initial
	}

	normalizeMapProps(props)

	return props, nil
}

// NormalizeMapProps returns a copy of props with map and mapStyle merged into
// a single map object. props is not modified.
func NormalizeMapProps(props map[string]any) map[string]any {
	out := maps.Clone(props)
	if out == nil {
		out = map[string]any{}
	}

	if m, ok := out[PropMap].(map[string]any); ok {
		out[PropMap] = maps.Clone(m)
	}

	normalizeMapProps(out)

	return out
}

// normalizeMapProps rewrites props in place; nested maps it touches must be
// owned by the caller.
func normalizeMapProps(props map[string]any) {
	mapStyle, hasMapStyle := props[PropMapStyle]

	if hydrate.Truthy(props[PropMap]) || hydrate.Truthy(mapStyle) {
		merged := map[string]any{"style": DefaultMapStyle}
		if m, ok := props[PropMap].(map[string]any); ok {
			maps.Copy(merged, m)
		}

		props[PropMap] = merged
	}

	m, ok := props[PropMap].(map[string]any)
	if !ok {
		return
	}

	if hasMapStyle {
		m["style"] = mapStyle
		m["mapStyle"] = mapStyle
		delete(props, PropMapStyle)
	}

	if viewState, ok := props[PropViewState]; ok {
		m["viewState"] = viewState
	}
}

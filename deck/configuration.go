package deck

import (
	"json-converter/catalog"
	"json-converter/config"
)

// View classes registered by default.
const (
	MapView          = "MapView"
	FirstPersonView  = "FirstPersonView"
	OrbitView        = "OrbitView"
	OrthographicView = "OrthographicView"
)

// viewProps lists the props the default views understand. The controller
// may be an object of options, so it stays a plain value.
type viewProps struct {
	ID         string  `json:"id,omitempty"`
	X          any     `json:"x,omitempty"`
	Y          any     `json:"y,omitempty"`
	Width      any     `json:"width,omitempty"`
	Height     any     `json:"height,omitempty"`
	Controller any     `json:"controller,omitempty"`
	ViewState  any     `json:"viewState,omitempty"`
	Fovy       float64 `json:"fovy,omitempty"`
	Near       float64 `json:"near,omitempty"`
	Far        float64 `json:"far,omitempty"`
}

// CoordinateSystem returns the coordinate system values, exposed to
// expressions as COORDINATE_SYSTEM. Each call returns a new map.
func CoordinateSystem() map[string]any {
	return map[string]any{
		"DEFAULT":        -1,
		"LNGLAT":         1,
		"METER_OFFSETS":  2,
		"LNGLAT_OFFSETS": 3,
		"CARTESIAN":      0,
	}
}

// GL returns the WebGL constants most often referenced from layer props.
// Each call returns a new map.
func GL() map[string]any {
	return map[string]any{
		"POINTS":              0x0000,
		"LINES":               0x0001,
		"LINE_STRIP":          0x0003,
		"TRIANGLES":           0x0004,
		"ZERO":                0,
		"ONE":                 1,
		"SRC_ALPHA":           0x0302,
		"ONE_MINUS_SRC_ALPHA": 0x0303,
		"DEPTH_TEST":          0x0B71,
		"BLEND":               0x0BE2,
		"FUNC_ADD":            0x8006,
	}
}

// Configuration returns base layered over the default view classes and
// enumerations. base wins on name clashes; neither base nor the defaults are
// modified.
func Configuration(base config.Configuration) config.Configuration {
	viewSchema := config.MustSchemaOf[viewProps]()

	defaults := config.Configuration{
		Classes: map[string]config.Class{
			MapView:          catalog.Class(MapView, viewSchema),
			FirstPersonView:  catalog.Class(FirstPersonView, viewSchema),
			OrbitView:        catalog.Class(OrbitView, viewSchema),
			OrthographicView: catalog.Class(OrthographicView, viewSchema),
		},
		Enumerations: map[string]any{
			"COORDINATE_SYSTEM": CoordinateSystem(),
			"GL":                GL(),
		},
	}

	return config.Merge(defaults, base)
}

package deck

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"json-converter/catalog"
	"json-converter/config"
	"json-converter/expression"
	"json-converter/hydrate"
	"json-converter/internal/diagnostic"
)

type nopLogger struct{ warnings int }

func (l *nopLogger) Warn(string, ...any) { l.warnings++ }

func decode(t *testing.T, src string) any {
	t.Helper()

	var v any
	require.NoError(t, json.Unmarshal([]byte(src), &v))

	return v
}

func deckConfig(log config.Logger) *config.Configuration {
	cfg := Configuration(config.Configuration{
		Classes: map[string]config.Class{
			"ScatterplotLayer": catalog.Class("ScatterplotLayer", config.PropertySchema{
				"getRadius": config.KindAccessor,
				"radiusFn":  config.KindFunction,
			}),
		},
		Logger: log,
	})

	return &cfg
}

func TestConfiguration(t *testing.T) {
	t.Run("defaults present", func(t *testing.T) {
		cfg := Configuration(config.Configuration{})

		assert.Equal(t, []string{FirstPersonView, MapView, OrbitView, OrthographicView}, cfg.ClassNames())
		assert.Contains(t, cfg.Enumerations, "COORDINATE_SYSTEM")
		assert.Contains(t, cfg.Enumerations, "GL")
		require.NoError(t, cfg.Validate())
	})

	t.Run("base wins", func(t *testing.T) {
		custom := catalog.Class("Custom", nil)
		cfg := Configuration(config.Configuration{
			TypeKey:      "@@type",
			Classes:      map[string]config.Class{MapView: custom},
			Enumerations: map[string]any{"GL": "mine"},
		})

		assert.Equal(t, "@@type", cfg.TypeKey)
		assert.Equal(t, "mine", cfg.Enumerations["GL"])

		view, err := cfg.Classes[MapView].New(nil)
		require.NoError(t, err)
		assert.Equal(t, "Custom", view.(*catalog.Instance).Class)
	})

	t.Run("enumerations not shared", func(t *testing.T) {
		a := Configuration(config.Configuration{})
		a.Enumerations["COORDINATE_SYSTEM"].(map[string]any)["LNGLAT"] = 42

		b := Configuration(config.Configuration{})
		assert.Equal(t, 1, b.Enumerations["COORDINATE_SYSTEM"].(map[string]any)["LNGLAT"])
	})
}

func TestConvert(t *testing.T) {
	t.Run("initial view state copied", func(t *testing.T) {
		props, err := Convert(decode(t, `{"initialViewState": {"zoom": 3}}`), deckConfig(nil))
		require.NoError(t, err)

		assert.Equal(t, map[string]any{"zoom": float64(3)}, props[PropViewState])
		assert.Contains(t, props, PropInitialViewState)
	})

	t.Run("explicit view state kept", func(t *testing.T) {
		props, err := Convert(decode(t, `{"initialViewState": {"zoom": 3}, "viewState": {"zoom": 5}}`), deckConfig(nil))
		require.NoError(t, err)

		assert.Equal(t, map[string]any{"zoom": float64(5)}, props[PropViewState])
	})

	t.Run("views hydrated", func(t *testing.T) {
		props, err := Convert(decode(t, `{"views": [{"type": "MapView", "controller": true}]}`), deckConfig(nil))
		require.NoError(t, err)

		views := props["views"].([]any)
		require.Len(t, views, 1)

		view := views[0].(*catalog.Instance)
		assert.Equal(t, MapView, view.Class)
		assert.Equal(t, true, view.Props["controller"])
	})

	t.Run("root not an object", func(t *testing.T) {
		_, err := Convert(decode(t, `[1, 2]`), deckConfig(nil))
		require.ErrorIs(t, err, ErrRootNotObject)
	})

	t.Run("invalid configuration", func(t *testing.T) {
		_, err := Convert(decode(t, `{}`), &config.Configuration{})
		require.ErrorIs(t, err, config.ErrInvalidConfiguration)
	})
}

func TestNormalizeMapProps(t *testing.T) {
	tests := []struct {
		name  string
		props map[string]any
		want  map[string]any
	}{
		{
			name:  "no map",
			props: map[string]any{"layers": []any{}},
			want:  map[string]any{"layers": []any{}},
		},
		{
			name:  "map flag gets default style",
			props: map[string]any{"map": true},
			want:  map[string]any{"map": map[string]any{"style": DefaultMapStyle}},
		},
		{
			name:  "map style collapsed",
			props: map[string]any{"mapStyle": "dark"},
			want:  map[string]any{"map": map[string]any{"style": "dark", "mapStyle": "dark"}},
		},
		{
			name:  "map object kept",
			props: map[string]any{"map": map[string]any{"style": "streets", "token": "x"}},
			want:  map[string]any{"map": map[string]any{"style": "streets", "token": "x"}},
		},
		{
			name:  "view state forwarded",
			props: map[string]any{"map": true, "viewState": map[string]any{"zoom": 1}},
			want: map[string]any{
				"map":       map[string]any{"style": DefaultMapStyle, "viewState": map[string]any{"zoom": 1}},
				"viewState": map[string]any{"zoom": 1},
			},
		},
		{
			name:  "falsy map style ignored",
			props: map[string]any{"mapStyle": ""},
			want:  map[string]any{"mapStyle": ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeMapProps(tt.props))
		})
	}
}

func TestNormalizeMapPropsDoesNotModifyInput(t *testing.T) {
	inner := map[string]any{"style": "streets"}
	props := map[string]any{"map": inner, "mapStyle": "dark"}

	out := NormalizeMapProps(props)

	assert.Equal(t, map[string]any{"style": "streets"}, inner)
	assert.Contains(t, props, PropMapStyle)
	assert.Equal(t, "dark", out[PropMap].(map[string]any)["style"])
}

func TestConverter(t *testing.T) {
	c, err := NewConverter(deckConfig(nil))
	require.NoError(t, err)

	convert := func(src string) map[string]any {
		t.Helper()

		props, _, err := c.Convert(decode(t, src))
		require.NoError(t, err)

		return props
	}

	first := convert(`{"initialViewState": {"zoom": 3}}`)
	assert.Equal(t, map[string]any{"zoom": float64(3)}, first[PropViewState])
	assert.NotContains(t, first, PropInitialViewState)

	// unchanged initial state leaves the current view alone
	second := convert(`{"initialViewState": {"zoom": 3}}`)
	assert.NotContains(t, second, PropViewState)
	assert.NotContains(t, second, PropInitialViewState)

	third := convert(`{"initialViewState": {"zoom": 4}}`)
	assert.Equal(t, map[string]any{"zoom": float64(4)}, third[PropViewState])

	c.Reset()

	fourth := convert(`{"initialViewState": {"zoom": 4}}`)
	assert.Equal(t, map[string]any{"zoom": float64(4)}, fourth[PropViewState])
}

func TestConverterReportsDiagnostics(t *testing.T) {
	log := &nopLogger{}
	c, err := NewConverter(deckConfig(log))
	require.NoError(t, err)

	props, diags, err := c.Convert(decode(t, `{"views": [{"type": "MapVeiw"}]}`))
	require.NoError(t, err)

	assert.Equal(t, []any{hydrate.Unresolved{Type: "MapVeiw"}}, props["views"])
	assert.True(t, diags.HasWarnings())
	assert.Equal(t, 1, log.warnings)
}

func TestLayers(t *testing.T) {
	log := &nopLogger{}
	cfg := deckConfig(log)
	cfg.Classes["BrokenLayer"] = config.Class{
		New: func(map[string]any) (any, error) { return nil, errors.New("missing data") },
	}

	layers, diags, err := Layers([]any{
		decode(t, `{"type": "ScatterplotLayer", "id": "points", "getRadius": "datum.size * 2", "opacity": 0}`),
		decode(t, `{"type": "ScaterplotLayer", "id": "typo"}`),
		"not a layer",
		decode(t, `{"type": "BrokenLayer"}`),
	}, cfg)
	require.NoError(t, err)
	require.Len(t, layers, 4)

	scatter, ok := layers[0].(*catalog.Instance)
	require.True(t, ok)
	assert.Equal(t, "points", scatter.Props["id"])
	assert.NotContains(t, scatter.Props, "type")
	assert.NotContains(t, scatter.Props, "opacity")

	getRadius, ok := scatter.Props["getRadius"].(expression.Accessor)
	require.True(t, ok)

	radius, err := getRadius(map[string]any{"size": 3})
	require.NoError(t, err)
	assert.Equal(t, 6, radius)

	assert.Equal(t, hydrate.Unresolved{Type: "ScaterplotLayer"}, layers[1])
	assert.Equal(t, hydrate.Unresolved{}, layers[2])
	assert.Equal(t, hydrate.Unresolved{Type: "BrokenLayer"}, layers[3])

	require.Len(t, diags.Warnings, 3)
	assert.Equal(t, 3, log.warnings)
	assert.NotEmpty(t, diags.Pass)

	assert.Equal(t, diagnostic.CodeUnknownClass, diags.Warnings[0].Code)
	assert.Equal(t, "[1]", diags.Warnings[0].Path)
	assert.Equal(t, []string{"ScatterplotLayer"}, diags.Warnings[0].Suggestions)

	assert.Equal(t, diagnostic.CodeInvalidLayer, diags.Warnings[1].Code)
	assert.Equal(t, "[2]", diags.Warnings[1].Path)

	assert.Equal(t, diagnostic.CodeConstructorFailed, diags.Warnings[2].Code)
	assert.Equal(t, "BrokenLayer", diags.Warnings[2].Class)
	assert.Contains(t, diags.Warnings[2].Message, "missing data")
}

func TestLayersInvalidConfiguration(t *testing.T) {
	layers, diags, err := Layers([]any{decode(t, `{"type": "ScatterplotLayer"}`)}, nil)
	require.ErrorIs(t, err, config.ErrInvalidConfiguration)
	assert.Nil(t, layers)
	assert.Nil(t, diags)

	_, _, err = Layers(nil, &config.Configuration{})
	require.ErrorIs(t, err, config.ErrInvalidConfiguration)
}

func TestConverterLayers(t *testing.T) {
	c, err := NewConverter(deckConfig(&nopLogger{}))
	require.NoError(t, err)

	layers, diags := c.Layers([]any{decode(t, `{"type": "ScatterplotLayer", "radiusFn": "1 +"}`)})
	require.Len(t, layers, 1)
	assert.False(t, diags.HasWarnings())

	scatter := layers[0].(*catalog.Instance)
	assert.Equal(t, "ScatterplotLayer", scatter.Class)
	assert.Empty(t, scatter.Props)
}

func TestConverterFalsyInitialViewState(t *testing.T) {
	c, err := NewConverter(deckConfig(nil))
	require.NoError(t, err)

	for i := range 2 {
		props, _, err := c.Convert(decode(t, `{"initialViewState": null}`))
		require.NoError(t, err)

		// a falsy remembered state never counts as unchanged
		assert.Contains(t, props, PropViewState, "conversion %d", i)
		assert.Nil(t, props[PropViewState])
		assert.NotContains(t, props, PropInitialViewState)
	}

	props, _, err := c.Convert(decode(t, `{"initialViewState": {"zoom": 2}}`))
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"zoom": float64(2)}, props[PropViewState])
}

func TestViewSchema(t *testing.T) {
	cfg := Configuration(config.Configuration{})

	for _, name := range []string{MapView, FirstPersonView, OrbitView, OrthographicView} {
		schema := cfg.Classes[name].Schema
		assert.Equal(t, config.KindValue, schema.KindOf("controller"), name)
		assert.Equal(t, config.KindValue, schema.KindOf("viewState"), name)
		assert.Equal(t, config.KindNone, schema.KindOf("getPosition"), name)
	}

	// view props stay plain values even when they look like expressions
	out, err := hydrate.Convert(decode(t, `{"type": "MapView", "id": "a + 1"}`), &cfg)
	require.NoError(t, err)
	assert.Equal(t, "a + 1", out.(*catalog.Instance).Props["id"])
}

func TestConverterExpressionCache(t *testing.T) {
	c, err := NewConverter(deckConfig(nil), hydrate.WithExpressionCache())
	require.NoError(t, err)

	doc := decode(t, `{"layers": [{"type": "ScatterplotLayer", "getRadius": "datum.r"}]}`)

	for range 2 {
		_, _, err := c.Convert(doc)
		require.NoError(t, err)
	}

	assert.Equal(t, 1, c.CachedExpressions())
}

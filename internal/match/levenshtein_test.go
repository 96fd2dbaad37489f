package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a        string
		b        string
		expected int
	}{
		// Identical strings
		{"", "", 0},
		{"a", "a", 0},
		{"MapView", "MapView", 0},

		// Empty vs non-empty
		{"", "abc", 3},
		{"abc", "", 3},

		// Single character operations
		{"a", "b", 1},
		{"a", "ab", 1},
		{"ab", "a", 1},

		// Multiple operations
		{"kitten", "sitting", 3},
		{"saturday", "sunday", 3},

		// Case-sensitive
		{"ABC", "abc", 3},

		// Runes, not bytes
		{"café", "cafe", 1},
		{"日本", "日本語", 1},

		// Type names
		{"ScatterplotLayer", "ScaterplotLayer", 1},
		{"OrbitView", "OrthographicView", 9},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.expected, Levenshtein(tt.a, tt.b))
			assert.Equal(t, tt.expected, Levenshtein(tt.b, tt.a), "symmetry")
		})
	}
}

func TestSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, Similarity("", ""), 1e-9)
	assert.InDelta(t, 1.0, Similarity("ScatterplotLayer", "scatterplot_layer"), 1e-9)
	assert.InDelta(t, 0.0, Similarity("abc", "xyz"), 1e-9)
	assert.InDelta(t, 0.75, Similarity("Pont", "pond"), 1e-9)
}

func TestFold(t *testing.T) {
	tests := map[string]string{
		"ScatterplotLayer":  "scatterplotlayer",
		"scatterplot_layer": "scatterplotlayer",
		"Scatterplot-Layer": "scatterplotlayer",
		"@type":             "type",
		"COORDINATE_SYSTEM": "coordinatesystem",
		"":                  "",
	}

	for in, expected := range tests {
		assert.Equal(t, expected, Fold(in), in)
	}
}

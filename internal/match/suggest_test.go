package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuggest(t *testing.T) {
	classes := []string{"FirstPersonView", "MapView", "OrbitView", "OrthographicView", "ScatterplotLayer"}

	tests := []struct {
		name     string
		input    string
		limit    int
		expected []string
	}{
		{name: "typo", input: "MapVeiw", limit: 3, expected: []string{"MapView"}},
		{name: "case and separators", input: "scatterplot_layer", limit: 3, expected: []string{"ScatterplotLayer"}},
		{name: "nothing close", input: "HexagonLayer", limit: 3, expected: []string{}},
		{name: "zero limit", input: "MapVeiw", limit: 0, expected: nil},
		{name: "exact name is not suggested", input: "MapView", limit: 3, expected: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Suggest(tt.input, classes, tt.limit))
		})
	}
}

func TestSuggestOrdering(t *testing.T) {
	got := Suggest("View", []string{"Views", "Viewx", "Vie"}, 2)
	assert.Equal(t, []string{"Views", "Viewx"}, got)
}

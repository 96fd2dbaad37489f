package match

import (
	"sort"
)

// MinSimilarity is the score a candidate needs to be suggested.
const MinSimilarity = 0.6

type scored struct {
	name  string
	score float64
}

// Suggest returns up to limit candidates similar to name, best first.
// Ties are broken by name for determinism. A candidate equal to name is
// never suggested.
func Suggest(name string, candidates []string, limit int) []string {
	if limit <= 0 {
		return nil
	}

	var ranked []scored

	for _, c := range candidates {
		if c == name {
			continue
		}

		if s := Similarity(name, c); s >= MinSimilarity {
			ranked = append(ranked, scored{name: c, score: s})
		}
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}

		return ranked[i].name < ranked[j].name
	})

	out := make([]string, 0, min(limit, len(ranked)))
	for i := 0; i < len(ranked) && i < limit; i++ {
		out = append(out, ranked[i].name)
	}

	return out
}

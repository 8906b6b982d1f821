package insight

import (
	"sort"

	"FinSentinel/internal/model"
)

// MaxSuggestions caps the primary dashboard feed.
const MaxSuggestions = 5

// Rank returns a copy sorted by confidence score descending. The sort is
// stable, so ranking an already-ranked list is a no-op.
func Rank(insights []model.Insight) []model.Insight {
	ranked := make([]model.Insight, len(insights))
	copy(ranked, insights)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].ConfidenceScore > ranked[j].ConfidenceScore
	})
	return ranked
}

// TopSuggestions ranks and truncates to the suggestion feed size.
func TopSuggestions(insights []model.Insight) []model.Insight {
	ranked := Rank(insights)
	if len(ranked) > MaxSuggestions {
		ranked = ranked[:MaxSuggestions]
	}
	return ranked
}

package analyzer

import (
	"math"
	"sort"

	"FinSentinel/internal/model"
	"FinSentinel/internal/stats"
)

// minTrendPoints is the minimum series length (exclusive) for a trend call.
const minTrendPoints = 7

// AnalyzeTrend classifies productivity trend direction and strength.
// Returns nil when there are 7 or fewer daily points, or when no day carried
// any tasks: completion rates over an all-idle window are not a trend.
func AnalyzeTrend(points []model.DailyPoint) *model.ProductivityTrend {
	if len(points) <= minTrendPoints {
		return nil
	}
	hasTasks := false
	for _, p := range points {
		if p.TotalTasks > 0 {
			hasTasks = true
			break
		}
	}
	if !hasTasks {
		return nil
	}

	chrono := make([]model.DailyPoint, len(points))
	copy(chrono, points)
	sort.SliceStable(chrono, func(i, j int) bool {
		return chrono[i].Date.Before(chrono[j].Date)
	})

	rates := make([]float64, len(chrono))
	for i, p := range chrono {
		rates[i] = p.CompletionRate
	}

	// Floor-based split: first len/2 vs last len/2, so for odd lengths the
	// middle element belongs to neither half.
	half := len(rates) / 2
	firstAvg := stats.Mean(rates[:half])
	secondAvg := stats.Mean(rates[len(rates)-half:])

	// Lower volatility across the whole series means more trust in the
	// direction call, floored at 0.3.
	confidence := math.Max(0.3, 1.0-stats.Variance(rates))

	return &model.ProductivityTrend{
		AverageCompletionRate: stats.Mean(rates),
		IsImproving:           secondAvg > firstAvg,
		Strength:              math.Abs(secondAvg - firstAvg),
		Confidence:            confidence,
	}
}

package analyzer

import (
	"time"

	"FinSentinel/internal/model"
	"FinSentinel/internal/stats"
)

// Analyze runs the full correlation pass over an assembled daily series:
// productivity-spending correlation, weekend pattern, optimal range, and
// trend. The result is an immutable snapshot owned by this run.
func Analyze(points []model.DailyPoint, now time.Time) *model.CorrelationResult {
	rates := make([]float64, len(points))
	spends := make([]float64, len(points))
	daysWithActivity := 0
	for i, p := range points {
		rates[i] = p.CompletionRate
		spends[i] = p.Spend
		if p.TotalTasks > 0 || p.Spend > 0 {
			daysWithActivity++
		}
	}

	result := &model.CorrelationResult{
		Coefficient:    stats.PearsonCorrelation(rates, spends),
		WeekendPattern: DetectWeekendPattern(points),
		OptimalRange:   DetectOptimalRange(points),
		Trend:          AnalyzeTrend(points),
		Series:         points,
		ComputedAt:     now,
	}

	// Confidence grows with both window coverage and how many days actually
	// carried data.
	if len(points) > 0 {
		sample := stats.Clamp(float64(len(points))/30, 0, 1)
		activity := float64(daysWithActivity) / float64(len(points))
		result.OverallConfidence = stats.Clamp((sample+activity)/2, 0, 1)
	}

	return result
}

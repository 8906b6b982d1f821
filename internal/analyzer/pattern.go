package analyzer

import (
	"sort"

	"FinSentinel/internal/model"
	"FinSentinel/internal/stats"
)

const (
	// weekendDaysPerMonth is the assumed number of weekend days in a month
	// when projecting savings from trimming weekend overspend.
	weekendDaysPerMonth = 8

	// baselineCompletionRate is the neutral productivity level the optimal
	// spending range is compared against.
	baselineCompletionRate = 0.5

	// optimalRangeTopDays is how many top-productivity days feed the optimal
	// spending range.
	optimalRangeTopDays = 10
)

// DetectWeekendPattern partitions the series by weekend flag and compares
// average spend between the two partitions.
func DetectWeekendPattern(points []model.DailyPoint) model.WeekendSpendingPattern {
	var weekday, weekend []float64
	for _, p := range points {
		if p.IsWeekend {
			weekend = append(weekend, p.Spend)
		} else {
			weekday = append(weekday, p.Spend)
		}
	}

	avgWeekday := stats.Mean(weekday)
	avgWeekend := stats.Mean(weekend)

	relative := 0.0
	if avgWeekday > 0 {
		relative = (avgWeekend - avgWeekday) / avgWeekday
	}

	savings := relative * avgWeekday * weekendDaysPerMonth
	if savings < 0 {
		savings = 0
	}

	return model.WeekendSpendingPattern{
		AvgWeekday:              avgWeekday,
		AvgWeekend:              avgWeekend,
		RelativeIncrease:        relative,
		ProjectedMonthlySavings: savings,
	}
}

// DetectOptimalRange finds the spending band shared by the most productive
// days. Returns nil when the series is empty or no day recorded any activity:
// a band derived from all-idle days carries no signal.
func DetectOptimalRange(points []model.DailyPoint) *model.OptimalSpendingRange {
	active := false
	for _, p := range points {
		if p.TotalTasks > 0 || p.Spend > 0 {
			active = true
			break
		}
	}
	if !active {
		return nil
	}

	sorted := make([]model.DailyPoint, len(points))
	copy(sorted, points)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CompletionRate > sorted[j].CompletionRate
	})

	top := sorted
	if len(top) > optimalRangeTopDays {
		top = top[:optimalRangeTopDays]
	}

	minSpend, maxSpend := top[0].Spend, top[0].Spend
	spends := make([]float64, len(top))
	rates := make([]float64, len(top))
	for i, p := range top {
		spends[i] = p.Spend
		rates[i] = p.CompletionRate
		if p.Spend < minSpend {
			minSpend = p.Spend
		}
		if p.Spend > maxSpend {
			maxSpend = p.Spend
		}
	}

	avgRate := stats.Mean(rates)

	// Tighter spend clustering among top performers means higher confidence,
	// floored at 50.
	confidence := stats.Clamp(100-2*stats.Variance(spends), 50, 100)

	return &model.OptimalSpendingRange{
		MinAmount:              minSpend,
		MaxAmount:              maxSpend,
		AvgProductivityInRange: avgRate,
		Confidence:             confidence,
		ProductivityBoost:      avgRate - baselineCompletionRate,
	}
}

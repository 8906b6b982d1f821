package forecast

import (
	"sort"
	"time"

	"FinSentinel/internal/model"
	"FinSentinel/internal/stats"
)

// patternSampleTarget is the transaction count at which the sample-size part
// of the pattern confidence saturates.
const patternSampleTarget = 30

// BuildPattern summarizes one category's historical transactions into a
// SpendingPattern. Returns nil when the category has no transactions.
func BuildPattern(categoryID string, txs []model.Transaction, now time.Time) *model.SpendingPattern {
	var amounts []float64
	var catTxs []model.Transaction
	for _, tx := range txs {
		if tx.CategoryID != categoryID || tx.Type != model.TxExpense {
			continue
		}
		catTxs = append(catTxs, tx)
		amounts = append(amounts, tx.Amount)
	}
	if len(catTxs) == 0 {
		return nil
	}

	pattern := &model.SpendingPattern{
		CategoryID:    categoryID,
		AverageAmount: stats.Mean(amounts),
		Frequency:     len(catTxs),
	}

	// Per-weekday distribution, normalized to sum 1.
	var weekdayCounts [7]int
	for _, tx := range catTxs {
		weekdayCounts[int(tx.Date.Weekday())]++
	}
	for i, c := range weekdayCounts {
		pattern.DayOfWeekDistribution[i] = float64(c) / float64(len(catTxs))
	}

	pattern.MonthlyTrend = monthlyTotals(catTxs)
	pattern.SeasonalFactor = seasonalFactor(catTxs, now)
	pattern.ConfidenceScore = patternConfidence(amounts)

	return pattern
}

// monthlyTotals returns per-month spend totals ordered oldest first.
func monthlyTotals(txs []model.Transaction) []float64 {
	totals := map[string]float64{}
	var keys []string
	for _, tx := range txs {
		k := tx.Date.Format("2006-01")
		if _, ok := totals[k]; !ok {
			keys = append(keys, k)
		}
		totals[k] += tx.Amount
	}
	sort.Strings(keys)
	out := make([]float64, len(keys))
	for i, k := range keys {
		out[i] = totals[k]
	}
	return out
}

// seasonalFactor compares the current calendar month's average transaction
// against the overall average. Defaults to 1 when the current month has no
// history.
func seasonalFactor(txs []model.Transaction, now time.Time) float64 {
	var monthSum, monthN, allSum float64
	for _, tx := range txs {
		allSum += tx.Amount
		if tx.Date.Month() == now.Month() {
			monthSum += tx.Amount
			monthN++
		}
	}
	if monthN == 0 || allSum == 0 {
		return 1
	}
	overallAvg := allSum / float64(len(txs))
	if overallAvg == 0 {
		return 1
	}
	return (monthSum / monthN) / overallAvg
}

// patternConfidence reflects sample size and amount regularity: many
// transactions with consistent amounts score close to 1.
func patternConfidence(amounts []float64) float64 {
	sample := stats.Clamp(float64(len(amounts))/patternSampleTarget, 0, 1)

	regularity := 1.0
	if m := stats.Mean(amounts); m > 0 {
		cv := stats.StdDev(amounts) / m
		regularity = 1 / (1 + cv)
	}

	return stats.Clamp(sample*regularity, 0, 1)
}

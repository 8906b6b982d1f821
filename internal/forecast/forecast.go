package forecast

import (
	"time"

	"FinSentinel/internal/model"
)

// lookbackDays is the transaction history window behind each pattern when
// scaling frequency to a monthly rate.
const lookbackDays = 90

// minHalfWidth keeps the interval non-degenerate so the point estimate is
// always strictly inside (lower, upper).
const minHalfWidth = 1.0

// Forecast projects the next period's spend for one category, conditioned on
// its detected pattern. The confidence interval widens as the pattern
// confidence decreases. Returns nil when no pattern is available.
func Forecast(pattern *model.SpendingPattern, at time.Time) *model.BudgetForecast {
	if pattern == nil {
		return nil
	}

	perMonth := float64(pattern.Frequency) / lookbackDays * 30
	point := pattern.AverageAmount * perMonth * pattern.SeasonalFactor

	halfWidth := point * (1 - pattern.ConfidenceScore)
	if halfWidth < minHalfWidth {
		halfWidth = minHalfWidth
	}

	lower := point - halfWidth
	if lower < 0 {
		lower = 0
	}

	return &model.BudgetForecast{
		CategoryID:     pattern.CategoryID,
		ForecastAmount: point,
		LowerBound:     lower,
		UpperBound:     point + halfWidth,
		ForecastDate:   at.AddDate(0, 1, 0),
		BasedOnPattern: pattern,
	}
}

// ForecastAll builds patterns and forecasts for every category present in the
// transaction history. Per-category forecasts are independent.
func ForecastAll(txs []model.Transaction, now time.Time) map[string]*model.BudgetForecast {
	seen := map[string]bool{}
	out := map[string]*model.BudgetForecast{}
	for _, tx := range txs {
		if tx.Type != model.TxExpense || tx.CategoryID == "" || seen[tx.CategoryID] {
			continue
		}
		seen[tx.CategoryID] = true
		if f := Forecast(BuildPattern(tx.CategoryID, txs, now), now); f != nil {
			out[tx.CategoryID] = f
		}
	}
	return out
}

package health

import (
	"time"

	"FinSentinel/internal/model"
	"FinSentinel/internal/stats"
)

// Weights for the five sub-scores. Adherence and savings carry slightly more
// weight than the rest; the five must sum to 1.
const (
	weightAdherence   = 0.25
	weightConsistency = 0.15
	weightSavings     = 0.25
	weightBalance     = 0.15
	weightTrend       = 0.20
)

// Inputs carries everything the scorer needs for one evaluation.
type Inputs struct {
	Totals model.PeriodTotals
	Series []model.DailyPoint
	Txs    []model.Transaction
	Trend  *model.ProductivityTrend
}

// Score aggregates budget adherence, consistency, savings rate, category
// balance, and trend into a single weighted score with a letter grade.
// Every sub-score is clamped to [0,100] before aggregation.
func Score(in Inputs, now time.Time) model.FinancialHealthScore {
	s := model.FinancialHealthScore{
		BudgetAdherence: adherenceScore(in.Totals),
		Consistency:     consistencyScore(in.Series),
		SavingsRate:     savingsScore(in.Totals),
		CategoryBalance: balanceScore(in.Txs),
		Trend:           trendScore(in.Trend),
		LastCalculated:  now,
	}

	s.Overall = stats.Clamp(
		weightAdherence*s.BudgetAdherence+
			weightConsistency*s.Consistency+
			weightSavings*s.SavingsRate+
			weightBalance*s.CategoryBalance+
			weightTrend*s.Trend,
		0, 100)

	s.Grade = grade(s.Overall)
	s.Status = status(s.Overall)
	return s
}

func adherenceScore(t model.PeriodTotals) float64 {
	if t.PlannedExpense > 0 {
		return stats.Clamp(100*(t.PlannedExpense-t.ActualExpense)/t.PlannedExpense, 0, 100)
	}
	if t.ActualExpense == 0 {
		return 100
	}
	return 0
}

// consistencyScore rewards steady day-to-day spending: the coefficient of
// variation of daily spend maps inversely onto [0,100].
func consistencyScore(points []model.DailyPoint) float64 {
	spends := make([]float64, len(points))
	for i, p := range points {
		spends[i] = p.Spend
	}
	m := stats.Mean(spends)
	if m == 0 {
		return 100
	}
	cv := stats.StdDev(spends) / m
	return stats.Clamp(100-cv*100, 0, 100)
}

func savingsScore(t model.PeriodTotals) float64 {
	if t.ActualIncome <= 0 {
		return 50 // neutral midpoint when there is no income signal
	}
	rate := (t.ActualIncome - t.ActualExpense) / t.ActualIncome
	return stats.Clamp(rate*100, 0, 100)
}

// balanceScore measures how evenly spending spreads across categories: 100
// for a perfectly even spread, 0 when one category takes everything.
func balanceScore(txs []model.Transaction) float64 {
	totals := map[string]float64{}
	var sum float64
	for _, tx := range txs {
		if tx.Type != model.TxExpense {
			continue
		}
		totals[tx.CategoryID] += tx.Amount
		sum += tx.Amount
	}
	n := len(totals)
	if n < 2 || sum == 0 {
		return 50 // not enough categories to judge balance
	}
	maxShare := 0.0
	for _, v := range totals {
		if share := v / sum; share > maxShare {
			maxShare = share
		}
	}
	even := 1.0 / float64(n)
	return stats.Clamp(100*(1-(maxShare-even)/(1-even)), 0, 100)
}

func trendScore(tr *model.ProductivityTrend) float64 {
	if tr == nil {
		return 50
	}
	delta := tr.Strength * 100 * tr.Confidence
	if !tr.IsImproving {
		delta = -delta
	}
	return stats.Clamp(50+delta, 0, 100)
}

func grade(overall float64) string {
	switch {
	case overall >= 90:
		return "A"
	case overall >= 80:
		return "B"
	case overall >= 70:
		return "C"
	case overall >= 60:
		return "D"
	default:
		return "F"
	}
}

func status(overall float64) string {
	switch {
	case overall >= 85:
		return "excellent"
	case overall >= 70:
		return "good"
	case overall >= 50:
		return "fair"
	default:
		return "needs attention"
	}
}

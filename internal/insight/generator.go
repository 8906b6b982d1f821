package insight

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"FinSentinel/internal/model"
	"FinSentinel/internal/stats"
)

// Rule thresholds. Each rule is independent and order-insensitive.
const (
	correlationThreshold    = 0.3
	strongCorrelation       = 0.5
	weekendIncreaseTrigger  = 0.2
	overdueWarningThreshold = 3
	highPerformerRate       = 0.8
	lowPerformerRate        = 0.5
	incomeCelebrationRatio  = 1.2
	incomeShortfallRatio    = 0.8
	expenseOverRatio        = 1.2
	expenseUnderRatio       = 0.8
	momentumConfidence      = 0.7
	correctionConfidence    = 0.6
	forecastOverrunRatio    = 1.1
)

// Inputs gathers everything the rule engine evaluates in one run.
type Inputs struct {
	Correlation  *model.CorrelationResult
	Forecasts    map[string]*model.BudgetForecast
	Budgets      []model.BudgetPlan
	Health       *model.FinancialHealthScore
	Totals       model.PeriodTotals
	OverdueTasks int
}

// empty reports whether the caller supplied essentially no data, which is
// what gates the single getting-started fallback. A series of all-idle days
// counts as no data.
func (in Inputs) empty() bool {
	noSeries := in.Correlation == nil || !hasActivity(in.Correlation.Series)
	zeroTotals := in.Totals == model.PeriodTotals{}
	return noSeries && zeroTotals && in.OverdueTasks == 0 && len(in.Forecasts) == 0
}

func hasActivity(points []model.DailyPoint) bool {
	for _, p := range points {
		if p.TotalTasks > 0 || p.Spend > 0 {
			return true
		}
	}
	return false
}

// Generate runs every rule against the inputs and returns the resulting
// insights, unranked. An all-empty input yields exactly one fallback insight
// so the consumer-facing list is never empty on first use.
func Generate(in Inputs, now time.Time) []model.Insight {
	var out []model.Insight

	if in.Correlation != nil {
		out = append(out, correlationRules(in.Correlation, now)...)
		out = append(out, weekendRule(in.Correlation.WeekendPattern, now)...)
		out = append(out, optimalRangeRule(in.Correlation.OptimalRange, now)...)
		out = append(out, trendRules(in.Correlation.Trend, now)...)
	}
	out = append(out, overdueRule(in.OverdueTasks, now)...)
	out = append(out, incomeRules(in.Totals, now)...)
	out = append(out, expenseRules(in.Totals, now)...)
	out = append(out, forecastRules(in.Forecasts, in.Budgets, now)...)

	if len(out) == 0 && in.empty() {
		out = append(out, newInsight(model.InsightRecommendation, model.PriorityLow,
			"Getting started",
			"Track a few tasks and transactions and the analysis will pick up from there.",
			50, false, "", now))
	}
	return out
}

func correlationRules(cr *model.CorrelationResult, now time.Time) []model.Insight {
	r := cr.Coefficient
	if r >= -correlationThreshold && r <= correlationThreshold {
		return nil
	}
	switch {
	case r > strongCorrelation:
		return []model.Insight{newInsight(model.InsightProductivity, model.PriorityMedium,
			"Spending fuels your productivity",
			fmt.Sprintf("On your most productive days you also spend more (r=%.2f). Your spending seems to support getting things done.", r),
			stats.Clamp(r*100, 0, 100), false, "", now)}
	case r < -strongCorrelation:
		return []model.Insight{newInsight(model.InsightWarning, model.PriorityHigh,
			"Spending drags your productivity",
			fmt.Sprintf("Higher-spend days line up with fewer completed tasks (r=%.2f). Watch what the money is going to on busy days.", r),
			stats.Clamp(-r*100, 0, 100), true, "", now)}
	default:
		return []model.Insight{newInsight(model.InsightSpendingPattern, model.PriorityLow,
			"Balanced spending and productivity",
			fmt.Sprintf("There is a mild link between your spending and task completion (r=%.2f), nothing to act on yet.", r),
			60, false, "", now)}
	}
}

func weekendRule(pat model.WeekendSpendingPattern, now time.Time) []model.Insight {
	if pat.RelativeIncrease <= weekendIncreaseTrigger {
		return nil
	}
	return []model.Insight{newInsight(model.InsightSpendingPattern, model.PriorityMedium,
		"Weekend spending spike",
		fmt.Sprintf("You spend %.0f%% more on weekends. Evening that out could free up about %.0f per month.",
			pat.RelativeIncrease*100, pat.ProjectedMonthlySavings),
		stats.Clamp(pat.RelativeIncrease*100+50, 0, 90), true, "", now)}
}

func optimalRangeRule(r *model.OptimalSpendingRange, now time.Time) []model.Insight {
	if r == nil {
		return nil
	}
	return []model.Insight{newInsight(model.InsightOptimization, model.PriorityLow,
		"Your productive spending band",
		fmt.Sprintf("Your best days happen when daily spend stays between %.0f and %.0f (avg completion %.0f%%).",
			r.MinAmount, r.MaxAmount, r.AvgProductivityInRange*100),
		r.Confidence, false, "", now)}
}

func overdueRule(overdue int, now time.Time) []model.Insight {
	if overdue <= overdueWarningThreshold {
		return nil
	}
	return []model.Insight{newInsight(model.InsightWarning, model.PriorityHigh,
		"Overdue tasks piling up",
		fmt.Sprintf("You have %d overdue tasks. Knocking out a few would clear the backlog.", overdue),
		85, true, "", now)}
}

func trendRules(tr *model.ProductivityTrend, now time.Time) []model.Insight {
	if tr == nil {
		return nil
	}
	var out []model.Insight

	switch {
	case tr.AverageCompletionRate > highPerformerRate:
		out = append(out, newInsight(model.InsightProductivity, model.PriorityLow,
			"High performer",
			fmt.Sprintf("You complete %.0f%% of your tasks. Keep it up.", tr.AverageCompletionRate*100),
			90, false, "", now))
	case tr.AverageCompletionRate < lowPerformerRate:
		out = append(out, newInsight(model.InsightRecommendation, model.PriorityMedium,
			"Room to boost productivity",
			fmt.Sprintf("Your completion rate sits at %.0f%%. Smaller daily task lists tend to lift it.", tr.AverageCompletionRate*100),
			75, true, "", now))
	}

	if tr.IsImproving && tr.Strength > 0 && tr.Confidence > momentumConfidence {
		out = append(out, newInsight(model.InsightHabit, model.PriorityLow,
			"Momentum building",
			fmt.Sprintf("Your completion rate is trending up (+%.0f%%). The habit is sticking.", tr.Strength*100),
			tr.Confidence*100, false, "", now))
	} else if !tr.IsImproving && tr.Strength > 0 && tr.Confidence > correctionConfidence {
		out = append(out, newInsight(model.InsightWarning, model.PriorityMedium,
			"Productivity slipping",
			fmt.Sprintf("Your completion rate is trending down (-%.0f%%). Worth a course correction.", tr.Strength*100),
			tr.Confidence*100, true, "", now))
	}
	return out
}

func incomeRules(t model.PeriodTotals, now time.Time) []model.Insight {
	if t.PlannedIncome <= 0 {
		return nil
	}
	ratio := t.ActualIncome / t.PlannedIncome
	switch {
	case ratio >= incomeCelebrationRatio:
		return []model.Insight{newInsight(model.InsightFinancial, model.PriorityLow,
			"Income ahead of plan",
			fmt.Sprintf("You earned %.0f%% more than planned this period. Great month.", (ratio-1)*100),
			95, false, "", now)}
	case ratio < incomeShortfallRatio:
		return []model.Insight{newInsight(model.InsightWarning, model.PriorityHigh,
			"Income below target",
			fmt.Sprintf("Income is at %.0f%% of plan. Budgets may need a trim this period.", ratio*100),
			85, true, "", now)}
	}
	return nil
}

func expenseRules(t model.PeriodTotals, now time.Time) []model.Insight {
	if t.PlannedExpense <= 0 {
		return nil
	}
	ratio := t.ActualExpense / t.PlannedExpense
	switch {
	case ratio > expenseOverRatio:
		return []model.Insight{newInsight(model.InsightBudgetAlert, model.PriorityUrgent,
			"Over budget",
			fmt.Sprintf("Spending is %.0f%% over plan this period. Time to slow down.", (ratio-1)*100),
			90, true, "", now)}
	case ratio <= expenseUnderRatio:
		return []model.Insight{newInsight(model.InsightFinancial, model.PriorityLow,
			"Under budget",
			fmt.Sprintf("Spending is %.0f%% under plan. Nicely done.", (1-ratio)*100),
			85, false, "", now)}
	}
	return nil
}

// forecastRules flags categories whose next-period projection exceeds the
// planned budget. Confidence comes from the underlying spending pattern.
func forecastRules(forecasts map[string]*model.BudgetForecast, budgets []model.BudgetPlan, now time.Time) []model.Insight {
	var out []model.Insight
	for _, b := range budgets {
		if b.Type != model.TxExpense || b.PlannedAmount <= 0 {
			continue
		}
		fc, ok := forecasts[b.CategoryID]
		if !ok || fc.ForecastAmount <= b.PlannedAmount*forecastOverrunRatio {
			continue
		}
		conf := 70.0
		if fc.BasedOnPattern != nil {
			conf = stats.Clamp(fc.BasedOnPattern.ConfidenceScore*100, 50, 95)
		}
		out = append(out, newInsight(model.InsightBudgetAlert, model.PriorityHigh,
			"Category heading over budget",
			fmt.Sprintf("At the current pace this category lands around %.0f next period, above its %.0f budget.",
				fc.ForecastAmount, b.PlannedAmount),
			conf, true, b.CategoryID, now))
	}
	return out
}

func newInsight(typ model.InsightType, prio model.Priority, title, desc string, confidence float64, actionable bool, categoryID string, now time.Time) model.Insight {
	return model.Insight{
		ID:                uuid.NewString(),
		Type:              typ,
		Title:             title,
		Description:       desc,
		Priority:          prio,
		Actionable:        actionable,
		RelatedCategoryID: categoryID,
		ConfidenceScore:   stats.Clamp(confidence, 0, 100),
		CreatedAt:         now,
	}
}

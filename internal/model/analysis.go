package model

import "time"

// WeekendSpendingPattern describes the weekday/weekend spending disparity.
type WeekendSpendingPattern struct {
	AvgWeekday              float64
	AvgWeekend              float64
	RelativeIncrease        float64 // can be negative
	ProjectedMonthlySavings float64 // >= 0
}

// OptimalSpendingRange is the spending band associated with peak productivity,
// derived from the top days by completion rate.
type OptimalSpendingRange struct {
	MinAmount              float64
	MaxAmount              float64
	AvgProductivityInRange float64
	Confidence             float64 // [50,100]
	ProductivityBoost      float64
}

// ProductivityTrend classifies the direction and strength of the completion
// rate over the analysis window.
type ProductivityTrend struct {
	AverageCompletionRate float64
	IsImproving           bool
	Strength              float64 // >= 0
	Confidence            float64 // [0.3,1.0]
}

// CorrelationResult is the immutable output of one analysis pass over the
// daily series. A fresh run supersedes the previous result wholesale.
type CorrelationResult struct {
	Coefficient       float64 // [-1,1]
	WeekendPattern    WeekendSpendingPattern
	OptimalRange      *OptimalSpendingRange
	Trend             *ProductivityTrend
	Series            []DailyPoint
	ComputedAt        time.Time
	OverallConfidence float64 // [0,1]
}

// SpendingPattern summarizes one category's historical transaction behavior.
type SpendingPattern struct {
	CategoryID            string
	AverageAmount         float64
	Frequency             int
	DayOfWeekDistribution [7]float64 // sums to 1
	MonthlyTrend          []float64
	SeasonalFactor        float64
	ConfidenceScore       float64 // [0,1]
}

// BudgetForecast is a next-period projection for one category. Recomputed
// each run, never mutated in place.
type BudgetForecast struct {
	CategoryID     string
	ForecastAmount float64
	LowerBound     float64
	UpperBound     float64
	ForecastDate   time.Time
	BasedOnPattern *SpendingPattern
}

// FinancialHealthScore is a weighted composite of five sub-scores,
// each in [0,100].
type FinancialHealthScore struct {
	Overall         float64
	BudgetAdherence float64
	Consistency     float64
	SavingsRate     float64
	CategoryBalance float64
	Trend           float64
	Grade           string
	Status          string
	LastCalculated  time.Time
}

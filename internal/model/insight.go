package model

import "time"

// InsightType categorizes a generated insight.
type InsightType string

const (
	InsightBudgetAlert     InsightType = "BUDGET_ALERT"
	InsightSpendingPattern InsightType = "SPENDING_PATTERN"
	InsightAnomaly         InsightType = "ANOMALY"
	InsightRecommendation  InsightType = "RECOMMENDATION"
	InsightForecast        InsightType = "FORECAST"
	InsightHealthScore     InsightType = "HEALTH_SCORE"
	InsightHabit           InsightType = "HABIT"
	InsightWarning         InsightType = "WARNING"
	InsightOptimization    InsightType = "OPTIMIZATION"
	InsightProductivity    InsightType = "PRODUCTIVITY"
	InsightFinancial       InsightType = "FINANCIAL"
)

// Priority orders insights for delivery and display.
type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
	PriorityUrgent Priority = "URGENT"
)

// Insight is a typed, confidence-scored, human-readable finding. All fields
// except IsRead are set at creation and never changed; corrections are
// modeled as a new insight.
type Insight struct {
	ID                string
	Type              InsightType
	Title             string
	Description       string
	Priority          Priority
	Actionable        bool
	RelatedCategoryID string
	ConfidenceScore   float64 // [0,100]
	CreatedAt         time.Time
	IsRead            bool
}

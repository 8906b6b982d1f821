package notifier

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"FinSentinel/internal/model"
)

// FromInsight converts one insight into its delivery payload.
func FromInsight(ins model.Insight) *Notification {
	return &Notification{
		Title:      ins.Title,
		Body:       ins.Description,
		Priority:   ins.Priority,
		CategoryID: ins.RelatedCategoryID,
	}
}

// FormatHealthSummary renders the health score for display surfaces.
func FormatHealthSummary(h model.FinancialHealthScore) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Financial health: %s (%.0f/100, %s)\n\n", h.Grade, h.Overall, h.Status))
	b.WriteString(fmt.Sprintf("  budget adherence: %.0f\n", h.BudgetAdherence))
	b.WriteString(fmt.Sprintf("  consistency:      %.0f\n", h.Consistency))
	b.WriteString(fmt.Sprintf("  savings rate:     %.0f\n", h.SavingsRate))
	b.WriteString(fmt.Sprintf("  category balance: %.0f\n", h.CategoryBalance))
	b.WriteString(fmt.Sprintf("  trend:            %.0f\n", h.Trend))
	b.WriteString(fmt.Sprintf("\nlast calculated %s", humanize.Time(h.LastCalculated)))
	return b.String()
}

// FormatForecast renders one category forecast line.
func FormatForecast(f *model.BudgetForecast) string {
	return fmt.Sprintf("%s: ~%s next period (between %s and %s)",
		f.CategoryID,
		humanize.CommafWithDigits(f.ForecastAmount, 0),
		humanize.CommafWithDigits(f.LowerBound, 0),
		humanize.CommafWithDigits(f.UpperBound, 0))
}

// FormatSuggestions renders the top suggestion feed as a plain-text digest.
func FormatSuggestions(suggestions []model.Insight) string {
	if len(suggestions) == 0 {
		return "No suggestions right now."
	}
	var b strings.Builder
	b.WriteString("Top suggestions:\n")
	for i, s := range suggestions {
		b.WriteString(fmt.Sprintf("%d. [%s] %s - %s (%.0f%%)\n", i+1, s.Priority, s.Title, s.Description, s.ConfidenceScore))
	}
	return b.String()
}

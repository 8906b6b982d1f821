package notifier

import (
	"strings"
	"testing"
	"time"

	"FinSentinel/internal/model"
)

func TestFromInsight(t *testing.T) {
	ins := model.Insight{
		Title:             "Over budget",
		Description:       "Spending is 30% over plan.",
		Priority:          model.PriorityUrgent,
		RelatedCategoryID: "groceries",
	}
	n := FromInsight(ins)
	if n.Title != ins.Title || n.Body != ins.Description {
		t.Errorf("payload mismatch: %+v", n)
	}
	if n.Priority != model.PriorityUrgent || n.CategoryID != "groceries" {
		t.Errorf("metadata mismatch: %+v", n)
	}
}

func TestFormatHealthSummary(t *testing.T) {
	h := model.FinancialHealthScore{
		Overall: 82, Grade: "B", Status: "good",
		BudgetAdherence: 90, Consistency: 75, SavingsRate: 80,
		CategoryBalance: 70, Trend: 85,
		LastCalculated: time.Now(),
	}
	out := FormatHealthSummary(h)
	for _, want := range []string{"B", "82/100", "good", "budget adherence"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestFormatForecast(t *testing.T) {
	f := &model.BudgetForecast{
		CategoryID: "groceries", ForecastAmount: 1520.4,
		LowerBound: 1200, UpperBound: 1840,
	}
	out := FormatForecast(f)
	for _, want := range []string{"groceries", "1,520", "1,200", "1,840"} {
		if !strings.Contains(out, want) {
			t.Errorf("forecast line missing %q: %s", want, out)
		}
	}
}

func TestFormatSuggestions_Empty(t *testing.T) {
	if out := FormatSuggestions(nil); !strings.Contains(out, "No suggestions") {
		t.Errorf("unexpected empty output: %s", out)
	}
}

package insight

import (
	"testing"
	"time"

	"FinSentinel/internal/model"
)

func TestCooldown_SuppressesRepeat(t *testing.T) {
	c := NewCooldown(time.Hour)
	ins := model.Insight{Type: model.InsightBudgetAlert, RelatedCategoryID: "groceries"}
	t0 := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

	if !c.Allow(ins, t0) {
		t.Fatal("first delivery must be allowed")
	}
	if c.Allow(ins, t0.Add(30*time.Minute)) {
		t.Fatal("repeat within the window must be suppressed")
	}
	if !c.Allow(ins, t0.Add(61*time.Minute)) {
		t.Fatal("delivery after the window must be allowed again")
	}
}

func TestCooldown_KeyIsTypePlusCategory(t *testing.T) {
	c := NewCooldown(time.Hour)
	t0 := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

	a := model.Insight{Type: model.InsightBudgetAlert, RelatedCategoryID: "groceries"}
	b := model.Insight{Type: model.InsightBudgetAlert, RelatedCategoryID: "utilities"}
	d := model.Insight{Type: model.InsightWarning, RelatedCategoryID: "groceries"}

	if !c.Allow(a, t0) {
		t.Fatal("first delivery must be allowed")
	}
	if !c.Allow(b, t0) {
		t.Error("different category must not be suppressed")
	}
	if !c.Allow(d, t0) {
		t.Error("different type must not be suppressed")
	}
	if c.Allow(a, t0.Add(time.Minute)) {
		t.Error("same pair must be suppressed")
	}
}

func TestNewCooldown_DefaultWindow(t *testing.T) {
	c := NewCooldown(0)
	if c.window != DefaultCooldown {
		t.Errorf("expected default window %v, got %v", DefaultCooldown, c.window)
	}
}

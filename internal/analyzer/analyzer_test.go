package analyzer

import (
	"math"
	"testing"
	"time"

	"FinSentinel/internal/model"
)

func day(offset int) time.Time {
	return time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, offset)
}

func makeSeries(n int, rate func(i int) float64, spend func(i int) float64) []model.DailyPoint {
	points := make([]model.DailyPoint, n)
	for i := 0; i < n; i++ {
		d := day(i)
		wd := d.Weekday()
		points[i] = model.DailyPoint{
			Date:           d,
			CompletionRate: rate(i),
			TotalTasks:     1,
			Spend:          spend(i),
			IsWeekend:      wd == time.Saturday || wd == time.Sunday,
		}
	}
	return points
}

func TestDetectWeekendPattern(t *testing.T) {
	points := makeSeries(14,
		func(i int) float64 { return 0.5 },
		func(i int) float64 { return 10 })
	for i := range points {
		if points[i].IsWeekend {
			points[i].Spend = 15
		}
	}
	pat := DetectWeekendPattern(points)
	if pat.AvgWeekday != 10 {
		t.Errorf("expected weekday avg 10, got %v", pat.AvgWeekday)
	}
	if pat.AvgWeekend != 15 {
		t.Errorf("expected weekend avg 15, got %v", pat.AvgWeekend)
	}
	if math.Abs(pat.RelativeIncrease-0.5) > 1e-9 {
		t.Errorf("expected relative increase 0.5, got %v", pat.RelativeIncrease)
	}
	// 0.5 * 10 * 8 weekend days
	if math.Abs(pat.ProjectedMonthlySavings-40) > 1e-9 {
		t.Errorf("expected projected savings 40, got %v", pat.ProjectedMonthlySavings)
	}
}

func TestDetectWeekendPattern_ZeroWeekday(t *testing.T) {
	points := makeSeries(14,
		func(i int) float64 { return 0.5 },
		func(i int) float64 { return 0 })
	pat := DetectWeekendPattern(points)
	if pat.RelativeIncrease != 0 {
		t.Errorf("zero weekday spend: expected relative increase 0, got %v", pat.RelativeIncrease)
	}
	if pat.ProjectedMonthlySavings != 0 {
		t.Errorf("expected no projected savings, got %v", pat.ProjectedMonthlySavings)
	}
}

func TestDetectWeekendPattern_NegativeIncreaseClampsSavings(t *testing.T) {
	points := makeSeries(14,
		func(i int) float64 { return 0.5 },
		func(i int) float64 { return 20 })
	for i := range points {
		if points[i].IsWeekend {
			points[i].Spend = 5
		}
	}
	pat := DetectWeekendPattern(points)
	if pat.RelativeIncrease >= 0 {
		t.Errorf("expected negative relative increase, got %v", pat.RelativeIncrease)
	}
	if pat.ProjectedMonthlySavings != 0 {
		t.Errorf("savings must never be negative, got %v", pat.ProjectedMonthlySavings)
	}
}

func TestDetectOptimalRange(t *testing.T) {
	points := makeSeries(30,
		func(i int) float64 { return float64(i) / 30 },
		func(i int) float64 { return 25 })
	r := DetectOptimalRange(points)
	if r == nil {
		t.Fatal("expected a range")
	}
	if r.MinAmount != 25 || r.MaxAmount != 25 {
		t.Errorf("expected flat 25 range, got [%v,%v]", r.MinAmount, r.MaxAmount)
	}
	// Constant spend among top days: variance 0, confidence caps at 100.
	if r.Confidence != 100 {
		t.Errorf("expected confidence 100 for flat spend, got %v", r.Confidence)
	}
	// Top 10 of 30 days have rates 20/30..29/30, avg 24.5/30.
	want := 24.5 / 30
	if math.Abs(r.AvgProductivityInRange-want) > 1e-9 {
		t.Errorf("expected avg productivity %v, got %v", want, r.AvgProductivityInRange)
	}
	if math.Abs(r.ProductivityBoost-(want-0.5)) > 1e-9 {
		t.Errorf("expected boost %v, got %v", want-0.5, r.ProductivityBoost)
	}
}

func TestDetectOptimalRange_ConfidenceBounds(t *testing.T) {
	// Wildly scattered spend should floor confidence at 50.
	points := makeSeries(30,
		func(i int) float64 { return float64(i) / 30 },
		func(i int) float64 { return float64(i * 37 % 500) })
	r := DetectOptimalRange(points)
	if r == nil {
		t.Fatal("expected a range")
	}
	if r.Confidence < 50 || r.Confidence > 100 {
		t.Errorf("confidence out of [50,100]: %v", r.Confidence)
	}
}

func TestDetectOptimalRange_Empty(t *testing.T) {
	if r := DetectOptimalRange(nil); r != nil {
		t.Errorf("expected nil range for empty series, got %+v", r)
	}
}

func TestDetectOptimalRange_ShortSeries(t *testing.T) {
	points := makeSeries(4,
		func(i int) float64 { return 0.9 },
		func(i int) float64 { return 10 })
	r := DetectOptimalRange(points)
	if r == nil {
		t.Fatal("expected a range even for short series")
	}
}

func TestAnalyzeTrend_TooShort(t *testing.T) {
	points := makeSeries(7, func(i int) float64 { return 0.5 }, func(i int) float64 { return 0 })
	if tr := AnalyzeTrend(points); tr != nil {
		t.Errorf("expected no trend for 7 points, got %+v", tr)
	}
}

func TestAnalyzeTrend_Improving(t *testing.T) {
	points := makeSeries(10,
		func(i int) float64 { return float64(i) / 10 },
		func(i int) float64 { return 0 })
	tr := AnalyzeTrend(points)
	if tr == nil {
		t.Fatal("expected a trend")
	}
	if !tr.IsImproving {
		t.Error("rising rates should be improving")
	}
	if tr.Strength <= 0 {
		t.Errorf("expected positive strength, got %v", tr.Strength)
	}
	if tr.Confidence < 0.3 || tr.Confidence > 1.0 {
		t.Errorf("confidence out of [0.3,1.0]: %v", tr.Confidence)
	}
}

func TestAnalyzeTrend_ConfidenceFloor(t *testing.T) {
	// Alternating extremes: high variance pushes raw confidence below the floor.
	points := makeSeries(20,
		func(i int) float64 {
			if i%2 == 0 {
				return 0
			}
			return 1
		},
		func(i int) float64 { return 0 })
	tr := AnalyzeTrend(points)
	if tr == nil {
		t.Fatal("expected a trend")
	}
	if tr.Confidence < 0.3 {
		t.Errorf("confidence below floor: %v", tr.Confidence)
	}
}

func TestAnalyzeTrend_ChronologicalSortIndependence(t *testing.T) {
	points := makeSeries(10,
		func(i int) float64 { return float64(i) / 10 },
		func(i int) float64 { return 0 })
	// Reverse to recency order, as the assembler emits.
	reversed := make([]model.DailyPoint, len(points))
	for i, p := range points {
		reversed[len(points)-1-i] = p
	}
	a, b := AnalyzeTrend(points), AnalyzeTrend(reversed)
	if a.IsImproving != b.IsImproving || math.Abs(a.Strength-b.Strength) > 1e-9 {
		t.Errorf("trend should not depend on input order: %+v vs %+v", a, b)
	}
}

func TestAnalyze_FlatSeriesHasZeroCorrelation(t *testing.T) {
	points := makeSeries(30,
		func(i int) float64 { return 0.5 },
		func(i int) float64 { return 20 })
	res := Analyze(points, day(30))
	if res.Coefficient != 0 {
		t.Errorf("flat series: expected correlation 0, got %v", res.Coefficient)
	}
	if res.OverallConfidence < 0 || res.OverallConfidence > 1 {
		t.Errorf("overall confidence out of [0,1]: %v", res.OverallConfidence)
	}
}

func TestAnalyze_EmptySeries(t *testing.T) {
	res := Analyze(nil, day(0))
	if res.Coefficient != 0 || res.OverallConfidence != 0 {
		t.Errorf("empty series: expected zeros, got %+v", res)
	}
}

func TestDetectOptimalRange_AllIdleReturnsNil(t *testing.T) {
	points := makeSeries(30,
		func(i int) float64 { return 0 },
		func(i int) float64 { return 0 })
	for i := range points {
		points[i].TotalTasks = 0
	}
	if r := DetectOptimalRange(points); r != nil {
		t.Errorf("a window with no activity must not yield a range, got %+v", r)
	}
}

func TestAnalyzeTrend_NoTasksReturnsNil(t *testing.T) {
	points := makeSeries(14,
		func(i int) float64 { return 0 },
		func(i int) float64 { return 5 })
	for i := range points {
		points[i].TotalTasks = 0
	}
	if tr := AnalyzeTrend(points); tr != nil {
		t.Errorf("a window with no tasks must not yield a trend, got %+v", tr)
	}
}

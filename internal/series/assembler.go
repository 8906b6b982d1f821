package series

import (
	"time"

	"FinSentinel/internal/model"
)

// DefaultWindowDays is the default trailing analysis window, inclusive of today.
const DefaultWindowDays = 30

// Assembler builds the rolling daily observation series from raw task and
// transaction records.
type Assembler struct {
	WindowDays int
}

// NewAssembler creates an Assembler with the given window length.
// Non-positive values fall back to DefaultWindowDays.
func NewAssembler(windowDays int) *Assembler {
	if windowDays <= 0 {
		windowDays = DefaultWindowDays
	}
	return &Assembler{WindowDays: windowDays}
}

// Assemble produces exactly WindowDays points ordered by recency (today
// first), iterating backward day by day. Days with no activity still appear,
// with a completion rate of 0 and spend of 0.
func (a *Assembler) Assemble(tasks []model.Task, txs []model.Transaction, now time.Time) []model.DailyPoint {
	points := make([]model.DailyPoint, 0, a.WindowDays)
	for i := 0; i < a.WindowDays; i++ {
		day := dayStart(now.AddDate(0, 0, -i))
		next := day.AddDate(0, 0, 1)

		completed, total := 0, 0
		for _, t := range tasks {
			if t.DueDate == nil {
				continue
			}
			if t.DueDate.Before(day) || !t.DueDate.Before(next) {
				continue
			}
			total++
			if t.IsCompleted {
				completed++
			}
		}

		spend := 0.0
		for _, tx := range txs {
			if tx.Type != model.TxExpense {
				continue
			}
			if tx.Date.Before(day) || !tx.Date.Before(next) {
				continue
			}
			spend += tx.Amount
		}

		// max(total, 1) keeps zero-task days at rate 0 instead of NaN.
		points = append(points, model.DailyPoint{
			Date:           day,
			TasksCompleted: completed,
			TotalTasks:     total,
			CompletionRate: float64(completed) / float64(max(total, 1)),
			Spend:          spend,
			IsWeekend:      isWeekend(day),
		})
	}
	return points
}

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func isWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

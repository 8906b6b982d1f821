package model

import "time"

// DailyPoint is one day's behavioral/financial observation. Immutable once
// assembled; the whole series is regenerated on each analysis run.
type DailyPoint struct {
	Date           time.Time
	TasksCompleted int
	TotalTasks     int
	CompletionRate float64 // [0,1]
	Spend          float64 // >= 0
	IsWeekend      bool
}

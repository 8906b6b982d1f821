package store

import (
	"time"

	"FinSentinel/internal/model"
)

// Store provides read-only snapshots of the raw task, transaction, and budget
// records the engine analyzes. Implementations must not let the engine mutate
// collaborator data.
type Store interface {
	ListTasks(from, to time.Time) ([]model.Task, error)
	ListTransactions(from, to time.Time) ([]model.Transaction, error)
	ListBudgets() ([]model.BudgetPlan, error)
	PeriodTotals(from, to time.Time) (model.PeriodTotals, error)
	Close() error
}

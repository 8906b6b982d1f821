package model

import "time"

// TransactionType distinguishes money in from money out.
type TransactionType string

const (
	TxIncome  TransactionType = "INCOME"
	TxExpense TransactionType = "EXPENSE"
)

// Task is a read-only snapshot of a task record from the task collaborator.
type Task struct {
	ID            string
	DueDate       *time.Time
	CreatedDate   *time.Time
	CompletedDate *time.Time
	IsCompleted   bool
	Priority      int
}

// Transaction is a read-only snapshot of a ledger entry.
type Transaction struct {
	ID         string
	Date       time.Time
	Amount     float64
	CategoryID string
	Type       TransactionType
	Notes      string
}

// BudgetPlan is the planned amount for one category in the active period.
type BudgetPlan struct {
	CategoryID    string
	PlannedAmount float64
	Type          TransactionType
}

// PeriodTotals aggregates plan vs actual over the active accounting period.
type PeriodTotals struct {
	PlannedIncome  float64
	ActualIncome   float64
	PlannedExpense float64
	ActualExpense  float64
}

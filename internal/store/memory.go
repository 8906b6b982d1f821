package store

import (
	"sync"
	"time"

	"FinSentinel/internal/model"
)

// MemoryStore is an in-memory Store used in tests and when no database path
// is configured.
type MemoryStore struct {
	mu      sync.RWMutex
	tasks   []model.Task
	txs     []model.Transaction
	budgets []model.BudgetPlan
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// SeedTasks replaces the task records.
func (s *MemoryStore) SeedTasks(tasks []model.Task) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = append([]model.Task(nil), tasks...)
}

// SeedTransactions replaces the transaction records.
func (s *MemoryStore) SeedTransactions(txs []model.Transaction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.txs = append([]model.Transaction(nil), txs...)
}

// SeedBudgets replaces the budget plans.
func (s *MemoryStore) SeedBudgets(budgets []model.BudgetPlan) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.budgets = append([]model.BudgetPlan(nil), budgets...)
}

func (s *MemoryStore) ListTasks(from, to time.Time) ([]model.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []model.Task
	for _, t := range s.tasks {
		if t.DueDate != nil && (t.DueDate.Before(from) || t.DueDate.After(to)) {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (s *MemoryStore) ListTransactions(from, to time.Time) ([]model.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []model.Transaction
	for _, tx := range s.txs {
		if tx.Date.Before(from) || tx.Date.After(to) {
			continue
		}
		out = append(out, tx)
	}
	return out, nil
}

func (s *MemoryStore) ListBudgets() ([]model.BudgetPlan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.BudgetPlan(nil), s.budgets...), nil
}

func (s *MemoryStore) PeriodTotals(from, to time.Time) (model.PeriodTotals, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var totals model.PeriodTotals
	for _, b := range s.budgets {
		switch b.Type {
		case model.TxIncome:
			totals.PlannedIncome += b.PlannedAmount
		case model.TxExpense:
			totals.PlannedExpense += b.PlannedAmount
		}
	}
	for _, tx := range s.txs {
		if tx.Date.Before(from) || tx.Date.After(to) {
			continue
		}
		switch tx.Type {
		case model.TxIncome:
			totals.ActualIncome += tx.Amount
		case model.TxExpense:
			totals.ActualExpense += tx.Amount
		}
	}
	return totals, nil
}

func (s *MemoryStore) Close() error { return nil }

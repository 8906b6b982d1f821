package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"FinSentinel/internal/model"
)

var (
	from = time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	to   = time.Date(2026, time.March, 31, 23, 59, 59, 0, time.UTC)
)

func TestMemoryStore_PeriodTotals(t *testing.T) {
	s := NewMemoryStore()
	s.SeedBudgets([]model.BudgetPlan{
		{CategoryID: "salary", PlannedAmount: 3000, Type: model.TxIncome},
		{CategoryID: "groceries", PlannedAmount: 400, Type: model.TxExpense},
		{CategoryID: "rent", PlannedAmount: 1200, Type: model.TxExpense},
	})
	s.SeedTransactions([]model.Transaction{
		{ID: "1", Date: from.AddDate(0, 0, 1), Amount: 3100, CategoryID: "salary", Type: model.TxIncome},
		{ID: "2", Date: from.AddDate(0, 0, 2), Amount: 350, CategoryID: "groceries", Type: model.TxExpense},
		{ID: "3", Date: from.AddDate(0, 0, 3), Amount: 1200, CategoryID: "rent", Type: model.TxExpense},
		{ID: "4", Date: from.AddDate(0, -2, 0), Amount: 999, CategoryID: "old", Type: model.TxExpense}, // outside period
	})

	totals, err := s.PeriodTotals(from, to)
	require.NoError(t, err)
	assert.Equal(t, 3000.0, totals.PlannedIncome)
	assert.Equal(t, 1600.0, totals.PlannedExpense)
	assert.Equal(t, 3100.0, totals.ActualIncome)
	assert.Equal(t, 1550.0, totals.ActualExpense)
}

func TestMemoryStore_ListTransactionsFiltersByDate(t *testing.T) {
	s := NewMemoryStore()
	s.SeedTransactions([]model.Transaction{
		{ID: "in", Date: from.AddDate(0, 0, 5), Amount: 10, Type: model.TxExpense},
		{ID: "out", Date: from.AddDate(0, -1, 0), Amount: 10, Type: model.TxExpense},
	})
	txs, err := s.ListTransactions(from, to)
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, "in", txs[0].ID)
}

func TestMemoryStore_ListTasksKeepsUndated(t *testing.T) {
	due := from.AddDate(0, 0, 3)
	s := NewMemoryStore()
	s.SeedTasks([]model.Task{
		{ID: "dated", DueDate: &due},
		{ID: "undated"},
	})
	tasks, err := s.ListTasks(from, to)
	require.NoError(t, err)
	assert.Len(t, tasks, 2)
}

func TestMemoryStore_SeedCopiesInput(t *testing.T) {
	src := []model.Transaction{{ID: "a", Date: from, Amount: 1, Type: model.TxExpense}}
	s := NewMemoryStore()
	s.SeedTransactions(src)
	src[0].Amount = 999

	txs, err := s.ListTransactions(from, to)
	require.NoError(t, err)
	assert.Equal(t, 1.0, txs[0].Amount)
}

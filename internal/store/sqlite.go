package store

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"FinSentinel/internal/model"
)

// SQLiteStore reads the ledger from a SQLite database shared with the host
// application.
type SQLiteStore struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteStore opens (or creates) the ledger database and ensures the
// schema exists.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so the host app can write while the engine reads.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	s := &SQLiteStore{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite ledger opened: %s", dbPath)
	return s, nil
}

func (s *SQLiteStore) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS tasks (
			id           TEXT PRIMARY KEY,
			due_date     INTEGER,
			created_date INTEGER,
			completed_at INTEGER,
			is_completed INTEGER NOT NULL DEFAULT 0,
			priority     INTEGER NOT NULL DEFAULT 0
		)`,
		`CREATE INDEX IF NOT EXISTS idx_tasks_due ON tasks(due_date)`,

		`CREATE TABLE IF NOT EXISTS transactions (
			id          TEXT PRIMARY KEY,
			date        INTEGER NOT NULL,
			amount      REAL NOT NULL,
			category_id TEXT,
			type        TEXT NOT NULL,
			notes       TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_tx_date ON transactions(date)`,

		`CREATE TABLE IF NOT EXISTS budgets (
			category_id    TEXT PRIMARY KEY,
			planned_amount REAL NOT NULL,
			type           TEXT NOT NULL
		)`,
	}

	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("exec %q: %w", stmt[:40], err)
		}
	}
	return nil
}

func (s *SQLiteStore) ListTasks(from, to time.Time) ([]model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.Query(`SELECT id, due_date, created_date, completed_at, is_completed, priority
		FROM tasks
		WHERE due_date IS NULL OR (due_date >= ? AND due_date <= ?)`,
		from.Unix(), to.Unix())
	if err != nil {
		return nil, fmt.Errorf("query tasks: %w", err)
	}
	defer rows.Close()

	var out []model.Task
	for rows.Next() {
		var t model.Task
		var due, created, completed sql.NullInt64
		var done int
		if err := rows.Scan(&t.ID, &due, &created, &completed, &done, &t.Priority); err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		t.DueDate = unixPtr(due)
		t.CreatedDate = unixPtr(created)
		t.CompletedDate = unixPtr(completed)
		t.IsCompleted = done != 0
		out = append(out, t)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) ListTransactions(from, to time.Time) ([]model.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.Query(`SELECT id, date, amount, category_id, type, COALESCE(notes, '')
		FROM transactions
		WHERE date >= ? AND date <= ?`,
		from.Unix(), to.Unix())
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	defer rows.Close()

	var out []model.Transaction
	for rows.Next() {
		var tx model.Transaction
		var date int64
		var typ string
		var cat sql.NullString
		if err := rows.Scan(&tx.ID, &date, &tx.Amount, &cat, &typ, &tx.Notes); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		tx.Date = time.Unix(date, 0).UTC()
		tx.CategoryID = cat.String
		tx.Type = model.TransactionType(typ)
		out = append(out, tx)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) ListBudgets() ([]model.BudgetPlan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.Query(`SELECT category_id, planned_amount, type FROM budgets`)
	if err != nil {
		return nil, fmt.Errorf("query budgets: %w", err)
	}
	defer rows.Close()

	var out []model.BudgetPlan
	for rows.Next() {
		var b model.BudgetPlan
		var typ string
		if err := rows.Scan(&b.CategoryID, &b.PlannedAmount, &typ); err != nil {
			return nil, fmt.Errorf("scan budget: %w", err)
		}
		b.Type = model.TransactionType(typ)
		out = append(out, b)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) PeriodTotals(from, to time.Time) (model.PeriodTotals, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var totals model.PeriodTotals
	err := s.db.QueryRow(`SELECT
		COALESCE(SUM(CASE WHEN type = ? THEN amount END), 0),
		COALESCE(SUM(CASE WHEN type = ? THEN amount END), 0)
		FROM transactions WHERE date >= ? AND date <= ?`,
		string(model.TxIncome), string(model.TxExpense), from.Unix(), to.Unix(),
	).Scan(&totals.ActualIncome, &totals.ActualExpense)
	if err != nil {
		return totals, fmt.Errorf("sum transactions: %w", err)
	}

	err = s.db.QueryRow(`SELECT
		COALESCE(SUM(CASE WHEN type = ? THEN planned_amount END), 0),
		COALESCE(SUM(CASE WHEN type = ? THEN planned_amount END), 0)
		FROM budgets`,
		string(model.TxIncome), string(model.TxExpense),
	).Scan(&totals.PlannedIncome, &totals.PlannedExpense)
	if err != nil {
		return totals, fmt.Errorf("sum budgets: %w", err)
	}

	return totals, nil
}

func (s *SQLiteStore) Close() error {
	log.Println("[INFO] closing sqlite ledger")
	return s.db.Close()
}

func unixPtr(v sql.NullInt64) *time.Time {
	if !v.Valid {
		return nil
	}
	t := time.Unix(v.Int64, 0).UTC()
	return &t
}

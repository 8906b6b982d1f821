package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists analysis history to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the history database and runs
// migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS analysis_runs (
			id                 INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp          INTEGER NOT NULL,
			correlation        REAL,
			overall_confidence REAL,
			health_overall     REAL,
			health_grade       TEXT,
			insight_count      INTEGER,
			suggestion_count   INTEGER,
			forecast_count     INTEGER,
			forced             INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_ts ON analysis_runs(timestamp)`,

		`CREATE TABLE IF NOT EXISTS deliveries (
			id           INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp    INTEGER NOT NULL,
			insight_type TEXT,
			category_id  TEXT,
			priority     TEXT,
			confidence   REAL,
			delivered    INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_deliveries_ts ON deliveries(timestamp)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordRun(rec *RunRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO analysis_runs
		(timestamp, correlation, overall_confidence, health_overall, health_grade,
		 insight_count, suggestion_count, forecast_count, forced)
		VALUES (?,?,?,?,?,?,?,?,?)`,
		time.Now().Unix(), rec.Correlation, rec.OverallConfidence,
		rec.HealthOverall, rec.HealthGrade,
		rec.InsightCount, rec.SuggestionCount, rec.ForecastCount,
		boolToInt(rec.Forced),
	)
	return err
}

func (r *SQLiteRecorder) RecordDelivery(rec *DeliveryRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO deliveries
		(timestamp, insight_type, category_id, priority, confidence, delivered)
		VALUES (?,?,?,?,?,?)`,
		time.Now().Unix(), rec.InsightType, rec.CategoryID,
		rec.Priority, rec.Confidence, boolToInt(rec.Delivered),
	)
	return err
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"math"
	"sync"

	"TradeSentinel/internal/model"

	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists run history to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs
// migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so dashboards can read while the bot writes.
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
		`CREATE TABLE IF NOT EXISTS runs (
			run_id          TEXT PRIMARY KEY,
			started_at      INTEGER NOT NULL,
			instruments     INTEGER,
			expected_profit REAL,
			total_profit    REAL,
			daily_return    REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_ts ON runs(started_at)`,

		`CREATE TABLE IF NOT EXISTS run_rows (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id      TEXT NOT NULL,
			name        TEXT,
			code        TEXT,
			price       REAL,
			rsi         REAL,
			action      TEXT,
			take_profit REAL,
			stop_loss   REAL,
			exec_ok     INTEGER,
			exec_msg    TEXT,
			error       TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_rows_run ON run_rows(run_id)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

// nullable maps NaN (undefined indicator values) to SQL NULL.
func nullable(v float64) sql.NullFloat64 {
	if math.IsNaN(v) {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: v, Valid: true}
}

func (r *SQLiteRecorder) RecordRun(run *model.RunResult, account model.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`INSERT INTO runs
		(run_id, started_at, instruments, expected_profit, total_profit, daily_return)
		VALUES (?,?,?,?,?,?)`,
		run.ID, run.StartedAt.Unix(), len(run.Rows), run.ExpectedProfit,
		account.TotalProfit, account.DailyReturn(),
	); err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	for _, row := range run.Rows {
		var execOK sql.NullBool
		var execMsg sql.NullString
		if row.Exec != nil {
			execOK = sql.NullBool{Bool: row.Exec.Success, Valid: true}
			execMsg = sql.NullString{String: row.Exec.Message, Valid: true}
		}
		if _, err := tx.Exec(`INSERT INTO run_rows
			(run_id, name, code, price, rsi, action, take_profit, stop_loss, exec_ok, exec_msg, error)
			VALUES (?,?,?,?,?,?,?,?,?,?,?)`,
			run.ID, row.Name, row.Code, nullable(row.Price), nullable(row.RSI),
			string(row.Action), nullable(row.TakeProfit), nullable(row.StopLoss),
			execOK, execMsg, row.Err,
		); err != nil {
			return fmt.Errorf("insert row: %w", err)
		}
	}

	return tx.Commit()
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}

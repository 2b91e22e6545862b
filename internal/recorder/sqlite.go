package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"MarketDash/internal/model"
)

// SQLiteRecorder persists run history to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so dashboards can read while a run is being written.
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
		`CREATE TABLE IF NOT EXISTS run_history (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp   INTEGER NOT NULL,
			equity_rows INTEGER,
			crypto_rows INTEGER,
			proxy_rows  INTEGER,
			bond_rows   INTEGER,
			metal_rows  INTEGER,
			report_path TEXT,
			emailed     INTEGER,
			duration_ms INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_run_ts ON run_history(timestamp)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordRun(rec *model.RunRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO run_history
		(timestamp, equity_rows, crypto_rows, proxy_rows, bond_rows, metal_rows, report_path, emailed, duration_ms)
		VALUES (?,?,?,?,?,?,?,?,?)`,
		time.Now().Unix(),
		rec.EquityRows, rec.CryptoRows, rec.ProxyRows, rec.BondRows, rec.MetalRows,
		rec.ReportPath, rec.Emailed, rec.Duration.Milliseconds(),
	)
	return err
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}

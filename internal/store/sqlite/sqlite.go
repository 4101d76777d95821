package sqlite

import (
	"database/sql"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

func Open(path string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	return db, nil
}

func Migrate(db *sql.DB) error {
	stmts := []string{
		`PRAGMA journal_mode=WAL;`,
		`PRAGMA synchronous=NORMAL;`,

		`CREATE TABLE IF NOT EXISTS count_run (
			id TEXT PRIMARY KEY,
			created_utc TEXT NOT NULL,
			source TEXT NOT NULL -- "api" | "cli"
		);`,

		`CREATE TABLE IF NOT EXISTS count_run_item (
			run_id TEXT NOT NULL,
			seq INTEGER NOT NULL,
			bucket TEXT NOT NULL,
			term TEXT NOT NULL,
			zone TEXT NOT NULL,
			start_date TEXT NOT NULL,
			end_date TEXT NOT NULL, -- exclusive
			hours INTEGER NOT NULL,
			PRIMARY KEY (run_id, seq)
		);`,

		`CREATE INDEX IF NOT EXISTS idx_count_run_created ON count_run(created_utc);`,
	}
	for _, s := range stmts {
		if _, err := db.Exec(s); err != nil {
			return err
		}
	}
	return nil
}

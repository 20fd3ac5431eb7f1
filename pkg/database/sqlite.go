package database

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/coursetrack/coursetrack/pkg/config"
)

func init() {
	sqlx.BindDriver("sqlite", sqlx.QUESTION)
}

// NewSQLite returns a configured client for the local database file,
// creating the containing directory when missing. The design assumes a
// single writer, so the pool is capped at one open connection.
func NewSQLite(cfg config.DatabaseConfig) (*sqlx.DB, error) {
	if dir := filepath.Dir(cfg.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(%d)&_pragma=foreign_keys(1)",
		cfg.Path,
		cfg.BusyTimeout.Milliseconds(),
	)

	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

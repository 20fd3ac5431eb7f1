package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS courses (
		name TEXT PRIMARY KEY,
		category TEXT NOT NULL DEFAULT '',
		length REAL NOT NULL DEFAULT 0,
		link TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT 'Pending',
		progress REAL NOT NULL DEFAULT 0,
		due_date TEXT,
		priority TEXT NOT NULL DEFAULT 'Medium',
		last_progress_update TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS expenses (
		id TEXT PRIMARY KEY,
		course_name TEXT NOT NULL,
		price REAL NOT NULL,
		purchase_date TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS weekly_goals (
		week_start TEXT PRIMARY KEY,
		goal_hours REAL NOT NULL
	)`,
}

// Migrator creates the schema at startup.
type Migrator struct {
	db *sqlx.DB
}

// NewMigrator constructs a Migrator.
func NewMigrator(db *sqlx.DB) *Migrator {
	return &Migrator{db: db}
}

// Init creates the three tables when absent. Safe to run on every startup.
func (m *Migrator) Init(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := m.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}
	return nil
}

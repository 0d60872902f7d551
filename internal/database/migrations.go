package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// Migration is one forward-only schema step.
type Migration struct {
	Version     int
	Description string
	Statements  []string
}

// Migrations is the ordered schema history.
var Migrations = []Migration{
	{
		Version:     1,
		Description: "users and groups",
		Statements: []string{
			`CREATE TABLE IF NOT EXISTS users (
				id BIGSERIAL PRIMARY KEY,
				username VARCHAR(50) NOT NULL,
				email VARCHAR(255) NOT NULL UNIQUE,
				avatar_url TEXT,
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			)`,
			`CREATE TABLE IF NOT EXISTS groups (
				id BIGSERIAL PRIMARY KEY,
				name VARCHAR(100) NOT NULL,
				description TEXT,
				is_temporary BOOLEAN NOT NULL DEFAULT FALSE,
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			)`,
			`CREATE TABLE IF NOT EXISTS group_members (
				id BIGSERIAL PRIMARY KEY,
				group_id BIGINT NOT NULL REFERENCES groups(id) ON DELETE CASCADE,
				user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
				status VARCHAR(20) NOT NULL DEFAULT 'INVITED',
				role VARCHAR(20) NOT NULL DEFAULT 'MEMBER',
				joined_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				UNIQUE (group_id, user_id)
			)`,
		},
	},
	{
		Version:     2,
		Description: "expenses and participants",
		Statements: []string{
			`CREATE TABLE IF NOT EXISTS expenses (
				id BIGSERIAL PRIMARY KEY,
				group_id BIGINT REFERENCES groups(id) ON DELETE CASCADE,
				payer_id BIGINT NOT NULL REFERENCES users(id),
				created_by BIGINT NOT NULL REFERENCES users(id),
				description VARCHAR(255) NOT NULL,
				amount NUMERIC(12, 2) NOT NULL CHECK (amount > 0),
				image_url TEXT,
				split_type VARCHAR(20) NOT NULL,
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			)`,
			`CREATE TABLE IF NOT EXISTS expense_participants (
				id BIGSERIAL PRIMARY KEY,
				expense_id BIGINT NOT NULL REFERENCES expenses(id) ON DELETE CASCADE,
				user_id BIGINT NOT NULL REFERENCES users(id),
				position INT NOT NULL,
				amount_owed NUMERIC(12, 2) NOT NULL CHECK (amount_owed >= 0),
				percentage NUMERIC(7, 4),
				exact_amount NUMERIC(12, 2),
				UNIQUE (expense_id, user_id)
			)`,
			`CREATE INDEX IF NOT EXISTS idx_expenses_group_id ON expenses(group_id)`,
		},
	},
}

// Migrate applies every migration newer than the recorded schema version,
// each in its own transaction.
func Migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS schema_migrations (
		version INT PRIMARY KEY,
		applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`); err != nil {
		return fmt.Errorf("failed to create schema_migrations: %w", err)
	}

	var current int
	if err := db.QueryRowContext(ctx, `SELECT COALESCE(MAX(version), 0) FROM schema_migrations`).Scan(&current); err != nil {
		return fmt.Errorf("failed to get schema version: %w", err)
	}

	for _, m := range Migrations {
		if m.Version <= current {
			continue
		}

		tx, err := db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("failed to begin transaction: %w", err)
		}

		for _, stmt := range m.Statements {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				_ = tx.Rollback()
				return fmt.Errorf("migration %d failed: %w", m.Version, err)
			}
		}

		if _, err := tx.ExecContext(ctx, `INSERT INTO schema_migrations (version) VALUES ($1)`, m.Version); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to record migration %d: %w", m.Version, err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit migration %d: %w", m.Version, err)
		}

		slog.Info("applied migration", "version", m.Version, "description", m.Description)
	}

	return nil
}

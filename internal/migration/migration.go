package migration

import (
	"context"

	"siparis/internal"
	"siparis/internal/errors"

	"github.com/jmoiron/sqlx"
)

// Migrator defines the interface for database migration operations
type Migrator interface {
	Run(ctx context.Context, db *sqlx.DB) error
	Version() string
}

// MigrationRunner handles database schema migrations
type MigrationRunner struct {
	version string
	logger  *internal.Logger
}

// NewRunner creates a new migration runner
func NewRunner() *MigrationRunner {
	return &MigrationRunner{
		version: "1.0.0",
		logger:  internal.NewDefaultLogger().WithComponent("Migration"),
	}
}

// Version returns the migration version
func (r *MigrationRunner) Version() string {
	return r.version
}

// Run executes all database migrations in the correct order. Every step is
// idempotent so Run is safe on every start.
func (r *MigrationRunner) Run(ctx context.Context, db *sqlx.DB) error {
	if err := r.createUsersTable(ctx, db); err != nil {
		return errors.DatabaseError("failed to create users table", err)
	}

	if err := r.addUsersRoleColumn(ctx, db); err != nil {
		return errors.DatabaseError("failed to add users.role column", err)
	}

	if err := r.createOrderLinesTable(ctx, db); err != nil {
		return errors.DatabaseError("failed to create order_lines table", err)
	}

	r.createIndexes(ctx, db)

	r.logger.Info("schema at version %s", r.version)
	return nil
}

func (r *MigrationRunner) createUsersTable(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			email VARCHAR(255) UNIQUE NOT NULL,
			username VARCHAR(100) UNIQUE,
			role VARCHAR(32) NOT NULL DEFAULT 'user',
			is_active BOOLEAN DEFAULT true,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)
	`)
	return err
}

// addUsersRoleColumn upgrades users tables created before roles existed
func (r *MigrationRunner) addUsersRoleColumn(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, `
		ALTER TABLE users ADD COLUMN IF NOT EXISTS role VARCHAR(32) NOT NULL DEFAULT 'user'
	`)
	return err
}

func (r *MigrationRunner) createOrderLinesTable(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS order_lines (
			id UUID PRIMARY KEY,
			user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			category VARCHAR(100) NOT NULL DEFAULT 'prime',
			five_prime TEXT NOT NULL DEFAULT '',
			three_prime TEXT NOT NULL DEFAULT '',
			purification TEXT,
			scale VARCHAR(100) NOT NULL DEFAULT '50 nmol',
			total_price DOUBLE PRECISION NOT NULL DEFAULT 0 CHECK (total_price >= 0),
			name TEXT NOT NULL,
			quantity INTEGER NOT NULL DEFAULT 1 CHECK (quantity > 0),
			is_order BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)
	`)
	return err
}

func (r *MigrationRunner) createIndexes(ctx context.Context, db *sqlx.DB) {
	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_order_lines_user_id ON order_lines(user_id)",
		"CREATE INDEX IF NOT EXISTS idx_order_lines_created_at ON order_lines(created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_order_lines_user_created ON order_lines(user_id, created_at DESC)",
	}

	for _, idxSQL := range indexes {
		if _, err := db.ExecContext(ctx, idxSQL); err != nil {
			// Log but don't fail on index creation errors
			r.logger.Warn("failed to create index: %v", err)
		}
	}
}

// Package postgres holds the PostgreSQL-backed repositories and the schema
// migration applied at startup.
package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const defaultTimeout = 10 * time.Second

// DB is the subset of pgxpool.Pool the repositories use. Tests substitute a
// pgxmock pool.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Config captures the settings required to establish a PostgreSQL connection.
type Config struct {
	DSN     string
	Timeout time.Duration
}

// Connect establishes a pgx connection pool and verifies connectivity with a
// ping. A default timeout is applied when none is provided.
func Connect(ctx context.Context, cfg Config) (*pgxpool.Pool, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	pool, err := pgxpool.New(connectCtx, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("postgres connect: %w", err)
	}

	if err := pool.Ping(connectCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres ping: %w", err)
	}

	return pool, nil
}

// baseSchema creates the two tables. Later columns are added separately so the
// migration stays additive and idempotent against databases created by older
// versions.
const baseSchema = `
CREATE TABLE IF NOT EXISTS users (
	id BIGSERIAL PRIMARY KEY,
	name TEXT NOT NULL,
	email TEXT UNIQUE NOT NULL,
	address TEXT NOT NULL,
	telephone TEXT NOT NULL,
	password_hash TEXT NOT NULL,
	organization TEXT,
	created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS water_quality (
	id BIGSERIAL PRIMARY KEY,
	location_name TEXT NOT NULL,
	ph_level DOUBLE PRECISION,
	turbidity_ntu DOUBLE PRECISION,
	dissolved_oxygen DOUBLE PRECISION,
	temperature_c DOUBLE PRECISION,
	conductivity_us DOUBLE PRECISION,
	user_id BIGINT NOT NULL REFERENCES users(id),
	timestamp TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_water_quality_user_id ON water_quality(user_id);
CREATE INDEX IF NOT EXISTS idx_water_quality_timestamp ON water_quality(timestamp);
CREATE INDEX IF NOT EXISTS idx_water_quality_location ON water_quality(location_name);
`

// additiveColumns lists the columns introduced after the initial schema. Each
// is checked before being added so the migration can run on every startup.
var additiveColumns = []struct {
	table      string
	column     string
	definition string
}{
	{"users", "role", "TEXT NOT NULL DEFAULT 'community'"},
	{"water_quality", "total_dissolved_solids", "DOUBLE PRECISION"},
	{"water_quality", "status", "TEXT NOT NULL DEFAULT 'good'"},
	{"water_quality", "is_public", "BOOLEAN NOT NULL DEFAULT TRUE"},
}

// Migrate applies the schema. Safe to run repeatedly.
func Migrate(ctx context.Context, db DB) error {
	if _, err := db.Exec(ctx, baseSchema); err != nil {
		return fmt.Errorf("apply base schema: %w", err)
	}

	for _, col := range additiveColumns {
		exists, err := columnExists(ctx, db, col.table, col.column)
		if err != nil {
			return err
		}
		if exists {
			continue
		}
		stmt := fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s %s", col.table, col.column, col.definition)
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("add column %s.%s: %w", col.table, col.column, err)
		}
	}

	return nil
}

func columnExists(ctx context.Context, db DB, table, column string) (bool, error) {
	var n int
	err := db.QueryRow(ctx,
		`SELECT COUNT(*) FROM information_schema.columns WHERE table_name = $1 AND column_name = $2`,
		table, column,
	).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("inspect column %s.%s: %w", table, column, err)
	}
	return n > 0, nil
}

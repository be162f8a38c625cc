// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-folio/internal/config"
	"github.com/MKhiriev/go-folio/internal/logger"
	"github.com/MKhiriev/go-folio/migrations"
)

// Dialect identifies the SQL backend behind a DB.
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite3"
)

const (
	maxAttempts  = 3
	retryBackoff = 50 * time.Millisecond
)

type DB struct {
	*sql.DB
	dialect            Dialect
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnect opens the database named by cfg.DSN. DSNs starting with
// postgres:// or postgresql:// go to PostgreSQL, anything else is a SQLite
// file path.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if DialectFromDSN(cfg.DSN) == DialectPostgres {
		return NewConnectPostgres(ctx, cfg, log)
	}
	return NewConnectSQLite(ctx, cfg, log)
}

// DialectFromDSN reports which backend dsn selects.
func DialectFromDSN(dsn string) Dialect {
	lower := strings.ToLower(strings.TrimSpace(dsn))
	if strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://") {
		return DialectPostgres
	}
	return DialectSQLite
}

func newDB(conn *sql.DB, dialect Dialect, classifier ErrorClassificator, log *logger.Logger) *DB {
	builder := sq.StatementBuilder.PlaceholderFormat(sq.Question)
	if dialect == DialectPostgres {
		builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}

	return &DB{
		DB:                 conn,
		dialect:            dialect,
		builder:            builder,
		errorClassificator: classifier,
		logger:             log,
	}
}

// Dialect returns the backend of db.
func (db *DB) Dialect() Dialect {
	return db.dialect
}

// Migrate applies the embedded migrations of the db dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, string(db.dialect))
}

// Ping implements [HealthChecker].
func (db *DB) Ping(ctx context.Context) error {
	return db.PingContext(ctx)
}

// withRetry runs op until it succeeds, fails with a non-retryable error, ctx
// is done, or maxAttempts is reached.
func (db *DB) withRetry(ctx context.Context, op func() error) error {
	var err error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err = op(); err == nil {
			return nil
		}
		if db.errorClassificator == nil || db.errorClassificator.Classify(err) != Retryable {
			return err
		}

		db.logger.Warn().Err(err).Int("attempt", attempt).Msg("retryable database error")

		select {
		case <-ctx.Done():
			return errors.Join(err, ctx.Err())
		case <-time.After(time.Duration(attempt) * retryBackoff):
		}
	}

	return fmt.Errorf("giving up after %d attempts: %w", maxAttempts, err)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells withRetry whether a failed operation may be
// attempted again.
type ErrorClassification int

const (
	// NonRetryable is the default for unknown errors, constraint violations
	// and syntax errors.
	NonRetryable ErrorClassification = iota

	// Retryable marks transient failures: lost connections, serialization
	// failures, deadlocks and lock contention.
	Retryable
)

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL
// using the SQLSTATE of *pgconn.PgError.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return NonRetryable
	}

	switch pgErr.Code {
	case pgerrcode.ConnectionException,
		pgerrcode.ConnectionDoesNotExist,
		pgerrcode.ConnectionFailure,
		pgerrcode.TransactionRollback,
		pgerrcode.SerializationFailure,
		pgerrcode.DeadlockDetected,
		pgerrcode.CannotConnectNow,
		pgerrcode.LockNotAvailable:
		return Retryable
	default:
		return NonRetryable
	}
}

// isUniqueViolation reports a unique constraint violation from either
// backend.
func isUniqueViolation(err error) bool {
	return postgresError(err) == pgerrcode.UniqueViolation || sqliteUniqueViolation(err)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package migrations embeds the goose migrations of both supported SQL
// backends and applies the ones matching the connection dialect.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"sync"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

// goose keeps its base FS and dialect in package globals.
var gooseMu sync.Mutex

// Migrate applies every pending migration for dialect ("postgres" or
// "sqlite3") to db.
func Migrate(db *sql.DB, dialect string) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	dir, gooseDialect, err := migrationSource(dialect)
	if err != nil {
		return err
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(gooseDialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

func migrationSource(dialect string) (dir, gooseDialect string, err error) {
	switch dialect {
	case "postgres":
		return "postgres", "pgx", nil
	case "sqlite3":
		return "sqlite", "sqlite3", nil
	default:
		return "", "", fmt.Errorf("migration error: unsupported dialect %q", dialect)
	}
}

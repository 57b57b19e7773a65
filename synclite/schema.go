// Copyright 2025 Toly Pochkin
// SPDX-License-Identifier: Apache-2.0

// Package synclite is the SQLite replica for the mobilesync engine: a
// typed entity store over a single SQLite file plus the pull session that
// feeds it from the authoritative server.
package synclite

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// Open opens (creating if needed) a replica database file and prepares the
// schema. SQLite serializes writers anyway, so the pool is capped at one
// connection; that also keeps settings reads from deadlocking against an
// open apply transaction.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open replica db: %w", err)
	}
	db.SetMaxOpenConns(1)
	if err := initializeDatabase(db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// initializeDatabase creates the replica schema: one row per entity keyed
// by (entity_type, id) with the typed fields in a JSON payload, a settings
// table, and the pull cursor.
func initializeDatabase(db *sql.DB) error {
	if _, err := db.Exec(`PRAGMA journal_mode=WAL`); err != nil {
		return fmt.Errorf("failed to enable WAL mode: %w", err)
	}
	if _, err := db.Exec(`PRAGMA foreign_keys=ON`); err != nil {
		return fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	tables := []string{
		`CREATE TABLE IF NOT EXISTS entities (
			entity_type  TEXT NOT NULL,
			id           TEXT NOT NULL,
			placeholder  INTEGER NOT NULL DEFAULT 0,
			payload      TEXT NOT NULL,
			PRIMARY KEY (entity_type, id)
		)`,

		`CREATE TABLE IF NOT EXISTS settings (
			key    TEXT PRIMARY KEY,
			value  TEXT NOT NULL
		)`,

		// Pull cursor (one row). last_seq_applied advances only inside the
		// transaction that applied the page, never past unapplied records.
		`CREATE TABLE IF NOT EXISTS _sync_pull_state (
			id                INTEGER PRIMARY KEY CHECK (id = 1),
			last_seq_applied  INTEGER NOT NULL DEFAULT 0
		)`,
	}
	for _, table := range tables {
		if _, err := db.Exec(table); err != nil {
			return fmt.Errorf("failed to create replica table: %w", err)
		}
	}

	if _, err := db.Exec(`INSERT OR IGNORE INTO _sync_pull_state (id, last_seq_applied) VALUES (1, 0)`); err != nil {
		return fmt.Errorf("failed to seed pull state: %w", err)
	}
	return nil
}

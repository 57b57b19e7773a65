// Copyright 2025 Toly Pochkin
// SPDX-License-Identifier: Apache-2.0

package synclite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/edmofro/mobile/mobilesync"
)

// SettingsStore reads and writes replica-local settings. The engine only
// ever consumes a snapshot (see Snapshot); with a single-connection pool a
// live read during an open apply transaction would deadlock.
type SettingsStore struct {
	db *sql.DB
}

// NewSettingsStore returns a SettingsStore over the replica database.
func NewSettingsStore(db *sql.DB) *SettingsStore {
	return &SettingsStore{db: db}
}

// Set stores one setting.
func (s *SettingsStore) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("set setting %s: %w", key, err)
	}
	return nil
}

// Get returns one setting, or "" when unset.
func (s *SettingsStore) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get setting %s: %w", key, err)
	}
	return value, nil
}

// Snapshot loads all settings into a mobilesync.SettingsMap for use inside
// an apply transaction.
func (s *SettingsStore) Snapshot(ctx context.Context) (mobilesync.SettingsMap, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT key, value FROM settings`)
	if err != nil {
		return nil, fmt.Errorf("snapshot settings: %w", err)
	}
	defer rows.Close()

	out := mobilesync.SettingsMap{}
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("snapshot settings: %w", err)
		}
		out[key] = value
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("snapshot settings: %w", err)
	}
	return out, nil
}

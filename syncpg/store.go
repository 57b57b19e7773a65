// Copyright 2025 Toly Pochkin
// SPDX-License-Identifier: Apache-2.0

// Package syncpg is the PostgreSQL replica for the mobilesync engine, for
// deployments where the replica lives on a site server rather than a
// device. Same narrow store contract as synclite, with jsonb payloads.
package syncpg

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/edmofro/mobile/mobilesync"
)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Store implements mobilesync.Store over the entities table.
type Store struct {
	pool *pgxpool.Pool
	q    querier
}

var _ mobilesync.Store = (*Store)(nil)

// NewStore returns a Store over the pool.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool, q: pool}
}

// Transact runs fn with a store view bound to one transaction, committing
// on nil and rolling back on error. The engine's single-writer requirement
// holds within the transaction; callers still serialize transactions that
// integrate records for the same store.
func (s *Store) Transact(ctx context.Context, fn func(*Store) error) error {
	return pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		return fn(&Store{pool: s.pool, q: tx})
	})
}

// Get implements mobilesync.Store.
func (s *Store) Get(ctx context.Context, t mobilesync.EntityType, id string) (mobilesync.Entity, error) {
	var payload []byte
	err := s.q.QueryRow(ctx,
		`SELECT payload FROM entities WHERE entity_type = $1 AND id = $2`, string(t), id,
	).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%s %s: %w", t, id, mobilesync.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get %s %s: %w", t, id, err)
	}
	return mobilesync.UnmarshalEntity(t, payload)
}

// Find implements mobilesync.Store using jsonb containment for the
// string-field match, served by the GIN index on payload.
func (s *Store) Find(ctx context.Context, t mobilesync.EntityType, match mobilesync.Match) ([]mobilesync.Entity, error) {
	var rows pgx.Rows
	var err error
	if len(match) == 0 {
		rows, err = s.q.Query(ctx,
			`SELECT payload FROM entities WHERE entity_type = $1 ORDER BY id`, string(t))
	} else {
		filter, merr := json.Marshal(match)
		if merr != nil {
			return nil, fmt.Errorf("find %s: %w", t, merr)
		}
		rows, err = s.q.Query(ctx,
			`SELECT payload FROM entities WHERE entity_type = $1 AND payload @> $2::jsonb ORDER BY id`,
			string(t), filter)
	}
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", t, err)
	}
	defer rows.Close()

	var out []mobilesync.Entity
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("find %s: %w", t, err)
		}
		e, err := mobilesync.UnmarshalEntity(t, payload)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("find %s: %w", t, err)
	}
	return out, nil
}

// Upsert implements mobilesync.Store with full-overwrite semantics.
func (s *Store) Upsert(ctx context.Context, e mobilesync.Entity) error {
	if e.EntityID() == "" {
		return fmt.Errorf("upsert %s: empty id", e.EntityType())
	}
	payload, err := mobilesync.MarshalEntity(e)
	if err != nil {
		return err
	}
	_, err = s.q.Exec(ctx, `
		INSERT INTO entities (entity_type, id, placeholder, payload) VALUES ($1, $2, $3, $4)
		ON CONFLICT (entity_type, id)
		DO UPDATE SET placeholder = EXCLUDED.placeholder, payload = EXCLUDED.payload
	`, string(e.EntityType()), e.EntityID(), e.IsPlaceholder(), payload)
	if err != nil {
		return fmt.Errorf("upsert %s %s: %w", e.EntityType(), e.EntityID(), err)
	}
	return nil
}

// Delete implements mobilesync.Store; deleting an absent row is a no-op.
func (s *Store) Delete(ctx context.Context, t mobilesync.EntityType, id string) error {
	_, err := s.q.Exec(ctx,
		`DELETE FROM entities WHERE entity_type = $1 AND id = $2`, string(t), id)
	if err != nil {
		return fmt.Errorf("delete %s %s: %w", t, id, err)
	}
	return nil
}

// NewID implements mobilesync.Store.
func (s *Store) NewID() string { return uuid.NewString() }

// Count returns the number of stored entities of the given type.
func (s *Store) Count(ctx context.Context, t mobilesync.EntityType) (int, error) {
	var n int
	err := s.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM entities WHERE entity_type = $1`, string(t)).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", t, err)
	}
	return n, nil
}

// SettingsStore reads and writes replica settings on the server database.
type SettingsStore struct {
	pool *pgxpool.Pool
}

// NewSettingsStore returns a SettingsStore over the pool.
func NewSettingsStore(pool *pgxpool.Pool) *SettingsStore {
	return &SettingsStore{pool: pool}
}

// Set stores one setting.
func (s *SettingsStore) Set(ctx context.Context, key, value string) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO settings (key, value) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("set setting %s: %w", key, err)
	}
	return nil
}

// Get returns one setting, or "" when unset.
func (s *SettingsStore) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.pool.QueryRow(ctx, `SELECT value FROM settings WHERE key = $1`, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get setting %s: %w", key, err)
	}
	return value, nil
}

// Snapshot loads all settings into a mobilesync.SettingsMap.
func (s *SettingsStore) Snapshot(ctx context.Context) (mobilesync.SettingsMap, error) {
	rows, err := s.pool.Query(ctx, `SELECT key, value FROM settings`)
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

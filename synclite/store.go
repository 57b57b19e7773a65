// Copyright 2025 Toly Pochkin
// SPDX-License-Identifier: Apache-2.0

package synclite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/edmofro/mobile/mobilesync"
)

// querier is satisfied by both *sql.DB and *sql.Tx, so the same Store code
// serves direct access and the page-apply transaction.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Store implements mobilesync.Store over the entities table.
type Store struct {
	q querier
}

var _ mobilesync.Store = (*Store)(nil)

// NewStore returns a Store bound to the database.
func NewStore(db *sql.DB) *Store {
	return &Store{q: db}
}

// WithTx returns a view of the store bound to the transaction.
func (s *Store) WithTx(tx *sql.Tx) *Store {
	return &Store{q: tx}
}

// Get implements mobilesync.Store.
func (s *Store) Get(ctx context.Context, t mobilesync.EntityType, id string) (mobilesync.Entity, error) {
	var payload []byte
	err := s.q.QueryRowContext(ctx,
		`SELECT payload FROM entities WHERE entity_type = ? AND id = ?`, string(t), id,
	).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s %s: %w", t, id, mobilesync.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get %s %s: %w", t, id, err)
	}
	return mobilesync.UnmarshalEntity(t, payload)
}

// Find implements mobilesync.Store. Matching happens over the decoded
// payload in Go so the string-field match semantics stay identical to
// MemStore; replica volumes are one store's data, not the server's.
func (s *Store) Find(ctx context.Context, t mobilesync.EntityType, match mobilesync.Match) ([]mobilesync.Entity, error) {
	rows, err := s.q.QueryContext(ctx,
		`SELECT payload FROM entities WHERE entity_type = ? ORDER BY id`, string(t))
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
		ok, err := payloadMatches(payload, match)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
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
	placeholder := 0
	if e.IsPlaceholder() {
		placeholder = 1
	}
	_, err = s.q.ExecContext(ctx, `
		INSERT INTO entities (entity_type, id, placeholder, payload) VALUES (?, ?, ?, ?)
		ON CONFLICT (entity_type, id)
		DO UPDATE SET placeholder = excluded.placeholder, payload = excluded.payload
	`, string(e.EntityType()), e.EntityID(), placeholder, payload)
	if err != nil {
		return fmt.Errorf("upsert %s %s: %w", e.EntityType(), e.EntityID(), err)
	}
	return nil
}

// Delete implements mobilesync.Store; deleting an absent row is a no-op.
func (s *Store) Delete(ctx context.Context, t mobilesync.EntityType, id string) error {
	_, err := s.q.ExecContext(ctx,
		`DELETE FROM entities WHERE entity_type = ? AND id = ?`, string(t), id)
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
	err := s.q.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM entities WHERE entity_type = ?`, string(t)).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", t, err)
	}
	return n, nil
}

func payloadMatches(payload []byte, match mobilesync.Match) (bool, error) {
	if len(match) == 0 {
		return true, nil
	}
	var fields map[string]any
	if err := json.Unmarshal(payload, &fields); err != nil {
		return false, fmt.Errorf("match payload: %w", err)
	}
	for key, want := range match {
		got, ok := fields[key].(string)
		if !ok || got != want {
			return false, nil
		}
	}
	return true, nil
}

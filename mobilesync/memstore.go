// Copyright 2025 Toly Pochkin
// SPDX-License-Identifier: Apache-2.0

package mobilesync

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// MemStore is an in-memory Store for tests and small tools. It keeps the
// same observable semantics as the SQL-backed stores: full-overwrite
// upserts keyed by (type, id), id-ordered finds and string-field matching
// over the json payload.
type MemStore struct {
	mu      sync.RWMutex
	records map[EntityType]map[string][]byte
}

var _ Store = (*MemStore)(nil)

// NewMemStore returns an empty MemStore.
func NewMemStore() *MemStore {
	return &MemStore{records: make(map[EntityType]map[string][]byte)}
}

// Get implements Store.
func (s *MemStore) Get(_ context.Context, t EntityType, id string) (Entity, error) {
	s.mu.RLock()
	payload, ok := s.records[t][id]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%s %s: %w", t, id, ErrNotFound)
	}
	return UnmarshalEntity(t, payload)
}

// Find implements Store.
func (s *MemStore) Find(_ context.Context, t EntityType, match Match) ([]Entity, error) {
	s.mu.RLock()
	ids := make([]string, 0, len(s.records[t]))
	for id := range s.records[t] {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var out []Entity
	for _, id := range ids {
		payload := s.records[t][id]
		ok, err := payloadMatches(payload, match)
		if err != nil {
			s.mu.RUnlock()
			return nil, err
		}
		if !ok {
			continue
		}
		e, err := UnmarshalEntity(t, payload)
		if err != nil {
			s.mu.RUnlock()
			return nil, err
		}
		out = append(out, e)
	}
	s.mu.RUnlock()
	return out, nil
}

// Upsert implements Store.
func (s *MemStore) Upsert(_ context.Context, e Entity) error {
	if e.EntityID() == "" {
		return fmt.Errorf("upsert %s: empty id", e.EntityType())
	}
	payload, err := MarshalEntity(e)
	if err != nil {
		return err
	}
	s.mu.Lock()
	byID, ok := s.records[e.EntityType()]
	if !ok {
		byID = make(map[string][]byte)
		s.records[e.EntityType()] = byID
	}
	byID[e.EntityID()] = payload
	s.mu.Unlock()
	return nil
}

// Delete implements Store.
func (s *MemStore) Delete(_ context.Context, t EntityType, id string) error {
	s.mu.Lock()
	delete(s.records[t], id)
	s.mu.Unlock()
	return nil
}

// NewID implements Store.
func (s *MemStore) NewID() string { return uuid.NewString() }

// Len returns the number of stored entities of the given type.
func (s *MemStore) Len(t EntityType) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records[t])
}

func payloadMatches(payload []byte, match Match) (bool, error) {
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

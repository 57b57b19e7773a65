// Copyright 2025 Toly Pochkin
// SPDX-License-Identifier: Apache-2.0

package mobilesync

import "context"

// Match is an exact-equality predicate over entity payload fields. Keys are
// the json field names of the entity structs; only string-typed fields can
// be matched. A nil or empty Match matches every entity of the type.
type Match map[string]string

// Store is a typed replica of the authoritative system's records. The
// engine is handed a store explicitly on every call; it keeps no store of
// its own.
//
// Implementations must give Upsert full-overwrite semantics keyed by
// (type, id): integrating the same record twice must leave the store
// byte-identical. Find results are ordered by id so lookups that take the
// first hit are deterministic. The engine issues read-then-write sequences
// (placeholder synthesis), so callers own write serialization, typically a
// transaction per feed page.
type Store interface {
	// Get returns the entity with the given type and id, or an error
	// wrapping ErrNotFound.
	Get(ctx context.Context, t EntityType, id string) (Entity, error)

	// Find returns the entities of the given type whose payload fields
	// equal every value in match, ordered by id.
	Find(ctx context.Context, t EntityType, match Match) ([]Entity, error)

	// Upsert stores the entity, replacing any previous record with the same
	// type and id in full.
	Upsert(ctx context.Context, e Entity) error

	// Delete removes the entity if present; deleting an absent entity is
	// not an error.
	Delete(ctx context.Context, t EntityType, id string) error

	// NewID returns a unique identifier for records created locally
	// (placeholders, deduplicated addresses).
	NewID() string
}

// Settings exposes replica-local configuration to the engine, most
// importantly SettingThisStoreID which scopes joins and number sequences.
type Settings interface {
	// Get returns the setting value, or "" when unset.
	Get(key string) string
}

// SettingsMap is a Settings backed by a plain map, for tests and tools.
type SettingsMap map[string]string

// Get implements Settings.
func (m SettingsMap) Get(key string) string { return m[key] }

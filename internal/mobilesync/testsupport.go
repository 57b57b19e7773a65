// Copyright 2025 Toly Pochkin
// SPDX-License-Identifier: Apache-2.0

// Package mobilesync holds cross-package integration tests for the sync
// engine: full feed replays against in-memory and SQLite replicas, plus
// the golden snapshot of a reference feed.
package mobilesync

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/edmofro/mobile/mobilesync"
)

// ReplayStore is a MemStore with sequential generated ids, so replaying
// the same feed yields byte-identical state. This is NOT part of the SDK -
// it only exists so golden snapshots stay stable across runs.
type ReplayStore struct {
	*mobilesync.MemStore
	nextID int
}

// NewReplayStore returns an empty ReplayStore.
func NewReplayStore() *ReplayStore {
	return &ReplayStore{MemStore: mobilesync.NewMemStore()}
}

// NewID implements mobilesync.Store with a deterministic counter.
func (s *ReplayStore) NewID() string {
	s.nextID++
	return fmt.Sprintf("gen-%04d", s.nextID)
}

// LoadFeed reads a JSON array of sync records from a testdata file.
func LoadFeed(path string) ([]mobilesync.SyncRecord, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var records []mobilesync.SyncRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("parse feed %s: %w", path, err)
	}
	return records, nil
}

// ApplyFeed integrates every record in order, the way a pull session does
// within one page transaction.
func ApplyFeed(ctx context.Context, store mobilesync.Store, settings mobilesync.Settings, records []mobilesync.SyncRecord) error {
	for i := range records {
		if err := mobilesync.IntegrateRecord(ctx, store, settings, &records[i]); err != nil {
			return fmt.Errorf("record %d (%s %s): %w", i, records[i].RecordType, records[i].RecordID, err)
		}
	}
	return nil
}

// allEntityTypes lists every type DumpState scans.
var allEntityTypes = []mobilesync.EntityType{
	mobilesync.EntityTypeAddress,
	mobilesync.EntityTypeItem,
	mobilesync.EntityTypeItemBatch,
	mobilesync.EntityTypeItemCategory,
	mobilesync.EntityTypeItemDepartment,
	mobilesync.EntityTypeItemStoreJoin,
	mobilesync.EntityTypeMasterList,
	mobilesync.EntityTypeMasterListItem,
	mobilesync.EntityTypeMasterListNameJoin,
	mobilesync.EntityTypeName,
	mobilesync.EntityTypeNameStoreJoin,
	mobilesync.EntityTypeNumberSequence,
	mobilesync.EntityTypeNumberToReuse,
	mobilesync.EntityTypeRequisition,
	mobilesync.EntityTypeRequisitionItem,
	mobilesync.EntityTypeStocktake,
	mobilesync.EntityTypeStocktakeBatch,
	mobilesync.EntityTypeTransaction,
	mobilesync.EntityTypeTransactionBatch,
	mobilesync.EntityTypeTransactionCategory,
	mobilesync.EntityTypeUser,
}

// DumpState serializes the whole replica as indented JSON, types in name
// order and entities in id order, for golden comparison.
func DumpState(ctx context.Context, store mobilesync.Store) ([]byte, error) {
	state := make(map[string][]mobilesync.Entity)
	for _, t := range allEntityTypes {
		entities, err := store.Find(ctx, t, nil)
		if err != nil {
			return nil, err
		}
		if len(entities) > 0 {
			state[string(t)] = entities
		}
	}
	out, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}

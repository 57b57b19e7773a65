// Copyright 2025 Toly Pochkin
// SPDX-License-Identifier: Apache-2.0

package mobilesync

import (
	"context"
	"fmt"
)

// IntegrateRecord merges one sync record from the authoritative feed into
// the replica store. It classifies the record by change type and entity
// type, routes deletes to the deletion handler and creates/updates through
// the sanity checker to the per-type integration arm.
//
// Records the replica cannot use are skipped without error: unrecognized
// record types (the feed's schema is a superset of ours), records that fail
// the sanity check, and records missing their classifiers entirely. An
// unrecognized change type code is different: it means the feed speaks a
// protocol this engine does not know, so the record fails with
// ErrUnknownChangeType and the session decides what to do with it.
//
// The caller owns transaction scope and write serialization; the engine
// issues read-then-write sequences against the store and never runs
// concurrently with another writer.
func IntegrateRecord(ctx context.Context, store Store, settings Settings, rec *SyncRecord) error {
	if rec == nil || rec.RecordType == "" || rec.SyncType == "" {
		return nil
	}
	change, ok := TranslateChangeType(rec.SyncType)
	if !ok {
		return fmt.Errorf("record %s sync type %q: %w", rec.RecordID, rec.SyncType, ErrUnknownChangeType)
	}
	entityType := TranslateRecordType(rec.RecordType)
	if entityType == EntityTypeUnknown {
		return nil
	}

	switch change {
	case ChangeDelete:
		return DeleteRecord(ctx, store, entityType, rec.RecordID)
	case ChangeCreate, ChangeUpdate:
		if !SanityCheckRecord(entityType, rec.Data) {
			return nil
		}
		return integrateRecord(ctx, store, settings, entityType, rec.Data)
	default:
		return fmt.Errorf("record %s change %q: %w", rec.RecordID, change, ErrUnknownChangeType)
	}
}

// integrateRecord dispatches sanity-checked wire data to the arm for its
// entity type. The switch is exhaustive over the types the sanity checker
// admits; User and Address never pass it (users are provisioned out of
// band, addresses only exist through dedup).
func integrateRecord(ctx context.Context, store Store, settings Settings, t EntityType, data map[string]string) error {
	switch t {
	case EntityTypeItem:
		return integrateItem(ctx, store, data)
	case EntityTypeItemCategory:
		return integrateItemCategory(ctx, store, data)
	case EntityTypeItemDepartment:
		return integrateItemDepartment(ctx, store, data)
	case EntityTypeItemBatch:
		return integrateItemBatch(ctx, store, data)
	case EntityTypeItemStoreJoin:
		return integrateItemStoreJoin(ctx, store, settings, data)
	case EntityTypeMasterList:
		return integrateMasterList(ctx, store, data)
	case EntityTypeMasterListItem:
		return integrateMasterListItem(ctx, store, data)
	case EntityTypeMasterListNameJoin:
		return integrateMasterListNameJoin(ctx, store, data)
	case EntityTypeName:
		return integrateName(ctx, store, data)
	case EntityTypeNameStoreJoin:
		return integrateNameStoreJoin(ctx, store, settings, data)
	case EntityTypeNumberSequence:
		return integrateNumberSequence(ctx, store, settings, data)
	case EntityTypeNumberToReuse:
		return integrateNumberToReuse(ctx, store, settings, data)
	case EntityTypeRequisition:
		return integrateRequisition(ctx, store, data)
	case EntityTypeRequisitionItem:
		return integrateRequisitionItem(ctx, store, data)
	case EntityTypeStocktake:
		return integrateStocktake(ctx, store, data)
	case EntityTypeStocktakeBatch:
		return integrateStocktakeBatch(ctx, store, data)
	case EntityTypeTransaction:
		return integrateTransaction(ctx, store, data)
	case EntityTypeTransactionBatch:
		return integrateTransactionBatch(ctx, store, data)
	case EntityTypeTransactionCategory:
		return integrateTransactionCategory(ctx, store, data)
	default:
		return nil
	}
}

// divide returns a/b with the engine's division policy: a zero or absent
// divisor yields 0 rather than an error or infinity.
func divide(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return a / b
}

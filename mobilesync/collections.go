// Copyright 2025 Toly Pochkin
// SPDX-License-Identifier: Apache-2.0

package mobilesync

import "context"

// Derived collection views. A parent never stores a list of its dependents;
// the collection is whatever currently points back at it, so membership
// changes as a side effect of integrating (or deleting) the dependent
// record. All results are in id order, inherited from Store.Find.

// ItemBatches returns the batches holding stock of the item.
func ItemBatches(ctx context.Context, store Store, itemID string) ([]*ItemBatch, error) {
	return findAs[*ItemBatch](ctx, store, EntityTypeItemBatch, Match{"item_id": itemID})
}

// StocktakeBatches returns the counted lines of the stocktake.
func StocktakeBatches(ctx context.Context, store Store, stocktakeID string) ([]*StocktakeBatch, error) {
	return findAs[*StocktakeBatch](ctx, store, EntityTypeStocktakeBatch, Match{"stocktake_id": stocktakeID})
}

// TransactionBatches returns the batch lines of the transaction.
func TransactionBatches(ctx context.Context, store Store, transactionID string) ([]*TransactionBatch, error) {
	return findAs[*TransactionBatch](ctx, store, EntityTypeTransactionBatch, Match{"transaction_id": transactionID})
}

// RequisitionItems returns the item lines of the requisition.
func RequisitionItems(ctx context.Context, store Store, requisitionID string) ([]*RequisitionItem, error) {
	return findAs[*RequisitionItem](ctx, store, EntityTypeRequisitionItem, Match{"requisition_id": requisitionID})
}

// MasterListItems returns the item lines of the master list.
func MasterListItems(ctx context.Context, store Store, masterListID string) ([]*MasterListItem, error) {
	return findAs[*MasterListItem](ctx, store, EntityTypeMasterListItem, Match{"master_list_id": masterListID})
}

// NumbersToReuse returns the serial numbers waiting to be reissued from
// the sequence.
func NumbersToReuse(ctx context.Context, store Store, sequenceID string) ([]*NumberToReuse, error) {
	return findAs[*NumberToReuse](ctx, store, EntityTypeNumberToReuse, Match{"number_sequence_id": sequenceID})
}

func findAs[E Entity](ctx context.Context, store Store, t EntityType, match Match) ([]E, error) {
	found, err := store.Find(ctx, t, match)
	if err != nil {
		return nil, err
	}
	out := make([]E, 0, len(found))
	for _, e := range found {
		out = append(out, e.(E))
	}
	return out, nil
}

// Copyright 2025 Toly Pochkin
// SPDX-License-Identifier: Apache-2.0

package mobilesync

import "context"

// Integration arms for stocktakes and their counted batch lines.

func integrateStocktake(ctx context.Context, store Store, data map[string]string) error {
	serial, _ := ParseNumber(data["serial_number"])
	created, _ := ParseTimestamp(data["created_date"], "")
	counted, _ := ParseTimestamp(data["stocktake_date"], "")

	stocktake := &Stocktake{
		EntityMeta:    EntityMeta{ID: data["id"]},
		Description:   data["description"],
		Status:        TranslateStatus(data["status"]),
		SerialNumber:  serial,
		CreatedDate:   created,
		StocktakeDate: counted,
		Comment:       data["comment"],
	}
	createdBy, err := Resolve(ctx, store, EntityTypeUser, data["created_by_id"])
	if err != nil {
		return err
	}
	if createdBy != nil {
		stocktake.CreatedByID = createdBy.EntityID()
	}
	additions, err := Resolve(ctx, store, EntityTypeTransaction, data["additions_id"])
	if err != nil {
		return err
	}
	if additions != nil {
		stocktake.AdditionsID = additions.EntityID()
	}
	reductions, err := Resolve(ctx, store, EntityTypeTransaction, data["reductions_id"])
	if err != nil {
		return err
	}
	if reductions != nil {
		stocktake.ReductionsID = reductions.EntityID()
	}
	return store.Upsert(ctx, stocktake)
}

func integrateStocktakeBatch(ctx context.Context, store Store, data map[string]string) error {
	snapshotQuantity, _ := ParseNumber(data["snapshot_quantity"])
	snapshotPackSize, _ := ParseNumber(data["snapshot_pack_size"])
	costPrice, _ := ParseNumber(data["cost_price"])
	sellPrice, _ := ParseNumber(data["sell_price"])
	sortIndex, _ := ParseNumber(data["line_number"])
	expiry, _ := ParseTimestamp(data["expiry_date"], "")

	total := snapshotQuantity * snapshotPackSize
	line := &StocktakeBatch{
		EntityMeta:            EntityMeta{ID: data["id"]},
		PackSize:              1,
		SnapshotNumberOfPacks: total,
		CountedNumberOfPacks:  total,
		Batch:                 data["batch"],
		ExpiryDate:            expiry,
		CostPrice:             divide(costPrice, snapshotPackSize),
		SellPrice:             divide(sellPrice, snapshotPackSize),
		SortIndex:             sortIndex,
	}
	stocktake, err := Resolve(ctx, store, EntityTypeStocktake, data["stock_take_id"])
	if err != nil {
		return err
	}
	if stocktake != nil {
		line.StocktakeID = stocktake.EntityID()
	}
	itemBatch, err := Resolve(ctx, store, EntityTypeItemBatch, data["item_line_id"])
	if err != nil {
		return err
	}
	if itemBatch != nil {
		line.ItemBatchID = itemBatch.EntityID()
	}
	return store.Upsert(ctx, line)
}

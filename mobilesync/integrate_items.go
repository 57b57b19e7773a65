// Copyright 2025 Toly Pochkin
// SPDX-License-Identifier: Apache-2.0

package mobilesync

import (
	"context"
	"errors"
)

// Integration arms for items, item batches, store joins and master lists.
// Every arm follows the same shape: parse scalars, resolve relations
// (synthesizing placeholders for referents that have not arrived), apply
// the derived-field rules and upsert by id with full-overwrite semantics.

func integrateItem(ctx context.Context, store Store, data map[string]string) error {
	packSize, _ := ParseNumber(data["default_pack_size"])
	buyPrice, _ := ParseNumber(data["buy_price"])

	item := &Item{
		EntityMeta:      EntityMeta{ID: data["id"]},
		Code:            data["code"],
		Name:            data["name"],
		DefaultPackSize: 1,
		DefaultPrice:    divide(buyPrice, packSize),
		Description:     data["description"],
	}
	category, err := Resolve(ctx, store, EntityTypeItemCategory, data["category_id"])
	if err != nil {
		return err
	}
	if category != nil {
		item.CategoryID = category.EntityID()
	}
	department, err := Resolve(ctx, store, EntityTypeItemDepartment, data["department_id"])
	if err != nil {
		return err
	}
	if department != nil {
		item.DepartmentID = department.EntityID()
	}

	// Visibility is owned by this store's ItemStoreJoin; carry it across
	// the full-overwrite upsert so a re-sent item does not hide itself.
	prev, err := store.Get(ctx, EntityTypeItem, item.ID)
	if err == nil {
		item.IsVisible = prev.(*Item).IsVisible
	} else if !errors.Is(err, ErrNotFound) {
		return err
	}
	return store.Upsert(ctx, item)
}

func integrateItemCategory(ctx context.Context, store Store, data map[string]string) error {
	return store.Upsert(ctx, &ItemCategory{
		EntityMeta: EntityMeta{ID: data["id"]},
		Name:       data["name"],
	})
}

func integrateItemDepartment(ctx context.Context, store Store, data map[string]string) error {
	return store.Upsert(ctx, &ItemDepartment{
		EntityMeta: EntityMeta{ID: data["id"]},
		Name:       data["name"],
	})
}

func integrateItemBatch(ctx context.Context, store Store, data map[string]string) error {
	packSize, _ := ParseNumber(data["pack_size"])
	quantity, _ := ParseNumber(data["quantity"])
	costPrice, _ := ParseNumber(data["cost_price"])
	sellPrice, _ := ParseNumber(data["sell_price"])
	expiry, _ := ParseTimestamp(data["expiry_date"], "")

	batch := &ItemBatch{
		EntityMeta:    EntityMeta{ID: data["id"]},
		PackSize:      1,
		NumberOfPacks: quantity * packSize,
		Batch:         data["batch"],
		ExpiryDate:    expiry,
		CostPrice:     divide(costPrice, packSize),
		SellPrice:     divide(sellPrice, packSize),
	}
	item, err := Resolve(ctx, store, EntityTypeItem, data["item_id"])
	if err != nil {
		return err
	}
	if item != nil {
		batch.ItemID = item.EntityID()
	}
	supplier, err := Resolve(ctx, store, EntityTypeName, data["supplier_id"])
	if err != nil {
		return err
	}
	if supplier != nil {
		batch.SupplierID = supplier.EntityID()
	}
	donor, err := Resolve(ctx, store, EntityTypeName, data["donor_id"])
	if err != nil {
		return err
	}
	if donor != nil {
		batch.DonorID = donor.EntityID()
	}
	return store.Upsert(ctx, batch)
}

func integrateItemStoreJoin(ctx context.Context, store Store, settings Settings, data map[string]string) error {
	join := &ItemStoreJoin{
		EntityMeta:     EntityMeta{ID: data["id"]},
		StoreID:        data["store_id"],
		JoinsThisStore: data["store_id"] == settings.Get(SettingThisStoreID),
	}
	item, err := Resolve(ctx, store, EntityTypeItem, data["item_id"])
	if err != nil {
		return err
	}
	if item != nil {
		join.ItemID = item.EntityID()
	}
	if join.JoinsThisStore && item != nil {
		i := item.(*Item)
		i.IsVisible = !ParseBoolean(data["inactive"])
		if err := store.Upsert(ctx, i); err != nil {
			return err
		}
	}
	return store.Upsert(ctx, join)
}

func integrateMasterList(ctx context.Context, store Store, data map[string]string) error {
	return store.Upsert(ctx, &MasterList{
		EntityMeta: EntityMeta{ID: data["id"]},
		Name:       data["name"],
		Note:       data["note"],
	})
}

func integrateMasterListItem(ctx context.Context, store Store, data map[string]string) error {
	imprest, _ := ParseNumber(data["imprest_quantity"])
	line := &MasterListItem{
		EntityMeta:      EntityMeta{ID: data["id"]},
		ImprestQuantity: imprest,
	}
	list, err := Resolve(ctx, store, EntityTypeMasterList, data["list_master_id"])
	if err != nil {
		return err
	}
	if list != nil {
		line.MasterListID = list.EntityID()
	}
	item, err := Resolve(ctx, store, EntityTypeItem, data["item_id"])
	if err != nil {
		return err
	}
	if item != nil {
		line.ItemID = item.EntityID()
	}
	return store.Upsert(ctx, line)
}

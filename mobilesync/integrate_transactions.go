// Copyright 2025 Toly Pochkin
// SPDX-License-Identifier: Apache-2.0

package mobilesync

import "context"

// Integration arms for transactions, their batch lines and categories.

func integrateTransaction(ctx context.Context, store Store, data map[string]string) error {
	serial, _ := ParseNumber(data["invoice_number"])
	entered, _ := ParseTimestamp(data["entry_date"], "")
	confirmed, _ := ParseTimestamp(data["confirm_date"], "")

	transaction := &Transaction{
		EntityMeta:   EntityMeta{ID: data["id"]},
		SerialNumber: serial,
		Type:         TranslateTransactionType(data["type"]),
		Status:       TranslateStatus(data["status"]),
		EntryDate:    entered,
		ConfirmDate:  confirmed,
		TheirRef:     data["their_ref"],
		Comment:      data["comment"],
	}
	name, err := Resolve(ctx, store, EntityTypeName, data["name_id"])
	if err != nil {
		return err
	}
	if name != nil {
		transaction.NameID = name.EntityID()
	}
	user, err := Resolve(ctx, store, EntityTypeUser, data["user_id"])
	if err != nil {
		return err
	}
	if user != nil {
		transaction.EnteredByID = user.EntityID()
	}
	category, err := Resolve(ctx, store, EntityTypeTransactionCategory, data["category_id"])
	if err != nil {
		return err
	}
	if category != nil {
		transaction.CategoryID = category.EntityID()
	}
	return store.Upsert(ctx, transaction)
}

func integrateTransactionBatch(ctx context.Context, store Store, data map[string]string) error {
	packSize, _ := ParseNumber(data["pack_size"])
	quantity, _ := ParseNumber(data["quantity"])
	costPrice, _ := ParseNumber(data["cost_price"])
	sellPrice, _ := ParseNumber(data["sell_price"])
	sortIndex, _ := ParseNumber(data["line_number"])
	expiry, _ := ParseTimestamp(data["expiry_date"], "")

	total := quantity * packSize
	line := &TransactionBatch{
		EntityMeta:        EntityMeta{ID: data["id"]},
		PackSize:          1,
		NumberOfPacks:     total,
		NumberOfPacksSent: total,
		Batch:             data["batch"],
		ExpiryDate:        expiry,
		CostPrice:         divide(costPrice, packSize),
		SellPrice:         divide(sellPrice, packSize),
		Note:              data["note"],
		SortIndex:         sortIndex,
	}
	transaction, err := Resolve(ctx, store, EntityTypeTransaction, data["transaction_id"])
	if err != nil {
		return err
	}
	if transaction != nil {
		line.TransactionID = transaction.EntityID()
	}
	item, err := Resolve(ctx, store, EntityTypeItem, data["item_id"])
	if err != nil {
		return err
	}
	if item != nil {
		line.ItemID = item.EntityID()
		line.ItemName = item.(*Item).Name
	}
	itemBatch, err := Resolve(ctx, store, EntityTypeItemBatch, data["item_line_id"])
	if err != nil {
		return err
	}
	if itemBatch != nil {
		line.ItemBatchID = itemBatch.EntityID()
		// The feed can send batch lines whose item batch still points at a
		// merged-away item; the line's own item reference is authoritative.
		ib := itemBatch.(*ItemBatch)
		if line.ItemID != "" && ib.ItemID != line.ItemID {
			ib.ItemID = line.ItemID
			if err := store.Upsert(ctx, ib); err != nil {
				return err
			}
		}
	}
	donor, err := Resolve(ctx, store, EntityTypeName, data["donor_id"])
	if err != nil {
		return err
	}
	if donor != nil {
		line.DonorID = donor.EntityID()
	}
	return store.Upsert(ctx, line)
}

func integrateTransactionCategory(ctx context.Context, store Store, data map[string]string) error {
	return store.Upsert(ctx, &TransactionCategory{
		EntityMeta: EntityMeta{ID: data["id"]},
		Name:       data["name"],
		Code:       data["code"],
		Type:       TranslateTransactionType(data["type"]),
	})
}

// Copyright 2025 Toly Pochkin
// SPDX-License-Identifier: Apache-2.0

package mobilesync

// requiredWireFields lists the data keys a record must carry before it can
// be integrated. Presence is what matters: the feed may send a key with an
// empty value and that still counts. Types with no entry cannot be
// integrated from the feed at all.
var requiredWireFields = map[EntityType][]string{
	EntityTypeItem:                {"code", "name", "default_pack_size"},
	EntityTypeItemCategory:        {"name"},
	EntityTypeItemDepartment:      {"name"},
	EntityTypeItemBatch:           {"item_id", "pack_size", "quantity", "batch", "expiry_date", "cost_price", "sell_price"},
	EntityTypeItemStoreJoin:       {"item_id", "store_id"},
	EntityTypeMasterList:          {"name"},
	EntityTypeMasterListItem:      {"list_master_id", "item_id"},
	EntityTypeMasterListNameJoin:  {"list_master_id", "name_id"},
	EntityTypeName:                {"name", "code", "type", "customer", "supplier", "manufacturer"},
	EntityTypeNameStoreJoin:       {"name_id", "store_id"},
	EntityTypeNumberSequence:      {"name", "value"},
	EntityTypeNumberToReuse:       {"name", "number_to_use"},
	EntityTypeRequisition:         {"serial_number", "status", "type", "date_entered", "days_to_supply"},
	EntityTypeRequisitionItem:     {"requisition_id", "item_id"},
	EntityTypeStocktake:           {"status", "created_date", "serial_number"},
	EntityTypeStocktakeBatch:      {"stock_take_id", "item_line_id", "snapshot_quantity", "snapshot_pack_size"},
	EntityTypeTransaction:         {"name_id", "invoice_number", "type", "status", "entry_date"},
	EntityTypeTransactionBatch:    {"transaction_id", "item_line_id", "item_id", "pack_size", "quantity"},
	EntityTypeTransactionCategory: {"name", "code", "type"},
}

// SanityCheckRecord reports whether the wire data carries the minimum
// fields needed to integrate a record of the given type. It never errors;
// a failing record is simply not integrated.
func SanityCheckRecord(t EntityType, data map[string]string) bool {
	if data["id"] == "" {
		return false
	}
	required, ok := requiredWireFields[t]
	if !ok {
		return false
	}
	for _, field := range required {
		if _, present := data[field]; !present {
			return false
		}
	}
	return true
}

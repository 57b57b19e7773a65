// Copyright 2025 Toly Pochkin
// SPDX-License-Identifier: Apache-2.0

package mobilesync

import "context"

// Integration arms for requisitions and their item lines.

func integrateRequisition(ctx context.Context, store Store, data map[string]string) error {
	serial, _ := ParseNumber(data["serial_number"])
	daysToSupply, _ := ParseNumber(data["days_to_supply"])
	entered, _ := ParseTimestamp(data["date_entered"], "")

	req := &Requisition{
		EntityMeta:         EntityMeta{ID: data["id"]},
		SerialNumber:       serial,
		Status:             TranslateStatus(data["status"]),
		Type:               TranslateRequisitionType(data["type"]),
		EntryDate:          entered,
		DaysToSupply:       daysToSupply,
		RequesterReference: data["requester_reference"],
		Comment:            data["comment"],
	}
	name, err := Resolve(ctx, store, EntityTypeName, data["name_id"])
	if err != nil {
		return err
	}
	if name != nil {
		req.NameID = name.EntityID()
	}
	user, err := Resolve(ctx, store, EntityTypeUser, data["user_id"])
	if err != nil {
		return err
	}
	if user != nil {
		req.UserID = user.EntityID()
	}
	return store.Upsert(ctx, req)
}

func integrateRequisitionItem(ctx context.Context, store Store, data map[string]string) error {
	stockOnHand, _ := ParseNumber(data["stock_on_hand"])
	stockOrder, _ := ParseNumber(data["customer_stock_order"])
	supplied, _ := ParseNumber(data["supplied_quantity"])
	sortIndex, _ := ParseNumber(data["line_number"])

	line := &RequisitionItem{
		EntityMeta:       EntityMeta{ID: data["id"]},
		StockOnHand:      stockOnHand,
		SuppliedQuantity: supplied,
		Comment:          data["comment"],
		SortIndex:        sortIndex,
	}
	requisition, err := Resolve(ctx, store, EntityTypeRequisition, data["requisition_id"])
	if err != nil {
		return err
	}
	if requisition != nil {
		line.RequisitionID = requisition.EntityID()
		// A placeholder parent has DaysToSupply 0, so usage stays 0 until
		// the line is re-sent after the real requisition arrives.
		line.DailyUsage = divide(stockOrder, requisition.(*Requisition).DaysToSupply)
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

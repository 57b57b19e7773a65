// Copyright 2025 Toly Pochkin
// SPDX-License-Identifier: Apache-2.0

package mobilesync

import (
	"context"
	"errors"
)

// Integration arms for names, their store joins and master list assignments.

func integrateName(ctx context.Context, store Store, data map[string]string) error {
	name := &Name{
		EntityMeta:       EntityMeta{ID: data["id"]},
		Name:             data["name"],
		Code:             data["code"],
		Type:             TranslateNameType(data["type"]),
		IsCustomer:       ParseBoolean(data["customer"]),
		IsSupplier:       ParseBoolean(data["supplier"]),
		IsManufacturer:   ParseBoolean(data["manufacturer"]),
		PhoneNumber:      data["phone"],
		EmailAddress:     data["email"],
		SupplyingStoreID: data["supplying_store_id"],
	}

	address, err := ResolveAddress(ctx, store, addressLookupFromWire(data))
	if err != nil {
		return err
	}
	if address != nil {
		name.BillingAddressID = address.EntityID()
	}

	// Visibility and master list assignment are owned by join records;
	// carry them across the full-overwrite upsert.
	prev, err := store.Get(ctx, EntityTypeName, name.ID)
	if err == nil {
		p := prev.(*Name)
		name.IsVisible = p.IsVisible
		name.MasterListID = p.MasterListID
	} else if !errors.Is(err, ErrNotFound) {
		return err
	}
	return store.Upsert(ctx, name)
}

// addressLookupFromWire builds the dedup lookup from the wire fields the
// record actually carried. A key the feed did not send stays nil and is
// unconstrained in the match; a key sent empty constrains to empty.
func addressLookupFromWire(data map[string]string) AddressLookup {
	var lookup AddressLookup
	if v, ok := data["address1"]; ok {
		lookup.Line1 = &v
	}
	if v, ok := data["address2"]; ok {
		lookup.Line2 = &v
	}
	if v, ok := data["address3"]; ok {
		lookup.Line3 = &v
	}
	if v, ok := data["address4"]; ok {
		lookup.Line4 = &v
	}
	if v, ok := data["postal_zip_code"]; ok {
		lookup.Zip = &v
	}
	return lookup
}

func integrateNameStoreJoin(ctx context.Context, store Store, settings Settings, data map[string]string) error {
	join := &NameStoreJoin{
		EntityMeta:     EntityMeta{ID: data["id"]},
		StoreID:        data["store_id"],
		JoinsThisStore: data["store_id"] == settings.Get(SettingThisStoreID),
	}
	name, err := Resolve(ctx, store, EntityTypeName, data["name_id"])
	if err != nil {
		return err
	}
	if name != nil {
		join.NameID = name.EntityID()
	}
	if join.JoinsThisStore && name != nil {
		n := name.(*Name)
		n.IsVisible = !ParseBoolean(data["inactive"])
		if err := store.Upsert(ctx, n); err != nil {
			return err
		}
	}
	return store.Upsert(ctx, join)
}

func integrateMasterListNameJoin(ctx context.Context, store Store, data map[string]string) error {
	join := &MasterListNameJoin{
		EntityMeta: EntityMeta{ID: data["id"]},
	}
	list, err := Resolve(ctx, store, EntityTypeMasterList, data["list_master_id"])
	if err != nil {
		return err
	}
	if list != nil {
		join.MasterListID = list.EntityID()
	}
	name, err := Resolve(ctx, store, EntityTypeName, data["name_id"])
	if err != nil {
		return err
	}
	if name != nil {
		join.NameID = name.EntityID()
		// The join is authoritative for which master list a name uses.
		n := name.(*Name)
		n.MasterListID = join.MasterListID
		if err := store.Upsert(ctx, n); err != nil {
			return err
		}
	}
	return store.Upsert(ctx, join)
}

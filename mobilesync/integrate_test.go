package mobilesync

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func testSettings() SettingsMap {
	return SettingsMap{SettingThisStoreID: "store-A"}
}

func record(recordType, syncType string, data map[string]string) *SyncRecord {
	id := ""
	if data != nil {
		id = data["id"]
	}
	return &SyncRecord{RecordID: id, RecordType: recordType, SyncType: syncType, Data: data}
}

func itemRecord(id string) *SyncRecord {
	return record("item", ChangeCodeCreate, map[string]string{
		"id":                id,
		"code":              "amox",
		"name":              "Amoxicillin 250mg",
		"default_pack_size": "100",
		"buy_price":         "250",
	})
}

func TestIntegrateItem(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()

	require.NoError(t, IntegrateRecord(ctx, store, testSettings(), itemRecord("item-1")))

	e, err := store.Get(ctx, EntityTypeItem, "item-1")
	require.NoError(t, err)
	item := e.(*Item)
	require.False(t, item.IsPlaceholder())
	require.Equal(t, "amox", item.Code)
	require.Equal(t, float64(1), item.DefaultPackSize, "pack size is normalized to 1")
	require.Equal(t, 2.5, item.DefaultPrice, "buy price divided by pack size")
}

func TestIntegrateIsIdempotent(t *testing.T) {
	ctx := context.Background()
	settings := testSettings()

	once := NewMemStore()
	require.NoError(t, IntegrateRecord(ctx, once, settings, itemRecord("item-1")))

	twice := NewMemStore()
	require.NoError(t, IntegrateRecord(ctx, twice, settings, itemRecord("item-1")))
	require.NoError(t, IntegrateRecord(ctx, twice, settings, itemRecord("item-1")))

	a, err := once.Get(ctx, EntityTypeItem, "item-1")
	require.NoError(t, err)
	b, err := twice.Get(ctx, EntityTypeItem, "item-1")
	require.NoError(t, err)
	require.Equal(t, a, b)
	require.Equal(t, 1, twice.Len(EntityTypeItem))
}

func TestForwardReferenceSafety(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()
	settings := testSettings()

	// Batch arrives before its item.
	require.NoError(t, IntegrateRecord(ctx, store, settings, record("item_line", ChangeCodeCreate, map[string]string{
		"id":          "batch-1",
		"item_id":     "item-1",
		"pack_size":   "10",
		"quantity":    "5",
		"batch":       "B100",
		"expiry_date": "2026-06-30",
		"cost_price":  "20",
		"sell_price":  "30",
	})))

	e, err := store.Get(ctx, EntityTypeItem, "item-1")
	require.NoError(t, err)
	require.True(t, e.IsPlaceholder())
	require.Equal(t, "placeholder", e.(*Item).Code)

	// The real item overwrites the placeholder in place.
	require.NoError(t, IntegrateRecord(ctx, store, settings, itemRecord("item-1")))
	e, err = store.Get(ctx, EntityTypeItem, "item-1")
	require.NoError(t, err)
	require.False(t, e.IsPlaceholder())
	require.Equal(t, "amox", e.(*Item).Code)

	// The batch's relation survives.
	batches, err := ItemBatches(ctx, store, "item-1")
	require.NoError(t, err)
	require.Len(t, batches, 1)
	require.Equal(t, "batch-1", batches[0].ID)
}

func TestPackSizeNormalization(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()
	settings := testSettings()

	require.NoError(t, IntegrateRecord(ctx, store, settings, record("item_line", ChangeCodeCreate, map[string]string{
		"id": "batch-1", "item_id": "item-1", "pack_size": "12", "quantity": "4",
		"batch": "B1", "expiry_date": "2026-01-01", "cost_price": "24", "sell_price": "36",
	})))
	e, err := store.Get(ctx, EntityTypeItemBatch, "batch-1")
	require.NoError(t, err)
	batch := e.(*ItemBatch)
	require.Equal(t, float64(1), batch.PackSize)
	require.Equal(t, float64(48), batch.NumberOfPacks)
	require.Equal(t, float64(2), batch.CostPrice)
	require.Equal(t, float64(3), batch.SellPrice)

	require.NoError(t, IntegrateRecord(ctx, store, settings, record("stock_take_lines", ChangeCodeCreate, map[string]string{
		"id": "stb-1", "stock_take_id": "st-1", "item_line_id": "batch-1",
		"snapshot_quantity": "4", "snapshot_pack_size": "12", "cost_price": "24", "sell_price": "36",
	})))
	e, err = store.Get(ctx, EntityTypeStocktakeBatch, "stb-1")
	require.NoError(t, err)
	stb := e.(*StocktakeBatch)
	require.Equal(t, float64(1), stb.PackSize)
	require.Equal(t, float64(48), stb.SnapshotNumberOfPacks)
	require.Equal(t, float64(48), stb.CountedNumberOfPacks)
	require.Equal(t, float64(2), stb.CostPrice)

	require.NoError(t, IntegrateRecord(ctx, store, settings, record("trans_line", ChangeCodeCreate, map[string]string{
		"id": "tb-1", "transaction_id": "t-1", "item_id": "item-1", "item_line_id": "batch-1",
		"pack_size": "12", "quantity": "4", "cost_price": "24", "sell_price": "36",
	})))
	e, err = store.Get(ctx, EntityTypeTransactionBatch, "tb-1")
	require.NoError(t, err)
	tb := e.(*TransactionBatch)
	require.Equal(t, float64(1), tb.PackSize)
	require.Equal(t, float64(48), tb.NumberOfPacks)
	require.Equal(t, float64(48), tb.NumberOfPacksSent)
	require.Equal(t, float64(3), tb.SellPrice)
}

func TestDivisionGuards(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()
	settings := testSettings()

	// Zero pack size: prices resolve to 0, never NaN or infinity.
	require.NoError(t, IntegrateRecord(ctx, store, settings, record("item_line", ChangeCodeCreate, map[string]string{
		"id": "batch-z", "item_id": "item-1", "pack_size": "0", "quantity": "5",
		"batch": "B1", "expiry_date": "2026-01-01", "cost_price": "24", "sell_price": "36",
	})))
	e, err := store.Get(ctx, EntityTypeItemBatch, "batch-z")
	require.NoError(t, err)
	require.Zero(t, e.(*ItemBatch).CostPrice)
	require.Zero(t, e.(*ItemBatch).SellPrice)

	// Requisition with zero days to supply: line usage resolves to 0.
	require.NoError(t, IntegrateRecord(ctx, store, settings, record("requisition", ChangeCodeCreate, map[string]string{
		"id": "req-1", "serial_number": "7", "status": "fn", "type": "im",
		"date_entered": "2024-01-01", "days_to_supply": "0",
	})))
	require.NoError(t, IntegrateRecord(ctx, store, settings, record("requisition_line", ChangeCodeCreate, map[string]string{
		"id": "rl-1", "requisition_id": "req-1", "item_id": "item-1",
		"customer_stock_order": "30", "stock_on_hand": "12",
	})))
	e, err = store.Get(ctx, EntityTypeRequisitionItem, "rl-1")
	require.NoError(t, err)
	require.Zero(t, e.(*RequisitionItem).DailyUsage)
}

func TestRequisitionItemDailyUsage(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()
	settings := testSettings()

	require.NoError(t, IntegrateRecord(ctx, store, settings, record("requisition", ChangeCodeCreate, map[string]string{
		"id": "req-1", "serial_number": "7", "status": "sg", "type": "im",
		"date_entered": "2024-01-01", "days_to_supply": "30",
	})))
	require.NoError(t, IntegrateRecord(ctx, store, settings, record("requisition_line", ChangeCodeCreate, map[string]string{
		"id": "rl-1", "requisition_id": "req-1", "item_id": "item-1",
		"customer_stock_order": "90", "stock_on_hand": "12",
	})))

	e, err := store.Get(ctx, EntityTypeRequisitionItem, "rl-1")
	require.NoError(t, err)
	line := e.(*RequisitionItem)
	require.Equal(t, float64(3), line.DailyUsage)
	require.Equal(t, float64(12), line.StockOnHand)
	require.Equal(t, "req-1", line.RequisitionID)
}

func TestStoreScopedSequenceFiltering(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()
	settings := testSettings()

	// A counter owned by another store: nothing is written.
	require.NoError(t, IntegrateRecord(ctx, store, settings, record("number", ChangeCodeCreate, map[string]string{
		"id": "n-1", "name": "stocktake_number_for_store_XYZ", "value": "42",
	})))
	require.Zero(t, store.Len(EntityTypeNumberSequence))

	// Our own counter integrates under its translated key.
	require.NoError(t, IntegrateRecord(ctx, store, settings, record("number", ChangeCodeCreate, map[string]string{
		"id": "n-2", "name": "stocktake_number_for_store_store-A", "value": "42",
	})))
	require.Equal(t, 1, store.Len(EntityTypeNumberSequence))
	seqs, err := store.Find(ctx, EntityTypeNumberSequence, Match{"sequence_key": SequenceStocktakeSerialNumber})
	require.NoError(t, err)
	require.Len(t, seqs, 1)
	require.Equal(t, float64(42), seqs[0].(*NumberSequence).HighestNumberUsed)
	require.False(t, seqs[0].IsPlaceholder())
}

func TestNumberToReuseLinksSequence(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()
	settings := testSettings()

	// The reusable number arrives before its sequence record and
	// synthesizes a placeholder sequence under the translated key.
	require.NoError(t, IntegrateRecord(ctx, store, settings, record("number_reuse", ChangeCodeCreate, map[string]string{
		"id": "nr-1", "name": "stocktake_number_for_store_store-A", "number_to_use": "17",
	})))
	seqs, err := store.Find(ctx, EntityTypeNumberSequence, Match{"sequence_key": SequenceStocktakeSerialNumber})
	require.NoError(t, err)
	require.Len(t, seqs, 1)
	require.True(t, seqs[0].IsPlaceholder())

	// The authoritative sequence record overwrites the same row, so the
	// reusable number's link stays valid.
	require.NoError(t, IntegrateRecord(ctx, store, settings, record("number", ChangeCodeCreate, map[string]string{
		"id": "n-1", "name": "stocktake_number_for_store_store-A", "value": "20",
	})))
	require.Equal(t, 1, store.Len(EntityTypeNumberSequence))

	reusable, err := NumbersToReuse(ctx, store, seqs[0].EntityID())
	require.NoError(t, err)
	require.Len(t, reusable, 1)
	require.Equal(t, float64(17), reusable[0].Number)
}

func TestMalformedRecordTolerance(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()
	settings := testSettings()

	// Missing required code field: silently skipped, nothing written.
	require.NoError(t, IntegrateRecord(ctx, store, settings, record("item", ChangeCodeCreate, map[string]string{
		"id": "item-1", "name": "Amoxicillin", "default_pack_size": "1",
	})))
	require.Zero(t, store.Len(EntityTypeItem))

	// Unrecognized record type: skipped.
	require.NoError(t, IntegrateRecord(ctx, store, settings, record("pref_blob", ChangeCodeCreate, map[string]string{
		"id": "p-1",
	})))

	// Missing classifiers: skipped.
	require.NoError(t, IntegrateRecord(ctx, store, settings, &SyncRecord{RecordID: "x"}))

	// Unknown change type: fatal for the record.
	err := IntegrateRecord(ctx, store, settings, record("item", "M", map[string]string{
		"id": "item-1", "code": "amox", "name": "Amoxicillin", "default_pack_size": "1",
	}))
	require.ErrorIs(t, err, ErrUnknownChangeType)
}

func TestStoreJoinVisibility(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()
	settings := testSettings()

	require.NoError(t, IntegrateRecord(ctx, store, settings, itemRecord("item-1")))

	// A join for this store makes the item visible unless inactive.
	require.NoError(t, IntegrateRecord(ctx, store, settings, record("item_store_join", ChangeCodeCreate, map[string]string{
		"id": "isj-1", "item_id": "item-1", "store_id": "store-A", "inactive": "false",
	})))
	e, err := store.Get(ctx, EntityTypeItem, "item-1")
	require.NoError(t, err)
	require.True(t, e.(*Item).IsVisible)

	join, err := store.Get(ctx, EntityTypeItemStoreJoin, "isj-1")
	require.NoError(t, err)
	require.True(t, join.(*ItemStoreJoin).JoinsThisStore)

	// Re-integrating the item keeps the join-owned visibility.
	require.NoError(t, IntegrateRecord(ctx, store, settings, itemRecord("item-1")))
	e, err = store.Get(ctx, EntityTypeItem, "item-1")
	require.NoError(t, err)
	require.True(t, e.(*Item).IsVisible)

	// A join for another store records membership but does not touch
	// visibility.
	require.NoError(t, IntegrateRecord(ctx, store, settings, record("item_store_join", ChangeCodeCreate, map[string]string{
		"id": "isj-2", "item_id": "item-1", "store_id": "store-B", "inactive": "true",
	})))
	e, err = store.Get(ctx, EntityTypeItem, "item-1")
	require.NoError(t, err)
	require.True(t, e.(*Item).IsVisible)
	join, err = store.Get(ctx, EntityTypeItemStoreJoin, "isj-2")
	require.NoError(t, err)
	require.False(t, join.(*ItemStoreJoin).JoinsThisStore)
}

func TestNameIntegrationAndAddressDedup(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()
	settings := testSettings()

	nameData := func(id string) map[string]string {
		return map[string]string{
			"id": id, "name": "Central Medical Store", "code": "CMS", "type": "facility",
			"customer": "true", "supplier": "false", "manufacturer": "false",
			"address1": "1 Depot Rd", "postal_zip_code": "90210",
		}
	}
	require.NoError(t, IntegrateRecord(ctx, store, settings, record("name", ChangeCodeCreate, nameData("name-1"))))
	require.NoError(t, IntegrateRecord(ctx, store, settings, record("name", ChangeCodeCreate, nameData("name-2"))))
	require.Equal(t, 1, store.Len(EntityTypeAddress), "identical supplied fields share one address")

	a, err := store.Get(ctx, EntityTypeName, "name-1")
	require.NoError(t, err)
	b, err := store.Get(ctx, EntityTypeName, "name-2")
	require.NoError(t, err)
	require.Equal(t, a.(*Name).BillingAddressID, b.(*Name).BillingAddressID)
	require.True(t, a.(*Name).IsCustomer)
	require.False(t, a.(*Name).IsSupplier)
	require.Equal(t, NameTypeFacility, a.(*Name).Type)

	third := nameData("name-3")
	third["postal_zip_code"] = "10001"
	require.NoError(t, IntegrateRecord(ctx, store, settings, record("name", ChangeCodeCreate, third)))
	require.Equal(t, 2, store.Len(EntityTypeAddress), "differing zip creates a second address")
}

func TestMasterListNameJoinSideEffect(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()
	settings := testSettings()

	require.NoError(t, IntegrateRecord(ctx, store, settings, record("list_master_name_join", ChangeCodeCreate, map[string]string{
		"id": "j-1", "list_master_id": "list-1", "name_id": "name-1",
	})))

	e, err := store.Get(ctx, EntityTypeName, "name-1")
	require.NoError(t, err)
	require.Equal(t, "list-1", e.(*Name).MasterListID)

	// The assignment survives the name's own (later) full-overwrite
	// integration.
	require.NoError(t, IntegrateRecord(ctx, store, settings, record("name", ChangeCodeCreate, map[string]string{
		"id": "name-1", "name": "Clinic", "code": "CL", "type": "facility",
		"customer": "true", "supplier": "false", "manufacturer": "false",
	})))
	e, err = store.Get(ctx, EntityTypeName, "name-1")
	require.NoError(t, err)
	require.Equal(t, "list-1", e.(*Name).MasterListID)
	require.False(t, e.IsPlaceholder())
}

func TestTransactionBatchRepairsItemLink(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()
	settings := testSettings()

	// Batch exists but points at a stale item.
	require.NoError(t, store.Upsert(ctx, &ItemBatch{
		EntityMeta: EntityMeta{ID: "batch-1"},
		ItemID:     "item-old",
		PackSize:   1,
	}))

	require.NoError(t, IntegrateRecord(ctx, store, settings, record("trans_line", ChangeCodeCreate, map[string]string{
		"id": "tb-1", "transaction_id": "t-1", "item_id": "item-new", "item_line_id": "batch-1",
		"pack_size": "1", "quantity": "10",
	})))

	e, err := store.Get(ctx, EntityTypeItemBatch, "batch-1")
	require.NoError(t, err)
	require.Equal(t, "item-new", e.(*ItemBatch).ItemID)
}

func TestDeleteRecord(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()
	settings := testSettings()

	require.NoError(t, IntegrateRecord(ctx, store, settings, itemRecord("item-1")))
	require.NoError(t, IntegrateRecord(ctx, store, settings, &SyncRecord{
		RecordID:   "item-1",
		RecordType: "item",
		SyncType:   ChangeCodeDelete,
	}))
	require.Zero(t, store.Len(EntityTypeItem))

	// Deleting something never integrated is a no-op.
	require.NoError(t, DeleteRecord(ctx, store, EntityTypeItem, "item-ghost"))

	// Unsupported types are ignored.
	require.NoError(t, DeleteRecord(ctx, store, EntityTypeUser, "u-1"))
	require.NoError(t, DeleteRecord(ctx, store, EntityTypeUnknown, "x"))
}

package mobilesync

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDerivedCollections(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()

	require.NoError(t, store.Upsert(ctx, &Item{EntityMeta: EntityMeta{ID: "item-1"}, Name: "Amoxicillin", DefaultPackSize: 1}))
	require.NoError(t, store.Upsert(ctx, &ItemBatch{EntityMeta: EntityMeta{ID: "batch-1"}, ItemID: "item-1", PackSize: 1}))
	require.NoError(t, store.Upsert(ctx, &ItemBatch{EntityMeta: EntityMeta{ID: "batch-2"}, ItemID: "item-1", PackSize: 1}))
	require.NoError(t, store.Upsert(ctx, &ItemBatch{EntityMeta: EntityMeta{ID: "batch-3"}, ItemID: "item-2", PackSize: 1}))

	batches, err := ItemBatches(ctx, store, "item-1")
	require.NoError(t, err)
	require.Len(t, batches, 2)
	require.Equal(t, "batch-1", batches[0].ID)
	require.Equal(t, "batch-2", batches[1].ID)

	// Membership is purely whatever points back at the parent; deleting a
	// dependent shrinks the collection with no parent-side bookkeeping.
	require.NoError(t, store.Delete(ctx, EntityTypeItemBatch, "batch-1"))
	batches, err = ItemBatches(ctx, store, "item-1")
	require.NoError(t, err)
	require.Len(t, batches, 1)

	require.NoError(t, store.Upsert(ctx, &NumberSequence{EntityMeta: EntityMeta{ID: "seq-1"}, SequenceKey: SequenceStocktakeSerialNumber}))
	require.NoError(t, store.Upsert(ctx, &NumberToReuse{EntityMeta: EntityMeta{ID: "reuse-1"}, NumberSequenceID: "seq-1", Number: 4}))
	reuse, err := NumbersToReuse(ctx, store, "seq-1")
	require.NoError(t, err)
	require.Len(t, reuse, 1)
	require.Equal(t, 4.0, reuse[0].Number)

	empty, err := RequisitionItems(ctx, store, "req-none")
	require.NoError(t, err)
	require.Empty(t, empty)
}

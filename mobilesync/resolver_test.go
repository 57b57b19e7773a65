package mobilesync

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestResolveCreatesPlaceholder(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()

	e, err := Resolve(ctx, store, EntityTypeItem, "item-1")
	require.NoError(t, err)
	require.True(t, e.IsPlaceholder())
	require.Equal(t, "item-1", e.EntityID())

	item := e.(*Item)
	require.Equal(t, "placeholder", item.Code)
	require.Equal(t, float64(1), item.DefaultPackSize)

	// The placeholder was persisted, not just returned.
	stored, err := store.Get(ctx, EntityTypeItem, "item-1")
	require.NoError(t, err)
	require.True(t, stored.IsPlaceholder())
}

func TestResolveReturnsExisting(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()
	require.NoError(t, store.Upsert(ctx, &Item{
		EntityMeta: EntityMeta{ID: "item-1"},
		Code:       "amox",
		Name:       "Amoxicillin",
	}))

	e, err := Resolve(ctx, store, EntityTypeItem, "item-1")
	require.NoError(t, err)
	require.False(t, e.IsPlaceholder())
	require.Equal(t, "amox", e.(*Item).Code)
	require.Equal(t, 1, store.Len(EntityTypeItem))
}

func TestResolveEmptyIDIsNoRelation(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()

	e, err := Resolve(ctx, store, EntityTypeItem, "")
	require.NoError(t, err)
	require.Nil(t, e)
	require.Zero(t, store.Len(EntityTypeItem))
}

func TestResolveUnknownTypeIsFatal(t *testing.T) {
	_, err := Resolve(context.Background(), NewMemStore(), EntityType("Widget"), "w-1")
	require.ErrorIs(t, err, ErrNoPlaceholderTemplate)
}

func TestNewPlaceholderTotalOverReferencedTypes(t *testing.T) {
	now := time.Now()
	for _, entityType := range []EntityType{
		EntityTypeItem, EntityTypeItemBatch, EntityTypeItemCategory, EntityTypeItemDepartment,
		EntityTypeMasterList, EntityTypeName, EntityTypeNumberSequence, EntityTypeRequisition,
		EntityTypeStocktake, EntityTypeTransaction, EntityTypeTransactionCategory, EntityTypeUser,
	} {
		p, err := NewPlaceholder(entityType, "x", now)
		require.NoError(t, err, "type %s", entityType)
		require.Equal(t, entityType, p.EntityType())
		require.Equal(t, "x", p.EntityID())
		require.True(t, p.IsPlaceholder())
	}
}

func TestResolveSequence(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()

	seq, err := ResolveSequence(ctx, store, SequenceStocktakeSerialNumber)
	require.NoError(t, err)
	require.True(t, seq.IsPlaceholder())
	require.NotEmpty(t, seq.ID)
	require.Equal(t, SequenceStocktakeSerialNumber, seq.SequenceKey)

	// Resolving the same key again returns the same row.
	again, err := ResolveSequence(ctx, store, SequenceStocktakeSerialNumber)
	require.NoError(t, err)
	require.Equal(t, seq.ID, again.ID)
	require.Equal(t, 1, store.Len(EntityTypeNumberSequence))

	none, err := ResolveSequence(ctx, store, "")
	require.NoError(t, err)
	require.Nil(t, none)
}

func TestResolveAddressDedup(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()
	line1 := "1 Main St"
	zip := "90210"
	otherZip := "10001"

	first, err := ResolveAddress(ctx, store, AddressLookup{Line1: &line1, Zip: &zip})
	require.NoError(t, err)
	require.NotEmpty(t, first.ID)

	// Identical supplied fields resolve to the same entity.
	second, err := ResolveAddress(ctx, store, AddressLookup{Line1: &line1, Zip: &zip})
	require.NoError(t, err)
	require.Equal(t, first.ID, second.ID)
	require.Equal(t, 1, store.Len(EntityTypeAddress))

	// Differing only in zip creates a second address.
	third, err := ResolveAddress(ctx, store, AddressLookup{Line1: &line1, Zip: &otherZip})
	require.NoError(t, err)
	require.NotEqual(t, first.ID, third.ID)
	require.Equal(t, 2, store.Len(EntityTypeAddress))

	// Unsupplied fields are unconstrained: line1 alone matches the first
	// stored address (lowest id wins).
	fourth, err := ResolveAddress(ctx, store, AddressLookup{Line1: &line1})
	require.NoError(t, err)
	require.Equal(t, 2, store.Len(EntityTypeAddress))
	require.Contains(t, []string{first.ID, third.ID}, fourth.ID)

	none, err := ResolveAddress(ctx, store, AddressLookup{})
	require.NoError(t, err)
	require.Nil(t, none)
	require.Equal(t, 2, store.Len(EntityTypeAddress))
}

func TestDeleteThenResolveYieldsFreshPlaceholder(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()
	require.NoError(t, store.Upsert(ctx, &Transaction{
		EntityMeta: EntityMeta{ID: "t-1"},
		Status:     StatusFinalised,
	}))

	require.NoError(t, DeleteRecord(ctx, store, EntityTypeTransaction, "t-1"))

	e, err := Resolve(ctx, store, EntityTypeTransaction, "t-1")
	require.NoError(t, err)
	require.True(t, e.IsPlaceholder(), "real entity must be gone, not hidden")
	require.Equal(t, StatusUnknown, e.(*Transaction).Status)
}

// Copyright 2025 Toly Pochkin
// SPDX-License-Identifier: Apache-2.0

package mobilesync

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Resolve returns the entity a record references, synthesizing and
// persisting a placeholder when the referent has not arrived yet. The feed
// carries no ordering guarantees across entity types, so a batch may
// reference an item the replica has never seen. An empty id means the
// record carries no reference: the result is nil with no error and no
// placeholder is created.
func Resolve(ctx context.Context, store Store, t EntityType, id string) (Entity, error) {
	if id == "" {
		return nil, nil
	}
	e, err := store.Get(ctx, t, id)
	if err == nil {
		return e, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}
	p, err := NewPlaceholder(t, id, time.Now())
	if err != nil {
		return nil, err
	}
	if err := store.Upsert(ctx, p); err != nil {
		return nil, fmt.Errorf("persist placeholder %s %s: %w", t, id, err)
	}
	return p, nil
}

// ResolveSequence returns the NumberSequence for an internal sequence key,
// synthesizing a placeholder with a generated id when none exists.
// Sequences are identified by key, not id: the authoritative record for
// the same counter may arrive later under its own id and simply wins the
// key. An empty key returns nil with no error.
func ResolveSequence(ctx context.Context, store Store, sequenceKey string) (*NumberSequence, error) {
	if sequenceKey == "" {
		return nil, nil
	}
	found, err := store.Find(ctx, EntityTypeNumberSequence, Match{"sequence_key": sequenceKey})
	if err != nil {
		return nil, err
	}
	if len(found) > 0 {
		return found[0].(*NumberSequence), nil
	}
	seq := &NumberSequence{
		EntityMeta:  EntityMeta{ID: store.NewID(), Placeholder: true},
		SequenceKey: sequenceKey,
	}
	if err := store.Upsert(ctx, seq); err != nil {
		return nil, fmt.Errorf("persist placeholder sequence %q: %w", sequenceKey, err)
	}
	return seq, nil
}

// AddressLookup names the address fields a record supplied. Nil fields are
// unconstrained: an existing address only has to agree on the fields that
// were actually sent.
type AddressLookup struct {
	Line1 *string
	Line2 *string
	Line3 *string
	Line4 *string
	Zip   *string
}

// ResolveAddress finds an address exactly matching the supplied fields or
// creates one with a generated id. Addresses have no authoritative ids on
// the feed; dedup by content is what keeps repeated name records from
// piling up copies. A lookup with no supplied fields returns nil with no
// error.
func ResolveAddress(ctx context.Context, store Store, lookup AddressLookup) (*Address, error) {
	match := Match{}
	if lookup.Line1 != nil {
		match["line1"] = *lookup.Line1
	}
	if lookup.Line2 != nil {
		match["line2"] = *lookup.Line2
	}
	if lookup.Line3 != nil {
		match["line3"] = *lookup.Line3
	}
	if lookup.Line4 != nil {
		match["line4"] = *lookup.Line4
	}
	if lookup.Zip != nil {
		match["zip"] = *lookup.Zip
	}
	if len(match) == 0 {
		return nil, nil
	}
	found, err := store.Find(ctx, EntityTypeAddress, match)
	if err != nil {
		return nil, err
	}
	if len(found) > 0 {
		return found[0].(*Address), nil
	}
	addr := &Address{
		EntityMeta: EntityMeta{ID: store.NewID()},
		Line1:      lookup.Line1,
		Line2:      lookup.Line2,
		Line3:      lookup.Line3,
		Line4:      lookup.Line4,
		Zip:        lookup.Zip,
	}
	if err := store.Upsert(ctx, addr); err != nil {
		return nil, fmt.Errorf("persist address: %w", err)
	}
	return addr, nil
}

// Copyright 2025 Toly Pochkin
// SPDX-License-Identifier: Apache-2.0

package mobilesync

import "context"

// Integration arms for store-scoped number sequences. The feed carries
// counters for every store; only the ones suffixed with this store's id
// translate, everything else is skipped silently. Sequences are identified
// by their translated key, not by the feed's record id: a counter may first
// appear as a synthesized placeholder (when a reused number references it)
// and the authoritative record later overwrites that same row in place, so
// NumberToReuse links stay valid.

func integrateNumberSequence(ctx context.Context, store Store, settings Settings, data map[string]string) error {
	key, ok := TranslateSequenceKey(data["name"], settings.Get(SettingThisStoreID))
	if !ok {
		return nil
	}
	seq, err := ResolveSequence(ctx, store, key)
	if err != nil {
		return err
	}
	highest, _ := ParseNumber(data["value"])
	seq.Placeholder = false
	seq.HighestNumberUsed = highest
	return store.Upsert(ctx, seq)
}

func integrateNumberToReuse(ctx context.Context, store Store, settings Settings, data map[string]string) error {
	key, ok := TranslateSequenceKey(data["name"], settings.Get(SettingThisStoreID))
	if !ok {
		return nil
	}
	seq, err := ResolveSequence(ctx, store, key)
	if err != nil {
		return err
	}
	number, _ := ParseNumber(data["number_to_use"])
	return store.Upsert(ctx, &NumberToReuse{
		EntityMeta:       EntityMeta{ID: data["id"]},
		NumberSequenceID: seq.EntityID(),
		Number:           number,
	})
}

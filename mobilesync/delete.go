// Copyright 2025 Toly Pochkin
// SPDX-License-Identifier: Apache-2.0

package mobilesync

import (
	"context"
	"errors"
)

// DeleteRecord removes the entity a delete notification names. Only the
// types the feed can create are deletable; anything else is ignored like
// an unrecognized record type. The lookup never synthesizes a placeholder:
// deleting something the replica never integrated is a no-op. The feed is
// expected to delete dependents before their parent, so no cascade runs
// here beyond what the store itself does.
func DeleteRecord(ctx context.Context, store Store, t EntityType, id string) error {
	if id == "" {
		return nil
	}
	if _, supported := requiredWireFields[t]; !supported {
		return nil
	}
	if _, err := store.Get(ctx, t, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil
		}
		return err
	}
	return store.Delete(ctx, t, id)
}

// Copyright 2025 Toly Pochkin
// SPDX-License-Identifier: Apache-2.0

package mobilesync

import "errors"

// Integration error sentinels for better error mapping
var (
	// ErrNotFound is returned by Store.Get when no entity with the requested
	// type and id exists.
	ErrNotFound = errors.New("entity_not_found")

	// ErrUnknownChangeType marks a sync record whose change type code the
	// engine does not understand. Unlike a malformed data payload this is
	// not skippable: it means the feed speaks a newer protocol.
	ErrUnknownChangeType = errors.New("unknown_change_type")

	// ErrNoPlaceholderTemplate marks a reference to an entity type the
	// engine has no placeholder template for. Records never legitimately
	// reference such types, so this is a configuration defect.
	ErrNoPlaceholderTemplate = errors.New("no_placeholder_template")
)

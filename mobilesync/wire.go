// Copyright 2025 Toly Pochkin
// SPDX-License-Identifier: Apache-2.0

package mobilesync

// Wire models for the pull feed. Every data value is a string; absent keys
// and empty values are distinct, and the scalar parsers own the difference.

// SyncRecord is one change from the authoritative feed.
type SyncRecord struct {
	RecordID   string            `json:"record_id"`
	RecordType string            `json:"record_type"`
	SyncType   string            `json:"sync_type"`
	Data       map[string]string `json:"data,omitempty"`
}

// QueuedRecord is a SyncRecord with its position in the feed. Seq values
// are strictly increasing and gap-free per feed, which is what makes the
// pull cursor safe to advance.
type QueuedRecord struct {
	Seq    int64      `json:"seq"`
	Record SyncRecord `json:"record"`
}

// PullResponse is the payload of GET /sync/pull.
type PullResponse struct {
	Records   []QueuedRecord `json:"records"`
	HasMore   bool           `json:"has_more"`
	NextAfter int64          `json:"next_after"`
}

// Copyright 2025 Toly Pochkin
// SPDX-License-Identifier: Apache-2.0

package synclite

import (
	"context"
	"time"
)

// PullTiming describes one pull page as seen by the client.
type PullTiming struct {
	Records  int // records in the page
	Applied  int // records the engine integrated or deleted
	Skipped  int // records the session skipped (unknown change type)
	Duration time.Duration
	Error    bool
}

// PullMetricsRecorder receives a PullTiming per pulled page.
type PullMetricsRecorder interface {
	ObservePull(ctx context.Context, timing PullTiming)
}

// PullMetricsRecorderFunc adapts a function to PullMetricsRecorder.
type PullMetricsRecorderFunc func(ctx context.Context, timing PullTiming)

func (f PullMetricsRecorderFunc) ObservePull(ctx context.Context, timing PullTiming) {
	f(ctx, timing)
}

func (c *Client) observePull(ctx context.Context, start time.Time, records, applied, skipped int, hadError bool) {
	if c.metrics == nil {
		return
	}
	c.metrics.ObservePull(ctx, PullTiming{
		Records:  records,
		Applied:  applied,
		Skipped:  skipped,
		Duration: time.Since(start),
		Error:    hadError,
	})
}

// Copyright 2025 Toly Pochkin
// SPDX-License-Identifier: Apache-2.0

package synclite

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/edmofro/mobile/mobilesync"
)

// PullOnce pulls one page of records from the server and applies it to the
// replica in a single transaction. It returns how many records the engine
// applied and the cursor position after the page.
//
// Per-record fault isolation: a record the engine reports as
// ErrUnknownChangeType is logged and skipped so one bad record cannot
// wedge the cursor; any other engine error aborts (and rolls back) the
// page, which is retried later from the same cursor. The cursor advances
// inside the apply transaction, never past unapplied records.
func (c *Client) PullOnce(ctx context.Context) (applied int, nextAfter int64, err error) {
	if c.pullsPaused() {
		return 0, 0, nil
	}
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.pullPage(ctx)
}

// PullAll pulls pages until the server reports no more records.
func (c *Client) PullAll(ctx context.Context) (totalApplied int, err error) {
	for {
		applied, _, err := c.PullOnce(ctx)
		if err != nil {
			return totalApplied, err
		}
		totalApplied += applied
		if applied == 0 {
			return totalApplied, nil
		}
	}
}

// Run pulls in a loop with exponential backoff until the context is
// cancelled.
func (c *Client) Run(ctx context.Context) {
	backoff := c.config.BackoffMin
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		if c.pullsPaused() {
			time.Sleep(backoff)
			continue
		}

		applied, _, err := c.PullOnce(ctx)
		if err != nil {
			c.logger.Warn("pull failed, backing off", "error", err, "backoff", backoff)
			time.Sleep(backoff)
			backoff = backoff * 2
			if backoff > c.config.BackoffMax {
				backoff = c.config.BackoffMax
			}
		} else {
			backoff = c.config.BackoffMin
			if applied == 0 {
				time.Sleep(backoff)
			}
		}
	}
}

func (c *Client) pullPage(ctx context.Context) (applied int, nextAfter int64, err error) {
	start := time.Now()

	// 1) Read the cursor and settings snapshot outside any transaction;
	// the network call must not hold the database.
	var lastSeq int64
	if err := c.DB.QueryRowContext(ctx,
		`SELECT last_seq_applied FROM _sync_pull_state WHERE id = 1`).Scan(&lastSeq); err != nil {
		return 0, 0, fmt.Errorf("failed to read pull cursor: %w", err)
	}
	settings, err := c.Settings().Snapshot(ctx)
	if err != nil {
		return 0, 0, err
	}

	// 2) Fetch one page from the server.
	page, err := c.sendPullRequest(ctx, lastSeq, c.config.PullLimit)
	if err != nil {
		c.observePull(ctx, start, 0, 0, 0, true)
		return 0, 0, fmt.Errorf("failed to pull records: %w", err)
	}

	if len(page.Records) == 0 {
		if page.NextAfter > lastSeq {
			if _, err := c.DB.ExecContext(ctx,
				`UPDATE _sync_pull_state SET last_seq_applied = ? WHERE id = 1`, page.NextAfter); err != nil {
				return 0, 0, fmt.Errorf("failed to persist pull cursor: %w", err)
			}
		}
		c.observePull(ctx, start, 0, 0, 0, false)
		return 0, page.NextAfter, nil
	}

	// 3) Apply the page atomically in one transaction.
	tx, err := c.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	txStore := c.Store().WithTx(tx)
	skipped := 0
	for i := range page.Records {
		qr := &page.Records[i]
		if err := mobilesync.IntegrateRecord(ctx, txStore, settings, &qr.Record); err != nil {
			if errors.Is(err, mobilesync.ErrUnknownChangeType) {
				c.logger.Warn("skipping record with unknown change type",
					"seq", qr.Seq, "record_id", qr.Record.RecordID, "sync_type", qr.Record.SyncType)
				skipped++
				continue
			}
			c.observePull(ctx, start, len(page.Records), applied, skipped, true)
			return applied, 0, fmt.Errorf("failed to integrate record %s (seq %d): %w",
				qr.Record.RecordID, qr.Seq, err)
		}
		applied++
	}

	if page.NextAfter > lastSeq {
		if _, err := tx.ExecContext(ctx,
			`UPDATE _sync_pull_state SET last_seq_applied = ? WHERE id = 1`, page.NextAfter); err != nil {
			return applied, 0, fmt.Errorf("failed to advance pull cursor: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return applied, 0, fmt.Errorf("failed to commit transaction: %w", err)
	}
	committed = true

	c.logger.Debug("applied pull page",
		"records", len(page.Records), "applied", applied, "skipped", skipped, "next_after", page.NextAfter)
	c.observePull(ctx, start, len(page.Records), applied, skipped, false)
	return applied, page.NextAfter, nil
}

// LastSeqApplied returns the current pull cursor.
func (c *Client) LastSeqApplied(ctx context.Context) (int64, error) {
	var lastSeq int64
	err := c.DB.QueryRowContext(ctx,
		`SELECT last_seq_applied FROM _sync_pull_state WHERE id = 1`).Scan(&lastSeq)
	if err != nil {
		return 0, fmt.Errorf("failed to read pull cursor: %w", err)
	}
	return lastSeq, nil
}

func (c *Client) sendPullRequest(ctx context.Context, after int64, limit int) (*mobilesync.PullResponse, error) {
	url := fmt.Sprintf("%s/sync/pull?after=%d&limit=%d", c.BaseURL, after, limit)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP request: %w", err)
	}

	token, err := c.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get JWT token: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.HTTP.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to send HTTP request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("server returned status %d: %s", resp.StatusCode, string(body))
	}

	var page mobilesync.PullResponse
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("failed to decode pull response: %w", err)
	}
	return &page, nil
}

// Copyright 2025 Toly Pochkin
// SPDX-License-Identifier: Apache-2.0

package synclite

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"sync/atomic"
	"time"
)

// Client runs the incoming half of a sync session: it pulls pages of
// change records from the authoritative server and feeds them through the
// integration engine into the local replica, one transaction per page.
type Client struct {
	DB      *sql.DB
	BaseURL string
	Token   func(context.Context) (string, error) // returns JWT
	HTTP    *http.Client
	config  *Config
	logger  *slog.Logger
	metrics PullMetricsRecorder
	writeMu sync.Mutex // single writer into the replica; the engine is not reentrant

	pullPaused int32
}

// Config holds configuration for the pull client.
type Config struct {
	PullLimit  int           // records per page, e.g. 500
	BackoffMin time.Duration // 1s
	BackoffMax time.Duration // 60s
}

// DefaultConfig returns the default pull configuration.
func DefaultConfig() *Config {
	return &Config{
		PullLimit:  500,
		BackoffMin: 1 * time.Second,
		BackoffMax: 60 * time.Second,
	}
}

// NewClient creates a pull client over an opened replica database.
func NewClient(db *sql.DB, baseURL string, tok func(ctx context.Context) (string, error), config *Config) (*Client, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if err := initializeDatabase(db); err != nil {
		return nil, fmt.Errorf("failed to initialize replica: %w", err)
	}
	return &Client{
		DB:      db,
		BaseURL: baseURL,
		Token:   tok,
		HTTP:    &http.Client{Timeout: 60 * time.Second},
		config:  config,
		logger:  slog.Default(),
	}, nil
}

// SetLogger replaces the default slog logger.
func (c *Client) SetLogger(logger *slog.Logger) {
	if logger != nil {
		c.logger = logger
	}
}

// SetMetrics installs a pull metrics hook.
func (c *Client) SetMetrics(recorder PullMetricsRecorder) {
	c.metrics = recorder
}

// Store returns the replica's entity store.
func (c *Client) Store() *Store { return NewStore(c.DB) }

// Settings returns the replica's settings store.
func (c *Client) Settings() *SettingsStore { return NewSettingsStore(c.DB) }

// PausePulls suspends pull activity deterministically; PullOnce becomes a
// no-op until resumed.
func (c *Client) PausePulls() { atomic.StoreInt32(&c.pullPaused, 1) }

// ResumePulls resumes pull activity.
func (c *Client) ResumePulls() { atomic.StoreInt32(&c.pullPaused, 0) }

func (c *Client) pullsPaused() bool { return atomic.LoadInt32(&c.pullPaused) == 1 }

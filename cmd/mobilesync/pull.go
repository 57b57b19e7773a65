// Copyright 2025 Toly Pochkin
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/edmofro/mobile/mobilesync"
	"github.com/edmofro/mobile/synclite"
)

// NewPullCommand creates the pull command: fetch and integrate records
// from the sync server, either once to drain the queue or continuously.
func NewPullCommand(opts *RootOptions) *cobra.Command {
	var follow bool

	cmd := &cobra.Command{
		Use:   "pull",
		Short: "Pull change records from the sync server into the replica",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(opts.ConfigPath)
			if err != nil {
				return err
			}
			client, err := newPullClient(cfg)
			if err != nil {
				return err
			}
			defer client.DB.Close()

			if follow {
				client.Run(cmd.Context())
				return nil
			}
			applied, err := client.PullAll(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Printf("Applied %d records\n", applied)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&follow, "follow", "f", false, "keep pulling until interrupted")
	return cmd
}

func newPullClient(cfg *Config) (*synclite.Client, error) {
	db, err := synclite.Open(cfg.Database)
	if err != nil {
		return nil, err
	}

	jwtAuth := mobilesync.NewJWTAuth(cfg.Server.Secret)
	token := func(context.Context) (string, error) {
		return jwtAuth.GenerateToken(cfg.UserID, cfg.StoreID, time.Hour)
	}

	clientCfg := synclite.DefaultConfig()
	clientCfg.PullLimit = cfg.Pull.Limit
	client, err := synclite.NewClient(db, cfg.Server.URL, token, clientCfg)
	if err != nil {
		db.Close()
		return nil, err
	}
	return client, nil
}

// Copyright 2025 Toly Pochkin
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/edmofro/mobile/mobilesync"
	"github.com/edmofro/mobile/synclite"
)

// NewInitCommand creates the init command: prepare the replica database
// and record which store it belongs to.
func NewInitCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the replica database and record the store id",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(opts.ConfigPath)
			if err != nil {
				return err
			}
			db, err := synclite.Open(cfg.Database)
			if err != nil {
				return err
			}
			defer db.Close()

			settings := synclite.NewSettingsStore(db)
			if err := settings.Set(cmd.Context(), mobilesync.SettingThisStoreID, cfg.StoreID); err != nil {
				return err
			}
			fmt.Printf("Initialized replica %s for store %s\n", cfg.Database, cfg.StoreID)
			return nil
		},
	}
}

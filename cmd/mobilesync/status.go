// Copyright 2025 Toly Pochkin
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/edmofro/mobile/mobilesync"
)

// statusTypes is the order entity counts are reported in.
var statusTypes = []mobilesync.EntityType{
	mobilesync.EntityTypeItem,
	mobilesync.EntityTypeItemBatch,
	mobilesync.EntityTypeItemCategory,
	mobilesync.EntityTypeItemDepartment,
	mobilesync.EntityTypeItemStoreJoin,
	mobilesync.EntityTypeMasterList,
	mobilesync.EntityTypeMasterListItem,
	mobilesync.EntityTypeMasterListNameJoin,
	mobilesync.EntityTypeName,
	mobilesync.EntityTypeNameStoreJoin,
	mobilesync.EntityTypeNumberSequence,
	mobilesync.EntityTypeNumberToReuse,
	mobilesync.EntityTypeRequisition,
	mobilesync.EntityTypeRequisitionItem,
	mobilesync.EntityTypeStocktake,
	mobilesync.EntityTypeStocktakeBatch,
	mobilesync.EntityTypeTransaction,
	mobilesync.EntityTypeTransactionBatch,
	mobilesync.EntityTypeTransactionCategory,
	mobilesync.EntityTypeAddress,
}

// NewStatusCommand creates the status command: report the pull cursor and
// per-type entity counts.
func NewStatusCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show replica cursor position and entity counts",
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
			ctx := cmd.Context()

			storeID, err := client.Settings().Get(ctx, mobilesync.SettingThisStoreID)
			if err != nil {
				return err
			}
			cursor, err := client.LastSeqApplied(ctx)
			if err != nil {
				return err
			}
			fmt.Printf("Replica:          %s\n", cfg.Database)
			fmt.Printf("Store:            %s\n", storeID)
			fmt.Printf("Last seq applied: %d\n", cursor)
			fmt.Println()

			store := client.Store()
			for _, entityType := range statusTypes {
				n, err := store.Count(ctx, entityType)
				if err != nil {
					return err
				}
				if n > 0 {
					fmt.Printf("%-20s %d\n", entityType, n)
				}
			}
			return nil
		},
	}
}

// Copyright 2025 Toly Pochkin
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigPath string
	Verbose    bool
}

// NewRootCommand creates the root command for the mobilesync CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "mobilesync",
		Short: "Offline-first inventory replica sync client",
		Long: "mobilesync maintains a local replica of the authoritative inventory system.\n" +
			"It pulls change records from the sync server and integrates them into a\n" +
			"local SQLite database, tolerating records that arrive in any order.",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if opts.Verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "mobilesync.yaml", "path to config file")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")

	cmd.AddCommand(NewInitCommand(opts))
	cmd.AddCommand(NewPullCommand(opts))
	cmd.AddCommand(NewStatusCommand(opts))
	cmd.AddCommand(NewVersionCommand())

	return cmd
}

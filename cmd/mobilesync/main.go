// Copyright 2025 Toly Pochkin
// SPDX-License-Identifier: Apache-2.0

// Command mobilesync manages a local replica of the authoritative
// inventory system: it creates the replica database, pulls change records
// from the sync server and reports replica status.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// Copyright 2025 Toly Pochkin
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
)

func main() {
	fmt.Println("🚀 mobile - Offline-First Replica Sync Engine")
	fmt.Println("=============================================")
	fmt.Println()
	fmt.Println("mobile pulls change records from an authoritative inventory system and")
	fmt.Println("integrates them into a local replica: enum translation, forward-reference")
	fmt.Println("placeholders, address dedup and per-type derived fields.")
	fmt.Println()

	fmt.Println("📚 Available Examples:")
	fmt.Println()
	fmt.Println("1. 🌐 Supply Feed Server (examples/supplyserver/)")
	fmt.Println("   An authoritative change feed served over net/http")
	fmt.Println("   Features: JWT auth, per-store queues, seeded demo history")
	fmt.Println("   Run: cd examples/supplyserver && go run .")
	fmt.Println()

	fmt.Println("2. 📱 Pull Flow Example (examples/pullflow/)")
	fmt.Println("   A full pull session into a fresh SQLite replica")
	fmt.Println("   Features: embedded demo server, paged pulls, replica report")
	fmt.Println("   Run: cd examples/pullflow && go run .")
	fmt.Println()

	fmt.Println("3. 🗄️  Replica CLI (cmd/mobilesync/)")
	fmt.Println("   Manage a store replica from the command line")
	fmt.Println("   Features: init, pull (once or follow), status")
	fmt.Println("   Run: go run ./cmd/mobilesync --help")
	fmt.Println()
}

// Package store holds the in-memory state of the storefront: the product
// catalog, the registered accounts and the order ledger. Nothing is
// persisted; every store starts from its seed data on process start.
package store

import "time"

// timeID returns a millisecond-timestamp identifier, bumped past prev so
// two allocations in the same instant still come out unique.
func timeID(prev int64) int64 {
	id := time.Now().UnixMilli()
	if id <= prev {
		id = prev + 1
	}
	return id
}

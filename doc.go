// Package goCounter provides an HTTP-ready counter engine: named, UUID-keyed
// counters that can be created, read, incremented and decremented.
//
// The package is designed for concurrent server workloads: Engine methods are safe to call
// from multiple goroutines after initialization through [Builder.Build].
//
// # Architecture boundaries
//
// goCounter is the public surface. It exposes [Engine], [Builder], [Config], [ParseID] and
// the sentinel errors the HTTP layer maps to status codes. Persistence lives in the store
// package; routing lives in httpapi and middleware.
//
// # What this package must NOT do
//
//   - Serve HTTP or write responses (that is httpapi's job).
//   - Hold counters itself; all state goes through a store.Store.
//   - Keep package-level mutable state. Every Engine owns its store.
package goCounter

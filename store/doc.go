// Package store provides the counter persistence layer: the [Counter] model,
// the [Store] contract, and two implementations.
//
// # Backends
//
// [Memory] keeps every counter in a process-local map guarded by a single
// mutex. Every operation holds the lock for its full duration, so
// operations are atomic with respect to each other.
//
// [Redis] keeps counters in one Redis hash per prefix. Increment and
// Decrement run as Lua scripts so upsert, floor and saturation are applied
// atomically on the server.
//
// # Semantics shared by every backend
//
//   - Increment on a missing id creates the counter with that id and value 1.
//   - Decrement on a missing id creates the counter with that id and value 0.
//   - Decrement never goes below zero; Increment saturates at MaxValue.
//   - List order is unspecified.
//
// # What this package must NOT do
//
//   - Import goCounter or httpapi (no upward imports).
//   - Parse identifiers from user input; callers pass a [uuid.UUID].
package store

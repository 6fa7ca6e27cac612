package store

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrUnavailable is returned when the backing service cannot be reached.
var ErrUnavailable = errors.New("counter store unavailable")

// ErrCorrupt is returned when a stored counter cannot be decoded.
var ErrCorrupt = errors.New("counter record corrupt")

// Store is the counter persistence contract. Implementations must be safe
// for concurrent use.
type Store interface {
	// Create inserts a counter with a fresh random id and value 0.
	Create(ctx context.Context) (Counter, error)
	// Get returns the counter and true, or false when it does not exist.
	Get(ctx context.Context, id uuid.UUID) (Counter, bool, error)
	// List returns every stored counter in unspecified order.
	List(ctx context.Context) ([]Counter, error)
	// Increment adds one to the counter, creating it at 1 when missing.
	Increment(ctx context.Context, id uuid.UUID) (Counter, error)
	// Decrement subtracts one floored at zero, creating it at 0 when missing.
	Decrement(ctx context.Context, id uuid.UUID) (Counter, error)
	// Len reports how many counters are stored.
	Len(ctx context.Context) (int, error)
}

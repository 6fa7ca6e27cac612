package goCounter

import (
	"fmt"

	"github.com/MrEthical07/goCounter/store"
	"github.com/google/uuid"
)

// Counter is the value type returned by every Engine operation.
type Counter = store.Counter

// ParseID converts a path segment into a counter identifier. It accepts the
// textual forms understood by uuid.Parse; anything else wraps [ErrInvalidID].
func ParseID(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %v", ErrInvalidID, err)
	}
	return id, nil
}

package store

import (
	"math"

	"github.com/google/uuid"
)

// MaxValue is the ceiling a counter saturates at.
const MaxValue = math.MaxUint32

// Counter is a snapshot of a single counter. Values returned by a [Store]
// are copies; mutating them does not affect stored state.
type Counter struct {
	ID    uuid.UUID `json:"id"`
	Value uint32    `json:"value"`
}

func incremented(v uint32) uint32 {
	if v == MaxValue {
		return v
	}
	return v + 1
}

func decremented(v uint32) uint32 {
	if v == 0 {
		return 0
	}
	return v - 1
}

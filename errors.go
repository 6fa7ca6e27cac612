package goCounter

import "errors"

var (
	// ErrInvalidID is returned when a counter identifier cannot be parsed.
	ErrInvalidID = errors.New("invalid counter id")
	// ErrCounterNotFound is returned by Get when no counter has the given id.
	ErrCounterNotFound = errors.New("counter not found")
	// ErrStoreUnavailable is returned when the counter store backend cannot be reached.
	ErrStoreUnavailable = errors.New("counter store unavailable")
	// ErrRedisRequired is returned by Build when the redis backend is selected without a client.
	ErrRedisRequired = errors.New("redis client required for redis store backend")
	// ErrBuilderUsed is returned when Build is called twice on the same Builder.
	ErrBuilderUsed = errors.New("builder already used")
)

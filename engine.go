package goCounter

import (
	"context"
	"errors"
	"fmt"

	"github.com/MrEthical07/goCounter/store"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Engine runs counter operations against a single store.
//
// An Engine is constructed once per process through [Builder.Build] and
// shared by every request handler. Each method is one store call, so each
// is atomic on its own; no consistency is promised across calls.
type Engine struct {
	config Config
	store  store.Store
	logger zerolog.Logger
}

// Config returns a copy of the configuration the engine was built with.
func (e *Engine) Config() Config {
	return cloneConfig(e.config)
}

// Create makes a new counter at value 0 with a fresh random identifier.
func (e *Engine) Create(ctx context.Context) (Counter, error) {
	c, err := e.store.Create(ctx)
	if err != nil {
		return Counter{}, e.storeError("create", uuid.Nil, err)
	}
	e.logger.Debug().Str("counter_id", c.ID.String()).Msg("counter created")
	return c, nil
}

// Get returns the counter with the given id, or [ErrCounterNotFound].
func (e *Engine) Get(ctx context.Context, id uuid.UUID) (Counter, error) {
	c, ok, err := e.store.Get(ctx, id)
	if err != nil {
		return Counter{}, e.storeError("get", id, err)
	}
	if !ok {
		return Counter{}, ErrCounterNotFound
	}
	return c, nil
}

// List returns all counters. Order is unspecified and callers must not
// depend on it.
func (e *Engine) List(ctx context.Context) ([]Counter, error) {
	counters, err := e.store.List(ctx)
	if err != nil {
		return nil, e.storeError("list", uuid.Nil, err)
	}
	if counters == nil {
		counters = []Counter{}
	}
	return counters, nil
}

// Increment adds one to the counter. A missing counter is created with
// the given id at value 1.
func (e *Engine) Increment(ctx context.Context, id uuid.UUID) (Counter, error) {
	c, err := e.store.Increment(ctx, id)
	if err != nil {
		return Counter{}, e.storeError("increment", id, err)
	}
	e.logger.Debug().Str("counter_id", id.String()).Uint32("value", c.Value).Msg("counter incremented")
	return c, nil
}

// Decrement subtracts one from the counter, never going below zero. A
// missing counter is created with the given id at value 0.
func (e *Engine) Decrement(ctx context.Context, id uuid.UUID) (Counter, error) {
	c, err := e.store.Decrement(ctx, id)
	if err != nil {
		return Counter{}, e.storeError("decrement", id, err)
	}
	e.logger.Debug().Str("counter_id", id.String()).Uint32("value", c.Value).Msg("counter decremented")
	return c, nil
}

// Count reports how many counters exist.
func (e *Engine) Count(ctx context.Context) (int, error) {
	n, err := e.store.Len(ctx)
	if err != nil {
		return 0, e.storeError("count", uuid.Nil, err)
	}
	return n, nil
}

func (e *Engine) storeError(op string, id uuid.UUID, err error) error {
	ev := e.logger.Error().Err(err).Str("op", op)
	if id != uuid.Nil {
		ev = ev.Str("counter_id", id.String())
	}
	ev.Msg("counter store failure")

	if errors.Is(err, store.ErrUnavailable) {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return err
}

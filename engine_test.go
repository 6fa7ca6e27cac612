package goCounter

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/MrEthical07/goCounter/store"
	"github.com/google/uuid"
)

type failingStore struct {
	err error
}

func (f failingStore) Create(context.Context) (store.Counter, error) { return store.Counter{}, f.err }
func (f failingStore) Get(context.Context, uuid.UUID) (store.Counter, bool, error) {
	return store.Counter{}, false, f.err
}
func (f failingStore) List(context.Context) ([]store.Counter, error) { return nil, f.err }
func (f failingStore) Increment(context.Context, uuid.UUID) (store.Counter, error) {
	return store.Counter{}, f.err
}
func (f failingStore) Decrement(context.Context, uuid.UUID) (store.Counter, error) {
	return store.Counter{}, f.err
}
func (f failingStore) Len(context.Context) (int, error) { return 0, f.err }

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	engine, err := New().Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	return engine
}

func TestEngineLifecycle(t *testing.T) {
	engine := newTestEngine(t)
	ctx := context.Background()

	c, err := engine.Create(ctx)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if c.Value != 0 {
		t.Fatalf("expected 0, got %d", c.Value)
	}

	for i := 0; i < 3; i++ {
		if _, err := engine.Increment(ctx, c.ID); err != nil {
			t.Fatalf("increment: %v", err)
		}
	}
	got, err := engine.Decrement(ctx, c.ID)
	if err != nil {
		t.Fatalf("decrement: %v", err)
	}
	if got.Value != 2 {
		t.Fatalf("expected 2, got %d", got.Value)
	}

	fetched, err := engine.Get(ctx, c.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if fetched != got {
		t.Fatalf("expected %+v, got %+v", got, fetched)
	}

	n, err := engine.Count(ctx)
	if err != nil || n != 1 {
		t.Fatalf("count: n=%d err=%v", n, err)
	}
}

func TestEngineGetMissing(t *testing.T) {
	engine := newTestEngine(t)
	_, err := engine.Get(context.Background(), uuid.New())
	if !errors.Is(err, ErrCounterNotFound) {
		t.Fatalf("expected ErrCounterNotFound, got %v", err)
	}
}

func TestEngineListEmpty(t *testing.T) {
	engine := newTestEngine(t)
	all, err := engine.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if all == nil || len(all) != 0 {
		t.Fatalf("expected empty non-nil list, got %#v", all)
	}
}

func TestEngineStoreUnavailable(t *testing.T) {
	engine, err := New().WithStore(failingStore{err: store.ErrUnavailable}).Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	ctx := context.Background()
	id := uuid.New()

	ops := map[string]func() error{
		"create":    func() error { _, err := engine.Create(ctx); return err },
		"get":       func() error { _, err := engine.Get(ctx, id); return err },
		"list":      func() error { _, err := engine.List(ctx); return err },
		"increment": func() error { _, err := engine.Increment(ctx, id); return err },
		"decrement": func() error { _, err := engine.Decrement(ctx, id); return err },
		"count":     func() error { _, err := engine.Count(ctx); return err },
	}
	for name, op := range ops {
		if err := op(); !errors.Is(err, ErrStoreUnavailable) {
			t.Fatalf("%s: expected ErrStoreUnavailable, got %v", name, err)
		}
	}
}

func TestEngineOtherStoreErrorsPassThrough(t *testing.T) {
	engine, err := New().WithStore(failingStore{err: store.ErrCorrupt}).Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	_, err = engine.Get(context.Background(), uuid.New())
	if !errors.Is(err, store.ErrCorrupt) || errors.Is(err, ErrStoreUnavailable) {
		t.Fatalf("expected ErrCorrupt only, got %v", err)
	}
}

func TestEngineConcurrentIncrements(t *testing.T) {
	engine := newTestEngine(t)
	ctx := context.Background()
	id := uuid.New()

	const workers = 32
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			if _, err := engine.Increment(ctx, id); err != nil {
				t.Errorf("increment: %v", err)
			}
		}()
	}
	wg.Wait()

	c, err := engine.Get(ctx, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if c.Value != workers {
		t.Fatalf("expected %d, got %d", workers, c.Value)
	}
}

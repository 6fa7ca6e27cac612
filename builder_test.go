package goCounter

import (
	"errors"
	"testing"

	"github.com/MrEthical07/goCounter/store"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func TestBuildDefaultsToMemoryStore(t *testing.T) {
	engine, err := New().Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if _, ok := engine.store.(*store.Memory); !ok {
		t.Fatalf("expected *store.Memory, got %T", engine.store)
	}
}

func TestBuildRedisBackend(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis start: %v", err)
	}
	defer mr.Close()
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	cfg := DefaultConfig()
	cfg.Store.Backend = StoreRedis

	engine, err := New().WithConfig(cfg).WithRedis(rdb).Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if _, ok := engine.store.(*store.Redis); !ok {
		t.Fatalf("expected *store.Redis, got %T", engine.store)
	}
}

func TestBuildRedisBackendRequiresClient(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Store.Backend = StoreRedis

	_, err := New().WithConfig(cfg).Build()
	if !errors.Is(err, ErrRedisRequired) {
		t.Fatalf("expected ErrRedisRequired, got %v", err)
	}
}

func TestBuildRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Store.Backend = "bogus"
	if _, err := New().WithConfig(cfg).Build(); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestBuildInjectedStoreWins(t *testing.T) {
	s := store.NewMemory()
	cfg := DefaultConfig()
	cfg.Store.Backend = StoreRedis

	engine, err := New().WithConfig(cfg).WithStore(s).Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if engine.store != s {
		t.Fatal("expected injected store")
	}
}

func TestBuilderSingleUse(t *testing.T) {
	b := New()
	if _, err := b.Build(); err != nil {
		t.Fatalf("first build: %v", err)
	}
	if _, err := b.Build(); !errors.Is(err, ErrBuilderUsed) {
		t.Fatalf("expected ErrBuilderUsed, got %v", err)
	}
}

func TestWithConfigCopies(t *testing.T) {
	cfg := DefaultConfig()
	engine, err := New().WithConfig(cfg).Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	cfg.CORS.AllowedOrigins[0] = "https://changed.example"

	if got := engine.Config().CORS.AllowedOrigins[0]; got != "*" {
		t.Fatalf("engine config must not alias caller config, got %q", got)
	}
}

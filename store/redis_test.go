package store

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/google/uuid"
)

func TestRedisIncrementSaturates(t *testing.T) {
	s, mr := newRedisStoreTest(t)
	id := uuid.New()
	mr.HSet(s.key(), id.String(), strconv.FormatUint(MaxValue, 10))

	got, err := s.Increment(context.Background(), id)
	if err != nil {
		t.Fatalf("increment: %v", err)
	}
	if got.Value != MaxValue {
		t.Fatalf("expected saturation at %d, got %d", uint32(MaxValue), got.Value)
	}
}

func TestRedisCreateRegeneratesCollidingID(t *testing.T) {
	s, mr := newRedisStoreTest(t)
	taken := uuid.New()
	fresh := uuid.New()
	mr.HSet(s.key(), taken.String(), "7")

	ids := []uuid.UUID{taken, fresh}
	s.newID = func() uuid.UUID {
		id := ids[0]
		ids = ids[1:]
		return id
	}

	c, err := s.Create(context.Background())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if c.ID != fresh {
		t.Fatalf("expected regenerated id %s, got %s", fresh, c.ID)
	}
	if v := mr.HGet(s.key(), taken.String()); v != "7" {
		t.Fatalf("existing counter must not be overwritten, got %q", v)
	}
}

func TestRedisCorruptRecords(t *testing.T) {
	s, mr := newRedisStoreTest(t)
	ctx := context.Background()

	bad := uuid.New()
	mr.HSet(s.key(), bad.String(), "not-a-number")
	mr.HSet(s.key(), "not-a-uuid", "3")

	good, err := s.Create(ctx)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, _, err := s.Get(ctx, bad); !errors.Is(err, ErrCorrupt) {
		t.Fatalf("expected ErrCorrupt from get, got %v", err)
	}
	if _, err := s.Increment(ctx, bad); !errors.Is(err, ErrCorrupt) {
		t.Fatalf("expected ErrCorrupt from increment, got %v", err)
	}
	if _, err := s.Decrement(ctx, bad); !errors.Is(err, ErrCorrupt) {
		t.Fatalf("expected ErrCorrupt from decrement, got %v", err)
	}

	all, err := s.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 1 || all[0].ID != good.ID {
		t.Fatalf("expected only the valid counter, got %+v", all)
	}
}

func TestRedisNegativeValueLeftUntouched(t *testing.T) {
	s, mr := newRedisStoreTest(t)
	ctx := context.Background()

	id := uuid.New()
	mr.HSet(s.key(), id.String(), "-5")

	if _, err := s.Increment(ctx, id); !errors.Is(err, ErrCorrupt) {
		t.Fatalf("expected ErrCorrupt from increment, got %v", err)
	}
	if v := mr.HGet(s.key(), id.String()); v != "-5" {
		t.Fatalf("increment must not rewrite a corrupt value, got %q", v)
	}

	if _, err := s.Decrement(ctx, id); !errors.Is(err, ErrCorrupt) {
		t.Fatalf("expected ErrCorrupt from decrement, got %v", err)
	}
	if v := mr.HGet(s.key(), id.String()); v != "-5" {
		t.Fatalf("decrement must not rewrite a corrupt value, got %q", v)
	}
}

func TestRedisUnavailable(t *testing.T) {
	s, mr := newRedisStoreTest(t)
	mr.Close()
	ctx := context.Background()

	if _, err := s.Create(ctx); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("create: expected ErrUnavailable, got %v", err)
	}
	if _, _, err := s.Get(ctx, uuid.New()); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("get: expected ErrUnavailable, got %v", err)
	}
	if _, err := s.List(ctx); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("list: expected ErrUnavailable, got %v", err)
	}
	if _, err := s.Increment(ctx, uuid.New()); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("increment: expected ErrUnavailable, got %v", err)
	}
	if _, err := s.Len(ctx); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("len: expected ErrUnavailable, got %v", err)
	}
}

func TestNewRedisDefaultPrefix(t *testing.T) {
	s := NewRedis(nil, "")
	if s.key() != "ctr:counters" {
		t.Fatalf("unexpected key %q", s.key())
	}
}

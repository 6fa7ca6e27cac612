package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const defaultRedisPrefix = "ctr"

// Scripts return -1 without writing when the stored value is not a
// non-negative number.
const incrementScript = `
local raw = redis.call("HGET", KEYS[1], ARGV[1])
local value = 0
if raw then
  value = tonumber(raw)
  if not value or value < 0 then
    return -1
  end
end
if value < tonumber(ARGV[2]) then
  value = value + 1
end
redis.call("HSET", KEYS[1], ARGV[1], tostring(value))
return value
`

const decrementScript = `
local raw = redis.call("HGET", KEYS[1], ARGV[1])
if not raw then
  redis.call("HSET", KEYS[1], ARGV[1], "0")
  return 0
end
local value = tonumber(raw)
if not value or value < 0 then
  return -1
end
if value > 0 then
  value = value - 1
  redis.call("HSET", KEYS[1], ARGV[1], tostring(value))
end
return value
`

var (
	incrementLua = redis.NewScript(incrementScript)
	decrementLua = redis.NewScript(decrementScript)
)

// Redis is a [Store] backed by a single Redis hash. Field names are the
// canonical UUID text, values are decimal counter values.
type Redis struct {
	redis  redis.UniversalClient
	prefix string
	newID  func() uuid.UUID
}

// NewRedis creates a Redis-backed store. prefix namespaces the hash key
// and defaults to "ctr".
func NewRedis(client redis.UniversalClient, prefix string) *Redis {
	if prefix == "" {
		prefix = defaultRedisPrefix
	}
	return &Redis{
		redis:  client,
		prefix: prefix,
		newID:  uuid.New,
	}
}

func (r *Redis) key() string {
	return r.prefix + ":counters"
}

// Create inserts a counter at 0 with HSETNX, regenerating the id on the
// (practically impossible) collision.
func (r *Redis) Create(ctx context.Context) (Counter, error) {
	for {
		id := r.newID()
		inserted, err := r.redis.HSetNX(ctx, r.key(), id.String(), "0").Result()
		if err != nil {
			return Counter{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		if inserted {
			return Counter{ID: id}, nil
		}
	}
}

// Get reads one hash field. A missing field reports false; a field that
// does not hold a counter value reports [ErrCorrupt].
func (r *Redis) Get(ctx context.Context, id uuid.UUID) (Counter, bool, error) {
	raw, err := r.redis.HGet(ctx, r.key(), id.String()).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return Counter{}, false, nil
		}
		return Counter{}, false, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	value, err := parseValue(raw)
	if err != nil {
		return Counter{}, false, err
	}
	return Counter{ID: id, Value: value}, true, nil
}

// List returns every counter in the hash, skipping entries that do not
// decode to a counter.
func (r *Redis) List(ctx context.Context) ([]Counter, error) {
	entries, err := r.redis.HGetAll(ctx, r.key()).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	out := make([]Counter, 0, len(entries))
	for field, raw := range entries {
		id, err := uuid.Parse(field)
		if err != nil {
			continue
		}
		value, err := parseValue(raw)
		if err != nil {
			continue
		}
		out = append(out, Counter{ID: id, Value: value})
	}
	return out, nil
}

// Increment runs the increment script, which creates a missing counter at
// 1 and saturates at [MaxValue].
func (r *Redis) Increment(ctx context.Context, id uuid.UUID) (Counter, error) {
	return r.runScript(ctx, incrementLua, id, strconv.FormatUint(MaxValue, 10))
}

// Decrement runs the decrement script, which creates a missing counter at
// 0 and never goes below zero.
func (r *Redis) Decrement(ctx context.Context, id uuid.UUID) (Counter, error) {
	return r.runScript(ctx, decrementLua, id)
}

// Len returns the number of fields in the counters hash.
func (r *Redis) Len(ctx context.Context) (int, error) {
	n, err := r.redis.HLen(ctx, r.key()).Result()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return int(n), nil
}

func (r *Redis) runScript(ctx context.Context, script *redis.Script, id uuid.UUID, args ...interface{}) (Counter, error) {
	argv := append([]interface{}{id.String()}, args...)

	value, err := script.Run(ctx, r.redis, []string{r.key()}, argv...).Int64()
	if err != nil {
		return Counter{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if value < 0 || value > MaxValue {
		return Counter{}, fmt.Errorf("%w: counter %s", ErrCorrupt, id)
	}
	return Counter{ID: id, Value: uint32(value)}, nil
}

func parseValue(raw string) (uint32, error) {
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return uint32(v), nil
}

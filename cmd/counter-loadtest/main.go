// Command counter-loadtest drives concurrent increments and decrements
// against a counter store and checks that no update was lost.
//
//	go run ./cmd/counter-loadtest -backend memory -counters 1000 -ops 200000
//	go run ./cmd/counter-loadtest -backend redis -redis-addr localhost:6379
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MrEthical07/goCounter/store"
	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type counterState struct {
	id       uuid.UUID
	expected int64
	mu       sync.Mutex
}

func main() {
	var (
		backend     = flag.String("backend", "memory", "store backend: memory or redis")
		counters    = flag.Int("counters", 1000, "number of counters to seed")
		concurrency = flag.Int("concurrency", 64, "number of concurrent workers")
		ops         = flag.Int("ops", 100000, "operations per phase (increment + mixed)")
		redisAddr   = flag.String("redis-addr", "", "redis address; if empty, REDIS_ADDR env or miniredis is used")
		prefix      = flag.String("prefix", "ctr-loadtest", "redis key prefix")
	)
	flag.Parse()

	if *counters <= 0 || *concurrency <= 0 || *ops <= 0 {
		fmt.Fprintln(os.Stderr, "counters, concurrency, and ops must be > 0")
		os.Exit(2)
	}

	ctx := context.Background()

	s, cleanup, err := openStore(*backend, *redisAddr, *prefix)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open store: %v\n", err)
		os.Exit(1)
	}
	defer cleanup()

	states := make([]counterState, *counters)
	fmt.Printf("seeding %d counters...\n", *counters)
	startSeed := time.Now()
	for i := range states {
		c, err := s.Create(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "create failed: %v\n", err)
			os.Exit(1)
		}
		states[i].id = c.ID
	}
	fmt.Printf("seeded in %s\n", time.Since(startSeed).Round(time.Millisecond))

	incrementStats := runPhase(ctx, s, states, *ops, *concurrency, false)
	mixedStats := runPhase(ctx, s, states, *ops, *concurrency, true)

	fmt.Println("---- results ----")
	printStats("increment", incrementStats)
	printStats("mixed", mixedStats)

	mismatches, err := verify(ctx, s, states)
	if err != nil {
		fmt.Fprintf(os.Stderr, "verify failed: %v\n", err)
		os.Exit(1)
	}
	if mismatches > 0 {
		fmt.Fprintf(os.Stderr, "lost updates: %d counters differ from expected values\n", mismatches)
		os.Exit(1)
	}
	fmt.Println("verify: all counters match")
}

func openStore(backend, addr, prefix string) (store.Store, func(), error) {
	switch backend {
	case "memory":
		fmt.Println("using in-memory store")
		return store.NewMemory(), func() {}, nil
	case "redis":
	default:
		return nil, nil, fmt.Errorf("unknown backend %q", backend)
	}

	if addr == "" {
		addr = os.Getenv("REDIS_ADDR")
	}

	var (
		cleanup func()
		client  redis.UniversalClient
	)
	if addr == "" {
		mr, err := miniredis.Run()
		if err != nil {
			return nil, nil, fmt.Errorf("failed to start miniredis: %w", err)
		}
		addr = mr.Addr()
		client = redis.NewUniversalClient(&redis.UniversalOptions{
			Addrs: []string{addr},
		})
		cleanup = func() {
			_ = client.Close()
			mr.Close()
		}
		fmt.Printf("using miniredis at %s\n", addr)
	} else {
		client = redis.NewUniversalClient(&redis.UniversalOptions{
			Addrs: []string{addr},
		})
		cleanup = func() { _ = client.Close() }
		fmt.Printf("using redis at %s\n", addr)
	}

	return store.NewRedis(client, prefix), cleanup, nil
}

// runPhase applies ops operations spread over random counters. In mixed
// mode a third of operations are decrements.
//
// Increment-only phases issue store calls without any client-side
// serialization and count successes atomically, so a store that loses
// concurrent updates shows up as a mismatch in verify. Mixed phases hold
// the counter's lock around the call because the floor at zero makes the
// expected value depend on operation order.
func runPhase(ctx context.Context, s store.Store, states []counterState, ops, concurrency int, mixed bool) phaseStats {
	var (
		wg        sync.WaitGroup
		cursor    int64
		failures  int64
		latencies = make([]time.Duration, 0, ops)
		mu        sync.Mutex
	)

	start := time.Now()
	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			r := rand.New(rand.NewSource(time.Now().UnixNano() + int64(worker)*7919))
			for {
				i := int(atomic.AddInt64(&cursor, 1)) - 1
				if i >= ops {
					return
				}
				state := &states[r.Intn(len(states))]

				var (
					d   time.Duration
					err error
				)
				if mixed {
					d, err = applyMixed(ctx, s, state, r.Intn(3) == 0)
				} else {
					t0 := time.Now()
					_, err = s.Increment(ctx, state.id)
					d = time.Since(t0)
					if err == nil {
						atomic.AddInt64(&state.expected, 1)
					}
				}
				if err != nil {
					atomic.AddInt64(&failures, 1)
				}

				mu.Lock()
				latencies = append(latencies, d)
				mu.Unlock()
			}
		}(w)
	}
	wg.Wait()
	total := time.Since(start)
	return computeStats(total, latencies, failures)
}

func applyMixed(ctx context.Context, s store.Store, state *counterState, decrement bool) (time.Duration, error) {
	state.mu.Lock()
	defer state.mu.Unlock()

	t0 := time.Now()
	var err error
	if decrement {
		_, err = s.Decrement(ctx, state.id)
	} else {
		_, err = s.Increment(ctx, state.id)
	}
	d := time.Since(t0)
	if err != nil {
		return d, err
	}

	expected := atomic.LoadInt64(&state.expected)
	switch {
	case !decrement:
		expected++
	case expected > 0:
		expected--
	}
	atomic.StoreInt64(&state.expected, expected)
	return d, nil
}

func verify(ctx context.Context, s store.Store, states []counterState) (int, error) {
	mismatches := 0
	for i := range states {
		c, ok, err := s.Get(ctx, states[i].id)
		if err != nil {
			return 0, err
		}
		if !ok || int64(c.Value) != atomic.LoadInt64(&states[i].expected) {
			mismatches++
		}
	}
	return mismatches, nil
}

type phaseStats struct {
	total    time.Duration
	ops      int
	failures int64
	p50      time.Duration
	p95      time.Duration
	p99      time.Duration
	opsPerS  float64
}

func computeStats(total time.Duration, samples []time.Duration, failures int64) phaseStats {
	if len(samples) == 0 {
		return phaseStats{total: total}
	}
	sort.Slice(samples, func(i, j int) bool { return samples[i] < samples[j] })
	return phaseStats{
		total:    total,
		ops:      len(samples),
		failures: failures,
		p50:      percentile(samples, 50),
		p95:      percentile(samples, 95),
		p99:      percentile(samples, 99),
		opsPerS:  float64(len(samples)) / total.Seconds(),
	}
}

func percentile(samples []time.Duration, p int) time.Duration {
	if len(samples) == 0 {
		return 0
	}
	if p <= 0 {
		return samples[0]
	}
	if p >= 100 {
		return samples[len(samples)-1]
	}
	idx := (len(samples) - 1) * p / 100
	return samples[idx]
}

func printStats(name string, s phaseStats) {
	fmt.Printf("%s: ops=%d failures=%d total=%s ops/sec=%.0f p50=%s p95=%s p99=%s\n",
		name,
		s.ops,
		s.failures,
		s.total.Round(time.Millisecond),
		s.opsPerS,
		s.p50.Round(time.Microsecond),
		s.p95.Round(time.Microsecond),
		s.p99.Round(time.Microsecond),
	)
}

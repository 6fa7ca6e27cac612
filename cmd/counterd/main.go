// Command counterd serves the counter HTTP API.
//
// Configuration comes from the environment (see internal/config). With no
// variables set it listens on :8000 with an in-memory store:
//
//	go run ./cmd/counterd
//
// Then:
//
//	curl -s -X POST localhost:8000/counter
//	curl -s -X PUT  localhost:8000/counter/<ID>/increment
//	curl -s        localhost:8000/counter
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	goCounter "github.com/MrEthical07/goCounter"
	"github.com/MrEthical07/goCounter/httpapi"
	"github.com/MrEthical07/goCounter/internal/config"
	"github.com/rs/zerolog"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		bootLogger := zerolog.New(os.Stderr).With().Timestamp().Logger()
		bootLogger.Fatal().Err(err).Msg("failed to load config")
	}

	logger := newLogger(cfg.Log, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = serve(ctx, cfg, logger)
	stop()
	if err != nil {
		logger.Fatal().Err(err).Msg("server error")
	}
}

// serve wires the engine for cfg and runs the HTTP server until ctx is
// cancelled. Resources it opens are released before it returns.
func serve(ctx context.Context, cfg goCounter.Config, logger zerolog.Logger) error {
	builder := goCounter.New().WithConfig(cfg).WithLogger(logger)

	if cfg.Store.Backend == goCounter.StoreRedis {
		rdb := newRedisClient(cfg.Redis)
		defer rdb.Close()

		if err := pingRedis(ctx, rdb, cfg.Redis.DialTimeout); err != nil {
			return fmt.Errorf("connect to redis at %s: %w", cfg.Redis.Addr, err)
		}
		builder = builder.WithRedis(rdb)
	}

	engine, err := builder.Build()
	if err != nil {
		return fmt.Errorf("build engine: %w", err)
	}

	srv := httpapi.NewServer(cfg.HTTP, httpapi.NewHandler(engine, logger))
	return run(ctx, srv, cfg.HTTP, logger)
}

// run serves until ctx is cancelled, then shuts down gracefully.
func run(ctx context.Context, srv *http.Server, cfg goCounter.HTTPConfig, logger zerolog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", srv.Addr).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}

package goCounter

import (
	"github.com/MrEthical07/goCounter/store"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// Builder assembles an [Engine].
//
// Builder instances are single-use: Build may only succeed once.
type Builder struct {
	config Config
	redis  redis.UniversalClient
	store  store.Store
	logger zerolog.Logger

	built bool
}

// New returns a Builder seeded with [DefaultConfig] and a no-op logger.
func New() *Builder {
	return &Builder{
		config: defaultConfig(),
		logger: zerolog.Nop(),
	}
}

// WithConfig replaces the builder configuration with a copy of cfg.
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.config = cloneConfig(cfg)
	return b
}

// WithRedis sets the client used when the redis backend is selected.
func (b *Builder) WithRedis(client redis.UniversalClient) *Builder {
	b.redis = client
	return b
}

// WithStore injects a ready store, bypassing backend selection.
func (b *Builder) WithStore(s store.Store) *Builder {
	b.store = s
	return b
}

// WithLogger sets the logger used for operation and error logs.
func (b *Builder) WithLogger(logger zerolog.Logger) *Builder {
	b.logger = logger
	return b
}

// Build validates the configuration and wires the store.
//
// Build returns [ErrRedisRequired] when the redis backend is configured
// without a client, and [ErrBuilderUsed] on a second call.
func (b *Builder) Build() (*Engine, error) {
	if b.built {
		return nil, ErrBuilderUsed
	}

	cfg := cloneConfig(b.config)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := b.store
	if s == nil {
		switch cfg.Store.Backend {
		case StoreRedis:
			if b.redis == nil {
				return nil, ErrRedisRequired
			}
			s = store.NewRedis(b.redis, cfg.Redis.Prefix)
		default:
			s = store.NewMemory()
		}
	}

	engine := &Engine{
		config: cfg,
		store:  s,
		logger: b.logger.With().Str("component", "counter").Logger(),
	}

	b.built = true

	return engine, nil
}

package httpapi

import (
	"net/http"

	goCounter "github.com/MrEthical07/goCounter"
	"github.com/MrEthical07/goCounter/middleware"
	"github.com/rs/zerolog"
)

// NewHandler wraps the router for engine in the standard middleware stack:
// access log, panic recovery, then CORS.
func NewHandler(engine *goCounter.Engine, logger zerolog.Logger) http.Handler {
	cfg := engine.Config()
	return middleware.Chain(
		NewRouter(engine),
		middleware.RequestLogger(logger),
		middleware.Recover(logger),
		middleware.CORS(cfg.CORS),
	)
}

// NewServer builds an http.Server from cfg serving handler.
func NewServer(cfg goCounter.HTTPConfig, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}
}

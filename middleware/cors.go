package middleware

import (
	"net/http"

	goCounter "github.com/MrEthical07/goCounter"
	"github.com/rs/cors"
)

// CORS applies the configured cross-origin policy. When "*" is allowed
// together with credentials the request origin is echoed back, since
// browsers reject a literal "*" on credentialed requests.
func CORS(cfg goCounter.CORSConfig) func(http.Handler) http.Handler {
	if !cfg.Enabled {
		return func(next http.Handler) http.Handler { return next }
	}

	opts := cors.Options{
		AllowedMethods:   cfg.AllowedMethods,
		AllowedHeaders:   cfg.AllowedHeaders,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	if allowsAnyOrigin(cfg.AllowedOrigins) && cfg.AllowCredentials {
		opts.AllowOriginFunc = func(string) bool { return true }
	} else {
		opts.AllowedOrigins = cfg.AllowedOrigins
	}

	return cors.New(opts).Handler
}

func allowsAnyOrigin(origins []string) bool {
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return false
}

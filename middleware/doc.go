// Package middleware provides the net/http wrappers placed in front of the
// counter router: cross-origin policy, access logging and panic recovery.
//
// All constructors return func(http.Handler) http.Handler so they compose
// with [Chain] or any other middleware stack.
//
// # What this package must NOT do
//
//   - Import httpapi or store. Middleware sees requests, not counters.
//   - Swallow a panic silently; every recovered panic is logged.
package middleware

import "net/http"

// Chain wraps h so that the first middleware is the outermost.
func Chain(h http.Handler, mws ...func(http.Handler) http.Handler) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}

// Package httpapi maps the counter HTTP API onto a goCounter.Engine.
//
// Routes:
//
//	GET  /                        health message
//	GET  /counter                 list all counters
//	POST /counter                 create a counter
//	GET  /counter/{id}            fetch one counter
//	PUT  /counter/{id}/increment  increment (creates at 1 when missing)
//	PUT  /counter/{id}/decrement  decrement floored at 0 (creates at 0 when missing)
//
// Every response body is JSON. Unknown paths and unsupported methods both
// answer 404 with the standard error body; malformed ids answer 400.
package httpapi

// Package controller holds the net/http plumbing shared by the gateway's
// handlers: JSON encoding of bodies and errors, request id and access log
// middleware, CORS, OpenTelemetry request metrics and the pprof mux.
//
// Middlewares are plain func(http.Handler) http.Handler values so they
// compose in NewServer in the order requests should see them.
package controller

// Package middleware holds the global and route-specific Echo middleware:
// HTTP Basic authentication, role checks, request logging, CORS, rate
// limiting, metrics, tracing and panic recovery.
package middleware

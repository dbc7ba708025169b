// Package server provides the HTTP surface for the analysis pipeline: a
// Gin server with HTTP/2 cleartext support, a standard middleware stack,
// operational endpoints, and the /v1 analysis API.
//
// # Middleware
//
// Built-in middleware (server/middleware):
//
//   - Recovery: panic recovery with structured logging
//   - RequestID: request ID generation and propagation
//   - CORS: cross-origin resource sharing configuration
//   - BodySizeLimit: request body size limits
//   - RateLimit: sliding-window rate limiting
//   - RequestMetrics: OpenTelemetry request instruments
//   - RequestLogger: request logging with duration tracking
//
// # Endpoints
//
//   - GET  /health, /alive, /ready: health and probe endpoints
//   - GET  /info, /version: build information
//   - GET  /metrics: runtime memory and goroutine stats
//   - POST /v1/conversations/analyze: analyze one conversation
//   - POST /v1/conversations/analyze/batch: analyze many conversations
//   - GET  /v1/metrics: list available and default metrics
package server

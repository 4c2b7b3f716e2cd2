// Package controller contains HTTP middlewares and helper handlers used by the API server.
//
// Provided middlewares:
//   - WithCORS: Adds permissive CORS headers and handles OPTIONS preflight.
//   - WithLogger: Attaches the correlation id and a request-scoped logger to the context and logs access info.
//   - WithRateLimit: Rejects requests above a token-bucket rate with 429.
//
// Provided helpers:
//   - Pprof: Returns a router exposing net/http/pprof handlers.
//   - WriteJSON: Encodes a JSON response body.
package controller

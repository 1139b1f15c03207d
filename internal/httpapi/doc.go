// Package httpapi exposes router.Solve over HTTP: POST /v1/solve accepts a
// JSON request body and returns a router.Result, GET /healthz reports
// liveness, and GET /metrics serves Prometheus collectors when enabled.
//
// The handler is a thin, stateless wrapper — no request mutates shared
// state, so concurrent requests call router.Solve independently, matching
// the core's single-threaded-per-call contract.
//
// Grounded on NikeGunn-tutu/internal/api/server.go's chi-router-plus-
// middleware shape and its promhttp.Handler() metrics mount.
package httpapi

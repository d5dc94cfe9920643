// Package control is the thin HTTP control surface over the core:
// a chi router mapping 1-to-1 onto Graph Store, Traversal Kernel, and
// Scenario Engine calls, a Prometheus /metrics endpoint, and a
// websocket /ws push channel for live events.
//
// chi.NewRouter, middleware.Logger/Recoverer, and a thin
// writeJSON/writeError pair keep every handler a few lines of
// decode-call-respond. No auth, no rate limiting at this layer.
package control

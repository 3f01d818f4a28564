// Package handler implements the HTTP surface of the notesgraph server.
//
// # Handlers
//
// GraphHandler drives the single in-memory graph view: dataset load and
// replacement, the scene snapshot, pointer input (hover, click, drag),
// viewport controls and the theme toggle. It also serves the viewer page
// and the scene as SVG.
//
// Middleware provides request logging through zap and per-route Prometheus
// metrics. chi supplies request ids, real-ip resolution and panic recovery.
//
// # Response Format
//
// Success responses return JSON. Pointer operations return 204.
// Error responses return JSON with {error, details} structure; unknown
// nodes map to 404, malformed datasets to 400, failed fetches to 502.
//
// # Server-Sent Events
//
// The /events endpoint streams widget events (ticks, loads, viewport and
// theme changes) so the page can redraw.
package handler

// Package service sits between the HTTP handlers and the graph view.
//
// # Services
//
// GraphService remembers where the displayed dataset came from, so the file
// watcher and the API can reload it, and imports and exports datasets via
// the codec package.
//
// # Event System
//
// The widget publishes events via EventBus; the SSE hub subscribes and
// streams them to connected clients. Event types cover dataset loads and
// failures, simulation ticks and settling, viewport and theme changes,
// hover and navigation, and teardown.
//
// Publishing never blocks: a subscriber whose buffer is full misses the
// event and the drop callback fires.
package service

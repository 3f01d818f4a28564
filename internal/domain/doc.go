// Package domain defines the core types of the notes graph view.
//
// # Core Types
//
// Node is a note: an identifier plus optional title, description, tags,
// color and navigation URL. It also carries the simulation state (x, y and
// velocity) that the physics engine mutates on every tick.
//
// Link connects two notes by id, with an optional weight.
//
// Dataset is the node/link collection loaded into a widget. It replaces any
// previous dataset wholesale; there is no incremental diffing.
//
// Graph is the derived view a render pass works from. Links whose endpoints
// do not resolve are dropped here rather than rejected, and connection counts
// (in-degree plus out-degree) are computed fresh each time.
//
// # Ownership
//
// A node's position belongs to the physics engine unless its Pin is held.
// A drag gesture holds the pin, moves it and releases it; release always
// hands the position back to the simulation.
//
// # Validation
//
// Validate checks a dataset's shape at load time (missing arrays, empty or
// duplicate ids, negative weights) and reports a ValidationError instead of
// letting malformed input reach the renderer.
package domain

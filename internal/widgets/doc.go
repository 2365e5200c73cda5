// Package widgets contains dumb render primitives.
//
// Allowed here:
// - stateless drawing/composition helpers (pane chrome, stacks, popup overlay)
//
// Not allowed here:
// - key handling, screen state, or anything that reads the hotel resource
package widgets

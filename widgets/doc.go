// Package widgets contains dumb render primitives.
//
// Allowed here:
// - stateless drawing helpers (boxes, the backdrop and the overlay compositor)
//
// Not allowed here:
// - key or mouse handling, navigation state, route policy
package widgets

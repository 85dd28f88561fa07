// Package core contains app-wide contracts and state orchestration.
//
// Allowed here:
// - model routing and page history, message contracts, key registry
// - composing header, page, footer, overlay and navigation bar into one frame
// - visit recording policy
//
// Not allowed here:
// - concrete page rendering (pages) or navigation bar behaviour (nav)
// - low-level widget rendering primitives
package core

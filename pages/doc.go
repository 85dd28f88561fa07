// Package pages contains the screens the router shows above the navigation bar.
//
// Allowed here:
// - page bodies, page specific loading and messages
//
// Not allowed here:
// - routing or history policy (core), navigation bar behaviour (nav)
package pages

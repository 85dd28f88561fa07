// Package nav is the bottom navigation bar: five icon actions, four of which
// link to pages and one of which opens the registration overlay menu.
//
// The bar owns exactly two pieces of view state, the highlighted action and
// whether the overlay is open. Both live and die with the Model value; nothing
// is persisted. Navigation itself is only requested (route.NavigateMsg); the
// host router decides what to show.
package nav

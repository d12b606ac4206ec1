// Package tabbar lets the focused screen drive a bottom tab bar that lives
// outside its own view tree.
//
// Allowed here:
// - the per-navigator registry
// - the publisher bound to a screen's tab-bar element
// - the chrome that renders the published child and intercepts its updates
//
// Not allowed here:
// - screen routing or document fetching (nav, document) and drawing (render)
package tabbar

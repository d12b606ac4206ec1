// Package nav is the host navigation layer: a bubbletea model that owns a
// tab navigator's screens, drives their focus lifecycle and mounts the
// persistent tab-bar chrome under the focused screen.
//
// Allowed here:
// - screen focus/blur, document loading, href routing between screens
//
// Not allowed here:
// - tab-bar publishing and update interception (tabbar)
package nav

// Package render defines the contract of the render service that turns a
// markup element into a displayable tree and reports user-driven document
// updates, plus a terminal implementation of it.
package render

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/hypertabs/internal/markup"
)

// Action identifies the kind of document update a user interaction produced.
type Action string

const (
	ActionSwap     Action = "swap"
	ActionNavigate Action = "navigate"
	ActionReload   Action = "reload"
	ActionBack     Action = "back"
)

type UpdateOptions struct {
	// NewElement is the replacement node for a swap.
	NewElement *markup.Node
}

// UpdateFunc receives document updates raised from inside a rendered tree.
type UpdateFunc func(href string, action Action, current *markup.Node, opts UpdateOptions)

// Stylesheets maps a style id (the element's style attribute) to a style.
// Consumers other than a Service treat it as opaque.
type Stylesheets map[string]lipgloss.Style

// ComponentFunc renders a custom element. It returns the element's view.
type ComponentFunc func(el *markup.Node, sheets Stylesheets) string

// ComponentRegistry overrides rendering for custom elements.
type ComponentRegistry map[markup.Name]ComponentFunc

type Options struct {
	ComponentRegistry ComponentRegistry
}

// Tree is a rendered element. Targets are the pressable elements in
// document order.
type Tree interface {
	View() string
	Targets() int
	Press(i int) bool
}

// Service renders el. A nil Tree means nothing to display.
type Service interface {
	Render(el *markup.Node, sheets Stylesheets, onUpdate UpdateFunc, opts Options) Tree
}

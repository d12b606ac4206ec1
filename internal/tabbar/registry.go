package tabbar

import (
	"sort"

	"github.com/jask/hypertabs/internal/markup"
	"github.com/jask/hypertabs/internal/render"
)

// Context is what a screen publishes for a navigator: the tab-bar element
// and everything the render service needs to draw it on the screen's behalf.
// It is never mutated after publishing; publishers replace it.
type Context struct {
	Element     *markup.Node
	Stylesheets render.Stylesheets
	OnUpdate    render.UpdateFunc
	Options     render.Options
	// Route is the key of the screen that owns Element.
	Route string
}

type Reader interface {
	Read(navigator string) (*Context, bool)
}

type Writer interface {
	Write(navigator, origin string, ctx *Context)
}

// Registry holds the latest published Context per navigator id. It belongs
// to the UI goroutine and is not locked.
type Registry struct {
	entries map[string]*Context
	version uint64
}

func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]*Context)}
}

func (r *Registry) Read(navigator string) (*Context, bool) {
	if r == nil {
		return nil, false
	}
	ctx, ok := r.entries[navigator]
	return ctx, ok
}

// Write stores ctx for navigator. A non-empty origin is recorded on the
// element tree first. Writing the Context already stored is a no-op, which
// keeps a publisher that republishes on every pass from looping.
func (r *Registry) Write(navigator, origin string, ctx *Context) {
	if r == nil || ctx == nil {
		return
	}
	if origin != "" {
		markup.TagOrigin(ctx.Element, origin)
	}
	if cur, ok := r.entries[navigator]; ok && cur == ctx {
		return
	}
	r.entries[navigator] = ctx
	r.version++
}

// Version counts the state transitions made by Write.
func (r *Registry) Version() uint64 {
	if r == nil {
		return 0
	}
	return r.version
}

func (r *Registry) Navigators() []string {
	if r == nil {
		return nil
	}
	out := make([]string, 0, len(r.entries))
	for id := range r.entries {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

package tabbar

import (
	"github.com/jask/hypertabs/internal/markup"
	"github.com/jask/hypertabs/internal/render"
	"github.com/jask/hypertabs/internal/sched"
)

// Chrome draws the tab bar for one navigator from whatever the focused
// screen last published. It outlives the screens that feed it.
type Chrome struct {
	navigator string
	reader    Reader
	service   render.Service
	scheduler sched.Scheduler

	// source is the child last extracted from the registry; displayed is
	// what gets drawn. They diverge after a local swap until the registry
	// publishes a different child.
	source    *markup.Node
	displayed *markup.Node
	tree      render.Tree
}

// NewChrome returns the chrome for navigator. s receives deferred navigations
// and must not be nil.
func NewChrome(navigator string, r Reader, svc render.Service, s sched.Scheduler) *Chrome {
	return &Chrome{navigator: navigator, reader: r, service: svc, scheduler: s}
}

func (c *Chrome) Navigator() string { return c.navigator }

func (c *Chrome) Displayed() *markup.Node { return c.displayed }

// Render resolves the published context and draws the displayed child. It
// returns nil when nothing has been published for the navigator or the
// published element has no element child.
func (c *Chrome) Render() render.Tree {
	c.tree = nil
	if c.reader == nil || c.service == nil {
		return nil
	}
	ctx, ok := c.reader.Read(c.navigator)
	if !ok || ctx == nil {
		return nil
	}
	// A single child is assumed; any siblings are ignored.
	child := ctx.Element.FirstElementChild()
	if child != c.source {
		c.source = child
		c.displayed = child
	}
	if child == nil || c.displayed == nil {
		return nil
	}
	c.tree = c.service.Render(c.displayed, ctx.Stylesheets, c.interceptor(ctx), render.Options{
		ComponentRegistry: ctx.Options.ComponentRegistry,
	})
	return c.tree
}

func (c *Chrome) View() string {
	tree := c.Render()
	if tree == nil {
		return ""
	}
	return tree.View()
}

// Press forwards a user press to the most recently rendered tree.
func (c *Chrome) Press(i int) bool {
	if c.tree == nil {
		return false
	}
	return c.tree.Press(i)
}

// interceptor keeps swaps local to the chrome and lets the tab bar repaint
// before a navigation reaches the publishing screen.
func (c *Chrome) interceptor(ctx *Context) render.UpdateFunc {
	return func(href string, action render.Action, current *markup.Node, opts render.UpdateOptions) {
		switch {
		case action == render.ActionSwap && opts.NewElement != nil:
			c.displayed = opts.NewElement
		case action == render.ActionNavigate:
			if ctx.OnUpdate == nil {
				return
			}
			c.scheduler.Defer(func() {
				ctx.OnUpdate(href, render.ActionNavigate, current, opts)
			})
		default:
			if ctx.OnUpdate != nil {
				ctx.OnUpdate(href, action, current, opts)
			}
		}
	}
}

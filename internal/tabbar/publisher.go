package tabbar

import (
	"github.com/agnivade/levenshtein"
	"github.com/rs/zerolog"

	"github.com/jask/hypertabs/internal/markup"
)

const (
	Namespace     = "https://instawork.com/hyperview-navigation"
	LocalName     = "bottom-tab-bar"
	NavigatorAttr = "navigator"
)

// ElementName is <navigation:bottom-tab-bar>.
var ElementName = markup.Name{Space: Namespace, Local: LocalName}

// Publisher binds one <navigation:bottom-tab-bar> element to the registry.
// It draws nothing; the chrome for its navigator draws its children.
//
// Usage:
//
//	<navigation:bottom-tab-bar
//	  xmlns:navigation="https://instawork.com/hyperview-navigation"
//	  navigation:navigator="some-tab-navigator-id">
//	  ...
//	</navigation:bottom-tab-bar>
type Publisher struct {
	writer  Writer
	ctx     *Context
	focused bool
	log     zerolog.Logger
}

// NewPublisher returns a publisher for ctx. w may be nil when no registry is
// mounted; publishing is then skipped.
func NewPublisher(w Writer, ctx *Context, log zerolog.Logger) *Publisher {
	return &Publisher{writer: w, ctx: ctx, log: log}
}

func (p *Publisher) Context() *Context { return p.ctx }

func (p *Publisher) Focused() bool { return p.focused }

// Navigator reads navigation:navigator from the element.
func (p *Publisher) Navigator() (string, bool) {
	if p.ctx == nil {
		return "", false
	}
	id, ok := p.ctx.Element.AttrNS(Namespace, NavigatorAttr)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}

// Focus runs when the owning screen gains focus.
func (p *Publisher) Focus() {
	p.focused = true
	p.publish()
}

// Blur runs when the owning screen loses focus. The registry entry stays.
func (p *Publisher) Blur() {
	p.focused = false
}

// SetContext replaces the published context, e.g. after the screen's
// document was re-fetched. A focused publisher republishes on change.
func (p *Publisher) SetContext(ctx *Context) {
	if ctx == p.ctx {
		return
	}
	p.ctx = ctx
	if p.focused {
		p.publish()
	}
}

// View is empty; the element only declares the association.
func (p *Publisher) View() string { return "" }

func (p *Publisher) publish() {
	if p.ctx == nil {
		return
	}
	navigator, ok := p.Navigator()
	if !ok {
		ev := p.log.Warn().Str("route", p.ctx.Route)
		if hint := navigatorHint(p.ctx.Element); hint != "" {
			ev = ev.Str("hint", hint)
		}
		ev.Msg("<navigation:bottom-tab-bar> element is missing `navigator` attribute")
		return
	}
	if p.writer == nil {
		return
	}
	p.writer.Write(navigator, p.ctx.Route, p.ctx)
}

// navigatorHint names an attribute that looks like a misspelled or
// unqualified navigator attribute.
func navigatorHint(el *markup.Node) string {
	if el == nil {
		return ""
	}
	best, bestDist := "", 3
	for _, a := range el.Attrs {
		if a.Name.Space == "xmlns" || a.Name.Local == "xmlns" || a.Name == (markup.Name{Space: Namespace, Local: NavigatorAttr}) {
			continue
		}
		d := levenshtein.ComputeDistance(a.Name.Local, NavigatorAttr)
		if d < bestDist {
			best, bestDist = a.Name.String(), d
		}
	}
	return best
}

// FindPublishers binds every <navigation:bottom-tab-bar> under root. Each
// publisher gets a copy of base with Element set to its element.
func FindPublishers(root *markup.Node, w Writer, base Context, log zerolog.Logger) []*Publisher {
	var out []*Publisher
	for _, el := range root.Find(Namespace, LocalName) {
		ctx := base
		ctx.Element = el
		out = append(out, NewPublisher(w, &ctx, log))
	}
	return out
}

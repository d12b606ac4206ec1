package nav

import (
	"github.com/rs/zerolog"

	"github.com/jask/hypertabs/internal/markup"
	"github.com/jask/hypertabs/internal/render"
	"github.com/jask/hypertabs/internal/tabbar"
)

// host is what a screen asks of its navigator.
type host interface {
	navigate(from *Screen, href string)
	reload(s *Screen)
	back()
}

// Screen is one hypermedia screen inside a navigator.
type Screen struct {
	route      Route
	doc        *markup.Node
	err        error
	loading    bool
	focused    bool
	publishers []*tabbar.Publisher

	host     host
	registry tabbar.Writer
	service  render.Service
	sheets   render.Stylesheets
	options  render.Options
	log      zerolog.Logger
}

func newScreen(route Route, h host, registry tabbar.Writer, svc render.Service, log zerolog.Logger) *Screen {
	return &Screen{
		route:    route,
		loading:  true,
		host:     h,
		registry: registry,
		service:  svc,
		sheets:   render.DefaultStylesheets(),
		options: render.Options{ComponentRegistry: render.ComponentRegistry{
			// the tab-bar element draws nothing in place
			tabbar.ElementName: func(*markup.Node, render.Stylesheets) string { return "" },
		}},
		log: log.With().Str("route", route.Name).Logger(),
	}
}

func (s *Screen) Route() Route { return s.route }

func (s *Screen) Document() *markup.Node { return s.doc }

func (s *Screen) Focused() bool { return s.focused }

func (s *Screen) Focus() {
	s.focused = true
	for _, p := range s.publishers {
		p.Focus()
	}
}

func (s *Screen) Blur() {
	s.focused = false
	for _, p := range s.publishers {
		p.Blur()
	}
}

func (s *Screen) setLoading() {
	s.loading = true
}

func (s *Screen) setError(err error) {
	s.loading = false
	s.err = err
}

// SetDocument installs a freshly fetched document. Existing publishers get
// the new contexts, so a focused screen republishes its tab bar.
func (s *Screen) SetDocument(doc *markup.Node) {
	s.doc = doc
	s.err = nil
	s.loading = false

	base := tabbar.Context{
		Stylesheets: s.sheets,
		OnUpdate:    s.onUpdate,
		Options:     s.options,
		Route:       s.route.Key,
	}
	fresh := tabbar.FindPublishers(doc, s.registry, base, s.log)
	for i, p := range fresh {
		if i < len(s.publishers) {
			s.publishers[i].SetContext(p.Context())
			fresh[i] = s.publishers[i]
			continue
		}
		if s.focused {
			p.Focus()
		}
	}
	s.publishers = fresh
}

// onUpdate is the screen's own update handler. The chrome hands it the
// navigations and unrecognised actions raised inside the tab bar.
func (s *Screen) onUpdate(href string, action render.Action, _ *markup.Node, _ render.UpdateOptions) {
	switch action {
	case render.ActionNavigate:
		s.host.navigate(s, href)
	case render.ActionReload:
		s.host.reload(s)
	case render.ActionBack:
		s.host.back()
	default:
		s.log.Debug().Str("href", href).Str("action", string(action)).Msg("unhandled update")
	}
}

func (s *Screen) View() string {
	switch {
	case s.err != nil:
		return "error loading " + s.route.Name + ": " + s.err.Error()
	case s.doc == nil && s.loading:
		return "loading " + s.route.Name + "..."
	case s.doc == nil:
		return ""
	}
	tree := s.service.Render(s.doc, s.sheets, s.onUpdate, s.options)
	if tree == nil {
		return ""
	}
	return tree.View()
}

package nav

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/jask/hypertabs/internal/document"
	"github.com/jask/hypertabs/internal/render"
	"github.com/jask/hypertabs/internal/sched"
	"github.com/jask/hypertabs/internal/tabbar"
)

var statusStyle = lipgloss.NewStyle().Faint(true)

// Navigator is a tab navigator: a set of screens, one focused at a time,
// with the tab-bar chrome mounted underneath for the navigator's lifetime.
type Navigator struct {
	ctx      context.Context
	id       string
	screens  []*Screen
	active   int
	history  screenStack
	registry *tabbar.Registry
	chrome   *tabbar.Chrome
	queue    *sched.Queue
	loader   document.Loader
	pending  []tea.Cmd
	status   string
	log      zerolog.Logger
}

// New builds the navigator described by spec. The first screen starts
// focused; its tab bar appears once its document has loaded.
func New(ctx context.Context, spec NavigatorSpec, registry *tabbar.Registry, loader document.Loader, svc render.Service, log zerolog.Logger) *Navigator {
	queue := &sched.Queue{}
	n := &Navigator{
		ctx:      ctx,
		id:       spec.ID,
		registry: registry,
		chrome:   tabbar.NewChrome(spec.ID, registry, svc, queue),
		queue:    queue,
		loader:   loader,
		log:      log.With().Str("navigator", spec.ID).Logger(),
	}
	for _, s := range spec.Screens {
		n.screens = append(n.screens, newScreen(NewRoute(s.Name, s.URL), n, registry, svc, n.log))
	}
	if len(n.screens) > 0 {
		n.screens[0].Focus()
	}
	return n
}

func (n *Navigator) ID() string { return n.id }

func (n *Navigator) Screens() []*Screen { return n.screens }

func (n *Navigator) Active() *Screen {
	if n.active < 0 || n.active >= len(n.screens) {
		return nil
	}
	return n.screens[n.active]
}

func (n *Navigator) Chrome() *tabbar.Chrome { return n.chrome }

func (n *Navigator) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(n.screens))
	for _, s := range n.screens {
		cmds = append(cmds, n.load(s))
	}
	return tea.Batch(cmds...)
}

func (n *Navigator) load(s *Screen) tea.Cmd {
	route := s.Route()
	return func() tea.Msg {
		doc, err := n.loader.Load(n.ctx, route.URL)
		return DocumentLoadedMsg{RouteKey: route.Key, Doc: doc, Err: err}
	}
}

func (n *Navigator) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case DocumentLoadedMsg:
		n.documentLoaded(msg)
	case sched.FlushMsg:
		n.queue.Flush()
	case tea.KeyMsg:
		if cmd := n.handleKey(msg); cmd != nil {
			return n, cmd
		}
	}
	cmds := append(n.pending, n.queue.Cmd())
	n.pending = nil
	return n, tea.Batch(cmds...)
}

func (n *Navigator) documentLoaded(msg DocumentLoadedMsg) {
	s := n.screen(msg.RouteKey)
	if s == nil {
		return
	}
	if msg.Err != nil {
		n.log.Warn().Err(msg.Err).Str("url", s.Route().URL).Msg("load document")
		s.setError(msg.Err)
		return
	}
	s.SetDocument(msg.Doc)
}

func (n *Navigator) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch key := msg.String(); key {
	case "q", "ctrl+c":
		return tea.Quit
	case "r":
		if s := n.Active(); s != nil {
			n.reload(s)
		}
	case "esc", "backspace":
		n.back()
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			n.chrome.Render()
			if !n.chrome.Press(int(key[0] - '1')) {
				n.status = "no tab " + key
			}
		}
	}
	return nil
}

func (n *Navigator) screen(key string) *Screen {
	for _, s := range n.screens {
		if s.Route().Key == key {
			return s
		}
	}
	return nil
}

// navigate focuses the screen whose URL href resolves to.
func (n *Navigator) navigate(from *Screen, href string) {
	target := Resolve(from.Route().URL, href)
	for i, s := range n.screens {
		if s.Route().URL != target {
			continue
		}
		if i == n.active {
			return
		}
		n.history.Push(n.active)
		n.switchTo(i)
		n.log.Debug().Str("from", from.Route().Name).Str("to", s.Route().Name).Msg("navigate")
		return
	}
	n.status = "no screen for " + href
	n.log.Warn().Str("href", href).Str("resolved", target).Msg("navigate to unknown screen")
}

// back returns to the previously focused screen, if any.
func (n *Navigator) back() {
	i, ok := n.history.Pop()
	if !ok {
		return
	}
	n.switchTo(i)
}

func (n *Navigator) switchTo(i int) {
	n.screens[n.active].Blur()
	n.active = i
	n.screens[i].Focus()
	n.status = ""
}

func (n *Navigator) reload(s *Screen) {
	s.setLoading()
	n.pending = append(n.pending, n.load(s))
}

func (n *Navigator) View() string {
	var b strings.Builder
	if s := n.Active(); s != nil {
		b.WriteString(s.View())
	}
	if bar := n.chrome.View(); bar != "" {
		b.WriteString("\n")
		b.WriteString(bar)
	}
	if n.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(n.status))
	}
	return b.String()
}

package tabbar

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/jask/hypertabs/internal/markup"
	"github.com/jask/hypertabs/internal/render"
)

const tabBarTemplate = `<navigation:bottom-tab-bar xmlns="https://hyperview.org/hyperview" xmlns:navigation="https://instawork.com/hyperview-navigation" %s>
  <view layout="row">
    <item href="/home.xml" selected="true"><text>Home</text></item>
    <item href="/search.xml" selected="false"><text>Search</text></item>
  </view>
</navigation:bottom-tab-bar>`

// publishedElement parses a tab-bar element bound to navigator, or with no
// navigator attribute when navigator is empty.
func publishedElement(t *testing.T, navigator string) *markup.Node {
	t.Helper()
	attr := ""
	if navigator != "" {
		attr = fmt.Sprintf(`navigation:navigator=%q`, navigator)
	}
	el, err := markup.ParseString(fmt.Sprintf(tabBarTemplate, attr))
	require.NoError(t, err)
	return el
}

func bufferLogger() (zerolog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return zerolog.New(&buf), &buf
}

type update struct {
	href    string
	action  render.Action
	current *markup.Node
	opts    render.UpdateOptions
}

// recordingService remembers its last Render call so tests can play the
// part of the user inside the rendered tree.
type recordingService struct {
	renders  int
	element  *markup.Node
	sheets   render.Stylesheets
	onUpdate render.UpdateFunc
	opts     render.Options
}

func (s *recordingService) Render(el *markup.Node, sheets render.Stylesheets, onUpdate render.UpdateFunc, opts render.Options) render.Tree {
	s.renders++
	s.element, s.sheets, s.onUpdate, s.opts = el, sheets, onUpdate, opts
	return stubTree{label: el.Name.Local}
}

type stubTree struct{ label string }

func (t stubTree) View() string   { return t.label }
func (t stubTree) Targets() int   { return 0 }
func (t stubTree) Press(int) bool { return false }

func zerologNop() zerolog.Logger { return zerolog.Nop() }

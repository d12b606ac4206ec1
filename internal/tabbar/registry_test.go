package tabbar

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/hypertabs/internal/markup"
)

func TestRegistryWriteSuppressesSameContext(t *testing.T) {
	reg := NewRegistry()
	ctx := &Context{Element: publishedElement(t, "tabs-1")}

	reg.Write("tabs-1", "", ctx)
	reg.Write("tabs-1", "", ctx)
	require.Equal(t, uint64(1), reg.Version())

	got, ok := reg.Read("tabs-1")
	require.True(t, ok)
	require.Same(t, ctx, got)
}

func TestRegistryNewestWriteWins(t *testing.T) {
	reg := NewRegistry()
	a := &Context{Element: publishedElement(t, "tabs-1")}
	b := &Context{Element: publishedElement(t, "tabs-1")}

	reg.Write("tabs-1", "", a)
	reg.Write("tabs-1", "", b)
	got, ok := reg.Read("tabs-1")
	require.True(t, ok)
	require.Same(t, b, got)
	require.Equal(t, uint64(2), reg.Version())

	reg.Write("tabs-2", "", a)
	require.Equal(t, []string{"tabs-1", "tabs-2"}, reg.Navigators())
}

func TestRegistryTagsOrigin(t *testing.T) {
	reg := NewRegistry()
	ctx := &Context{Element: publishedElement(t, "tabs-1")}

	reg.Write("tabs-1", "route-a", ctx)
	ctx.Element.Walk(func(n *markup.Node) bool {
		if n.IsElement() {
			require.Equal(t, "route-a", n.Origin(), n.Name.Local)
		}
		return true
	})

	reg.Write("tabs-1", "route-b", ctx)
	require.Equal(t, "route-a", ctx.Element.FirstElementChild().Origin())
	require.Equal(t, uint64(1), reg.Version())
}

func TestRegistryIgnoresNilContext(t *testing.T) {
	reg := NewRegistry()
	reg.Write("tabs-1", "route-a", nil)
	_, ok := reg.Read("tabs-1")
	require.False(t, ok)
	require.Zero(t, reg.Version())

	var missing *Registry
	_, ok = missing.Read("tabs-1")
	require.False(t, ok)
	missing.Write("tabs-1", "", &Context{})
}

package markup

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

const navNS = "https://instawork.com/hyperview-navigation"

const tabBarDoc = `<doc xmlns="https://hyperview.org/hyperview" xmlns:navigation="https://instawork.com/hyperview-navigation">
  <navigation:bottom-tab-bar navigation:navigator="tabs-1">
    <!-- tabs -->
    <view layout="row">
      <item href="/home.xml" selected="true"><text>Home</text></item>
      <item href="/search.xml" selected="false"><text>Search</text></item>
    </view>
  </navigation:bottom-tab-bar>
</doc>`

func origins(n *Node) []string {
	var out []string
	n.Walk(func(c *Node) bool {
		if c.IsElement() {
			out = append(out, c.Name.Local+"="+c.Origin())
		}
		return true
	})
	return out
}

func TestParseResolvesNamespaces(t *testing.T) {
	root, err := ParseString(tabBarDoc)
	require.NoError(t, err)
	require.Equal(t, "doc", root.Name.Local)
	require.Equal(t, "https://hyperview.org/hyperview", root.Name.Space)

	bars := root.Find(navNS, "bottom-tab-bar")
	require.Len(t, bars, 1)
	nav, ok := bars[0].AttrNS(navNS, "navigator")
	require.True(t, ok)
	require.Equal(t, "tabs-1", nav)

	_, ok = bars[0].Attr("navigator")
	require.False(t, ok, "unqualified lookup must not match a namespaced attribute")
}

func TestFirstElementChildSkipsTextAndComments(t *testing.T) {
	root, err := ParseString(tabBarDoc)
	require.NoError(t, err)
	bar := root.Find(navNS, "bottom-tab-bar")[0]
	require.Greater(t, len(bar.Children), 1)
	require.Equal(t, TextNode, bar.Children[0].Type)

	child := bar.FirstElementChild()
	require.NotNil(t, child)
	require.Equal(t, "view", child.Name.Local)
	require.Len(t, child.ElementChildren(), 2)
	require.Equal(t, "Home", child.ElementChildren()[0].Text())
}

func TestFirstElementChildNone(t *testing.T) {
	el := NewElement(Name{Local: "bar"}, nil, NewText("  "), &Node{Type: CommentNode, Data: "x"})
	require.Nil(t, el.FirstElementChild())
	require.Empty(t, el.ElementChildren())

	var nilNode *Node
	require.Nil(t, nilNode.FirstElementChild())
}

func TestParseErrors(t *testing.T) {
	_, err := ParseString("")
	require.True(t, errors.Is(err, ErrEmptyDocument))

	_, err = ParseString("<a><b></a>")
	require.Error(t, err)
}

func TestTagOriginIsSetOnce(t *testing.T) {
	root, err := ParseString(tabBarDoc)
	require.NoError(t, err)

	TagOrigin(root, "route-a")
	first := origins(root)
	for _, o := range first {
		require.Contains(t, o, "=route-a")
	}

	TagOrigin(root, "route-a")
	if diff := cmp.Diff(first, origins(root)); diff != "" {
		t.Fatalf("second tag changed origins (-want +got):\n%s", diff)
	}

	TagOrigin(root, "route-b")
	if diff := cmp.Diff(first, origins(root)); diff != "" {
		t.Fatalf("different origin overwrote tags (-want +got):\n%s", diff)
	}
}

func TestTagOriginKeepsDescendantTags(t *testing.T) {
	inner := NewElement(Name{Local: "item"}, nil)
	TagOrigin(inner, "older")
	root := NewElement(Name{Local: "view"}, nil, inner)

	TagOrigin(root, "newer")
	require.Equal(t, "newer", root.Origin())
	require.Equal(t, "older", inner.Origin())

	TagOrigin(root, "")
	TagOrigin(nil, "ignored")
	require.Equal(t, "newer", root.Origin())
}

func TestCloneIsDeep(t *testing.T) {
	root, err := ParseString(tabBarDoc)
	require.NoError(t, err)
	TagOrigin(root, "route-a")

	cp := root.Clone()
	require.NotSame(t, root, cp)
	require.Nil(t, cp.Parent)
	require.Equal(t, origins(root), origins(cp))

	item := cp.Find("https://hyperview.org/hyperview", "item")[1]
	item.SetAttr("selected", "true")
	orig := root.Find("https://hyperview.org/hyperview", "item")[1]
	v, _ := orig.Attr("selected")
	require.Equal(t, "false", v)
	require.Same(t, item.Parent.Children[3], item)
}

func TestSetAttrReplacesExisting(t *testing.T) {
	el := NewElement(Name{Local: "item"}, []Attr{{Name: Name{Local: "selected"}, Value: "false"}})
	el.SetAttr("selected", "true")
	require.Len(t, el.Attrs, 1)
	v, ok := el.Attr("selected")
	require.True(t, ok)
	require.Equal(t, "true", v)

	el.SetAttrNS(navNS, "navigator", "tabs-2")
	require.Len(t, el.Attrs, 2)
	require.Equal(t, "{"+navNS+"}navigator", el.Attrs[1].Name.String())
}

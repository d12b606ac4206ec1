// Package markup holds the typed document tree that screens and the tab bar
// share. Attribute lookups are plain reads over the parsed attribute table.
package markup

import "strings"

type NodeType int

const (
	ElementNode NodeType = iota + 1
	TextNode
	CommentNode
)

// Name is a namespace-qualified element or attribute name. Space holds the
// namespace URI, not the document prefix.
type Name struct {
	Space string
	Local string
}

func (n Name) String() string {
	if n.Space == "" {
		return n.Local
	}
	return "{" + n.Space + "}" + n.Local
}

type Attr struct {
	Name  Name
	Value string
}

// Node is one node of a markup document. Only element nodes carry a Name,
// Attrs and Children; text and comment nodes carry Data.
type Node struct {
	Type     NodeType
	Name     Name
	Data     string
	Attrs    []Attr
	Children []*Node
	Parent   *Node

	origin string
}

func NewElement(name Name, attrs []Attr, children ...*Node) *Node {
	n := &Node{Type: ElementNode, Name: name}
	if len(attrs) > 0 {
		n.Attrs = append([]Attr(nil), attrs...)
	}
	for _, c := range children {
		n.AppendChild(c)
	}
	return n
}

func NewText(data string) *Node {
	return &Node{Type: TextNode, Data: data}
}

func (n *Node) AppendChild(c *Node) {
	if n == nil || c == nil {
		return
	}
	c.Parent = n
	n.Children = append(n.Children, c)
}

func (n *Node) IsElement() bool {
	return n != nil && n.Type == ElementNode
}

// AttrNS returns the value of the attribute with the given namespace URI and
// local name.
func (n *Node) AttrNS(space, local string) (string, bool) {
	if !n.IsElement() {
		return "", false
	}
	for _, a := range n.Attrs {
		if a.Name.Space == space && a.Name.Local == local {
			return a.Value, true
		}
	}
	return "", false
}

// Attr looks up an attribute without a namespace.
func (n *Node) Attr(local string) (string, bool) {
	return n.AttrNS("", local)
}

func (n *Node) HasAttr(local string) bool {
	_, ok := n.Attr(local)
	return ok
}

func (n *Node) SetAttr(local, value string) {
	n.SetAttrNS("", local, value)
}

func (n *Node) SetAttrNS(space, local, value string) {
	if !n.IsElement() {
		return
	}
	for i, a := range n.Attrs {
		if a.Name.Space == space && a.Name.Local == local {
			n.Attrs[i].Value = value
			return
		}
	}
	n.Attrs = append(n.Attrs, Attr{Name: Name{Space: space, Local: local}, Value: value})
}

func (n *Node) ElementChildren() []*Node {
	if n == nil {
		return nil
	}
	var out []*Node
	for _, c := range n.Children {
		if c.IsElement() {
			out = append(out, c)
		}
	}
	return out
}

// FirstElementChild skips text and comment children.
func (n *Node) FirstElementChild() *Node {
	if n == nil {
		return nil
	}
	for _, c := range n.Children {
		if c.IsElement() {
			return c
		}
	}
	return nil
}

// Text returns the concatenated, trimmed text of all descendant text nodes.
func (n *Node) Text() string {
	if n == nil {
		return ""
	}
	var b strings.Builder
	n.Walk(func(c *Node) bool {
		if c.Type == TextNode {
			b.WriteString(c.Data)
		}
		return true
	})
	return strings.TrimSpace(b.String())
}

// Walk visits n and its descendants depth-first. Returning false from fn
// skips the node's children.
func (n *Node) Walk(fn func(*Node) bool) {
	if n == nil {
		return
	}
	if !fn(n) {
		return
	}
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

// Find returns every element matching space/local, in document order.
func (n *Node) Find(space, local string) []*Node {
	var out []*Node
	n.Walk(func(c *Node) bool {
		if c.IsElement() && c.Name.Space == space && c.Name.Local == local {
			out = append(out, c)
		}
		return true
	})
	return out
}

// Clone deep-copies the subtree rooted at n. The copy has no parent.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	cp := &Node{
		Type:   n.Type,
		Name:   n.Name,
		Data:   n.Data,
		origin: n.origin,
	}
	if len(n.Attrs) > 0 {
		cp.Attrs = append([]Attr(nil), n.Attrs...)
	}
	for _, c := range n.Children {
		cp.AppendChild(c.Clone())
	}
	return cp
}

package render

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/hypertabs/internal/markup"
)

const selectedSuffix = ":selected"

// TextService renders markup for a terminal. Elements carrying href or
// selected are pressable targets; a press inside a selection group swaps in
// a copy of the tree with the selection moved, then dispatches the target's
// action.
type TextService struct {
	// ShowKeys prefixes each target with its 1-based index.
	ShowKeys bool
}

func NewTextService() *TextService {
	return &TextService{ShowKeys: true}
}

func (s *TextService) Render(el *markup.Node, sheets Stylesheets, onUpdate UpdateFunc, opts Options) Tree {
	if el == nil {
		return nil
	}
	t := &textTree{
		root:     el,
		sheets:   sheets,
		onUpdate: onUpdate,
		registry: opts.ComponentRegistry,
		showKeys: s.ShowKeys,
	}
	el.Walk(func(n *markup.Node) bool {
		if isTarget(n) {
			t.targets = append(t.targets, n)
		}
		return true
	})
	return t
}

type textTree struct {
	root     *markup.Node
	sheets   Stylesheets
	onUpdate UpdateFunc
	registry ComponentRegistry
	showKeys bool
	targets  []*markup.Node
}

func isTarget(n *markup.Node) bool {
	return n.IsElement() && (n.HasAttr("href") || n.HasAttr("selected"))
}

func isSelected(n *markup.Node) bool {
	v, _ := n.Attr("selected")
	return v == "true"
}

func (t *textTree) Targets() int { return len(t.targets) }

func (t *textTree) View() string {
	return t.render(t.root)
}

func (t *textTree) style(n *markup.Node) lipgloss.Style {
	id, _ := n.Attr("style")
	base, ok := t.sheets[id]
	if !ok {
		base = lipgloss.NewStyle()
	}
	if isTarget(n) && isSelected(n) {
		if sel, ok := t.sheets[id+selectedSuffix]; ok {
			return sel
		}
		return base.Reverse(true)
	}
	return base
}

func (t *textTree) render(n *markup.Node) string {
	switch n.Type {
	case markup.TextNode:
		return strings.TrimSpace(n.Data)
	case markup.ElementNode:
	default:
		return ""
	}
	if fn, ok := t.registry[n.Name]; ok && fn != nil {
		return fn(n, t.sheets)
	}
	switch n.Name.Local {
	case "style", "styles", "behavior":
		return ""
	case "text":
		return t.style(n).Render(n.Text())
	}

	parts := make([]string, 0, len(n.Children))
	for _, c := range n.Children {
		if out := t.render(c); out != "" {
			parts = append(parts, out)
		}
	}
	var body string
	if layout, _ := n.Attr("layout"); layout == "row" {
		body = lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	} else {
		body = lipgloss.JoinVertical(lipgloss.Left, parts...)
	}
	if isTarget(n) && t.showKeys {
		body = strconv.Itoa(t.targetIndex(n)+1) + " " + body
	}
	return t.style(n).Render(body)
}

func (t *textTree) targetIndex(n *markup.Node) int {
	for i, c := range t.targets {
		if c == n {
			return i
		}
	}
	return -1
}

// Press activates target i. It reports false when i is out of range.
func (t *textTree) Press(i int) bool {
	if i < 0 || i >= len(t.targets) {
		return false
	}
	target := t.targets[i]
	if t.onUpdate == nil {
		return true
	}
	if target.HasAttr("selected") && !isSelected(target) {
		next := t.root.Clone()
		if moved := locate(next, pathTo(t.root, target)); moved != nil {
			selectOnly(moved)
			t.onUpdate("", ActionSwap, t.root, UpdateOptions{NewElement: next})
		}
	}
	if href, ok := target.Attr("href"); ok && href != "" {
		action := ActionNavigate
		if a, ok := target.Attr("action"); ok && a != "" {
			action = Action(a)
		}
		t.onUpdate(href, action, target, UpdateOptions{})
	}
	return true
}

// pathTo returns child indexes leading from root down to n.
func pathTo(root, n *markup.Node) []int {
	var path []int
	for cur := n; cur != nil && cur != root; cur = cur.Parent {
		p := cur.Parent
		if p == nil {
			return nil
		}
		for i, c := range p.Children {
			if c == cur {
				path = append(path, i)
				break
			}
		}
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

func locate(root *markup.Node, path []int) *markup.Node {
	cur := root
	for _, i := range path {
		if i >= len(cur.Children) {
			return nil
		}
		cur = cur.Children[i]
	}
	return cur
}

func selectOnly(n *markup.Node) {
	if n.Parent != nil {
		for _, sib := range n.Parent.Children {
			if sib.HasAttr("selected") {
				sib.SetAttr("selected", "false")
			}
		}
	}
	n.SetAttr("selected", "true")
}

package markup

// Origin returns the route key recorded by TagOrigin, or "".
func (n *Node) Origin() string {
	if n == nil {
		return ""
	}
	return n.origin
}

// TagOrigin records origin on n and every descendant element. A node that
// already carries a tag keeps it.
func TagOrigin(n *Node, origin string) {
	if n == nil || origin == "" {
		return
	}
	n.Walk(func(c *Node) bool {
		if c.IsElement() && c.origin == "" {
			c.origin = origin
		}
		return true
	})
}

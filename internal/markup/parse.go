package markup

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

var ErrEmptyDocument = errors.New("markup: document has no root element")

// Parse reads an XML document and returns its root element. Namespace
// prefixes are resolved to URIs; whitespace text between elements is kept.
func Parse(r io.Reader) (*Node, error) {
	dec := xml.NewDecoder(r)
	var (
		root  *Node
		stack []*Node
	)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse markup: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			el := &Node{Type: ElementNode, Name: Name{Space: t.Name.Space, Local: t.Name.Local}}
			for _, a := range t.Attr {
				el.Attrs = append(el.Attrs, Attr{Name: Name{Space: a.Name.Space, Local: a.Name.Local}, Value: a.Value})
			}
			if len(stack) == 0 {
				if root != nil {
					return nil, fmt.Errorf("parse markup: multiple root elements")
				}
				root = el
			} else {
				stack[len(stack)-1].AppendChild(el)
			}
			stack = append(stack, el)
		case xml.EndElement:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		case xml.CharData:
			if len(stack) > 0 {
				stack[len(stack)-1].AppendChild(NewText(string(t)))
			}
		case xml.Comment:
			if len(stack) > 0 {
				stack[len(stack)-1].AppendChild(&Node{Type: CommentNode, Data: string(t)})
			}
		}
	}
	if root == nil {
		return nil, ErrEmptyDocument
	}
	return root, nil
}

func ParseString(s string) (*Node, error) {
	return Parse(strings.NewReader(s))
}

package dom

import (
	"io"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Parse builds a document from HTML markup. The html, head and body elements
// are always present, as with any parsed HTML document.
func Parse(r io.Reader) (*HTMLDocument, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, errors.Wrap(err, "parsing html")
	}

	doc := NewHTMLDocument()
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		doc.buildFrom(doc.Node, c)
	}
	return doc, nil
}

// ParseString is Parse over a string.
func ParseString(markup string) (*HTMLDocument, error) {
	return Parse(strings.NewReader(markup))
}

// ParseFragment parses markup in the context of d's body and appends the
// resulting nodes to it, returning them.
func (d *HTMLDocument) ParseFragment(markup string) ([]*Node, error) {
	context := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(markup), context)
	if err != nil {
		return nil, errors.Wrap(err, "parsing html fragment")
	}

	parent := d.Body
	if parent == nil {
		parent = d.Node
	}
	out := make([]*Node, 0, len(nodes))
	for _, n := range nodes {
		if built := d.buildFrom(parent, n); built != nil {
			out = append(out, built)
		}
	}
	return out, nil
}

func (d *HTMLDocument) buildFrom(parent *Node, src *html.Node) *Node {
	var n *Node
	switch src.Type {
	case html.ElementNode:
		attrs := make([]*Attr, 0, len(src.Attr))
		for _, a := range src.Attr {
			name := a.Key
			if a.Namespace != "" {
				name = a.Namespace + ":" + a.Key
			}
			attrs = append(attrs, NewAttr(name, a.Val))
		}
		n = NewElement(d.Node, src.Data, attrs...)
		if n.LocalName == "body" && d.Body == nil {
			d.Body = n
		}
	case html.TextNode:
		n = NewTextNode(d.Node, src.Data)
	case html.CommentNode:
		n = NewComment(d.Node, src.Data)
	case html.DoctypeNode:
		n = NewDocTypeNode(d.Node, src.Data)
	default:
		return nil
	}

	parent.AppendChild(n)
	for c := src.FirstChild; c != nil; c = c.NextSibling {
		d.buildFrom(n, c)
	}
	return n
}

package dom

import (
	"fmt"
	"sort"
	"strings"
)

type NodeType uint16

const (
	ElementNode NodeType = iota + 1
	AttrNode
	TextNode
	CDATASectionNode
	ProcessingInstructionNode
	CommentNode
	DocumentNode
	DocumentTypeNode
	DocumentFragmentNode
)

// https://dom.spec.whatwg.org/#nodelist
type NodeList []*Node

// Contains returns the index of n in the list or -1.
func (l NodeList) Contains(n *Node) int {
	for i := range l {
		if l[i] == n {
			return i
		}
	}
	return -1
}

// Remove deletes the entry at index i and returns it.
func (l *NodeList) Remove(i int) *Node {
	if i < 0 || i >= len(*l) {
		return nil
	}
	n := (*l)[i]
	*l = append((*l)[:i], (*l)[i+1:]...)
	return n
}

// NewDocTypeNode returns a doctype node owned by od.
func NewDocTypeNode(od *Node, name string) *Node {
	return &Node{
		NodeType:      DocumentTypeNode,
		NodeName:      name,
		OwnerDocument: od,
	}
}

// NewComment returns a comment node with its Data section filled.
func NewComment(od *Node, data string) *Node {
	return &Node{
		NodeType:      CommentNode,
		NodeName:      "#comment",
		OwnerDocument: od,
		Comment:       &Comment{CharacterData: &CharacterData{Data: data}},
	}
}

func NewTextNode(od *Node, text string) *Node {
	return &Node{
		NodeType:      TextNode,
		NodeName:      "#text",
		OwnerDocument: od,
		Text:          &Text{CharacterData: &CharacterData{Data: text}},
	}
}

// NewElement returns an HTML element named name owned by od. Attributes are
// set in order; a repeated name keeps the first value like the tokenizer does.
func NewElement(od *Node, name string, attrs ...*Attr) *Node {
	name = strings.ToLower(name)
	n := &Node{
		NodeType:      ElementNode,
		NodeName:      name,
		OwnerDocument: od,
		Element: &Element{
			LocalName:   name,
			HTMLElement: NewHTMLElement(name),
		},
	}
	n.Attributes = NewNamedNodeMap(n)
	for _, a := range attrs {
		if n.Attributes.GetNamedItem(a.Name) == nil {
			n.Attributes.SetNamedItem(a)
		}
	}
	return n
}

// https://dom.spec.whatwg.org/#node
type Node struct {
	NodeType                                                        NodeType
	NodeName                                                        string
	OwnerDocument                                                   *Node
	ParentNode, FirstChild, LastChild, PreviousSibling, NextSibling *Node
	ChildNodes                                                      NodeList

	// Node types
	*Element
	*Text
	*Comment
	*Document

	listeners listenerList
}

// https://dom.spec.whatwg.org/#dom-node-parentelement
func (n *Node) ParentElement() *Node {
	if n.ParentNode != nil && n.ParentNode.NodeType == ElementNode {
		return n.ParentNode
	}
	return nil
}

// https://dom.spec.whatwg.org/#dom-node-textcontent
func (n *Node) TextContent() string {
	switch n.NodeType {
	case TextNode:
		return n.Text.Data
	case CommentNode:
		return n.Comment.Data
	case DocumentNode, DocumentTypeNode:
		return ""
	}

	var b strings.Builder
	for _, child := range n.ChildNodes {
		if child.NodeType == TextNode || child.NodeType == ElementNode {
			b.WriteString(child.TextContent())
		}
	}
	return b.String()
}

// AppendText adds data to the trailing text node, creating one if the last
// child is not text.
func (n *Node) AppendText(data string) {
	if n.LastChild != nil && n.LastChild.NodeType == TextNode {
		n.LastChild.Text.AppendData(data)
		return
	}
	n.AppendChild(NewTextNode(n.ownerDocumentNode(), data))
}

// https://dom.spec.whatwg.org/#dom-node-contains
func (n *Node) Contains(on *Node) bool {
	for i := on; i != nil; i = i.ParentNode {
		if i == n {
			return true
		}
	}
	return false
}

// didn't really follow the steps here because they seem complicated :/
// https://dom.spec.whatwg.org/#concept-node-append
func (n *Node) AppendChild(on *Node) *Node {
	on.detach()
	if n.LastChild != nil {
		on.PreviousSibling = n.LastChild
		n.LastChild.NextSibling = on
	} else {
		n.FirstChild = on
	}
	on.ParentNode = n
	on.NextSibling = nil
	n.LastChild = on
	n.ChildNodes = append(n.ChildNodes, on)
	return on
}

func (n *Node) RemoveChild(child *Node) *Node {
	node := n.ChildNodes.Remove(n.ChildNodes.Contains(child))
	if node == nil {
		return nil
	}
	if node.PreviousSibling != nil {
		node.PreviousSibling.NextSibling = node.NextSibling
	}
	if node.NextSibling != nil {
		node.NextSibling.PreviousSibling = node.PreviousSibling
	}
	if len(n.ChildNodes) == 0 {
		n.FirstChild, n.LastChild = nil, nil
	} else {
		n.FirstChild = n.ChildNodes[0]
		n.LastChild = n.ChildNodes[len(n.ChildNodes)-1]
	}
	node.ParentNode, node.PreviousSibling, node.NextSibling = nil, nil, nil

	// a removed element can no longer be the active one
	if doc := node.ownerHTMLDocument(); doc != nil && doc.activeElement != nil && node.Contains(doc.activeElement) {
		doc.activeElement = nil
	}
	return node
}

func (n *Node) detach() {
	if n.ParentNode != nil {
		n.ParentNode.RemoveChild(n)
	}
}

// https://dom.spec.whatwg.org/#dom-node-isconnected
func (n *Node) IsConnected() bool {
	return n.getRoot().NodeType == DocumentNode
}

func (n *Node) getRoot() *Node {
	var prev *Node
	for i := n; i != nil; i = i.ParentNode {
		prev = i
	}
	return prev
}

func (n *Node) ownerDocumentNode() *Node {
	if n.NodeType == DocumentNode {
		return n
	}
	return n.OwnerDocument
}

func (n *Node) ownerHTMLDocument() *HTMLDocument {
	od := n.ownerDocumentNode()
	if od == nil || od.Document == nil {
		return nil
	}
	return od.Document.html
}

// Describe returns a short start-tag rendering of the node for messages,
// e.g. <input id="name" type="text">.
func (n *Node) Describe() string {
	if n == nil {
		return "<nil>"
	}
	switch n.NodeType {
	case ElementNode:
		e := "<" + n.NodeName
		for _, name := range []string{"id", "type", "name", "class"} {
			if a := n.Attributes.GetNamedItem(name); a != nil {
				e += fmt.Sprintf(" %s=%q", name, a.Value)
			}
		}
		return e + ">"
	case DocumentNode:
		return "#document"
	case TextNode:
		return "#text"
	}
	return n.NodeName
}

func serializeNodeType(node *Node, ident int) string {
	switch node.NodeType {
	case ElementNode:
		e := "<" + node.NodeName + ">"
		if len(node.Attributes.Attrs) == 0 {
			return e
		}
		keys := make([]string, 0, len(node.Attributes.Attrs))
		for name := range node.Attributes.Attrs {
			keys = append(keys, name)
		}
		sort.Strings(keys)
		spaces := "| "
		for i := 1; i < ident; i++ {
			spaces += "  "
		}
		for _, name := range keys {
			e += "\n" + spaces + name + "=\"" + node.Attributes.Attrs[name].Value + "\""
		}
		return e
	case TextNode:
		return "\"" + node.Text.Data + "\""
	case CommentNode:
		return "<!-- " + node.Comment.Data + " -->"
	case DocumentTypeNode:
		return "<!DOCTYPE " + node.NodeName + ">"
	case DocumentNode:
		return "#document"
	default:
		return ""
	}
}

func (node *Node) serialize(ident int) string {
	ser := serializeNodeType(node, ident+1) + "\n"
	if node.NodeType != DocumentNode {
		spaces := "| "
		for i := 1; i < ident; i++ {
			spaces += "  "
		}
		ser = spaces + ser
	}
	for _, child := range node.ChildNodes {
		ser += child.serialize(ident + 1)
	}
	return ser
}

// String dumps the subtree in the html5lib tree-construction test format.
func (node *Node) String() string {
	return strings.TrimRight(node.serialize(0), "\n")
}

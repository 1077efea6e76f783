package interact

import "github.com/heathj/interact/dom"

// Kind is the closed set of target classifications the sequencers branch on.
type Kind int

const (
	KindOther Kind = iota
	KindFormControl
	KindContentEditable
	// KindFocusable is any other focusable element: anchors and anything
	// with a tabindex.
	KindFocusable
	KindWindow
	KindDocument
)

func (k Kind) String() string {
	switch k {
	case KindFormControl:
		return "form-control"
	case KindContentEditable:
		return "content-editable"
	case KindFocusable:
		return "focusable"
	case KindWindow:
		return "window"
	case KindDocument:
		return "document"
	}
	return "other"
}

// classification is a snapshot of a target's capabilities, taken once per
// operation from the live element.
type classification struct {
	kind      Kind
	focusable bool
	disabled  bool
	readOnly  bool
}

func classify(t dom.EventTarget) classification {
	switch v := t.(type) {
	case *dom.Window:
		return classification{kind: KindWindow}
	case *dom.HTMLDocument:
		return classification{kind: KindDocument}
	case *dom.Node:
		return classifyNode(v)
	}
	return classification{}
}

func classifyNode(n *dom.Node) classification {
	if n == nil {
		return classification{}
	}
	if n.NodeType == dom.DocumentNode {
		return classification{kind: KindDocument}
	}

	c := classification{focusable: n.IsFocusable()}
	switch {
	case n.IsFormControl():
		c.kind = KindFormControl
		c.disabled = n.Disabled()
		c.readOnly = n.ReadOnly()
	case n.IsContentEditable():
		c.kind = KindContentEditable
	case c.focusable:
		c.kind = KindFocusable
	}
	return c
}

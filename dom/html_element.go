package dom

import (
	"math"
	"strconv"
	"strings"
)

func NewHTMLElement(name string) *HTMLElement {
	elem := &HTMLElement{}
	switch name {
	case "input", "button", "select", "textarea":
		elem.HTMLFormControl = &HTMLFormControl{}
	case "a":
		elem.HTMLAnchor = &HTMLAnchor{}
	}

	return elem
}

// https://html.spec.whatwg.org/#htmlelement
type HTMLElement struct {
	*HTMLFormControl
	*HTMLAnchor
}

// https://html.spec.whatwg.org/#the-a-element
type HTMLAnchor struct{}

// HTMLFormControl holds the IDL state shared by input, button, select and
// textarea. Content attributes stay on the element; only the dirty value lives
// here.
// https://html.spec.whatwg.org/#concept-fe-value
type HTMLFormControl struct {
	value string
	dirty bool
}

// https://html.spec.whatwg.org/#attr-input-type
func (n *Node) InputType() string {
	if n.NodeType != ElementNode || n.LocalName != "input" {
		return ""
	}
	t := strings.ToLower(strings.TrimSpace(n.GetAttribute("type")))
	if t == "" {
		return "text"
	}
	return t
}

// Value is the current value of a form control: the last assigned value, or
// the default taken from the markup.
// https://html.spec.whatwg.org/#dom-input-value
func (n *Node) Value() string {
	if n.NodeType != ElementNode || n.HTMLFormControl == nil {
		return ""
	}
	if n.HTMLFormControl.dirty {
		return n.HTMLFormControl.value
	}
	if n.LocalName == "textarea" {
		return n.TextContent()
	}
	return n.GetAttribute("value")
}

// SetValue assigns the control's value without firing any event.
func (n *Node) SetValue(v string) {
	if n.NodeType != ElementNode || n.HTMLFormControl == nil {
		return
	}
	n.HTMLFormControl.value = v
	n.HTMLFormControl.dirty = true
}

// https://html.spec.whatwg.org/#attr-fe-maxlength
func (n *Node) MaxLength() (int, bool) {
	if n.NodeType != ElementNode {
		return 0, false
	}
	raw := strings.TrimSpace(n.GetAttribute("maxlength"))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0, false
	}
	return int(v), true
}

package dom

import "strings"

var formControlTags = map[string]bool{
	"input":    true,
	"button":   true,
	"select":   true,
	"textarea": true,
}

// https://html.spec.whatwg.org/#concept-input-apply
var maxLengthInputTypes = map[string]bool{
	"text":     true,
	"search":   true,
	"url":      true,
	"tel":      true,
	"email":    true,
	"password": true,
}

// IsFormControl reports whether n is an input, button, select or textarea
// element. Hidden inputs are not form controls for interaction purposes.
func (n *Node) IsFormControl() bool {
	if n == nil || n.NodeType != ElementNode || !formControlTags[n.LocalName] {
		return false
	}
	return n.InputType() != "hidden"
}

// https://html.spec.whatwg.org/#concept-fe-disabled
func (n *Node) Disabled() bool {
	return n.IsFormControl() && n.HasAttribute("disabled")
}

// https://html.spec.whatwg.org/#attr-input-readonly
func (n *Node) ReadOnly() bool {
	if !n.IsFormControl() {
		return false
	}
	switch n.LocalName {
	case "input", "textarea":
		return n.HasAttribute("readonly")
	}
	return false
}

// IsContentEditable walks up from n to the nearest contenteditable attribute.
// https://html.spec.whatwg.org/#dom-iscontenteditable
func (n *Node) IsContentEditable() bool {
	for e := n; e != nil && e.NodeType == ElementNode; e = e.ParentElement() {
		if !e.HasAttribute("contenteditable") {
			continue
		}
		switch strings.ToLower(e.GetAttribute("contenteditable")) {
		case "", "true", "plaintext-only":
			return true
		case "false":
			return false
		}
	}
	return false
}

// IsFocusable reports whether n is a focusable area: an enabled form control,
// an editing host, an anchor, or anything carrying a tabindex. Documents are
// never focusable.
// https://html.spec.whatwg.org/#focusable-area
func (n *Node) IsFocusable() bool {
	if n == nil || n.NodeType != ElementNode {
		return false
	}
	if n.IsFormControl() {
		return !n.Disabled()
	}
	if n.IsContentEditable() || n.LocalName == "a" {
		return true
	}
	return n.HasAttribute("tabindex")
}

// IsMaxLengthConstrained reports whether the maxlength attribute applies to n.
func (n *Node) IsMaxLengthConstrained() bool {
	if _, ok := n.MaxLength(); !ok {
		return false
	}
	switch n.LocalName {
	case "textarea":
		return true
	case "input":
		return maxLengthInputTypes[n.InputType()]
	}
	return false
}

package dom

import "strings"

// Element is an individual HTML element that gets added to the DOM.
// https://dom.spec.whatwg.org/#interface-element
type Element struct {
	LocalName  string
	Attributes *NamedNodeMap

	*HTMLElement
}

// https://dom.spec.whatwg.org/#dom-element-id
func (e *Element) ID() string { return e.GetAttribute("id") }

// https://dom.spec.whatwg.org/#dom-element-classlist
func (e *Element) ClassList() []string {
	return strings.Fields(e.GetAttribute("class"))
}

// https://dom.spec.whatwg.org/#dom-element-getattribute
func (e *Element) GetAttribute(qualifiedName string) string {
	if a := e.Attributes.GetNamedItem(qualifiedName); a != nil {
		return a.Value
	}
	return ""
}

// https://dom.spec.whatwg.org/#dom-element-setattribute
func (e *Element) SetAttribute(qualifiedName, value string) {
	if a := e.Attributes.GetNamedItem(qualifiedName); a != nil {
		a.Value = value
		return
	}
	e.Attributes.SetNamedItem(NewAttr(qualifiedName, value))
}

func (e *Element) RemoveAttribute(qualifiedName string) {
	e.Attributes.RemoveNamedItem(qualifiedName)
}

// https://dom.spec.whatwg.org/#dom-element-toggleattribute
func (e *Element) ToggleAttribute(qualifiedName string, force ...bool) bool {
	has := e.HasAttribute(qualifiedName)
	want := !has
	if len(force) > 0 {
		want = force[0]
	}
	switch {
	case want && !has:
		e.SetAttribute(qualifiedName, "")
	case !want && has:
		e.RemoveAttribute(qualifiedName)
	}
	return want
}

func (e *Element) HasAttribute(qualifiedName string) bool {
	return e.Attributes.GetNamedItem(qualifiedName) != nil
}

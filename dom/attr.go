package dom

import "strings"

// Attr is https://dom.spec.whatwg.org/#attr
type Attr struct {
	Name, Value  string
	OwnerElement *Node
}

func NewAttr(name, value string) *Attr {
	return &Attr{Name: strings.ToLower(name), Value: value}
}

func NewNamedNodeMap(oe *Node) *NamedNodeMap {
	return &NamedNodeMap{
		Attrs:             map[string]*Attr{},
		AssociatedElement: oe,
	}
}

// https://dom.spec.whatwg.org/#interface-namednodemap
type NamedNodeMap struct {
	Attrs             map[string]*Attr
	AssociatedElement *Node
}

// HTML documents match attribute names case-insensitively.
func (n *NamedNodeMap) GetNamedItem(qn string) *Attr {
	if v, ok := n.Attrs[strings.ToLower(qn)]; ok {
		return v
	}
	return nil
}

func (n *NamedNodeMap) SetNamedItem(s *Attr) *Attr {
	if s == nil {
		return nil
	}
	s.Name = strings.ToLower(s.Name)
	s.OwnerElement = n.AssociatedElement

	old := n.Attrs[s.Name]
	if old == s {
		return s
	}
	n.Attrs[s.Name] = s
	if old == nil {
		return nil
	}
	old.OwnerElement = nil
	return old
}

func (n *NamedNodeMap) RemoveNamedItem(qn string) *Attr {
	old := n.GetNamedItem(qn)
	if old == nil {
		return nil
	}
	delete(n.Attrs, old.Name)
	old.OwnerElement = nil
	return old
}

package dom

// Document is https://dom.spec.whatwg.org/#interface-document
type Document struct {
	URL         string
	ContentType string
	Mode        string

	html *HTMLDocument
}

// Observer sees every event dispatched inside a document, before listeners
// run.
type Observer func(e *Event)

// https://html.spec.whatwg.org/#the-document-object
type HTMLDocument struct {
	Body        *Node
	DefaultView *Window

	activeElement *Node
	hasFocus      bool
	observers     map[int]Observer
	nextObserver  int

	*Node
}

// NewHTMLDocument returns an empty document with a default view. The
// document starts out without system focus, like a background test runner
// window.
func NewHTMLDocument() *HTMLDocument {
	d := &HTMLDocument{
		Node: &Node{
			NodeType: DocumentNode,
			NodeName: "#document",
			Document: &Document{ContentType: "text/html", URL: "about:blank", Mode: "no-quirks"},
		},
	}
	d.Node.Document.html = d
	d.DefaultView = &Window{Document: d}
	return d
}

// https://html.spec.whatwg.org/#dom-document-hasfocus
func (d *HTMLDocument) HasFocus() bool { return d.hasFocus }

// SetHasFocus changes whether the browsing context has system focus. Native
// focus changes only fire events while it does.
func (d *HTMLDocument) SetHasFocus(focused bool) { d.hasFocus = focused }

// ActiveElement returns the focused element or nil when focus sits on the
// body.
// https://html.spec.whatwg.org/#dom-document-activeelement
func (d *HTMLDocument) ActiveElement() *Node { return d.activeElement }

// FocusElement runs the focusing steps for el. It updates the active element
// and, only when the document has system focus, fires blur/focusout on the
// old element and focus/focusin on el.
// https://html.spec.whatwg.org/#focusing-steps
func (d *HTMLDocument) FocusElement(el *Node) {
	if el == nil || !el.IsFocusable() || !el.IsConnected() || el.ownerHTMLDocument() != d || d.activeElement == el {
		return
	}

	old := d.activeElement
	if old != nil {
		d.activeElement = nil
		if d.hasFocus {
			d.fireFocusPair(old, "blur", "focusout", el)
		}
	}

	d.activeElement = el
	if d.hasFocus {
		d.fireFocusPair(el, "focus", "focusin", old)
	}
}

// BlurElement runs the unfocusing steps for el. Nothing happens unless el is
// the active element.
// https://html.spec.whatwg.org/#unfocusing-steps
func (d *HTMLDocument) BlurElement(el *Node) {
	if el == nil || d.activeElement != el {
		return
	}
	d.activeElement = nil
	if d.hasFocus {
		d.fireFocusPair(el, "blur", "focusout", nil)
	}
}

func (d *HTMLDocument) fireFocusPair(el *Node, direct, bubbling string, related *Node) {
	e := NewEvent(direct, EventInit{RelatedTarget: related})
	e.IsTrusted = true
	el.DispatchEvent(e)

	e = NewEvent(bubbling, EventInit{Bubbles: true, RelatedTarget: related})
	e.IsTrusted = true
	el.DispatchEvent(e)
}

// AddObserver registers o and returns a function removing it.
func (d *HTMLDocument) AddObserver(o Observer) func() {
	if d.observers == nil {
		d.observers = map[int]Observer{}
	}
	d.nextObserver++
	id := d.nextObserver
	d.observers[id] = o
	return func() { delete(d.observers, id) }
}

func (d *HTMLDocument) notifyObservers(e *Event) {
	for id := 1; id <= d.nextObserver; id++ {
		if o, ok := d.observers[id]; ok {
			o(e)
		}
	}
}

// CreateElement returns a new element owned by d. It is not inserted.
// https://dom.spec.whatwg.org/#dom-document-createelement
func (d *HTMLDocument) CreateElement(localName string, attrs ...*Attr) *Node {
	return NewElement(d.Node, localName, attrs...)
}

// https://dom.spec.whatwg.org/#dom-nonelementparentnode-getelementbyid
func (d *HTMLDocument) GetElementByID(id string) *Node {
	if id == "" {
		return nil
	}
	var found *Node
	walk(d.Node, func(n *Node) bool {
		if n.NodeType == ElementNode && n.ID() == id {
			found = n
			return false
		}
		return true
	})
	return found
}

// walk visits n and its descendants in tree order until visit returns false.
func walk(n *Node, visit func(*Node) bool) bool {
	if !visit(n) {
		return false
	}
	for _, child := range n.ChildNodes {
		if !walk(child, visit) {
			return false
		}
	}
	return true
}

package dom

// Listener is an event callback.
type Listener func(e *Event)

// https://dom.spec.whatwg.org/#interface-eventtarget
type EventTarget interface {
	// AddEventListener registers l for eventType and returns a function
	// removing it again.
	AddEventListener(eventType string, l Listener) func()
	// DispatchEvent dispatches e and reports whether the default action may
	// run, i.e. false when a listener prevented it.
	DispatchEvent(e *Event) bool

	listenerList() *listenerList
	parentTarget() EventTarget
	document() *HTMLDocument
}

type registeredListener struct {
	id       int
	callback Listener
	removed  bool
}

type listenerList struct {
	listeners map[string][]*registeredListener
	nextID    int
}

func (l *listenerList) add(eventType string, cb Listener) func() {
	if l.listeners == nil {
		l.listeners = map[string][]*registeredListener{}
	}
	l.nextID++
	rl := &registeredListener{id: l.nextID, callback: cb}
	l.listeners[eventType] = append(l.listeners[eventType], rl)
	return func() {
		rl.removed = true
		list := l.listeners[eventType]
		for i := range list {
			if list[i] == rl {
				l.listeners[eventType] = append(list[:i], list[i+1:]...)
				return
			}
		}
	}
}

// https://dom.spec.whatwg.org/#concept-event-listener-inner-invoke
func (l *listenerList) invoke(e *Event) {
	list := make([]*registeredListener, len(l.listeners[e.Type]))
	copy(list, l.listeners[e.Type])
	for _, rl := range list {
		if rl.removed {
			continue
		}
		rl.callback(e)
		if e.stopImmediatePropagation {
			return
		}
	}
}

func (n *Node) AddEventListener(eventType string, l Listener) func() {
	return n.listeners.add(eventType, l)
}

func (n *Node) DispatchEvent(e *Event) bool { return dispatch(n, e) }

func (n *Node) listenerList() *listenerList { return &n.listeners }

// https://dom.spec.whatwg.org/#get-the-parent
func (n *Node) parentTarget() EventTarget {
	if n.ParentNode != nil {
		return n.ParentNode
	}
	if n.NodeType == DocumentNode {
		if doc := n.ownerHTMLDocument(); doc != nil && doc.DefaultView != nil {
			return doc.DefaultView
		}
	}
	return nil
}

func (n *Node) document() *HTMLDocument { return n.ownerHTMLDocument() }

// FireEvent builds an event of eventType from init and dispatches it at
// target, returning the event so callers can inspect DefaultPrevented.
func FireEvent(target EventTarget, eventType string, init EventInit) *Event {
	e := NewEvent(eventType, init)
	target.DispatchEvent(e)
	return e
}

// dispatch runs the at-target and bubbling phases. Capture listeners are not
// modelled; document observers see every event once, before any listener.
// https://dom.spec.whatwg.org/#concept-event-dispatch
func dispatch(target EventTarget, e *Event) bool {
	e.Target = target
	e.defaultPrevented = false
	e.stopPropagation, e.stopImmediatePropagation = false, false

	if doc := target.document(); doc != nil {
		doc.notifyObservers(e)
	}

	e.EventPhase = AtTargetPhase
	e.CurrentTarget = target
	target.listenerList().invoke(e)

	if e.Bubbles {
		for t := target.parentTarget(); t != nil && !e.stopPropagation; t = t.parentTarget() {
			e.EventPhase = BubblingPhase
			e.CurrentTarget = t
			t.listenerList().invoke(e)
		}
	}

	e.EventPhase = NoneEventPhase
	e.CurrentTarget = nil
	return !e.defaultPrevented
}

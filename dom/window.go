package dom

// Window is the document's default view. It only exists as the last stop of
// bubbling events and as a click target.
// https://html.spec.whatwg.org/#the-window-object
type Window struct {
	Document *HTMLDocument

	listeners listenerList
}

func (w *Window) AddEventListener(eventType string, l Listener) func() {
	return w.listeners.add(eventType, l)
}

func (w *Window) DispatchEvent(e *Event) bool { return dispatch(w, e) }

func (w *Window) listenerList() *listenerList { return &w.listeners }

func (w *Window) parentTarget() EventTarget { return nil }

func (w *Window) document() *HTMLDocument { return w.Document }

func (w *Window) String() string { return "[object Window]" }

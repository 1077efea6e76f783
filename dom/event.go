package dom

import (
	"time"
	"unicode/utf8"
)

type EventPhase uint

const (
	NoneEventPhase EventPhase = iota
	CapturingPhase
	AtTargetPhase
	BubblingPhase
)

// EventInterface names the constructor an event type is built with.
type EventInterface string

const (
	EventInterfaceEvent    EventInterface = "Event"
	EventInterfaceMouse    EventInterface = "MouseEvent"
	EventInterfaceKeyboard EventInterface = "KeyboardEvent"
	EventInterfaceFocus    EventInterface = "FocusEvent"
	EventInterfaceTouch    EventInterface = "TouchEvent"
)

var eventInterfaces = map[string]EventInterface{
	"click":       EventInterfaceMouse,
	"mousedown":   EventInterfaceMouse,
	"mouseup":     EventInterfaceMouse,
	"dblclick":    EventInterfaceMouse,
	"mouseenter":  EventInterfaceMouse,
	"mouseleave":  EventInterfaceMouse,
	"mousemove":   EventInterfaceMouse,
	"mouseout":    EventInterfaceMouse,
	"mouseover":   EventInterfaceMouse,
	"keydown":     EventInterfaceKeyboard,
	"keypress":    EventInterfaceKeyboard,
	"keyup":       EventInterfaceKeyboard,
	"focus":       EventInterfaceFocus,
	"blur":        EventInterfaceFocus,
	"focusin":     EventInterfaceFocus,
	"focusout":    EventInterfaceFocus,
	"touchstart":  EventInterfaceTouch,
	"touchend":    EventInterfaceTouch,
	"touchmove":   EventInterfaceTouch,
	"touchcancel": EventInterfaceTouch,
}

// InterfaceFor returns the event interface used for eventType.
func InterfaceFor(eventType string) EventInterface {
	if i, ok := eventInterfaces[eventType]; ok {
		return i
	}
	return EventInterfaceEvent
}

// EventInit is the union of the EventInit, MouseEventInit, KeyboardEventInit
// and FocusEventInit dictionaries. Fields that do not apply to an event's
// interface are ignored by listeners that care.
// https://dom.spec.whatwg.org/#dictdef-eventinit
type EventInit struct {
	Bubbles, Cancelable bool

	// https://w3c.github.io/uievents/#dictdef-focuseventinit
	RelatedTarget *Node

	// https://w3c.github.io/uievents/#dictdef-mouseeventinit
	Button           int
	Buttons          int
	ClientX, ClientY int

	// https://w3c.github.io/uievents/#dictdef-eventmodifierinit
	ShiftKey, CtrlKey, AltKey, MetaKey bool

	// https://w3c.github.io/uievents/#dictdef-keyboardeventinit
	Key     string
	KeyCode int
}

// DefaultEventInit is what synthetic events start from: bubbling and
// cancelable.
func DefaultEventInit() EventInit {
	return EventInit{Bubbles: true, Cancelable: true}
}

// https://dom.spec.whatwg.org/#interface-event
type Event struct {
	Type          string
	Interface     EventInterface
	Target        EventTarget
	CurrentTarget EventTarget
	EventPhase    EventPhase
	IsTrusted     bool
	TimeStamp     time.Time

	EventInit

	defaultPrevented         bool
	stopPropagation          bool
	stopImmediatePropagation bool
}

// NewEvent builds an untrusted event of eventType. Keyboard events get a
// keyCode derived from a single-character key when none was given.
func NewEvent(eventType string, init EventInit) *Event {
	e := &Event{
		Type:      eventType,
		Interface: InterfaceFor(eventType),
		TimeStamp: time.Now(),
		EventInit: init,
	}
	if e.Interface == EventInterfaceKeyboard && e.KeyCode == 0 && utf8.RuneCountInString(e.Key) == 1 {
		r, _ := utf8.DecodeRuneInString(e.Key)
		e.KeyCode = int(r)
	}
	return e
}

// https://dom.spec.whatwg.org/#dom-event-defaultprevented
func (e *Event) DefaultPrevented() bool { return e.defaultPrevented }

// https://dom.spec.whatwg.org/#dom-event-preventdefault
func (e *Event) PreventDefault() {
	if e.Cancelable {
		e.defaultPrevented = true
	}
}

func (e *Event) StopPropagation() { e.stopPropagation = true }

func (e *Event) StopImmediatePropagation() {
	e.stopPropagation = true
	e.stopImmediatePropagation = true
}

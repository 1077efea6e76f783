package interact

import "github.com/heathj/interact/dom"

const (
	primaryButton     = 1
	mainButtonPressed = 0
)

// EventOption overrides a field of the event init used by a pointer gesture.
type EventOption func(*dom.EventInit)

func WithButton(button int) EventOption {
	return func(e *dom.EventInit) { e.Button = button }
}

func WithButtons(buttons int) EventOption {
	return func(e *dom.EventInit) { e.Buttons = buttons }
}

func WithClientPosition(x, y int) EventOption {
	return func(e *dom.EventInit) { e.ClientX, e.ClientY = x, y }
}

func WithShiftKey(on bool) EventOption {
	return func(e *dom.EventInit) { e.ShiftKey = on }
}

func WithCtrlKey(on bool) EventOption {
	return func(e *dom.EventInit) { e.CtrlKey = on }
}

func WithAltKey(on bool) EventOption {
	return func(e *dom.EventInit) { e.AltKey = on }
}

func WithMetaKey(on bool) EventOption {
	return func(e *dom.EventInit) { e.MetaKey = on }
}

// WithEventInit applies an arbitrary edit, for fields without a helper.
func WithEventInit(edit func(*dom.EventInit)) EventOption {
	return EventOption(edit)
}

// clickInit is the click defaults (primary button, main button pressed)
// with opts applied on top.
func clickInit(opts []EventOption) dom.EventInit {
	init := dom.DefaultEventInit()
	init.Buttons = primaryButton
	init.Button = mainButtonPressed
	return applyOptions(init, opts)
}

func applyOptions(init dom.EventInit, opts []EventOption) dom.EventInit {
	for _, opt := range opts {
		opt(&init)
	}
	return init
}

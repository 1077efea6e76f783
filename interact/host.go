package interact

import (
	"context"
	"time"

	"github.com/heathj/interact/dom"
)

// Host is the environment owning the active element. Focus and blur are the
// native effects: they move the active element and fire events only when the
// host has system focus. *dom.HTMLDocument implements it.
type Host interface {
	HasFocus() bool
	ActiveElement() *dom.Node
	FocusElement(el *dom.Node)
	BlurElement(el *dom.Node)
}

// Emitter builds and dispatches a synthetic event, reporting whether a
// listener prevented its default action.
type Emitter interface {
	Emit(target dom.EventTarget, eventType string, init dom.EventInit) (defaultPrevented bool)
}

// EmitterFunc adapts a function to Emitter.
type EmitterFunc func(target dom.EventTarget, eventType string, init dom.EventInit) bool

func (f EmitterFunc) Emit(target dom.EventTarget, eventType string, init dom.EventInit) bool {
	return f(target, eventType, init)
}

// DOMEmitter dispatches through dom.FireEvent.
var DOMEmitter Emitter = EmitterFunc(func(target dom.EventTarget, eventType string, init dom.EventInit) bool {
	return dom.FireEvent(target, eventType, init).DefaultPrevented()
})

// Sleeper waits between typed characters.
type Sleeper interface {
	Sleep(ctx context.Context, d time.Duration) error
}

// SleeperFunc adapts a function to Sleeper.
type SleeperFunc func(ctx context.Context, d time.Duration) error

func (f SleeperFunc) Sleep(ctx context.Context, d time.Duration) error { return f(ctx, d) }

// TimerSleeper sleeps on a real timer and gives up early when ctx is done.
var TimerSleeper Sleeper = SleeperFunc(func(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
})

package interact

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/heathj/interact/dom"
)

// DefaultDelay is the pause before each typed character.
const DefaultDelay = 50 * time.Millisecond

// Config holds the tunables of an Interactor.
type Config struct {
	// Delay is the pause before each character typed by TypeIn.
	Delay  time.Duration
	Logger *logrus.Entry
}

// DefaultConfig returns a 50ms typing delay and the standard logrus logger.
func DefaultConfig() Config {
	return Config{
		Delay:  DefaultDelay,
		Logger: logrus.WithField("component", "interact"),
	}
}

// Option configures an Interactor.
type Option func(*Interactor)

// WithConfig applies cfg, keeping the current logger when cfg.Logger is nil.
func WithConfig(cfg Config) Option {
	return func(i *Interactor) {
		i.delay = cfg.Delay
		if cfg.Logger != nil {
			i.log = cfg.Logger
		}
	}
}

// WithLogger sets the entry every invocation logs through.
func WithLogger(log *logrus.Entry) Option {
	return func(i *Interactor) { i.log = log }
}

// WithDelay sets the default pause before each typed character.
func WithDelay(d time.Duration) Option {
	return func(i *Interactor) { i.delay = d }
}

// WithHost replaces the document as the owner of the active element.
func WithHost(h Host) Option {
	return func(i *Interactor) { i.host = h }
}

func WithEmitter(e Emitter) Option {
	return func(i *Interactor) { i.emit = e }
}

func WithSleeper(s Sleeper) Option {
	return func(i *Interactor) { i.sleeper = s }
}

// Target is what the entry points accept: a *dom.Node, *dom.HTMLDocument,
// *dom.Window, or a selector string resolved against the document.
type Target interface{}

// Interactor is the public surface: one per document under test. Calls must
// not overlap; the active element is shared state.
type Interactor struct {
	doc     *dom.HTMLDocument
	host    Host
	emit    Emitter
	sleeper Sleeper
	delay   time.Duration
	log     *logrus.Entry

	focus *FocusCoordinator
}

// New returns an Interactor over doc. doc may be nil when WithHost is given,
// in which case only element targets can be resolved.
func New(doc *dom.HTMLDocument, opts ...Option) *Interactor {
	cfg := DefaultConfig()
	i := &Interactor{
		doc:     doc,
		emit:    DOMEmitter,
		sleeper: TimerSleeper,
		delay:   cfg.Delay,
		log:     cfg.Logger,
	}
	if doc != nil {
		i.host = doc
	}
	for _, opt := range opts {
		opt(i)
	}
	i.focus = NewFocusCoordinator(i.host, i.emit, i.log)
	return i
}

// Document returns the document targets are resolved against.
func (i *Interactor) Document() *dom.HTMLDocument { return i.doc }

// Coordinator exposes the focus coordinator driving this Interactor.
func (i *Interactor) Coordinator() *FocusCoordinator { return i.focus }

// invocation scopes logging and emission to one entry point call.
type invocation struct {
	helper string
	log    *logrus.Entry
	emit   Emitter
	focus  *FocusCoordinator
}

func (i *Interactor) begin(helper string) *invocation {
	log := i.log.WithFields(logrus.Fields{
		"gesture":    helper,
		"invocation": uuid.NewString(),
	})
	return &invocation{
		helper: helper,
		log:    log,
		emit:   i.emit,
		focus:  i.focus.withLogger(log),
	}
}

func (v *invocation) fire(target dom.EventTarget, eventType string, init dom.EventInit) bool {
	prevented := v.emit.Emit(target, eventType, init)
	v.log.WithFields(logrus.Fields{
		"event":     eventType,
		"target":    describeTarget(target),
		"bubbles":   init.Bubbles,
		"prevented": prevented,
	}).Debug("event dispatched")
	return prevented
}

func (v *invocation) fail(err error) error {
	v.log.WithError(err).Debug("rejected")
	return err
}

// resolve turns a Target into an event target. Detached elements do not
// count as found.
func (i *Interactor) resolve(ctx context.Context, v *invocation, target Target) (dom.EventTarget, error) {
	if err := ctx.Err(); err != nil {
		return nil, v.fail(err)
	}

	switch t := target.(type) {
	case nil:
	case string:
		if t == "" {
			break
		}
		if i.doc == nil {
			return nil, v.fail(errors.Wrapf(ErrTargetNotFound, "no document to resolve `%s('%s')`", v.helper, t))
		}
		n, err := i.doc.QuerySelector(t)
		if err != nil {
			return nil, v.fail(errors.Wrapf(ErrTargetNotFound, "%s when calling `%s('%s')`", err, v.helper, t))
		}
		if n == nil {
			return nil, v.fail(errors.Wrapf(ErrTargetNotFound, "Element not found when calling `%s('%s')`.", v.helper, t))
		}
		return n, nil
	case *dom.Node:
		if t == nil {
			break
		}
		if !t.IsConnected() {
			return nil, v.fail(errors.Wrapf(ErrTargetNotFound, "Element not found when calling `%s(%s)`: detached", v.helper, t.Describe()))
		}
		return t, nil
	case *dom.HTMLDocument:
		if t == nil {
			break
		}
		return t.Node, nil
	case *dom.Window:
		if t == nil {
			break
		}
		return t, nil
	default:
		return nil, v.fail(errors.Wrapf(ErrTargetNotFound, "Must use an element or a selector string, got %T", target))
	}
	return nil, v.fail(errors.Wrapf(ErrTargetNotFound, "Must pass an element or selector to `%s`.", v.helper))
}

// resolveNode is resolve for helpers that cannot act on the window.
func (i *Interactor) resolveNode(ctx context.Context, v *invocation, target Target) (*dom.Node, error) {
	t, err := i.resolve(ctx, v, target)
	if err != nil {
		return nil, err
	}
	n, ok := t.(*dom.Node)
	if !ok {
		return nil, v.fail(errors.Wrapf(ErrInvalidTarget, "%s is not focusable", describeTarget(t)))
	}
	return n, nil
}

func describeTarget(t dom.EventTarget) string {
	switch v := t.(type) {
	case *dom.Node:
		return v.Describe()
	case *dom.Window:
		return v.String()
	}
	return "<nil>"
}

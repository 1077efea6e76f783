package interact

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/heathj/interact/dom"
)

// FocusCoordinator moves the host's single active element and emits the
// blur/focus/focusin/focusout events that go with it. The host's native
// focus and blur stay the source of truth for the active element; events are
// synthesized only where the native call cannot have fired them, so nothing
// is emitted twice.
type FocusCoordinator struct {
	host Host
	emit Emitter
	log  *logrus.Entry
}

// NewFocusCoordinator returns a coordinator over host. A nil emitter means
// DOMEmitter, a nil logger the standard logrus logger.
func NewFocusCoordinator(host Host, emit Emitter, log *logrus.Entry) *FocusCoordinator {
	if emit == nil {
		emit = DOMEmitter
	}
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &FocusCoordinator{host: host, emit: emit, log: log}
}

func (c *FocusCoordinator) withLogger(log *logrus.Entry) *FocusCoordinator {
	cp := *c
	cp.log = log
	return &cp
}

// MoveFocusTo focuses el. Moving focus to the element that already has it
// emits nothing. Without system focus the previous element is blurred with el
// as relatedTarget before el gets focus and focusin. An el outside any
// document fails with ErrTargetNotFound.
func (c *FocusCoordinator) MoveFocusTo(el *dom.Node) error {
	if !classifyNode(el).focusable {
		return errors.Wrapf(ErrInvalidTarget, "%s is not focusable", el.Describe())
	}
	if !el.IsConnected() {
		return errors.Wrapf(ErrTargetNotFound, "%s is not in a document", el.Describe())
	}

	active := c.host.ActiveElement()
	if active == el {
		c.log.WithField("target", el.Describe()).Debug("focus unchanged")
		return nil
	}

	var previous *dom.Node
	if active != nil && classifyNode(active).focusable {
		previous = active
	}

	windowFocused := c.host.HasFocus()
	if previous != nil && !windowFocused {
		if err := c.MoveFocusAway(previous, el); err != nil {
			return err
		}
	}

	c.host.FocusElement(el)

	if !windowFocused {
		init := dom.DefaultEventInit()
		init.Bubbles = false
		init.RelatedTarget = previous
		c.fire(el, "focus", init)

		init.Bubbles = true
		c.fire(el, "focusin", init)
	}
	return nil
}

// MoveFocusAway blurs el. With a nil relatedTarget the native blur runs and
// events are synthesized only without system focus. A non-nil relatedTarget
// skips the native blur, since it could not carry it, and always synthesizes
// blur and focusout.
func (c *FocusCoordinator) MoveFocusAway(el, relatedTarget *dom.Node) error {
	if !classifyNode(el).focusable {
		return errors.Wrapf(ErrInvalidTarget, "%s is not focusable", el.Describe())
	}

	windowFocused := c.host.HasFocus()
	custom := relatedTarget != nil
	if !custom {
		c.host.BlurElement(el)
	}

	if !windowFocused || custom {
		init := dom.DefaultEventInit()
		init.Bubbles = false
		init.RelatedTarget = relatedTarget
		c.fire(el, "blur", init)

		init.Bubbles = true
		c.fire(el, "focusout", init)
	}
	return nil
}

// transferFocus is the focus step of a pointer gesture. Unlike MoveFocusTo it
// accepts anything: a non-focusable target only takes focus away from a
// focusable active element.
func (c *FocusCoordinator) transferFocus(el *dom.Node) error {
	if classifyNode(el).focusable {
		return c.MoveFocusTo(el)
	}

	active := c.host.ActiveElement()
	if active == nil || active == el || !classifyNode(active).focusable {
		return nil
	}
	return c.MoveFocusAway(active, nil)
}

func (c *FocusCoordinator) fire(el *dom.Node, eventType string, init dom.EventInit) {
	prevented := c.emit.Emit(el, eventType, init)
	c.log.WithFields(logrus.Fields{
		"event":     eventType,
		"target":    el.Describe(),
		"related":   describeNode(init.RelatedTarget),
		"bubbles":   init.Bubbles,
		"prevented": prevented,
	}).Debug("synthesized focus event")
}

func describeNode(n *dom.Node) string {
	if n == nil {
		return ""
	}
	return n.Describe()
}

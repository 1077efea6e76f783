package interact

import (
	"context"

	"github.com/pkg/errors"

	"github.com/heathj/interact/dom"
)

// Focus focuses target, emitting focus and focusin (and blur and focusout on
// the previously focused element).
func (i *Interactor) Focus(ctx context.Context, target Target) error {
	v := i.begin("focus")
	el, err := i.resolveNode(ctx, v, target)
	if err != nil {
		return err
	}
	if err := v.focus.MoveFocusTo(el); err != nil {
		return v.fail(err)
	}
	return nil
}

// Blur unfocuses target, emitting blur and focusout. A nil target means the
// active element. An optional relatedTarget is carried on both events.
func (i *Interactor) Blur(ctx context.Context, target Target, relatedTarget ...*dom.Node) error {
	v := i.begin("blur")
	if target == nil {
		active := i.host.ActiveElement()
		if active == nil {
			return v.fail(errors.Wrap(ErrTargetNotFound, "Element not found when calling `blur()`: nothing is focused"))
		}
		target = active
	}

	el, err := i.resolveNode(ctx, v, target)
	if err != nil {
		return err
	}

	var related *dom.Node
	if len(relatedTarget) > 0 {
		related = relatedTarget[0]
	}
	if err := v.focus.MoveFocusAway(el, related); err != nil {
		return v.fail(err)
	}
	return nil
}

package interact

import (
	"context"

	"github.com/pkg/errors"

	"github.com/heathj/interact/dom"
)

// Click clicks target: mousedown, a focus change, mouseup, click. Options
// are applied over buttons=1, button=0.
func (i *Interactor) Click(ctx context.Context, target Target, opts ...EventOption) error {
	v := i.begin("click")
	t, err := i.resolvePointerTarget(ctx, v, target)
	if err != nil {
		return err
	}
	return v.click(t, clickInit(opts))
}

// resolvePointerTarget resolves target and rejects disabled form controls.
func (i *Interactor) resolvePointerTarget(ctx context.Context, v *invocation, target Target) (dom.EventTarget, error) {
	t, err := i.resolve(ctx, v, target)
	if err != nil {
		return nil, err
	}
	if c := classify(t); c.kind == KindFormControl && c.disabled {
		return nil, v.fail(errors.Wrapf(ErrDisabledTarget, "Can not `%s` disabled %s", v.helper, describeTarget(t)))
	}
	return t, nil
}

func (v *invocation) click(t dom.EventTarget, init dom.EventInit) error {
	v.fire(t, "mousedown", init)

	if n, ok := t.(*dom.Node); ok {
		if err := v.focus.transferFocus(n); err != nil {
			return v.fail(err)
		}
	}

	v.fire(t, "mouseup", init)
	v.fire(t, "click", init)
	return nil
}

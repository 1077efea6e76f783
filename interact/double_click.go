package interact

import (
	"context"

	"github.com/heathj/interact/dom"
)

// DoubleClick sends two clicks followed by dblclick. Focus moves once, after
// the first mousedown, and only when the target is focusable.
func (i *Interactor) DoubleClick(ctx context.Context, target Target, opts ...EventOption) error {
	v := i.begin("doubleClick")
	t, err := i.resolvePointerTarget(ctx, v, target)
	if err != nil {
		return err
	}
	return v.doubleClick(t, clickInit(opts))
}

func (v *invocation) doubleClick(t dom.EventTarget, init dom.EventInit) error {
	v.fire(t, "mousedown", init)

	if n, ok := t.(*dom.Node); ok && classifyNode(n).focusable {
		if err := v.focus.MoveFocusTo(n); err != nil {
			return v.fail(err)
		}
	}

	v.fire(t, "mouseup", init)
	v.fire(t, "click", init)
	v.fire(t, "mousedown", init)
	v.fire(t, "mouseup", init)
	v.fire(t, "click", init)
	v.fire(t, "dblclick", init)
	return nil
}

package interact

import (
	"context"

	"github.com/heathj/interact/dom"
)

// Tap sends touchstart and touchend and, unless either was prevented, the
// full click sequence. The same options reach touch and mouse events; no
// click defaults are added.
func (i *Interactor) Tap(ctx context.Context, target Target, opts ...EventOption) error {
	v := i.begin("tap")
	t, err := i.resolvePointerTarget(ctx, v, target)
	if err != nil {
		return err
	}

	init := applyOptions(dom.DefaultEventInit(), opts)
	touchstartPrevented := v.fire(t, "touchstart", init)
	touchendPrevented := v.fire(t, "touchend", init)
	if touchstartPrevented || touchendPrevented {
		v.log.Debug("touch prevented, skipping click")
		return nil
	}
	return v.click(t, init)
}

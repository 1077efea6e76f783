package interact

import (
	"context"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/pkg/errors"

	"github.com/heathj/interact/dom"
)

// TypeOption configures a single TypeIn call.
type TypeOption func(*typeOptions)

type typeOptions struct {
	delay time.Duration
}

// WithTypeDelay overrides the pause before each character.
func WithTypeDelay(d time.Duration) TypeOption {
	return func(o *typeOptions) { o.delay = d }
}

// TypeIn types text into a form control or content-editable element one
// character at a time. Focus moves to the target first; each character then
// waits the configured delay and sends keydown, keypress, the value change,
// input and keyup. A single change event follows the last character.
func (i *Interactor) TypeIn(ctx context.Context, target Target, text string, opts ...TypeOption) error {
	return i.TypeInOptional(ctx, target, &text, opts...)
}

// TypeInOptional is TypeIn for callers whose text may be absent, such as
// decoded scripts. A nil text fails with ErrMissingText.
func (i *Interactor) TypeInOptional(ctx context.Context, target Target, text *string, opts ...TypeOption) error {
	o := typeOptions{delay: i.delay}
	for _, opt := range opts {
		opt(&o)
	}

	v := i.begin("typeIn")
	t, err := i.resolve(ctx, v, target)
	if err != nil {
		return err
	}

	c := classify(t)
	if c.kind != KindFormControl && c.kind != KindContentEditable {
		return v.fail(errors.Wrap(ErrUnsupportedTarget, "`typeIn` is only usable on form controls or contenteditable elements."))
	}
	el := t.(*dom.Node)
	if text == nil {
		return v.fail(errors.Wrap(ErrMissingText, "Must provide `text` when calling `typeIn`."))
	}
	if c.kind == KindFormControl {
		if c.disabled {
			return v.fail(errors.Wrapf(ErrDisabledTarget, "Can not `typeIn` disabled %s.", el.Describe()))
		}
		if c.readOnly {
			return v.fail(errors.Wrapf(ErrReadOnlyTarget, "Can not `typeIn` readonly %s.", el.Describe()))
		}
	}

	if err := v.focus.MoveFocusTo(el); err != nil {
		return v.fail(err)
	}

	for _, entry := range v.keyEntries(el, c.kind, *text) {
		if err := i.sleeper.Sleep(ctx, o.delay); err != nil {
			return v.fail(errors.Wrap(err, "typeIn interrupted"))
		}
		if err := entry(); err != nil {
			return v.fail(err)
		}
	}

	v.fire(el, "change", dom.DefaultEventInit())
	return nil
}

// keyEntries builds one task per character. They run strictly in order, each
// after the previous one and its delay have completed.
func (v *invocation) keyEntries(el *dom.Node, kind Kind, text string) []func() error {
	entries := make([]func() error, 0, utf8.RuneCountInString(text))
	for _, r := range text {
		entries = append(entries, v.keyEntry(el, kind, r))
	}
	return entries
}

func (v *invocation) keyEntry(el *dom.Node, kind Kind, character rune) func() error {
	shiftKey := unicode.ToUpper(character) != unicode.ToLower(character) && character == unicode.ToUpper(character)
	characterKey := strings.ToUpper(string(character))

	keyInit := dom.DefaultEventInit()
	keyInit.Key = characterKey
	keyInit.ShiftKey = shiftKey

	return func() error {
		v.fire(el, "keydown", keyInit)
		v.fire(el, "keypress", keyInit)

		if kind == KindFormControl {
			newValue := el.Value() + string(character)
			if err := guardForMaxLength(el, newValue, v.helper); err != nil {
				return err
			}
			el.SetValue(newValue)
		} else {
			el.AppendText(string(character))
		}

		v.fire(el, "input", dom.DefaultEventInit())
		v.fire(el, "keyup", keyInit)
		return nil
	}
}

func guardForMaxLength(el *dom.Node, text, helper string) error {
	if !el.IsMaxLengthConstrained() {
		return nil
	}
	limit, _ := el.MaxLength()
	if utf8.RuneCountInString(text) > limit {
		return errors.Wrapf(ErrMaxLengthExceeded, "Can not `%s` with text: '%s' that exceeds maxlength: '%d'.", helper, text, limit)
	}
	return nil
}

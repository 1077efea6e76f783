package interact

import "github.com/pkg/errors"

var (
	// ErrTargetNotFound is returned when a target does not resolve to a live
	// element.
	ErrTargetNotFound = errors.New("target not found")
	// ErrInvalidTarget is returned when focus or blur is asked of an element
	// that cannot take focus.
	ErrInvalidTarget = errors.New("target is not focusable")
	// ErrUnsupportedTarget is returned when typing into something that is
	// neither a form control nor content editable.
	ErrUnsupportedTarget = errors.New("unsupported target")
	ErrDisabledTarget    = errors.New("target is disabled")
	ErrReadOnlyTarget    = errors.New("target is read-only")
	ErrMissingText       = errors.New("missing text")
	// ErrMaxLengthExceeded stops typing part way through. Characters typed
	// before it stay applied.
	ErrMaxLengthExceeded = errors.New("maxlength exceeded")
)

package interact

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/heathj/interact/dom"
)

const twoInputs = `<input id="a"><input id="b"><div id="d"></div>`

func TestMoveFocusToWithoutSystemFocus(t *testing.T) {
	doc, i, _ := render(t, twoInputs, false)
	a, b := byID(t, doc, "a"), byID(t, doc, "b")
	require.NoError(t, i.Focus(context.Background(), a))

	rec := newRecorder(doc)
	require.NoError(t, i.Coordinator().MoveFocusTo(b))

	assert.Equal(t, []step{
		{"blur", "#a", "#b"},
		{"focusout", "#a", "#b"},
		{"focus", "#b", "#a"},
		{"focusin", "#b", "#a"},
	}, rec.steps())
	assert.Same(t, b, doc.ActiveElement())

	for _, e := range rec.events {
		assert.False(t, e.IsTrusted, "%s should be synthesized", e.Type)
	}
	assert.False(t, rec.events[0].Bubbles, "blur")
	assert.True(t, rec.events[1].Bubbles, "focusout")
	assert.False(t, rec.events[2].Bubbles, "focus")
	assert.True(t, rec.events[3].Bubbles, "focusin")
}

func TestMoveFocusToWithSystemFocus(t *testing.T) {
	doc, i, _ := render(t, twoInputs, true)
	a, b := byID(t, doc, "a"), byID(t, doc, "b")
	require.NoError(t, i.Focus(context.Background(), a))

	rec := newRecorder(doc)
	require.NoError(t, i.Coordinator().MoveFocusTo(b))

	assert.Equal(t, []step{
		{"blur", "#a", "#b"},
		{"focusout", "#a", "#b"},
		{"focus", "#b", "#a"},
		{"focusin", "#b", "#a"},
	}, rec.steps())
	for _, e := range rec.events {
		assert.True(t, e.IsTrusted, "%s should come from the native call", e.Type)
	}
}

func TestMoveFocusToLeavesEventsToFocusedHost(t *testing.T) {
	doc, err := dom.ParseString(twoInputs)
	require.NoError(t, err)
	a, b := doc.GetElementByID("a"), doc.GetElementByID("b")

	host := &mockHost{}
	host.On("ActiveElement").Return(a)
	host.On("HasFocus").Return(true)
	host.On("FocusElement", b).Return()
	emit := &mockEmitter{}

	c := NewFocusCoordinator(host, emit, nil)
	require.NoError(t, c.MoveFocusTo(b))

	host.AssertExpectations(t)
	host.AssertNotCalled(t, "BlurElement", mock.Anything)
	emit.AssertNotCalled(t, "Emit", mock.Anything, mock.Anything, mock.Anything)
}

func TestMoveFocusToSynthesizesBlurBeforeNativeFocus(t *testing.T) {
	doc, err := dom.ParseString(twoInputs)
	require.NoError(t, err)
	a, b := doc.GetElementByID("a"), doc.GetElementByID("b")

	var calls []string
	host := &mockHost{}
	host.On("ActiveElement").Return(a)
	host.On("HasFocus").Return(false)
	host.On("FocusElement", b).Run(func(mock.Arguments) { calls = append(calls, "native focus") }).Return()

	emit := &mockEmitter{}
	emit.On("Emit", mock.Anything, mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		target := args.Get(0).(*dom.Node)
		init := args.Get(2).(dom.EventInit)
		calls = append(calls, args.String(1)+" "+target.ID()+" related="+init.RelatedTarget.ID())
	}).Return(false)

	c := NewFocusCoordinator(host, emit, nil)
	require.NoError(t, c.MoveFocusTo(b))

	assert.Equal(t, []string{
		"blur a related=b",
		"focusout a related=b",
		"native focus",
		"focus b related=a",
		"focusin b related=a",
	}, calls)
	host.AssertNotCalled(t, "BlurElement", mock.Anything)
}

func TestMoveFocusToNonFocusable(t *testing.T) {
	for _, focused := range []bool{true, false} {
		doc, i, _ := render(t, twoInputs, focused)
		a := byID(t, doc, "a")
		require.NoError(t, i.Focus(context.Background(), a))
		rec := newRecorder(doc)

		err := i.Coordinator().MoveFocusTo(byID(t, doc, "d"))
		assert.True(t, errors.Is(err, ErrInvalidTarget))
		assert.Same(t, a, doc.ActiveElement())
		assert.Empty(t, rec.events)

		err = i.Coordinator().MoveFocusTo(nil)
		assert.True(t, errors.Is(err, ErrInvalidTarget))
	}
}

func TestMoveFocusToAlreadyActiveIsNoop(t *testing.T) {
	for _, focused := range []bool{true, false} {
		doc, i, _ := render(t, twoInputs, focused)
		a := byID(t, doc, "a")
		rec := newRecorder(doc)

		require.NoError(t, i.Coordinator().MoveFocusTo(a))
		first := len(rec.events)
		assert.Equal(t, []string{"focus", "focusin"}, rec.types())

		require.NoError(t, i.Coordinator().MoveFocusTo(a))
		assert.Len(t, rec.events, first, "window focused=%v", focused)
		assert.Same(t, a, doc.ActiveElement())
	}
}

func TestMoveFocusToSkipsNonFocusableActive(t *testing.T) {
	doc, i, _ := render(t, twoInputs, false)
	a, b := byID(t, doc, "a"), byID(t, doc, "b")
	require.NoError(t, i.Focus(context.Background(), a))
	a.SetAttribute("disabled", "")

	rec := newRecorder(doc)
	require.NoError(t, i.Coordinator().MoveFocusTo(b))

	assert.Equal(t, []step{{"focus", "#b", ""}, {"focusin", "#b", ""}}, rec.steps())
}

func TestMoveFocusAway(t *testing.T) {
	tests := []struct {
		name     string
		focused  bool
		related  bool
		expected []step
		active   string
	}{
		{"unfocused window", false, false, []step{{"blur", "#a", ""}, {"focusout", "#a", ""}}, ""},
		{"focused window", true, false, []step{{"blur", "#a", ""}, {"focusout", "#a", ""}}, ""},
		{"unfocused window with related", false, true, []step{{"blur", "#a", "#b"}, {"focusout", "#a", "#b"}}, "a"},
		{"focused window with related", true, true, []step{{"blur", "#a", "#b"}, {"focusout", "#a", "#b"}}, "a"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			doc, i, _ := render(t, twoInputs, tt.focused)
			a, b := byID(t, doc, "a"), byID(t, doc, "b")
			require.NoError(t, i.Focus(context.Background(), a))
			rec := newRecorder(doc)

			var related *dom.Node
			if tt.related {
				related = b
			}
			require.NoError(t, i.Coordinator().MoveFocusAway(a, related))

			assert.Equal(t, tt.expected, rec.steps())
			if tt.active == "" {
				assert.Nil(t, doc.ActiveElement())
			} else {
				assert.Same(t, byID(t, doc, tt.active), doc.ActiveElement())
			}
		})
	}
}

func TestMoveFocusAwayNonFocusable(t *testing.T) {
	doc, i, _ := render(t, twoInputs, false)
	rec := newRecorder(doc)
	err := i.Coordinator().MoveFocusAway(byID(t, doc, "d"), nil)
	assert.True(t, errors.Is(err, ErrInvalidTarget))
	assert.Empty(t, rec.events)
}

func TestFocusAndBlurHelpers(t *testing.T) {
	ctx := context.Background()
	doc, i, hook := render(t, twoInputs, false)
	rec := newRecorder(doc)

	require.NoError(t, i.Focus(ctx, "#a"))
	require.NoError(t, i.Blur(ctx, nil))
	assert.Equal(t, []string{"focus", "focusin", "blur", "focusout"}, rec.types())
	assert.Nil(t, doc.ActiveElement())

	err := i.Blur(ctx, nil)
	assert.True(t, errors.Is(err, ErrTargetNotFound))

	err = i.Focus(ctx, "#nope")
	assert.True(t, errors.Is(err, ErrTargetNotFound))
	assert.Contains(t, err.Error(), "Element not found when calling `focus('#nope')`.")

	err = i.Focus(ctx, nil)
	assert.True(t, errors.Is(err, ErrTargetNotFound))
	assert.Contains(t, err.Error(), "Must pass an element or selector to `focus`.")

	err = i.Focus(ctx, 42)
	assert.True(t, errors.Is(err, ErrTargetNotFound))

	err = i.Focus(ctx, "#d")
	assert.True(t, errors.Is(err, ErrInvalidTarget))

	err = i.Focus(ctx, doc.DefaultView)
	assert.True(t, errors.Is(err, ErrInvalidTarget))

	err = i.Focus(ctx, doc)
	assert.True(t, errors.Is(err, ErrInvalidTarget))

	rec.reset()
	require.NoError(t, i.Focus(ctx, "#a"))
	require.NoError(t, i.Blur(ctx, "#a", byID(t, doc, "b")))
	assert.Equal(t, []step{
		{"focus", "#a", ""},
		{"focusin", "#a", ""},
		{"blur", "#a", "#b"},
		{"focusout", "#a", "#b"},
	}, rec.steps())

	require.NotEmpty(t, hook.Entries)
	last := hook.LastEntry()
	assert.Equal(t, "blur", last.Data["gesture"])
	assert.NotEmpty(t, last.Data["invocation"])
}

func TestFocusDetachedElement(t *testing.T) {
	doc, i, _ := render(t, twoInputs, false)
	detached := doc.CreateElement("input")
	err := i.Focus(context.Background(), detached)
	assert.True(t, errors.Is(err, ErrTargetNotFound))
}

func TestMoveFocusToDetached(t *testing.T) {
	for _, focused := range []bool{true, false} {
		doc, i, _ := render(t, twoInputs, focused)
		a := byID(t, doc, "a")
		require.NoError(t, i.Focus(context.Background(), a))
		rec := newRecorder(doc)

		detached := doc.CreateElement("input")
		err := i.Coordinator().MoveFocusTo(detached)
		assert.True(t, errors.Is(err, ErrTargetNotFound), "window focused=%v", focused)
		assert.Empty(t, rec.events)
		assert.Same(t, a, doc.ActiveElement())

		b := byID(t, doc, "b")
		b.ParentNode.RemoveChild(b)
		assert.True(t, errors.Is(i.Coordinator().MoveFocusTo(b), ErrTargetNotFound))
		assert.Empty(t, rec.events)
	}
}

func TestFocusCanceledContext(t *testing.T) {
	_, i, _ := render(t, twoInputs, false)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, i.Focus(ctx, "#a"), context.Canceled)
}

package interact

import (
	"context"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/heathj/interact/dom"
)

type step struct {
	typ, target, related string
}

// recorder keeps every event dispatched in a document, in order.
type recorder struct {
	events []*dom.Event
}

func newRecorder(doc *dom.HTMLDocument) *recorder {
	r := &recorder{}
	doc.AddObserver(func(e *dom.Event) { r.events = append(r.events, e) })
	return r
}

func (r *recorder) reset() { r.events = nil }

// types lists event types, optionally only those in allowed.
func (r *recorder) types(allowed ...string) []string {
	keep := map[string]bool{}
	for _, a := range allowed {
		keep[a] = true
	}
	out := []string{}
	for _, e := range r.events {
		if len(keep) == 0 || keep[e.Type] {
			out = append(out, e.Type)
		}
	}
	return out
}

// on lists the types of events targeted at n, optionally filtered.
func (r *recorder) on(n *dom.Node, allowed ...string) []string {
	keep := map[string]bool{}
	for _, a := range allowed {
		keep[a] = true
	}
	out := []string{}
	for _, e := range r.events {
		if t, ok := e.Target.(*dom.Node); !ok || t != n {
			continue
		}
		if len(keep) == 0 || keep[e.Type] {
			out = append(out, e.Type)
		}
	}
	return out
}

func (r *recorder) steps() []step {
	out := make([]step, 0, len(r.events))
	for _, e := range r.events {
		s := step{typ: e.Type, target: selectorFor(e.Target)}
		if e.RelatedTarget != nil {
			s.related = selectorFor(e.RelatedTarget)
		}
		out = append(out, s)
	}
	return out
}

var noSleep = SleeperFunc(func(ctx context.Context, d time.Duration) error { return nil })

// render parses markup into a fresh document and returns an Interactor over
// it that never sleeps and logs into a test hook.
func render(t *testing.T, markup string, windowFocused bool) (*dom.HTMLDocument, *Interactor, *logtest.Hook) {
	t.Helper()
	doc, err := dom.ParseString(markup)
	require.NoError(t, err)
	doc.SetHasFocus(windowFocused)

	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	i := New(doc, WithLogger(logrus.NewEntry(logger)), WithSleeper(noSleep))
	return doc, i, hook
}

func byID(t *testing.T, doc *dom.HTMLDocument, id string) *dom.Node {
	t.Helper()
	n := doc.GetElementByID(id)
	require.NotNil(t, n, "no element #%s", id)
	return n
}

type mockHost struct {
	mock.Mock
}

func (m *mockHost) HasFocus() bool { return m.Called().Bool(0) }

func (m *mockHost) ActiveElement() *dom.Node {
	n, _ := m.Called().Get(0).(*dom.Node)
	return n
}

func (m *mockHost) FocusElement(el *dom.Node) { m.Called(el) }

func (m *mockHost) BlurElement(el *dom.Node) { m.Called(el) }

type mockEmitter struct {
	mock.Mock
}

func (m *mockEmitter) Emit(target dom.EventTarget, eventType string, init dom.EventInit) bool {
	return m.Called(target, eventType, init).Bool(0)
}

type mockSleeper struct {
	mock.Mock
}

func (m *mockSleeper) Sleep(ctx context.Context, d time.Duration) error {
	return m.Called(ctx, d).Error(0)
}

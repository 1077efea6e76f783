package interact

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const loginYAML = `
fixture: |
  <form>
    <input id="user" name="user">
    <input id="pass" type="password" maxlength="8">
    <button id="go" type="submit">Go</button>
  </form>
windowFocused: false
steps:
  - action: click
    target: "#user"
    options:
      clientX: 4
      shiftKey: true
  - action: typeIn
    target: "#user"
    text: Jo
    delay: 0
  - action: tap
    target: "#go"
  - action: blur
    relatedTarget: "#pass"
`

const loginTOML = `
fixture = '''
<form>
  <input id="user" name="user">
  <input id="pass" type="password" maxlength="8">
  <button id="go" type="submit">Go</button>
</form>
'''
windowFocused = false

[[steps]]
action = "click"
target = "#user"
  [steps.options]
  clientX = 4
  shiftKey = true

[[steps]]
action = "typeIn"
target = "#user"
text = "Jo"
delay = 0

[[steps]]
action = "tap"
target = "#go"

[[steps]]
action = "blur"
relatedTarget = "#pass"
`

func TestDecodeScript(t *testing.T) {
	for format, src := range map[Format]string{FormatYAML: loginYAML, FormatTOML: loginTOML} {
		t.Run(string(format), func(t *testing.T) {
			s, err := DecodeScript(strings.NewReader(src), format)
			require.NoError(t, err)

			assert.Contains(t, s.Fixture, `<input id="user" name="user">`)
			assert.False(t, s.WindowFocused)
			require.Len(t, s.Steps, 4)

			click := s.Steps[0]
			assert.Equal(t, "click", click.Action)
			assert.Equal(t, "#user", click.Target)
			require.NotNil(t, click.Options.ClientX)
			assert.Equal(t, 4, *click.Options.ClientX)
			assert.Nil(t, click.Options.ClientY)
			require.NotNil(t, click.Options.ShiftKey)
			assert.True(t, *click.Options.ShiftKey)
			assert.Nil(t, click.Text)

			typeIn := s.Steps[1]
			require.NotNil(t, typeIn.Text)
			assert.Equal(t, "Jo", *typeIn.Text)
			require.NotNil(t, typeIn.Delay)
			assert.Equal(t, 0, *typeIn.Delay)

			assert.Equal(t, "#pass", s.Steps[3].RelatedTarget)
			assert.Empty(t, s.Steps[3].Target)
		})
	}
}

func TestDecodeScriptErrors(t *testing.T) {
	_, err := DecodeScript(strings.NewReader("steps:\n  - action: click\n    targt: a\n"), FormatYAML)
	assert.Error(t, err, "unknown yaml fields are rejected")

	_, err = DecodeScript(strings.NewReader("steps = ["), FormatTOML)
	assert.Error(t, err)

	_, err = DecodeScript(strings.NewReader(""), Format("json"))
	assert.Error(t, err)

	s, err := DecodeScript(strings.NewReader(""), FormatYAML)
	require.NoError(t, err)
	assert.Empty(t, s.Steps)
}

func TestLoadScript(t *testing.T) {
	dir := t.TempDir()
	for name, src := range map[string]string{"login.yml": loginYAML, "login.toml": loginTOML} {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(src), 0o600))

		s, err := LoadScript(path)
		require.NoError(t, err, name)
		assert.Len(t, s.Steps, 4, name)
	}

	_, err := LoadScript(filepath.Join(dir, "login.json"))
	assert.Error(t, err)

	_, err = LoadScript(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestPerform(t *testing.T) {
	ctx := context.Background()
	doc, i, _ := render(t, `<input id="a"><input id="b"><div id="d"></div>`, true)
	rec := newRecorder(doc)

	require.NoError(t, i.Perform(ctx, Step{Action: "focus", Target: "#a"}))
	assert.Same(t, byID(t, doc, "a"), doc.ActiveElement())

	rec.reset()
	require.NoError(t, i.Perform(ctx, Step{Action: "blur", RelatedTarget: "#b"}))
	assert.Equal(t, []step{{"blur", "#a", "#b"}, {"focusout", "#a", "#b"}}, rec.steps())
	assert.Same(t, byID(t, doc, "a"), doc.ActiveElement(), "a custom relatedTarget skips the native blur")

	rec.reset()
	button := 2
	require.NoError(t, i.Perform(ctx, Step{Action: "doubleClick", Target: "#d", Options: StepOptions{Button: &button}}))
	assert.Len(t, rec.events, 7)
	for _, e := range rec.events {
		assert.Equal(t, 2, e.Button)
		assert.Equal(t, 1, e.Buttons)
	}

	rec.reset()
	require.NoError(t, i.Perform(ctx, Step{Action: "tap", Target: "#d"}))
	assert.Equal(t, []string{"touchstart", "touchend", "mousedown", "blur", "focusout", "mouseup", "click"}, rec.types())
	assert.Nil(t, doc.ActiveElement())

	text := "hi"
	require.NoError(t, i.Perform(ctx, Step{Action: "typeIn", Target: "#b", Text: &text}))
	assert.Equal(t, "hi", byID(t, doc, "b").Value())
}

func TestPerformErrors(t *testing.T) {
	ctx := context.Background()
	_, i, _ := render(t, `<input id="a">`, true)

	err := i.Perform(ctx, Step{Action: "hover", Target: "#a"})
	assert.True(t, errors.Is(err, ErrUnknownAction))
	assert.Contains(t, err.Error(), `"hover"`)

	err = i.Perform(ctx, Step{Action: "typeIn", Target: "#a"})
	assert.True(t, errors.Is(err, ErrMissingText))

	err = i.Perform(ctx, Step{Action: "click"})
	assert.True(t, errors.Is(err, ErrTargetNotFound))
	assert.Contains(t, err.Error(), "Must pass an element or selector to `click`.")

	require.NoError(t, i.Perform(ctx, Step{Action: "focus", Target: "#a"}))
	err = i.Perform(ctx, Step{Action: "blur", RelatedTarget: "#nothing"})
	assert.True(t, errors.Is(err, ErrTargetNotFound))
}

func TestRunScriptMatchesDirectCalls(t *testing.T) {
	s, err := DecodeScript(strings.NewReader(loginYAML), FormatYAML)
	require.NoError(t, err)

	trace, err := RunScript(context.Background(), s, WithSleeper(noSleep))
	require.NoError(t, err)

	ctx := context.Background()
	doc, i, _ := render(t, s.Fixture, false)
	rec := newRecorder(doc)
	require.NoError(t, i.Click(ctx, "#user", WithClientPosition(4, 0), WithShiftKey(true)))
	require.NoError(t, i.TypeIn(ctx, "#user", "Jo"))
	require.NoError(t, i.Tap(ctx, "#go"))
	require.NoError(t, i.Blur(ctx, nil, byID(t, doc, "pass")))

	want := make([]TraceEntry, 0, len(rec.events))
	for _, e := range rec.events {
		want = append(want, traceEntry(e))
	}
	assert.Equal(t, want, trace)

	assert.Equal(t, "mousedown #user", trace[0].String())
	assert.Equal(t, "focus #user", trace[1].String())
	assert.Equal(t, "blur #go related=#pass", trace[len(trace)-2].String())

	var keys []string
	for _, e := range trace {
		if e.Type == "keydown" {
			keys = append(keys, e.String())
		}
	}
	assert.Equal(t, []string{"keydown #user key=J shift", "keydown #user key=O"}, keys)
}

func TestRunScriptStopsAtFailingStep(t *testing.T) {
	s := &Script{
		Fixture:       `<div id="d"></div>`,
		WindowFocused: true,
		Steps: []Step{
			{Action: "click", Target: "#d"},
			{Action: "typeIn", Target: "#d", Text: strPtr("x")},
			{Action: "click", Target: "#d"},
		},
	}

	trace, err := RunScript(context.Background(), s, WithSleeper(noSleep))
	assert.True(t, errors.Is(err, ErrUnsupportedTarget))
	assert.Contains(t, err.Error(), "step 2 (typeIn)")
	require.Len(t, trace, 3)
	assert.Equal(t, "click #d", trace[2].String())
}

func TestTraceEntryString(t *testing.T) {
	assert.Equal(t, "touchstart #d prevented", TraceEntry{Type: "touchstart", Target: "#d", Prevented: true}.String())
	assert.Equal(t, "focus window", TraceEntry{Type: "focus", Target: "window"}.String())
}

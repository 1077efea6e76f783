package interact

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/heathj/interact/dom"
)

// Format is the encoding of a script file.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// ErrUnknownAction is returned for a step whose action is not one of the
// entry points.
var ErrUnknownAction = errors.New("unknown action")

// Script is a fixture plus a list of steps to run against it.
type Script struct {
	Fixture       string `yaml:"fixture" toml:"fixture"`
	WindowFocused bool   `yaml:"windowFocused" toml:"windowFocused"`
	Steps         []Step `yaml:"steps" toml:"steps"`
}

// Step is one call of an entry point. Pointer fields distinguish absent from
// zero.
type Step struct {
	Action        string      `yaml:"action" toml:"action"`
	Target        string      `yaml:"target" toml:"target"`
	RelatedTarget string      `yaml:"relatedTarget" toml:"relatedTarget"`
	Text          *string     `yaml:"text" toml:"text"`
	Delay         *int        `yaml:"delay" toml:"delay"`
	Options       StepOptions `yaml:"options" toml:"options"`
}

// StepOptions are the pointer gesture overrides a script can set.
type StepOptions struct {
	Button   *int  `yaml:"button" toml:"button"`
	Buttons  *int  `yaml:"buttons" toml:"buttons"`
	ClientX  *int  `yaml:"clientX" toml:"clientX"`
	ClientY  *int  `yaml:"clientY" toml:"clientY"`
	ShiftKey *bool `yaml:"shiftKey" toml:"shiftKey"`
	CtrlKey  *bool `yaml:"ctrlKey" toml:"ctrlKey"`
	AltKey   *bool `yaml:"altKey" toml:"altKey"`
	MetaKey  *bool `yaml:"metaKey" toml:"metaKey"`
}

func (o StepOptions) eventOptions() []EventOption {
	var opts []EventOption
	if o.Button != nil {
		opts = append(opts, WithButton(*o.Button))
	}
	if o.Buttons != nil {
		opts = append(opts, WithButtons(*o.Buttons))
	}
	if o.ClientX != nil || o.ClientY != nil {
		x, y := o.ClientX, o.ClientY
		opts = append(opts, WithEventInit(func(e *dom.EventInit) {
			if x != nil {
				e.ClientX = *x
			}
			if y != nil {
				e.ClientY = *y
			}
		}))
	}
	if o.ShiftKey != nil {
		opts = append(opts, WithShiftKey(*o.ShiftKey))
	}
	if o.CtrlKey != nil {
		opts = append(opts, WithCtrlKey(*o.CtrlKey))
	}
	if o.AltKey != nil {
		opts = append(opts, WithAltKey(*o.AltKey))
	}
	if o.MetaKey != nil {
		opts = append(opts, WithMetaKey(*o.MetaKey))
	}
	return opts
}

// LoadScript reads a script, choosing the format from the file extension.
func LoadScript(path string) (*Script, error) {
	var format Format
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		format = FormatYAML
	case ".toml":
		format = FormatTOML
	default:
		return nil, errors.Errorf("script %s: unknown extension", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening script")
	}
	defer f.Close()

	s, err := DecodeScript(f, format)
	return s, errors.Wrapf(err, "script %s", path)
}

// DecodeScript decodes a script from r.
func DecodeScript(r io.Reader, format Format) (*Script, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading script")
	}

	var s Script
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&s); err != nil && err != io.EOF {
			return nil, errors.Wrap(err, "decoding yaml script")
		}
	case FormatTOML:
		if err := toml.Unmarshal(data, &s); err != nil {
			return nil, errors.Wrap(err, "decoding toml script")
		}
	default:
		return nil, errors.Errorf("unknown script format %q", format)
	}
	return &s, nil
}

// Perform runs one step.
func (i *Interactor) Perform(ctx context.Context, s Step) error {
	var target Target
	if s.Target != "" {
		target = s.Target
	}

	switch s.Action {
	case "focus":
		return i.Focus(ctx, target)
	case "blur":
		if s.RelatedTarget == "" {
			return i.Blur(ctx, target)
		}
		if i.doc == nil {
			return errors.Wrapf(ErrTargetNotFound, "no document to resolve relatedTarget %q", s.RelatedTarget)
		}
		related, err := i.doc.QuerySelector(s.RelatedTarget)
		if err != nil || related == nil {
			return errors.Wrapf(ErrTargetNotFound, "relatedTarget %q", s.RelatedTarget)
		}
		return i.Blur(ctx, target, related)
	case "click":
		return i.Click(ctx, target, s.Options.eventOptions()...)
	case "doubleClick":
		return i.DoubleClick(ctx, target, s.Options.eventOptions()...)
	case "tap":
		return i.Tap(ctx, target, s.Options.eventOptions()...)
	case "typeIn":
		var opts []TypeOption
		if s.Delay != nil {
			opts = append(opts, WithTypeDelay(time.Duration(*s.Delay)*time.Millisecond))
		}
		return i.TypeInOptional(ctx, target, s.Text, opts...)
	}
	return errors.Wrapf(ErrUnknownAction, "%q", s.Action)
}

// TraceEntry is one dispatched event as seen by a script run.
type TraceEntry struct {
	Type          string
	Target        string
	RelatedTarget string
	Key           string
	ShiftKey      bool
	Prevented     bool
}

func (e TraceEntry) String() string {
	s := e.Type + " " + e.Target
	if e.RelatedTarget != "" {
		s += " related=" + e.RelatedTarget
	}
	if e.Key != "" {
		s += " key=" + e.Key
		if e.ShiftKey {
			s += " shift"
		}
	}
	if e.Prevented {
		s += " prevented"
	}
	return s
}

// RunScript parses the fixture, runs every step in order and returns the
// trace of dispatched events. It stops at the first failing step; the trace
// up to that point is still returned.
func RunScript(ctx context.Context, s *Script, opts ...Option) ([]TraceEntry, error) {
	doc, err := dom.ParseString(s.Fixture)
	if err != nil {
		return nil, errors.Wrap(err, "fixture")
	}
	doc.SetHasFocus(s.WindowFocused)

	var (
		trace   []TraceEntry
		pending []*dom.Event
	)
	doc.AddObserver(func(e *dom.Event) {
		pending = append(pending, e)
	})
	flush := func() {
		for _, e := range pending {
			trace = append(trace, traceEntry(e))
		}
		pending = pending[:0]
	}

	i := New(doc, opts...)
	for n, step := range s.Steps {
		err := i.Perform(ctx, step)
		flush()
		if err != nil {
			return trace, errors.Wrapf(err, "step %d (%s)", n+1, step.Action)
		}
	}
	return trace, nil
}

func traceEntry(e *dom.Event) TraceEntry {
	t := TraceEntry{
		Type:      e.Type,
		Target:    selectorFor(e.Target),
		Prevented: e.DefaultPrevented(),
	}
	if e.RelatedTarget != nil {
		t.RelatedTarget = selectorFor(e.RelatedTarget)
	}
	if e.Interface == dom.EventInterfaceKeyboard {
		t.Key = e.Key
		t.ShiftKey = e.ShiftKey
	}
	return t
}

func selectorFor(t dom.EventTarget) string {
	switch v := t.(type) {
	case *dom.Window:
		return "window"
	case *dom.Node:
		if v.NodeType == dom.DocumentNode {
			return "#document"
		}
		if id := v.ID(); id != "" {
			return "#" + id
		}
		return v.NodeName
	}
	return ""
}

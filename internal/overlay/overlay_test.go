package overlay

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/mj1618/selection-lens/internal/ax"
	"github.com/mj1618/selection-lens/internal/model"
	"github.com/mj1618/selection-lens/internal/output"
	"github.com/mj1618/selection-lens/internal/selection"
)

type event struct {
	shown  bool
	change model.SelectionChange
}

type recorder struct {
	events []event
	err    error
}

func (r *recorder) Show(c model.SelectionChange) error {
	r.events = append(r.events, event{shown: true, change: c})
	return r.err
}

func (r *recorder) Clear(c model.SelectionChange) error {
	r.events = append(r.events, event{shown: false, change: c})
	return r.err
}

var quiet = WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))

func selected(text string, ts int64) selection.Snapshot {
	return selection.Snapshot{
		Outcome: selection.OutcomeSelection,
		Text:    text,
		Bounds:  &ax.Rect{Origin: ax.Point{X: 10, Y: 20}, Size: ax.Size{Width: 100, Height: 16}},
		PID:     100,
		Role:    "AXTextArea",
		At:      time.Unix(ts, 0),
	}
}

func nothing(ts int64) selection.Snapshot {
	return selection.Snapshot{
		Outcome: selection.OutcomeNoFocusedElement,
		Err:     ax.ErrNoValue,
		At:      time.Unix(ts, 0),
	}
}

func feed(t *testing.T, o *Overlay, snaps ...selection.Snapshot) error {
	t.Helper()
	in := make(chan selection.Snapshot, len(snaps))
	for _, s := range snaps {
		in <- s
	}
	close(in)
	return o.Run(context.Background(), in)
}

func TestOverlay_ShowsAndClears(t *testing.T) {
	rec := &recorder{}
	o := New(rec, quiet)

	err := feed(t, o,
		nothing(1),
		selected("hello", 2),
		selected("hello", 3),
		selected("hello world", 4),
		nothing(5),
		nothing(6),
	)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	want := []struct {
		shown bool
		typ   model.ChangeType
	}{
		{true, model.ChangeShown},
		{true, model.ChangeChanged},
		{false, model.ChangeCleared},
	}
	if len(rec.events) != len(want) {
		t.Fatalf("got %d events, want %d: %+v", len(rec.events), len(want), rec.events)
	}
	for i, w := range want {
		got := rec.events[i]
		if got.shown != w.shown || got.change.Type != w.typ {
			t.Errorf("event %d = shown:%v %s, want shown:%v %s", i, got.shown, got.change.Type, w.shown, w.typ)
		}
	}
	if rec.events[1].change.Selection.Text != "hello world" {
		t.Errorf("changed text = %q", rec.events[1].change.Selection.Text)
	}

	latest, ok := o.Latest()
	if !ok {
		t.Fatal("Latest reported nothing received")
	}
	if latest.Outcome != "no_focused_element" || latest.TS != 6 {
		t.Errorf("Latest = %+v", latest)
	}
}

func TestOverlay_All(t *testing.T) {
	rec := &recorder{}
	o := New(rec, quiet, WithAll(true))

	if err := feed(t, o, selected("hello", 1), selected("hello", 2), nothing(3), nothing(4)); err != nil {
		t.Fatalf("Run: %v", err)
	}
	types := make([]model.ChangeType, len(rec.events))
	for i, e := range rec.events {
		types[i] = e.change.Type
	}
	want := []model.ChangeType{model.ChangeShown, model.ChangeSame, model.ChangeCleared, model.ChangeSame}
	if len(types) != len(want) {
		t.Fatalf("types = %v, want %v", types, want)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Errorf("types = %v, want %v", types, want)
			break
		}
	}
	if rec.events[3].shown {
		t.Error("hidden selection should be cleared, not shown")
	}
}

func TestOverlay_EmptyTextNotShown(t *testing.T) {
	rec := &recorder{}
	o := New(rec, quiet)
	if err := feed(t, o, selected("", 1)); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(rec.events) != 0 {
		t.Errorf("expected no events for an empty selection, got %+v", rec.events)
	}
}

func TestOverlay_DisplayError(t *testing.T) {
	boom := errors.New("window server gone")
	rec := &recorder{err: boom}
	o := New(rec, quiet)

	err := feed(t, o, selected("hello", 1), selected("again", 2))
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want %v", err, boom)
	}
	if len(rec.events) != 1 {
		t.Errorf("Run continued after a display error: %d events", len(rec.events))
	}
}

func TestOverlay_StopsOnCancel(t *testing.T) {
	o := New(&recorder{}, quiet)
	if _, ok := o.Latest(); ok {
		t.Error("Latest reported a selection before any was received")
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- o.Run(ctx, make(chan selection.Snapshot)) }()
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run: %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Run did not stop after cancel")
	}
}

func TestPrinter_JSONLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, output.FormatJSON)
	o := New(p, quiet)

	if err := feed(t, o, selected("hello", 1), nothing(2)); err != nil {
		t.Fatalf("Run: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines:\n%s", len(lines), buf.String())
	}
	if !strings.Contains(lines[0], `"type":"shown"`) || !strings.Contains(lines[0], `"text":"hello"`) {
		t.Errorf("line 0 = %s", lines[0])
	}
	if !strings.Contains(lines[1], `"type":"cleared"`) {
		t.Errorf("line 1 = %s", lines[1])
	}
	if p.Count() != 2 {
		t.Errorf("Count = %d, want 2", p.Count())
	}
}

func TestPrinter_YAMLDocuments(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, output.FormatYAML)
	if err := p.Show(model.SelectionChange{Type: model.ChangeShown, TS: 1}); err != nil {
		t.Fatal(err)
	}
	if err := p.Clear(model.SelectionChange{Type: model.ChangeCleared, TS: 2}); err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(buf.String(), "---\n"); n != 1 {
		t.Errorf("expected one document separator, got %d:\n%s", n, buf.String())
	}
}

// Package overlay consumes selection snapshots and drives whatever shows the
// selection to the user.
package overlay

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/mj1618/selection-lens/internal/model"
	"github.com/mj1618/selection-lens/internal/selection"
)

// Display shows or hides the current selection.
type Display interface {
	// Show displays a visible selection. change.Selection is what to show.
	Show(change model.SelectionChange) error
	// Clear hides whatever is displayed.
	Clear(change model.SelectionChange) error
}

// Overlay forwards selection changes from the poller to a Display.
type Overlay struct {
	display Display
	logger  *slog.Logger
	all     bool

	mu     sync.Mutex
	latest model.Selection
	seen   bool
}

// Option configures an Overlay.
type Option func(*Overlay)

// WithLogger sets the logger. The default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *Overlay) { o.logger = l }
}

// WithAll forwards every snapshot, including ones identical to the previous.
func WithAll(all bool) Option {
	return func(o *Overlay) { o.all = all }
}

// New creates an Overlay driving d.
func New(d Display, opts ...Option) *Overlay {
	o := &Overlay{
		display: d,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Latest returns the most recent selection received and whether any has
// been received yet.
func (o *Overlay) Latest() (model.Selection, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.latest, o.seen
}

// Run consumes in until ctx is done or in is closed. It returns the first
// error reported by the display.
func (o *Overlay) Run(ctx context.Context, in <-chan selection.Snapshot) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case snap, ok := <-in:
			if !ok {
				return nil
			}
			if err := o.handle(snap.Selection()); err != nil {
				return err
			}
		}
	}
}

func (o *Overlay) handle(curr model.Selection) error {
	o.mu.Lock()
	prev := o.latest
	o.latest = curr
	o.seen = true
	o.mu.Unlock()

	change := model.DiffSelection(prev, curr)
	if change == nil {
		if !o.all {
			return nil
		}
		change = &model.SelectionChange{Type: model.ChangeSame, TS: curr.TS, Selection: curr}
	}

	if curr.Visible() {
		o.logger.Debug("showing selection", "change", change.Type, "pid", curr.PID, "chars", len([]rune(curr.Text)))
		if err := o.display.Show(*change); err != nil {
			return fmt.Errorf("show selection: %w", err)
		}
		return nil
	}
	o.logger.Debug("clearing selection", "change", change.Type, "outcome", curr.Outcome)
	if err := o.display.Clear(*change); err != nil {
		return fmt.Errorf("clear selection: %w", err)
	}
	return nil
}

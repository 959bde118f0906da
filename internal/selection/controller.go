// Package selection walks the accessibility focus chain to find the user's
// selected text and where it is on screen.
package selection

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/mj1618/selection-lens/internal/ax"
)

// ErrPermissionDenied is returned by New when the process has not been
// granted accessibility access.
var ErrPermissionDenied = errors.New(
	"accessibility permission required\n\n" +
		"Grant permission at: System Settings > Privacy & Security > Accessibility\n" +
		"Add your terminal app (e.g. Terminal.app, iTerm2, or the IDE running this command).\n" +
		"Then restart the terminal and try again.")

// Controller walks system → focused application → focused element →
// selection. It owns the system-wide root element for its lifetime; every
// other element is acquired and released within a single walk.
//
// A Controller is not safe for concurrent walks.
type Controller struct {
	native ax.Native
	root   *ax.Element
	pid    int

	logger *slog.Logger
	now    func() time.Time
	prompt bool
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger. The default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) { c.logger = l }
}

// WithClock sets the clock used to timestamp snapshots.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// WithPrompt makes New ask the host to show the permission prompt when
// access has not been granted.
func WithPrompt(prompt bool) Option {
	return func(c *Controller) { c.prompt = prompt }
}

// New checks accessibility permission and acquires the system-wide root.
// It fails with ErrPermissionDenied, acquiring nothing, when the process is
// not trusted.
func New(n ax.Native, opts ...Option) (*Controller, error) {
	c := &Controller{
		native: n,
		logger: slog.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}

	var trusted bool
	if c.prompt {
		trusted = n.RequestTrust()
	} else {
		trusted = n.IsProcessTrusted()
	}
	if !trusted {
		return nil, ErrPermissionDenied
	}

	c.root = ax.SystemWide(n)
	c.pid = n.CurrentPID()
	c.logger.Debug("accessibility controller ready", "pid", c.pid)
	return c, nil
}

// PID returns the id of this process.
func (c *Controller) PID() int {
	return c.pid
}

// Close releases the system-wide root.
func (c *Controller) Close() {
	c.root.Release()
}

// FocusedApp returns the application that currently has focus. The caller
// owns the returned element.
func (c *Controller) FocusedApp() (*ax.Element, error) {
	app, err := c.root.ElementAttribute(ax.AttributeFocusedApplication)
	if err != nil {
		return nil, fmt.Errorf("focused application: %w", err)
	}
	return app, nil
}

// FocusedElement returns the focused UI element of app, or of the
// system-wide element when app is nil. The caller owns the returned element.
func (c *Controller) FocusedElement(app *ax.Element) (*ax.Element, error) {
	scope := app
	if scope == nil {
		scope = c.root
	}
	el, err := scope.ElementAttribute(ax.AttributeFocusedUIElement)
	if err != nil {
		return nil, fmt.Errorf("focused element: %w", err)
	}
	return el, nil
}

// SelectedText returns the text selected in el.
func (c *Controller) SelectedText(el *ax.Element) (string, error) {
	text, err := el.StringAttribute(ax.AttributeSelectedText)
	if err != nil {
		return "", fmt.Errorf("selected text: %w", err)
	}
	return text, nil
}

// SelectedTextBounds returns the screen rectangle of el's selected text
// range. ok is false when the element reports bounds that are not a
// rectangle.
func (c *Controller) SelectedTextBounds(el *ax.Element) (bounds ax.Rect, ok bool, err error) {
	rng, err := el.BoxAttribute(ax.AttributeSelectedTextRange)
	if err != nil {
		return ax.Rect{}, false, fmt.Errorf("selected text range: %w", err)
	}
	defer rng.Release()
	return c.boundsForRange(el, rng)
}

// RangeBounds returns the screen rectangle of the characters r in the
// focused element. ok is false when the element reports bounds that are not
// a rectangle.
func (c *Controller) RangeBounds(r ax.Range) (bounds ax.Rect, ok bool, err error) {
	_, err = c.withFocused(func(el *ax.Element) error {
		rng, err := ax.NewBox(c.native, r)
		if err != nil {
			return err
		}
		defer rng.Release()
		bounds, ok, err = c.boundsForRange(el, rng)
		return err
	})
	return bounds, ok, err
}

// boundsForRange queries BoundsForRange on el with rng as the parameter.
func (c *Controller) boundsForRange(el *ax.Element, rng *ax.Box) (ax.Rect, bool, error) {
	if rng.Type() != ax.ValueTypeRange {
		return ax.Rect{}, false, fmt.Errorf("range parameter is a %s box: %w", rng.Type(), ax.ErrTypeMismatch)
	}

	v, err := el.ParameterizedAttributeValue(ax.ParameterizedAttributeBoundsForRange, rng.Value())
	if err != nil {
		return ax.Rect{}, false, fmt.Errorf("bounds for range: %w", err)
	}
	box, err := v.AsBox()
	if err != nil {
		v.Release()
		return ax.Rect{}, false, fmt.Errorf("bounds for range: %w", err)
	}
	defer box.Release()

	bounds, ok := ax.Get[ax.Rect](box)
	return bounds, ok, nil
}

// withFocused runs fn on the focused element, falling back to the
// system-wide element's focus when the focused application is unreadable.
// Everything acquired is released when fn returns.
func (c *Controller) withFocused(fn func(el *ax.Element) error) (fellBack bool, err error) {
	app, err := c.FocusedApp()
	if err != nil {
		c.logger.Debug("falling back to system-wide element", "err", err)
		fellBack = true
	} else {
		defer app.Release()
	}

	el, err := c.FocusedElement(app)
	if err != nil {
		return fellBack, err
	}
	defer el.Release()
	return fellBack, fn(el)
}

// Walk performs one poll cycle. Each step that fails is logged at debug
// level and the walk continues with whatever the earlier steps produced.
func (c *Controller) Walk() Snapshot {
	snap := Snapshot{At: c.now()}

	app, err := c.FocusedApp()
	if err != nil {
		c.logger.Debug("falling back to system-wide element", "err", err)
		snap.FellBack = true
	} else {
		defer app.Release()
		if pid, err := app.PID(); err == nil {
			snap.PID = pid
		}
	}

	el, err := c.FocusedElement(app)
	if err != nil {
		c.logger.Debug("no focused element", "err", err)
		snap.Outcome = OutcomeNoFocusedElement
		snap.Err = err
		return snap
	}
	defer el.Release()

	if snap.PID == 0 {
		if pid, err := el.PID(); err == nil {
			snap.PID = pid
		}
	}
	if role, err := el.StringAttribute(ax.AttributeRole); err == nil {
		snap.Role = role
	}

	text, textErr := c.SelectedText(el)
	if textErr != nil {
		c.logger.Debug("selected text unavailable", "err", textErr)
	} else {
		snap.Text = text
	}

	bounds, ok, boundsErr := c.SelectedTextBounds(el)
	switch {
	case boundsErr != nil:
		c.logger.Debug("selection bounds unavailable", "err", boundsErr)
	case !ok:
		c.logger.Debug("selection bounds are not a rectangle")
	default:
		snap.Bounds = &bounds
	}

	if textErr != nil && snap.Bounds == nil {
		snap.Outcome = OutcomeNoSelection
		snap.Err = textErr
		return snap
	}
	snap.Outcome = OutcomeSelection
	return snap
}

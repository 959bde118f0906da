package selection

import (
	"math"
	"time"

	"github.com/mj1618/selection-lens/internal/ax"
	"github.com/mj1618/selection-lens/internal/model"
)

// Outcome says how far a poll cycle got.
type Outcome string

const (
	// OutcomeSelection means selected text, bounds, or both were read.
	OutcomeSelection Outcome = "selection"
	// OutcomeNoFocusedElement means neither the focused application nor the
	// system-wide element reported a focused UI element.
	OutcomeNoFocusedElement Outcome = "no_focused_element"
	// OutcomeNoSelection means an element has focus but exposes neither
	// selected text nor selection bounds.
	OutcomeNoSelection Outcome = "no_selection"
)

// Snapshot is the result of one poll cycle. It holds no native references
// and is safe to hand to another goroutine.
type Snapshot struct {
	Outcome Outcome
	// Text is the selected text. It may be empty even on OutcomeSelection.
	Text string
	// Bounds is the selection's bounding rectangle in screen coordinates,
	// nil when it could not be read.
	Bounds *ax.Rect
	// PID is the focused application's process id, 0 if unknown.
	PID int
	// Role is the focused element's AXRole, empty if unknown.
	Role string
	// FellBack is set when the focused application could not be read and
	// the focused element was queried on the system-wide element instead.
	FellBack bool
	// Err is the failure that ended the walk early, if any.
	Err error
	At  time.Time
}

// Selection converts s to its wire form.
func (s Snapshot) Selection() model.Selection {
	sel := model.Selection{
		Outcome: string(s.Outcome),
		Text:    s.Text,
		PID:     s.PID,
		TS:      s.At.Unix(),
	}
	if s.Role != "" {
		sel.Role = model.MapRole(s.Role)
	}
	if s.Bounds != nil {
		b := RoundBounds(*s.Bounds)
		sel.Bounds = &b
	}
	if s.Err != nil {
		sel.Error = s.Err.Error()
	}
	return sel
}

// RoundBounds converts r to [x, y, width, height] in whole points.
func RoundBounds(r ax.Rect) [4]int {
	return [4]int{
		int(math.Round(r.Origin.X)),
		int(math.Round(r.Origin.Y)),
		int(math.Round(r.Size.Width)),
		int(math.Round(r.Size.Height)),
	}
}

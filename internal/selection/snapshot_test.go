package selection

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mj1618/selection-lens/internal/ax"
	"github.com/mj1618/selection-lens/internal/model"
)

func TestSnapshot_Selection(t *testing.T) {
	snap := Snapshot{
		Outcome: OutcomeSelection,
		Text:    "hello",
		Bounds:  &ax.Rect{Origin: ax.Point{X: 10.4, Y: 19.6}, Size: ax.Size{Width: 100, Height: 16.5}},
		PID:     100,
		Role:    "AXTextArea",
		At:      epoch,
	}
	want := model.Selection{
		Outcome: "selection",
		Text:    "hello",
		Bounds:  &[4]int{10, 20, 100, 17},
		PID:     100,
		Role:    "input",
		TS:      epoch.Unix(),
	}
	if diff := cmp.Diff(want, snap.Selection()); diff != "" {
		t.Errorf("Selection() mismatch (-want +got):\n%s", diff)
	}
}

func TestSnapshot_SelectionError(t *testing.T) {
	snap := Snapshot{
		Outcome: OutcomeNoFocusedElement,
		Err:     errors.New("focused element: ax: no value"),
		At:      epoch,
	}
	sel := snap.Selection()
	if sel.Outcome != "no_focused_element" {
		t.Errorf("Outcome = %q", sel.Outcome)
	}
	if sel.Error != "focused element: ax: no value" {
		t.Errorf("Error = %q", sel.Error)
	}
	if sel.Bounds != nil || sel.Role != "" {
		t.Errorf("unexpected fields: %+v", sel)
	}
	if sel.Visible() {
		t.Error("error selection should not be visible")
	}
}

func TestRoundBounds(t *testing.T) {
	got := RoundBounds(ax.Rect{Origin: ax.Point{X: -0.6, Y: 2.5}, Size: ax.Size{Width: 7.49, Height: 0}})
	if want := [4]int{-1, 3, 7, 0}; got != want {
		t.Errorf("RoundBounds = %v, want %v", got, want)
	}
}

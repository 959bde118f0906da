package model

import "fmt"

// ChangeType represents the kind of selection change detected.
type ChangeType string

const (
	ChangeShown   ChangeType = "shown"
	ChangeCleared ChangeType = "cleared"
	ChangeChanged ChangeType = "changed"
	// ChangeSame is reported only to consumers that asked for every poll.
	ChangeSame ChangeType = "same"
)

// SelectionChange represents the difference between two consecutive
// selections.
type SelectionChange struct {
	Type      ChangeType           `yaml:"type"              json:"type"`
	TS        int64                `yaml:"ts"                json:"ts"`
	Selection Selection            `yaml:"selection"         json:"selection"`
	Changes   map[string][2]string `yaml:"changes,omitempty" json:"changes,omitempty"` // For changed: field diffs
}

// DiffSelection compares two selections and returns the change from prev to
// curr, or nil when nothing an overlay would display has changed. Timestamps
// and error text are ignored.
func DiffSelection(prev, curr Selection) *SelectionChange {
	switch {
	case !prev.Visible() && !curr.Visible():
		return nil
	case !prev.Visible():
		return &SelectionChange{Type: ChangeShown, TS: curr.TS, Selection: curr}
	case !curr.Visible():
		return &SelectionChange{Type: ChangeCleared, TS: curr.TS, Selection: curr}
	}

	diffs := diffProperties(prev, curr)
	if diffs == nil {
		return nil
	}
	return &SelectionChange{Type: ChangeChanged, TS: curr.TS, Selection: curr, Changes: diffs}
}

// diffProperties compares two selections and returns changed fields.
func diffProperties(prev, curr Selection) map[string][2]string {
	diffs := make(map[string][2]string)

	if prev.Text != curr.Text {
		diffs["text"] = [2]string{prev.Text, curr.Text}
	}
	if !sameBounds(prev.Bounds, curr.Bounds) {
		diffs["bounds"] = [2]string{formatBounds(prev.Bounds), formatBounds(curr.Bounds)}
	}
	if prev.PID != curr.PID {
		diffs["pid"] = [2]string{
			fmt.Sprintf("%d", prev.PID),
			fmt.Sprintf("%d", curr.PID),
		}
	}
	if prev.Role != curr.Role {
		diffs["role"] = [2]string{prev.Role, curr.Role}
	}

	if len(diffs) == 0 {
		return nil
	}
	return diffs
}

func sameBounds(a, b *[4]int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func formatBounds(b *[4]int) string {
	if b == nil {
		return ""
	}
	return fmt.Sprintf("%v", *b)
}

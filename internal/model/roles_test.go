package model

import "testing"

func TestMapRole_KnownRoles(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"AXTextField", "input"},
		{"AXTextArea", "input"},
		{"AXComboBox", "input"},
		{"AXStaticText", "txt"},
		{"AXHeading", "txt"},
		{"AXLink", "lnk"},
		{"AXCell", "cell"},
		{"AXGroup", "group"},
		{"AXScrollArea", "scroll"},
		{"AXWebArea", "web"},
		{"AXDocument", "doc"},
		{"AXWindow", "window"},
		{"AXApplication", "app"},
		{"AXSystemWide", "system"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := MapRole(tt.input)
			if got != tt.want {
				t.Errorf("MapRole(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestMapRole_UnknownFallback(t *testing.T) {
	// Controls that never hold a text selection.
	unknowns := []string{"AXButton", "AXImage", "AXMenuItem", "AXToolbar", "AXSlider", "SomethingElse", ""}
	for _, role := range unknowns {
		got := MapRole(role)
		if got != "other" {
			t.Errorf("MapRole(%q) = %q, want %q", role, got, "other")
		}
	}
}

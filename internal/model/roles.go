package model

// RoleMap maps the AXRole of elements that can hold a text selection to
// compact role codes.
var RoleMap = map[string]string{
	// Editable text.
	"AXTextField": "input",
	"AXTextArea":  "input",
	"AXComboBox":  "input",
	// Read-only text and its containers.
	"AXStaticText": "txt",
	"AXLink":       "lnk",
	"AXHeading":    "txt",
	"AXCell":       "cell",
	"AXGroup":      "group",
	"AXScrollArea": "scroll",
	"AXWebArea":    "web",
	"AXDocument":   "doc",
	// Focus fell back to a container.
	"AXWindow":      "window",
	"AXApplication": "app",
	"AXSystemWide":  "system",
}

// MapRole converts a raw accessibility role to a compact code.
func MapRole(axRole string) string {
	if short, ok := RoleMap[axRole]; ok {
		return short
	}
	return "other"
}

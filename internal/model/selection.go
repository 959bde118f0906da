package model

// Selection is the wire form of one poll cycle's result.
type Selection struct {
	Outcome string  `yaml:"outcome"          json:"outcome"`
	Text    string  `yaml:"text,omitempty"   json:"text,omitempty"`
	Bounds  *[4]int `yaml:"bounds,omitempty" json:"bounds,omitempty"` // [x, y, width, height]
	PID     int     `yaml:"pid,omitempty"    json:"pid,omitempty"`
	Role    string  `yaml:"role,omitempty"   json:"role,omitempty"`
	Error   string  `yaml:"error,omitempty"  json:"error,omitempty"`
	TS      int64   `yaml:"ts"               json:"ts"`
}

// Visible reports whether s carries text an overlay should display.
func (s Selection) Visible() bool {
	return s.Outcome == "selection" && s.Text != ""
}

package model

// Inspection describes the focused UI element.
type Inspection struct {
	PID           int             `yaml:"pid,omitempty"           json:"pid,omitempty"`
	Role          string          `yaml:"role,omitempty"          json:"role,omitempty"`
	Attributes    []string        `yaml:"attributes"              json:"attributes"`
	Parameterized []string        `yaml:"parameterized,omitempty" json:"parameterized,omitempty"`
	Attribute     *AttributeValue `yaml:"attribute,omitempty"     json:"attribute,omitempty"`
	Range         *RangeBounds    `yaml:"range,omitempty"         json:"range,omitempty"`
	FellBack      bool            `yaml:"fell_back,omitempty"     json:"fell_back,omitempty"`
	TS            int64           `yaml:"ts"                      json:"ts"`
}

// AttributeValue is one attribute read from an element, summarized for
// display.
type AttributeValue struct {
	Name  string `yaml:"name"            json:"name"`
	Kind  string `yaml:"kind,omitempty"  json:"kind,omitempty"`
	Value any    `yaml:"value,omitempty" json:"value,omitempty"`
	Error string `yaml:"error,omitempty" json:"error,omitempty"`
}

// RangeBounds is the on-screen rectangle of a character range.
type RangeBounds struct {
	Location int     `yaml:"location"         json:"location"`
	Length   int     `yaml:"length"           json:"length"`
	Bounds   *[4]int `yaml:"bounds,omitempty" json:"bounds,omitempty"` // [x, y, width, height]
	Error    string  `yaml:"error,omitempty"  json:"error,omitempty"`
}

package model

// Field describes a single entry in a rendered panel.
type Field struct {
	Name      string            `json:"name"`
	Label     string            `json:"label,omitempty"`
	Component string            `json:"component,omitempty"`
	Value     DisplayValue      `json:"-"`
	UIHints   map[string]string `json:"uiHints,omitempty"`
}

// Panel is the top-level structure renderers consume: a titled list of
// read-only fields.
type Panel struct {
	Title  string  `json:"title,omitempty"`
	Locale string  `json:"locale,omitempty"`
	Fields []Field `json:"fields"`
}

// Package display provides the read-only display field other widgets build on.
package display

// Field presents HTML content without any editing affordances. Assigning
// content also records it as the raw value; widgets that keep a different raw
// value overwrite it after delegating here.
type Field struct {
	content string
	raw     any
}

// New returns a field showing content.
func New(content string) *Field {
	f := &Field{}
	f.SetValue(content)
	return f
}

// SetValue replaces the visible content.
func (f *Field) SetValue(content string) {
	f.content = content
	f.raw = content
}

// SetRawValue replaces the raw value without touching the content.
func (f *Field) SetRawValue(raw any) {
	f.raw = raw
}

// Content returns the visible HTML.
func (f *Field) Content() string {
	return f.content
}

// RawValue returns the last raw value.
func (f *Field) RawValue() any {
	return f.raw
}

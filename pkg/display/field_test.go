package display

import "testing"

func TestSetValueRecordsContentAsRaw(t *testing.T) {
	f := New("<b>x</b>")
	if f.Content() != "<b>x</b>" || f.RawValue() != "<b>x</b>" {
		t.Fatalf("unexpected initial state: %q / %#v", f.Content(), f.RawValue())
	}

	f.SetRawValue(42)
	if f.Content() != "<b>x</b>" {
		t.Fatalf("SetRawValue must not change content, got %q", f.Content())
	}
	if f.RawValue() != 42 {
		t.Fatalf("expected raw override, got %#v", f.RawValue())
	}

	f.SetValue("y")
	if f.RawValue() != "y" {
		t.Fatalf("expected SetValue to reset raw value, got %#v", f.RawValue())
	}
}

package model_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-linkfield/pkg/model"
)

func TestDecodeShapes(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want model.DisplayValue
	}{
		{name: "nil", in: nil, want: model.Empty{}},
		{name: "empty string", in: "", want: model.Empty{}},
		{name: "markup", in: "<a href='/a'>A</a>", want: model.RawMarkup("<a href='/a'>A</a>")},
		{name: "number", in: 42, want: model.RawMarkup("42")},
		{
			name: "reference",
			in:   map[string]any{"uid": "/zport/dmd/Devices/server1", "name": "server1"},
			want: model.Reference{UID: "/zport/dmd/Devices/server1", Name: "server1"},
		},
		{
			name: "reference id alias",
			in:   map[string]string{"id": "/a", "name": "A"},
			want: model.Reference{UID: "/a", Name: "A"},
		},
		{
			name: "list",
			in: []any{
				map[string]any{"uid": "/a", "name": "A"},
				"/b",
			},
			want: model.ReferenceList{{UID: "/a", Name: "A"}, {UID: "/b"}},
		},
		{name: "empty list", in: []any{}, want: model.ReferenceList{}},
		{name: "already typed", in: model.Reference{UID: "/x"}, want: model.Reference{UID: "/x"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := model.Decode(tc.in)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("decode mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecodeJSON(t *testing.T) {
	got, err := model.DecodeJSON([]byte(`[{"uid":"/a","name":"A"},{"uid":"/b","name":"B"}]`))
	if err != nil {
		t.Fatalf("decode json: %v", err)
	}
	want := model.ReferenceList{{UID: "/a", Name: "A"}, {UID: "/b", Name: "B"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("decode mismatch (-want +got):\n%s", diff)
	}

	if v, err := model.DecodeJSON([]byte("  ")); err != nil || !model.IsEmpty(v) {
		t.Fatalf("expected blank document to decode as empty, got %#v (%v)", v, err)
	}
	if _, err := model.DecodeJSON([]byte("{")); err == nil {
		t.Fatalf("expected malformed JSON to error")
	}
}

func TestIsEmpty(t *testing.T) {
	if !model.IsEmpty(nil) || !model.IsEmpty(model.Empty{}) {
		t.Fatalf("expected nil and Empty to be empty")
	}
	if model.IsEmpty(model.ReferenceList{}) {
		t.Fatalf("empty reference list is a distinct shape, not Empty")
	}
	if model.IsEmpty(model.RawMarkup(" ")) {
		t.Fatalf("whitespace markup is not empty")
	}
}

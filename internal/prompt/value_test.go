package prompt

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-linkfield/pkg/model"
)

type scriptedDriver struct {
	selects  []int
	inputs   []string
	confirms []bool
	asked    []string
}

func (d *scriptedDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	d.asked = append(d.asked, cfg.Message)
	if len(d.inputs) == 0 {
		return "", ErrAborted
	}
	out := d.inputs[0]
	d.inputs = d.inputs[1:]
	if cfg.Validator != nil {
		if err := cfg.Validator(out); err != nil {
			return "", err
		}
	}
	return out, nil
}

func (d *scriptedDriver) Confirm(_ context.Context, cfg ConfirmConfig) (bool, error) {
	d.asked = append(d.asked, cfg.Message)
	out := d.confirms[0]
	d.confirms = d.confirms[1:]
	return out, nil
}

func (d *scriptedDriver) Select(_ context.Context, cfg SelectConfig) (int, error) {
	d.asked = append(d.asked, cfg.Message)
	out := d.selects[0]
	d.selects = d.selects[1:]
	return out, nil
}

func TestAskValue(t *testing.T) {
	cases := []struct {
		name   string
		driver *scriptedDriver
		want   model.DisplayValue
	}{
		{
			name:   "reference",
			driver: &scriptedDriver{selects: []int{0}, inputs: []string{" /zport/dmd/Devices/web01 ", "web01"}},
			want:   model.Reference{UID: "/zport/dmd/Devices/web01", Name: "web01"},
		},
		{
			name: "reference list",
			driver: &scriptedDriver{
				selects:  []int{1},
				inputs:   []string{"/a", "A", "/b", ""},
				confirms: []bool{true, false},
			},
			want: model.ReferenceList{{UID: "/a", Name: "A"}, {UID: "/b"}},
		},
		{
			name:   "markup",
			driver: &scriptedDriver{selects: []int{2}, inputs: []string{"<a href='/a'>A</a>"}},
			want:   model.RawMarkup("<a href='/a'>A</a>"),
		},
		{
			name:   "blank markup is empty",
			driver: &scriptedDriver{selects: []int{2}, inputs: []string{""}},
			want:   model.Empty{},
		},
		{
			name:   "empty",
			driver: &scriptedDriver{selects: []int{3}},
			want:   model.Empty{},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := AskValue(context.Background(), tc.driver)
			if err != nil {
				t.Fatalf("ask: %v", err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("value mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAskValueErrors(t *testing.T) {
	_, err := AskValue(context.Background(), &scriptedDriver{selects: []int{0}, inputs: []string{"  "}})
	if err == nil || err.Error() != "a value is required" {
		t.Fatalf("expected validation error, got %v", err)
	}

	_, err = AskValue(context.Background(), &scriptedDriver{selects: []int{0}})
	if !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}

	_, err = AskValue(context.Background(), &scriptedDriver{selects: []int{-1}})
	if err == nil {
		t.Fatalf("expected error for unknown shape")
	}
}

func TestTranslateSurveyErr(t *testing.T) {
	other := errors.New("boom")
	if translateSurveyErr(other) != other {
		t.Fatalf("expected unrelated errors to pass through")
	}
}

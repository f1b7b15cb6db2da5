package prompt

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-linkfield/pkg/model"
)

// Shapes offered by AskValue, in prompt order.
var Shapes = []string{"reference", "reference list", "markup", "empty"}

// AskValue walks the user through building a display value.
func AskValue(ctx context.Context, d Driver) (model.DisplayValue, error) {
	idx, err := d.Select(ctx, SelectConfig{
		Message: "Value shape",
		Options: Shapes,
		Help:    "reference: one link; reference list: one link per line; markup: HTML that may contain anchors",
	})
	if err != nil {
		return nil, err
	}

	switch idx {
	case 0:
		return askReference(ctx, d)
	case 1:
		var list model.ReferenceList
		for {
			ref, err := askReference(ctx, d)
			if err != nil {
				return nil, err
			}
			list = append(list, ref)

			more, err := d.Confirm(ctx, ConfirmConfig{Message: "Add another reference?"})
			if err != nil {
				return nil, err
			}
			if !more {
				return list, nil
			}
		}
	case 2:
		raw, err := d.Input(ctx, InputConfig{Message: "Markup", Help: "Anchors are extracted; a string without anchors becomes one link"})
		if err != nil {
			return nil, err
		}
		return model.Decode(raw), nil
	case 3:
		return model.Empty{}, nil
	default:
		return nil, fmt.Errorf("prompt: unknown value shape index %d", idx)
	}
}

func askReference(ctx context.Context, d Driver) (model.Reference, error) {
	uid, err := d.Input(ctx, InputConfig{
		Message:   "UID",
		Help:      "Path of the linked object, e.g. /zport/dmd/Devices/Server/Linux",
		Validator: requireValue,
	})
	if err != nil {
		return model.Reference{}, err
	}
	name, err := d.Input(ctx, InputConfig{Message: "Name", Help: "Leave empty to use the last UID segment"})
	if err != nil {
		return model.Reference{}, err
	}
	return model.Reference{UID: strings.TrimSpace(uid), Name: strings.TrimSpace(name)}, nil
}

func requireValue(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("a value is required")
	}
	return nil
}

// Package testsupport holds helpers shared by package tests.
package testsupport

import (
	"context"
	"testing"
	"time"

	"github.com/goliatone/go-linkfield/pkg/model"
	"github.com/goliatone/go-linkfield/pkg/uischema"
)

// Context returns a context cancelled when the test finishes or after a short
// timeout, whichever happens first.
func Context(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)
	return ctx
}

// MustParsePanel parses a panel document and returns the panel with the given
// id converted into a model.Panel.
func MustParsePanel(t *testing.T, doc, id string) model.Panel {
	t.Helper()

	store, err := uischema.Parse([]byte(doc), t.Name())
	if err != nil {
		t.Fatalf("parse panel document: %v", err)
	}
	panel, ok := store.Panel(id)
	if !ok {
		t.Fatalf("panel %q not found; have %v", id, store.IDs())
	}
	return panel.Model()
}

// MustDecodeJSON decodes a JSON literal into a display value.
func MustDecodeJSON(t *testing.T, literal string) model.DisplayValue {
	t.Helper()

	value, err := model.DecodeJSON([]byte(literal))
	if err != nil {
		t.Fatalf("decode display value: %v", err)
	}
	return value
}

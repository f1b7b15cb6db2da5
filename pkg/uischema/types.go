package uischema

import (
	"slices"
	"strings"

	"github.com/goliatone/go-linkfield/pkg/model"
	"github.com/goliatone/go-linkfield/pkg/render"
)

// Store keeps the parsed panels. It is safe for concurrent readers when
// treated as immutable after construction.
type Store struct {
	panels       map[string]Panel
	translations render.MapTranslator
}

// Panel describes one configured panel.
type Panel struct {
	ID     string
	Source string
	Title  string
	Locale string
	Fields []FieldConfig
}

// FieldConfig declares a single field of a panel.
type FieldConfig struct {
	Name      string            `json:"name" yaml:"name"`
	Label     string            `json:"label" yaml:"label"`
	Component string            `json:"component,omitempty" yaml:"component,omitempty"`
	Value     any               `json:"value,omitempty" yaml:"value,omitempty"`
	UIHints   map[string]string `json:"uiHints,omitempty" yaml:"uiHints,omitempty"`
}

// Panel returns the configuration for the supplied panel id.
func (s *Store) Panel(id string) (Panel, bool) {
	if s == nil {
		return Panel{}, false
	}
	panel, ok := s.panels[strings.TrimSpace(id)]
	return panel, ok
}

// IDs returns the sorted panel ids.
func (s *Store) IDs() []string {
	if s == nil {
		return nil
	}
	ids := make([]string, 0, len(s.panels))
	for id := range s.panels {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Empty reports whether the store holds any panels.
func (s *Store) Empty() bool {
	return s == nil || len(s.panels) == 0
}

// Translations returns the merged translation catalog of every loaded file.
func (s *Store) Translations() render.MapTranslator {
	if s == nil {
		return nil
	}
	return s.translations
}

// Model converts the configuration into the structure renderers consume.
func (p Panel) Model() model.Panel {
	out := model.Panel{
		Title:  p.Title,
		Locale: p.Locale,
		Fields: make([]model.Field, 0, len(p.Fields)),
	}
	for _, field := range p.Fields {
		out.Fields = append(out.Fields, model.Field{
			Name:      field.Name,
			Label:     field.Label,
			Component: field.Component,
			Value:     model.Decode(field.Value),
			UIHints:   cloneStringMap(field.UIHints),
		})
	}
	return out
}

func cloneStringMap(src map[string]string) map[string]string {
	if len(src) == 0 {
		return nil
	}
	out := make(map[string]string, len(src))
	for key, value := range src {
		out[key] = value
	}
	return out
}

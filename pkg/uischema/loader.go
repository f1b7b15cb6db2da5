package uischema

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-linkfield/pkg/render"
)

// LoadFS walks the provided filesystem and parses JSON/YAML panel files.
// When fsys is nil or no panel files are present, the returned store is empty.
func LoadFS(fsys fs.FS) (*Store, error) {
	store := newStore()
	if fsys == nil {
		return store, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isSchemaFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("uischema: read %s: %w", path, err)
		}
		return store.add(data, path)
	})
	if err != nil {
		return nil, err
	}
	return store, nil
}

// LoadFile parses a single panel file from disk.
func LoadFile(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("uischema: read %s: %w", path, err)
	}
	return Parse(data, path)
}

// Parse decodes a single document. source names the document in errors.
func Parse(data []byte, source string) (*Store, error) {
	store := newStore()
	if err := store.add(data, source); err != nil {
		return nil, err
	}
	return store, nil
}

type documentFile struct {
	Panels       map[string]panelFile         `json:"panels" yaml:"panels"`
	Translations map[string]map[string]string `json:"translations" yaml:"translations"`
}

type panelFile struct {
	Title  string        `json:"title" yaml:"title"`
	Locale string        `json:"locale" yaml:"locale"`
	Fields []FieldConfig `json:"fields" yaml:"fields"`
}

func newStore() *Store {
	return &Store{
		panels:       make(map[string]Panel),
		translations: make(render.MapTranslator),
	}
}

func (s *Store) add(data []byte, source string) error {
	doc, err := parseDocument(data, source)
	if err != nil {
		return err
	}

	for rawID, raw := range doc.Panels {
		id := strings.TrimSpace(rawID)
		if id == "" {
			return fmt.Errorf("uischema: file %s defines an empty panel id", source)
		}
		if _, exists := s.panels[id]; exists {
			return fmt.Errorf("uischema: duplicate panel %q (file %s)", id, source)
		}
		panel, err := normalisePanel(raw, id, source)
		if err != nil {
			return err
		}
		s.panels[id] = panel
	}

	for locale, messages := range doc.Translations {
		locale = strings.TrimSpace(locale)
		if locale == "" {
			return fmt.Errorf("uischema: file %s defines translations for an empty locale", source)
		}
		if s.translations[locale] == nil {
			s.translations[locale] = make(map[string]string, len(messages))
		}
		for key, msg := range messages {
			s.translations[locale][key] = msg
		}
	}
	return nil
}

func parseDocument(data []byte, source string) (documentFile, error) {
	var doc documentFile
	if len(strings.TrimSpace(string(data))) == 0 {
		return documentFile{}, fmt.Errorf("uischema: file %s is empty", source)
	}

	if err := json.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	doc = documentFile{}
	if err := yaml.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	return documentFile{}, fmt.Errorf("uischema: parse %s: invalid JSON or YAML", source)
}

func normalisePanel(raw panelFile, id, source string) (Panel, error) {
	panel := Panel{
		ID:     id,
		Source: source,
		Title:  strings.TrimSpace(raw.Title),
		Locale: strings.TrimSpace(raw.Locale),
		Fields: make([]FieldConfig, 0, len(raw.Fields)),
	}

	seen := make(map[string]struct{}, len(raw.Fields))
	for idx, field := range raw.Fields {
		name := strings.TrimSpace(field.Name)
		if name == "" {
			return Panel{}, fmt.Errorf("uischema: panel %q (file %s) field at index %d has no name", id, source, idx)
		}
		if _, exists := seen[name]; exists {
			return Panel{}, fmt.Errorf("uischema: panel %q (file %s) defines duplicate field %q", id, source, name)
		}
		seen[name] = struct{}{}

		field.Name = name
		field.Component = strings.TrimSpace(field.Component)
		field.UIHints = cloneStringMap(field.UIHints)
		panel.Fields = append(panel.Fields, field)
	}
	return panel, nil
}

func isSchemaFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}

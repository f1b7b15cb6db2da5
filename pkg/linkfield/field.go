package linkfield

import (
	"html"
	"strings"

	"github.com/goliatone/go-linkfield/internal/markup"
	"github.com/goliatone/go-linkfield/pkg/display"
	"github.com/goliatone/go-linkfield/pkg/model"
	"github.com/goliatone/go-linkfield/pkg/render"
)

// LineBreak separates links when a value renders more than one.
const LineBreak = "<br/>"

const placeholderFallback = "None"

// Field is a display field whose content is always rendered links.
type Field struct {
	name  string
	label string
	base  *display.Field

	links      render.LinkRenderer
	translator render.Translator
	locale     string
	onMissing  render.MissingTranslationHandler
}

// New constructs a field and applies cfg.Value so the first render already
// reflects it.
func New(cfg Config, options ...Option) *Field {
	f := &Field{
		name:  strings.TrimSpace(cfg.Name),
		label: cfg.Label,
		base:  &display.Field{},
		links: render.NewHTMLLinkRenderer(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(f)
	}
	f.SetValue(cfg.Value)
	return f
}

// Name returns the configured field name.
func (f *Field) Name() string { return f.name }

// Label returns the configured field label.
func (f *Field) Label() string { return f.label }

// Value returns the value last passed to SetValue, unchanged.
func (f *Field) Value() model.DisplayValue {
	v, _ := f.base.RawValue().(model.DisplayValue)
	return v
}

// Content returns the rendered HTML.
func (f *Field) Content() string {
	return f.base.Content()
}

// SetValue renders v and stores it as the raw value.
func (f *Field) SetValue(v model.DisplayValue) {
	original := v
	f.base.SetValue(f.format(v))
	f.base.SetRawValue(original)
}

func (f *Field) format(v model.DisplayValue) string {
	switch value := deref(v).(type) {
	case nil, model.Empty:
		return f.placeholder()
	case model.Reference:
		return f.links.RenderLink(render.LinkRequest{URL: value.UID, Label: value.Name})
	case model.ReferenceList:
		items := make([]string, 0, len(value))
		for _, ref := range value {
			items = append(items, f.links.RenderLink(render.LinkRequest{UID: ref.UID, Label: ref.Name}))
		}
		return strings.Join(items, LineBreak)
	case model.RawMarkup:
		if value == "" {
			return f.placeholder()
		}
		return f.formatMarkup(string(value))
	default:
		return f.placeholder()
	}
}

func (f *Field) formatMarkup(raw string) string {
	anchors, err := markup.ExtractAnchors(raw)
	if err != nil || len(anchors) == 0 {
		return f.links.RenderLink(render.LinkRequest{UID: raw})
	}
	items := make([]string, 0, len(anchors))
	for _, anchor := range anchors {
		items = append(items, f.links.RenderLink(render.LinkRequest{URL: anchor.Href, Label: anchor.Inner}))
	}
	return strings.Join(items, LineBreak)
}

func (f *Field) placeholder() string {
	return html.EscapeString(render.Translate(f.locale, render.KeyNone, placeholderFallback, f.translator, f.onMissing))
}

// deref unwraps pointer variants so format only switches over values.
func deref(v model.DisplayValue) model.DisplayValue {
	switch value := v.(type) {
	case *model.Empty:
		return nil
	case *model.Reference:
		if value == nil {
			return nil
		}
		return *value
	case *model.ReferenceList:
		if value == nil {
			return nil
		}
		return *value
	case *model.RawMarkup:
		if value == nil {
			return nil
		}
		return *value
	default:
		return v
	}
}

package components

import (
	"bytes"
	"fmt"
	"html"
	"strings"

	"github.com/goliatone/go-linkfield/pkg/linkfield"
	"github.com/goliatone/go-linkfield/pkg/model"
	"github.com/goliatone/go-linkfield/pkg/render"
)

// ChromeTemplate wraps every component's content with its label.
const ChromeTemplate = "templates/components/chrome"

// NewDefaultRegistry constructs a registry pre-populated with the built-in
// components used by the vanilla renderer.
func NewDefaultRegistry() *Registry {
	registry := New()

	registry.MustRegister(NameLink, Descriptor{
		Renderer: linkRenderer,
	})
	registry.MustRegister(NameDisplay, Descriptor{
		Renderer: displayRenderer,
	})

	return registry
}

func linkRenderer(buf *bytes.Buffer, field model.Field, data ComponentData) error {
	options := []linkfield.Option{
		linkfield.WithLocale(data.Locale),
		linkfield.WithTranslator(data.Translator),
		linkfield.WithMissingTranslation(data.OnMissing),
	}
	if data.Links != nil {
		options = append(options, linkfield.WithLinkRenderer(data.Links))
	}

	widget := linkfield.New(linkfield.Config{
		Name:  field.Name,
		Label: field.Label,
		Value: field.Value,
	}, options...)

	return writeChrome(buf, field, NameLink, widget.Content(), data)
}

func displayRenderer(buf *bytes.Buffer, field model.Field, data ComponentData) error {
	content := displayText(field.Value)
	if content == "" {
		content = html.EscapeString(render.Translate(data.Locale, render.KeyNone, "None", data.Translator, data.OnMissing))
	}
	return writeChrome(buf, field, NameDisplay, content, data)
}

// displayText renders a value as escaped text without links.
func displayText(value model.DisplayValue) string {
	switch v := value.(type) {
	case model.Reference:
		return html.EscapeString(referenceText(v))
	case model.ReferenceList:
		items := make([]string, 0, len(v))
		for _, ref := range v {
			items = append(items, html.EscapeString(referenceText(ref)))
		}
		return strings.Join(items, linkfield.LineBreak)
	case model.RawMarkup:
		return html.EscapeString(string(v))
	default:
		return ""
	}
}

func referenceText(ref model.Reference) string {
	if name := strings.TrimSpace(ref.Name); name != "" {
		return name
	}
	return ref.UID
}

func writeChrome(buf *bytes.Buffer, field model.Field, component, content string, data ComponentData) error {
	payload := map[string]any{
		"id":        componentControlID(field.Name),
		"classes":   chromeClasses(field, component),
		"component": component,
		"label":     strings.TrimSpace(field.Label),
		"content":   content,
		"config":    data.Config,
	}

	if data.Template != nil {
		rendered, err := data.Template.RenderTemplate(ChromeTemplate, payload)
		if err != nil {
			return fmt.Errorf("components: render chrome for %q: %w", field.Name, err)
		}
		buf.WriteString(rendered)
		return nil
	}

	buf.WriteString(`<div`)
	if id := componentControlID(field.Name); id != "" {
		buf.WriteString(` id="`)
		buf.WriteString(html.EscapeString(id))
		buf.WriteString(`"`)
	}
	buf.WriteString(` class="`)
	buf.WriteString(html.EscapeString(chromeClasses(field, component)))
	buf.WriteString(`" data-component="`)
	buf.WriteString(html.EscapeString(component))
	buf.WriteString(`">`)
	if label := strings.TrimSpace(field.Label); label != "" {
		buf.WriteString(`<dt class="fg-field__label">`)
		buf.WriteString(html.EscapeString(label))
		buf.WriteString(`</dt>`)
	}
	buf.WriteString(`<dd class="fg-field__value">`)
	buf.WriteString(content)
	buf.WriteString(`</dd></div>`)
	return nil
}

func chromeClasses(field model.Field, component string) string {
	classes := []string{"fg-field", "fg-field--" + component}
	if field.UIHints != nil {
		if extra := sanitizeClassList(field.UIHints["cssClass"]); extra != "" {
			classes = append(classes, extra)
		}
	}
	return strings.Join(classes, " ")
}

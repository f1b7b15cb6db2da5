package vanilla

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/goliatone/go-linkfield/pkg/model"
	"github.com/goliatone/go-linkfield/pkg/render"
	rendertemplate "github.com/goliatone/go-linkfield/pkg/render/template"
	gotemplate "github.com/goliatone/go-linkfield/pkg/render/template/gotemplate"
	"github.com/goliatone/go-linkfield/pkg/renderers/vanilla/components"
)

const panelTemplate = "templates/panel"

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	registry         *components.Registry
	links            render.LinkRenderer
	translator       render.Translator
	onMissing        render.MissingTranslationHandler
	locale           string
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithComponentRegistry replaces the default component registry.
func WithComponentRegistry(registry *components.Registry) Option {
	return func(cfg *config) {
		if registry != nil {
			cfg.registry = registry
		}
	}
}

// WithLinkRenderer overrides the link helper handed to components.
func WithLinkRenderer(links render.LinkRenderer) Option {
	return func(cfg *config) {
		cfg.links = links
	}
}

// WithTranslator configures localisation for placeholders.
func WithTranslator(t render.Translator) Option {
	return func(cfg *config) {
		cfg.translator = t
	}
}

// WithMissingTranslation routes unresolved lookups through handler.
func WithMissingTranslation(handler render.MissingTranslationHandler) Option {
	return func(cfg *config) {
		cfg.onMissing = handler
	}
}

// WithLocale sets the default locale. A panel's own locale takes precedence.
func WithLocale(locale string) Option {
	return func(cfg *config) {
		cfg.locale = strings.TrimSpace(locale)
	}
}

var _ render.Renderer = (*Renderer)(nil)

// Renderer turns panels into HTML fragments.
type Renderer struct {
	templates  rendertemplate.TemplateRenderer
	registry   *components.Registry
	links      render.LinkRenderer
	translator render.Translator
	onMissing  render.MissingTranslationHandler
	locale     string
}

// New constructs the vanilla renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}
	if cfg.registry == nil {
		cfg.registry = components.NewDefaultRegistry()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("vanilla renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{
		templates:  renderer,
		registry:   cfg.registry,
		links:      cfg.links,
		translator: cfg.translator,
		onMissing:  cfg.onMissing,
		locale:     cfg.locale,
	}, nil
}

func (r *Renderer) Name() string {
	return "vanilla"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render renders every field of panel through its component and wraps the
// result in the panel template. Fields without a component use the link
// component.
func (r *Renderer) Render(ctx context.Context, panel model.Panel) ([]byte, error) {
	if r.templates == nil {
		return nil, fmt.Errorf("vanilla renderer: template renderer is nil")
	}

	locale := strings.TrimSpace(panel.Locale)
	if locale == "" {
		locale = r.locale
	}
	data := components.ComponentData{
		Template:   r.templates,
		Links:      r.links,
		Translator: r.translator,
		OnMissing:  r.onMissing,
		Locale:     locale,
	}

	fields := make([]string, 0, len(panel.Fields))
	used := make([]string, 0, len(panel.Fields))
	var buf bytes.Buffer
	for _, field := range panel.Fields {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		name := strings.TrimSpace(field.Component)
		if name == "" {
			name = components.NameLink
		}
		descriptor, ok := r.registry.Descriptor(name)
		if !ok {
			return nil, fmt.Errorf("vanilla renderer: field %q uses unknown component %q", field.Name, name)
		}

		buf.Reset()
		if err := descriptor.Renderer(&buf, field, data); err != nil {
			return nil, fmt.Errorf("vanilla renderer: render field %q: %w", field.Name, err)
		}
		fields = append(fields, buf.String())
		used = append(used, descriptor.Name)
	}

	stylesheets := r.registry.Assets(used)
	if stylesheets == nil {
		stylesheets = []string{}
	}

	result, err := r.templates.RenderTemplate(panelTemplate, map[string]any{
		"title":       strings.TrimSpace(panel.Title),
		"locale":      locale,
		"fields":      fields,
		"stylesheets": stylesheets,
	})
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: render template: %w", err)
	}
	return []byte(result), nil
}

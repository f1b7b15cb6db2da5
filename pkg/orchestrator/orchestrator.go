package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/goliatone/go-linkfield/pkg/model"
	"github.com/goliatone/go-linkfield/pkg/render"
	"github.com/goliatone/go-linkfield/pkg/renderers/vanilla"
	"github.com/goliatone/go-linkfield/pkg/uischema"
)

const defaultRendererName = "vanilla"

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithRegistry injects a renderer registry. The vanilla renderer is still
// registered when the registry does not already provide one.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = strings.TrimSpace(name)
	}
}

// WithStore supplies already loaded panel configuration.
func WithStore(store *uischema.Store) Option {
	return func(o *Orchestrator) {
		o.store = store
	}
}

// WithUISchemaFS loads panel configuration from fsys on first use.
func WithUISchemaFS(fsys fs.FS) Option {
	return func(o *Orchestrator) {
		o.uiSchemaFS = fsys
	}
}

// WithVanillaOptions forwards options to the default vanilla renderer.
func WithVanillaOptions(options ...vanilla.Option) Option {
	return func(o *Orchestrator) {
		o.vanillaOptions = append(o.vanillaOptions, options...)
	}
}

// Request describes a single render. Panel takes precedence over PanelID.
type Request struct {
	PanelID  string
	Panel    *model.Panel
	Renderer string
}

// Orchestrator coordinates configuration lookups and rendering.
type Orchestrator struct {
	registry        *render.Registry
	defaultRenderer string
	store           *uischema.Store
	uiSchemaFS      fs.FS
	vanillaOptions  []vanilla.Option

	initialised   bool
	initialiseErr error
}

// New constructs an Orchestrator applying any provided options.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	return o
}

// Panels returns the ids of every configured panel.
func (o *Orchestrator) Panels() ([]string, error) {
	if err := o.init(); err != nil {
		return nil, err
	}
	return o.store.IDs(), nil
}

// Generate resolves the requested panel and renders it.
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, error) {
	if err := o.init(); err != nil {
		return nil, err
	}

	panel, err := o.resolvePanel(req)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Renderer)
	if name == "" {
		name = o.defaultRenderer
	}
	renderer, err := o.registry.Get(name)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: %w", err)
	}

	output, err := renderer.Render(ctx, panel)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: render panel with %q: %w", name, err)
	}
	return output, nil
}

func (o *Orchestrator) resolvePanel(req Request) (model.Panel, error) {
	if req.Panel != nil {
		return *req.Panel, nil
	}
	id := strings.TrimSpace(req.PanelID)
	if id == "" {
		return model.Panel{}, errors.New("orchestrator: panel or panel id is required")
	}
	panel, ok := o.store.Panel(id)
	if !ok {
		return model.Panel{}, fmt.Errorf("orchestrator: panel %q not found", id)
	}
	return panel.Model(), nil
}

func (o *Orchestrator) init() error {
	if o.initialised {
		return o.initialiseErr
	}
	o.initialised = true

	if o.store == nil {
		store, err := uischema.LoadFS(o.uiSchemaFS)
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: load panels: %w", err)
			return o.initialiseErr
		}
		o.store = store
	}

	if o.registry == nil {
		o.registry = render.NewRegistry()
	}
	if !o.registry.Has(defaultRendererName) {
		options := make([]vanilla.Option, 0, len(o.vanillaOptions)+1)
		if translations := o.store.Translations(); len(translations) > 0 {
			options = append(options, vanilla.WithTranslator(translations))
		}
		options = append(options, o.vanillaOptions...)

		renderer, err := vanilla.New(options...)
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: %w", err)
			return o.initialiseErr
		}
		if err := o.registry.Register(renderer); err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: %w", err)
			return o.initialiseErr
		}
	}
	return nil
}

package linkfield

import (
	"github.com/goliatone/go-linkfield/pkg/model"
	"github.com/goliatone/go-linkfield/pkg/render"
)

// Config carries construction-time settings.
type Config struct {
	Name  string
	Label string
	// Value is applied through SetValue during construction.
	Value model.DisplayValue
}

// Option customises a Field.
type Option func(*Field)

// WithLinkRenderer overrides the helper used to produce link markup.
func WithLinkRenderer(renderer render.LinkRenderer) Option {
	return func(f *Field) {
		if renderer != nil {
			f.links = renderer
		}
	}
}

// WithTranslator configures placeholder localisation.
func WithTranslator(t render.Translator) Option {
	return func(f *Field) {
		f.translator = t
	}
}

// WithLocale selects the locale passed to the translator.
func WithLocale(locale string) Option {
	return func(f *Field) {
		f.locale = locale
	}
}

// WithMissingTranslation routes unresolved placeholder lookups through handler.
func WithMissingTranslation(handler render.MissingTranslationHandler) Option {
	return func(f *Field) {
		f.onMissing = handler
	}
}

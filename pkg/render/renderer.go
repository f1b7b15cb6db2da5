package render

import (
	"context"

	"github.com/goliatone/go-linkfield/pkg/model"
)

// Renderer converts a Panel into a byte representation.
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, panel model.Panel) ([]byte, error)
}

package render

import (
	"html"
	"net/url"
	"strings"
)

// LinkRequest carries the inputs of a single link rendering. The three calling
// shapes are: UID only (label inferred), explicit URL plus Label, and a bare
// string passed as UID (target and label inferred).
type LinkRequest struct {
	UID   string
	URL   string
	Label string
}

// LinkRenderer turns a LinkRequest into an HTML fragment.
type LinkRenderer interface {
	RenderLink(req LinkRequest) string
}

// LinkRendererFunc adapts a function into a LinkRenderer.
type LinkRendererFunc func(req LinkRequest) string

// RenderLink calls the underlying function.
func (fn LinkRendererFunc) RenderLink(req LinkRequest) string {
	return fn(req)
}

// LinkOption configures an HTMLLinkRenderer.
type LinkOption func(*HTMLLinkRenderer)

// WithBaseURL prefixes root-relative targets (those starting with "/").
func WithBaseURL(base string) LinkOption {
	return func(r *HTMLLinkRenderer) {
		r.baseURL = strings.TrimRight(strings.TrimSpace(base), "/")
	}
}

// WithLinkClass adds a class attribute to every rendered anchor.
func WithLinkClass(class string) LinkOption {
	return func(r *HTMLLinkRenderer) {
		r.class = strings.Join(strings.Fields(class), " ")
	}
}

// HTMLLinkRenderer is the default LinkRenderer. Explicit labels may carry
// inline formatting and are sanitised; inferred labels are escaped.
type HTMLLinkRenderer struct {
	baseURL string
	class   string
}

var _ LinkRenderer = (*HTMLLinkRenderer)(nil)

// NewHTMLLinkRenderer constructs the default renderer.
func NewHTMLLinkRenderer(options ...LinkOption) *HTMLLinkRenderer {
	r := &HTMLLinkRenderer{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

// RenderLink implements LinkRenderer.
func (r *HTMLLinkRenderer) RenderLink(req LinkRequest) string {
	target := strings.TrimSpace(req.URL)
	if target == "" {
		target = strings.TrimSpace(req.UID)
	}

	label := SanitizeLabel(req.Label)
	if label == "" && target != "" {
		label = html.EscapeString(inferLabel(target))
	}

	if target == "" {
		return label
	}

	var builder strings.Builder
	builder.WriteString(`<a href="`)
	builder.WriteString(html.EscapeString(r.resolveHref(target)))
	builder.WriteString(`"`)
	if r.class != "" {
		builder.WriteString(` class="`)
		builder.WriteString(html.EscapeString(r.class))
		builder.WriteString(`"`)
	}
	builder.WriteString(`>`)
	builder.WriteString(label)
	builder.WriteString(`</a>`)
	return builder.String()
}

func (r *HTMLLinkRenderer) resolveHref(target string) string {
	href := safeHref(target)
	if r.baseURL != "" && strings.HasPrefix(href, "/") && !strings.HasPrefix(href, "//") {
		return r.baseURL + href
	}
	return href
}

func safeHref(target string) string {
	parsed, err := url.Parse(target)
	if err != nil {
		return "#"
	}
	switch strings.ToLower(parsed.Scheme) {
	case "", "http", "https", "mailto":
		return target
	default:
		return "#"
	}
}

// inferLabel returns the last non-empty path segment of target, ignoring any
// query or fragment.
func inferLabel(target string) string {
	trimmed := target
	if idx := strings.IndexAny(trimmed, "?#"); idx >= 0 {
		trimmed = trimmed[:idx]
	}
	trimmed = strings.TrimRight(trimmed, "/")
	if idx := strings.LastIndex(trimmed, "/"); idx >= 0 {
		trimmed = trimmed[idx+1:]
	}
	if trimmed == "" {
		return target
	}
	return trimmed
}

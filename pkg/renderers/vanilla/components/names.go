package components

// Canonical component names used by the vanilla renderer and default registry.
const (
	NameLink    = "link"
	NameDisplay = "display"
)

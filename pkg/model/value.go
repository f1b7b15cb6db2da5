package model

// DisplayValue is implemented by every value shape a link field understands.
// The interface is sealed; switch over the concrete variants to handle it.
type DisplayValue interface {
	displayValue()
}

// Empty marks an absent value.
type Empty struct{}

// Reference identifies a single linkable entity.
type Reference struct {
	UID  string `json:"uid" yaml:"uid"`
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
}

// ReferenceList is an ordered collection of references rendered one per line.
type ReferenceList []Reference

// RawMarkup is an arbitrary string that may contain embedded anchor elements.
type RawMarkup string

func (Empty) displayValue()         {}
func (Reference) displayValue()     {}
func (ReferenceList) displayValue() {}
func (RawMarkup) displayValue()     {}

// IsEmpty reports whether v is absent. A nil interface counts as empty.
func IsEmpty(v DisplayValue) bool {
	switch v.(type) {
	case nil, Empty, *Empty:
		return true
	default:
		return false
	}
}

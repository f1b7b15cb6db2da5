// Package model defines the values link panels render. DisplayValue is a sealed
// sum type covering the shapes a link field accepts: Empty, a single Reference,
// an ordered ReferenceList, or RawMarkup that may embed anchors. Decode maps
// loosely typed payloads (decoded JSON or YAML) onto those variants so callers
// at the edges of the system never have to inspect dynamic types themselves.
package model

// Package linkfield implements a read-only form field that always presents its
// value as one or more hyperlinks.
//
// The field accepts any model.DisplayValue:
//
//   - Empty renders the localized "None" placeholder.
//   - A Reference renders one link targeting its UID and labelled with its Name.
//   - A ReferenceList renders one link per element joined with <br/>. An empty
//     list renders nothing at all, which differs from the Empty placeholder.
//   - RawMarkup is parsed for anchors. Each anchor is re-rendered from its href
//     and inner HTML and everything else is dropped. Markup without anchors is
//     rendered as a single bare link.
//
// Value always returns exactly what was last assigned, never the derived HTML.
package linkfield

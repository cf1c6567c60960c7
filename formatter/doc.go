// Package formatter serializes notification payloads.
//
// This package is organized into:
// - fragment.go: in-memory XML element tree and its rendering
// - xml.go: value to XML fragment conversion (emptiness and naming rules)
// - document.go: root-tagged document building
// - json.go: JSON serialization
//
// XML text is written through github.com/shabbyrobe/xmlwriter, which handles
// escaping and the document declaration.
package formatter

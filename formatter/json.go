package formatter

import (
	"encoding/json"
)

type responseBuilder struct{}

func newResponseBuilder() *responseBuilder { return &responseBuilder{} }

// NewResponseBuilder creates a new response builder for formatting payloads
func NewResponseBuilder() *responseBuilder {
	return newResponseBuilder()
}

// BuildJSON serializes a payload to compact JSON
func (rb *responseBuilder) BuildJSON(res any) ([]byte, error) {
	return json.Marshal(res)
}

// BuildIndentedJSON serializes a payload to indented JSON
func (rb *responseBuilder) BuildIndentedJSON(res any) ([]byte, error) {
	return json.MarshalIndent(res, "", "  ")
}

// BuildXML renders a fragment tree as an XML document
func (rb *responseBuilder) BuildXML(f *Fragment) ([]byte, error) {
	s, err := f.Render()
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

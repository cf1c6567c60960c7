package notification

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/theoremus-urban-solutions/pns-helper/payload"
)

// CodeTable maps upper-cased event types to message codes. It is read-only
// once built.
type CodeTable map[string]string

// NewCodeTable copies entries, upper-casing the keys
func NewCodeTable(entries map[string]string) CodeTable {
	t := make(CodeTable, len(entries))
	for k, v := range entries {
		t[strings.ToUpper(k)] = v
	}
	return t
}

// Lookup returns the code for an event type. An empty event type yields
// ("", true); an unknown one yields ("", false).
func (t CodeTable) Lookup(eventType string) (string, bool) {
	if eventType == "" {
		return "", true
	}
	code, ok := t[strings.ToUpper(eventType)]
	return code, ok
}

// Merge returns a table holding t's entries plus the entries of o that t lacks
func (t CodeTable) Merge(o CodeTable) CodeTable {
	out := make(CodeTable, len(t)+len(o))
	for k, v := range o {
		out[k] = v
	}
	for k, v := range t {
		out[k] = v
	}
	return out
}

// UnmarshalYAML accepts a mapping of event type to scalar code
func (t *CodeTable) UnmarshalYAML(node *yaml.Node) error {
	var v payload.Value
	if err := v.UnmarshalYAML(node); err != nil {
		return err
	}
	if v.IsNull() {
		*t = CodeTable{}
		return nil
	}
	if v.Kind() != payload.KindMapping {
		return fmt.Errorf("notification codes: expected a mapping, got %s", v.Kind())
	}
	out := make(CodeTable, v.Mapping().Len())
	for _, f := range v.Mapping().Fields() {
		if f.Value.Kind() != payload.KindScalar {
			return fmt.Errorf("notification codes: %s: expected a scalar code, got %s", f.Key, f.Value.Kind())
		}
		out[strings.ToUpper(f.Key)] = f.Value.Text()
	}
	*t = out
	return nil
}

// ParseCodeTable decodes a YAML (or JSON) mapping of codes
func ParseCodeTable(data []byte) (CodeTable, error) {
	var t CodeTable
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, err
	}
	if t == nil {
		t = CodeTable{}
	}
	return t, nil
}

// LoadCodeTable reads a code table file
func LoadCodeTable(path string) (CodeTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read code table: %w", err)
	}
	t, err := ParseCodeTable(data)
	if err != nil {
		return nil, fmt.Errorf("parse code table %s: %w", path, err)
	}
	return t, nil
}

package formatter

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/theoremus-urban-solutions/pns-helper/payload"
)

// MaxDepth bounds recursion while converting values
const MaxDepth = 512

// ErrTooDeep is returned for values nested deeper than MaxDepth
var ErrTooDeep = errors.New("formatter: value nested too deeply")

// AppendValue populates node with the XML representation of v:
//   - empty values ("" and null) produce nothing, at every level
//   - a sequence produces one element per non-empty entry, named
//     element_<index> where index is the position in the original sequence
//   - a mapping produces one element per non-empty field, named after the key;
//     a field holding a sequence produces repeated elements named after the
//     key directly under node
//   - a scalar becomes the text of node
func AppendValue(node *Fragment, v payload.Value) error {
	return appendValue(node, v, 0)
}

func appendValue(node *Fragment, v payload.Value, depth int) error {
	if depth > MaxDepth {
		return fmt.Errorf("%w: more than %d levels under <%s>", ErrTooDeep, MaxDepth, node.Name)
	}
	switch v.Kind() {
	case payload.KindSequence:
		return appendSequence(node, v.Items(), "", depth)
	case payload.KindMapping:
		for _, f := range v.Mapping().Fields() {
			if f.Value.IsEmpty() {
				continue
			}
			if f.Value.Kind() == payload.KindSequence {
				if err := appendSequence(node, f.Value.Items(), f.Key, depth+1); err != nil {
					return err
				}
				continue
			}
			if err := appendValue(node.Element(f.Key), f.Value, depth+1); err != nil {
				return err
			}
		}
	case payload.KindScalar:
		node.SetText(v.Text())
	}
	return nil
}

func appendSequence(node *Fragment, items []payload.Value, name string, depth int) error {
	for i, item := range items {
		if item.IsEmpty() {
			continue
		}
		tag := name
		if tag == "" {
			tag = "element_" + strconv.Itoa(i)
		}
		if err := appendValue(node.Element(tag), item, depth+1); err != nil {
			return err
		}
	}
	return nil
}

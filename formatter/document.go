package formatter

import (
	"github.com/theoremus-urban-solutions/pns-helper/payload"
)

// BuildDocument converts v into a fragment tree under a fresh root element
func BuildDocument(v payload.Value, root string) (*Fragment, error) {
	if root == "" {
		return nil, ErrInvalidName
	}
	node := NewFragment(root)
	if err := AppendValue(node, v); err != nil {
		return nil, err
	}
	return node, nil
}

// CreateXmlDocument serializes v under a root element named root
func CreateXmlDocument(v payload.Value, root string) (string, error) {
	node, err := BuildDocument(v, root)
	if err != nil {
		return "", err
	}
	return node.Render()
}

package formatter

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/shabbyrobe/xmlwriter"
)

// ErrInvalidName is returned when an element has no tag name
var ErrInvalidName = errors.New("formatter: empty element name")

// Fragment is a named XML element holding either text or child elements
type Fragment struct {
	Name     string
	Text     string
	HasText  bool
	Children []*Fragment
}

// NewFragment creates a detached element
func NewFragment(name string) *Fragment {
	return &Fragment{Name: name}
}

// Element appends a child element and returns it
func (f *Fragment) Element(name string) *Fragment {
	child := NewFragment(name)
	f.Children = append(f.Children, child)
	return child
}

// SetText sets the text content of the element
func (f *Fragment) SetText(s string) {
	f.Text = s
	f.HasText = true
}

// Child returns the first direct child with the given name
func (f *Fragment) Child(name string) *Fragment {
	for _, c := range f.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// ChildrenNamed returns every direct child with the given name, in order
func (f *Fragment) ChildrenNamed(name string) []*Fragment {
	var out []*Fragment
	for _, c := range f.Children {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out
}

// Render serializes the element as a complete XML document
func (f *Fragment) Render() (string, error) {
	var b bytes.Buffer
	w := xmlwriter.Open(&b)
	w.NewlineString = ""
	if err := w.Start(xmlwriter.Doc{SuppressEncoding: true}); err != nil {
		return "", err
	}
	if err := f.write(w); err != nil {
		return "", err
	}
	if err := w.EndAllFlush(); err != nil {
		return "", err
	}
	return b.String(), nil
}

func (f *Fragment) write(w *xmlwriter.Writer) error {
	if f.Name == "" {
		return ErrInvalidName
	}
	if err := w.Start(xmlwriter.Elem{Name: f.Name}); err != nil {
		return fmt.Errorf("element %q: %w", f.Name, err)
	}
	if f.HasText {
		if err := writeText(w, f.Text); err != nil {
			return fmt.Errorf("text of %q: %w", f.Name, err)
		}
	}
	for _, c := range f.Children {
		if err := c.write(w); err != nil {
			return err
		}
	}
	return w.EndElem()
}

// carriageReturn is written as a character reference; parsers turn a raw CR
// into LF
const carriageReturn = xmlwriter.Raw("&#xD;")

func writeText(w *xmlwriter.Writer, s string) error {
	for i, part := range strings.Split(s, "\r") {
		if i > 0 {
			// Raw does not close a pending start tag
			if err := w.Next(); err != nil {
				return err
			}
			if err := w.Write(carriageReturn); err != nil {
				return err
			}
		}
		if part == "" {
			continue
		}
		if err := w.Write(xmlwriter.Text(part)); err != nil {
			return err
		}
	}
	return nil
}

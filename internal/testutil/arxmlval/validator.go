// Package arxmlval provides a document validator for tests: element lookup
// by tag path, assertions, and deep structural comparison between two
// documents.
package arxmlval

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"

	"github.com/ecutools/arxmlkit/internal/store"
)

// Validator wraps a parsed document for inspection in tests.
type Validator struct {
	doc *etree.Document
}

// New parses the document at path.
//
// Example:
//
//	v := arxmlval.Must(arxmlval.New(outputPath))
//	v.AssertAttr(t, []string{"AR-PACKAGES", "AR-PACKAGE"}, "UUID", "a-1")
func New(path string) (*Validator, error) {
	doc, err := store.New().Read(path)
	if err != nil {
		return nil, fmt.Errorf("open document for validation: %w", err)
	}
	return &Validator{doc: doc}, nil
}

// FromBytes parses an in-memory document.
func FromBytes(data []byte) (*Validator, error) {
	doc, err := store.New().ReadBytes(data)
	if err != nil {
		return nil, fmt.Errorf("parse document for validation: %w", err)
	}
	return &Validator{doc: doc}, nil
}

// Must unwraps a Validator constructor result, panicking on error.
func Must(v *Validator, err error) *Validator {
	if err != nil {
		panic(err)
	}
	return v
}

// Root returns the document's root element.
func (v *Validator) Root() *etree.Element {
	return v.doc.Root()
}

// GetElement walks child steps by stored tag from the root and returns the
// first element at the end of the path. A nil or empty path returns the
// root itself.
func (v *Validator) GetElement(path []string) (*etree.Element, error) {
	e := v.doc.Root()
	for _, step := range path {
		var next *etree.Element
		for _, c := range e.ChildElements() {
			if c.FullTag() == step {
				next = c
				break
			}
		}
		if next == nil {
			return nil, fmt.Errorf("no child %q under %s", step, e.FullTag())
		}
		e = next
	}
	return e, nil
}

// CountByTag returns the number of elements with the stored tag, the root
// included.
func (v *Validator) CountByTag(tag string) int {
	n := 0
	var walk func(e *etree.Element)
	walk = func(e *etree.Element) {
		if e.FullTag() == tag {
			n++
		}
		for _, c := range e.ChildElements() {
			walk(c)
		}
	}
	walk(v.doc.Root())
	return n
}

func pathString(path []string) string {
	if len(path) == 0 {
		return "(root)"
	}
	return strings.Join(path, "/")
}

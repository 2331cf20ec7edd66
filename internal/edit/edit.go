// Package edit provides the concrete types.Editor implementation: in-place
// attribute mutation on single elements.
package edit

import (
	"github.com/beevik/etree"

	"github.com/ecutools/arxmlkit/pkg/types"
)

// New returns an Editor for attribute mutation.
func New() types.Editor {
	return &editor{}
}

type editor struct{}

// Add sets name to value. An existing attribute is overwritten in place,
// keeping its position; otherwise the attribute is appended.
func (ed *editor) Add(e *etree.Element, name, value string) {
	e.CreateAttr(name, value)
}

// Edit overwrites name only if the element already carries it. Matching is
// exact on the stored form, so "type" never touches "xsi:type".
func (ed *editor) Edit(e *etree.Element, name, value string) bool {
	for i, a := range e.Attr {
		if a.FullKey() == name {
			e.Attr[i].Value = value
			return true
		}
	}
	return false
}

// Delete removes name if present and reports whether anything was removed.
func (ed *editor) Delete(e *etree.Element, name string) bool {
	return e.RemoveAttr(name) != nil
}

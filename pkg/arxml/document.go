package arxml

import (
	"github.com/beevik/etree"
)

// Document couples a parsed tree with the path it is bound to. Path is the
// location the document was loaded from or last explicitly saved to; it is
// empty when the tree was adopted from bytes and never saved, in which case
// the document has no default save target.
type Document struct {
	Tree *etree.Document
	Path string
}

// Root returns the tree's root element.
func (d *Document) Root() *etree.Element {
	return d.Tree.Root()
}

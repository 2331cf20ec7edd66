// Package query provides the concrete types.Finder implementation: tag
// scans, compiled path evaluation, and exact attribute matching over a
// parsed document.
package query

import (
	"fmt"

	"github.com/beevik/etree"

	"github.com/ecutools/arxmlkit/pkg/types"
)

// New returns a Finder over parsed documents.
func New() types.Finder {
	return &finder{}
}

type finder struct{}

// ByTag returns every element whose stored tag equals tag exactly, in
// pre-order, the root element included. Namespace prefixes are part of the
// stored form: "ECUC-MODULE-CONFIGURATION-VALUES" and a prefixed variant
// are distinct tags.
func (f *finder) ByTag(doc *etree.Document, tag string) []*etree.Element {
	root := doc.Root()
	if root == nil {
		return nil
	}
	var out []*etree.Element
	collectByTag(root, tag, &out)
	return out
}

func collectByTag(e *etree.Element, tag string, out *[]*etree.Element) {
	if e.FullTag() == tag {
		*out = append(*out, e)
	}
	for _, c := range e.ChildElements() {
		collectByTag(c, tag, out)
	}
}

// ByPath evaluates a path expression anchored at the root element, so
// relative steps address the root's children while rooted forms ("/...",
// "//...") span the whole document, the root itself included. Expressions
// the engine cannot compile surface as INVALID_QUERY.
func (f *finder) ByPath(doc *etree.Document, expr string) ([]*etree.Element, error) {
	p, err := etree.CompilePath(expr)
	if err != nil {
		return nil, &types.Error{
			Kind: types.ErrKindQuery,
			Msg:  fmt.Sprintf("unsupported path expression %q", expr),
			Err:  err,
		}
	}
	root := doc.Root()
	if root == nil {
		return nil, nil
	}
	return root.FindElementsPath(p), nil
}

// ByAttr returns every element carrying an attribute named name whose value
// equals value exactly. Comparison is plain string equality: "1" does not
// match "1.0", "42" does not match "042".
func (f *finder) ByAttr(doc *etree.Document, name, value string) []*etree.Element {
	root := doc.Root()
	if root == nil {
		return nil
	}
	var out []*etree.Element
	collectByAttr(root, name, value, &out)
	return out
}

func collectByAttr(e *etree.Element, name, value string, out *[]*etree.Element) {
	// SelectAttr treats an unprefixed key as a wildcard across namespaces;
	// match on the stored form instead.
	for _, a := range e.Attr {
		if a.FullKey() == name && a.Value == value {
			*out = append(*out, e)
			break
		}
	}
	for _, c := range e.ChildElements() {
		collectByAttr(c, name, value, out)
	}
}

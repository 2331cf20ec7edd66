// Package export renders ARXML documents as JSON-ready dictionaries and
// evaluates JMESPath queries over them. The conversion is read-only and
// never mutates the source tree.
package export

import (
	"strings"

	"github.com/beevik/etree"
)

// Map converts doc into its dictionary form, keyed by the root's local tag.
// Returns nil when the document has no root element.
func Map(doc *etree.Document) map[string]any {
	root := doc.Root()
	if root == nil {
		return nil
	}
	return map[string]any{root.Tag: convert(root)}
}

// convert renders the subtree rooted at e as a JSON-ready value.
//
// Attributes become "@"-prefixed entries under their stored key. Children
// group by local tag, and a tag seen more than once collapses into a list
// in document order. A childless element renders as its trimmed text, with
// a "#text" entry instead when attributes are present, and as nil when it
// has nothing at all.
func convert(e *etree.Element) any {
	m := map[string]any{}

	for _, a := range e.Attr {
		if isNamespaceDecl(a) {
			continue
		}
		m["@"+a.FullKey()] = a.Value
	}

	children := e.ChildElements()
	if len(children) > 0 {
		for _, c := range children {
			key := c.Tag
			val := convert(c)
			prev, seen := m[key]
			if !seen {
				m[key] = val
				continue
			}
			if list, isList := prev.([]any); isList {
				m[key] = append(list, val)
			} else {
				m[key] = []any{prev, val}
			}
		}
		return m
	}

	// Text counts only on leaves. Elements with children drop stray text.
	text := strings.TrimSpace(e.Text())
	if text != "" {
		if len(m) == 0 {
			return text
		}
		m["#text"] = text
		return m
	}
	if len(m) == 0 {
		return nil
	}
	return m
}

// isNamespaceDecl reports whether a is an xmlns declaration rather than a
// data attribute.
func isNamespaceDecl(a etree.Attr) bool {
	return a.Space == "xmlns" || (a.Space == "" && a.Key == "xmlns")
}

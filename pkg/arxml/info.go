package arxml

import (
	"sort"
	"strings"

	"github.com/beevik/etree"

	"github.com/ecutools/arxmlkit/pkg/types"
)

// Info summarizes an element: stored tag form, attributes in element order,
// trimmed character data, and direct child count.
func Info(e *etree.Element) types.ElementInfo {
	info := types.ElementInfo{
		Tag:      e.FullTag(),
		Text:     strings.TrimSpace(e.Text()),
		Children: len(e.ChildElements()),
	}
	for _, a := range e.Attr {
		info.Attrs = append(info.Attrs, types.AttrInfo{Key: a.FullKey(), Value: a.Value})
	}
	return info
}

// Tags returns the sorted set of distinct tag forms appearing in the
// working document, the root included.
func (c *Context) Tags() ([]string, error) {
	if err := c.ensureLoaded("list tags"); err != nil {
		return nil, err
	}
	seen := make(map[string]struct{})
	var walk func(e *etree.Element)
	walk = func(e *etree.Element) {
		seen[e.FullTag()] = struct{}{}
		for _, ch := range e.ChildElements() {
			walk(ch)
		}
	}
	walk(c.doc.Root())

	tags := make([]string, 0, len(seen))
	for tag := range seen {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags, nil
}

package arxml

import (
	"github.com/beevik/etree"

	"github.com/ecutools/arxmlkit/pkg/types"
)

// Context owns at most one working document and applies the store, finder,
// and editor capabilities to it. The zero state is Empty; Load and LoadBytes
// move it to Loaded, and every find, mutate, and save operation requires
// Loaded. A Context is not safe for concurrent use; callers that share one
// across goroutines must serialize externally.
type Context struct {
	store  types.Store
	finder types.Finder
	editor types.Editor
	doc    *Document
}

// Loaded reports whether the context holds a working document.
func (c *Context) Loaded() bool { return c.doc != nil }

// Document returns the working document, nil when Empty.
func (c *Context) Document() *Document { return c.doc }

// Path returns the working document's output path. It is empty when the
// context is Empty or when the document was adopted from bytes and never
// saved to a path.
func (c *Context) Path() string {
	if c.doc == nil {
		return ""
	}
	return c.doc.Path
}

// Load parses the document at path and makes it the working document,
// replacing any prior one. The load path becomes the default save target.
// Valid in any state.
func (c *Context) Load(path string) error {
	tree, err := c.store.Read(path)
	if err != nil {
		return err
	}
	c.doc = &Document{Tree: tree, Path: path}
	return nil
}

// LoadBytes parses data and makes it the working document. The document has
// no output path afterwards: Save fails with NO_OUTPUT_PATH until a SaveTo
// establishes one.
func (c *Context) LoadBytes(data []byte) error {
	tree, err := c.store.ReadBytes(data)
	if err != nil {
		return err
	}
	c.doc = &Document{Tree: tree}
	return nil
}

// Save writes the working document to its output path.
func (c *Context) Save() error {
	if c.doc == nil {
		return &types.Error{Kind: types.ErrKindNoDocument, Msg: "save: no document loaded"}
	}
	if c.doc.Path == "" {
		return &types.Error{Kind: types.ErrKindNoOutput, Msg: "save: no output path"}
	}
	return c.store.Write(c.doc.Tree, c.doc.Path)
}

// SaveTo writes the working document to path. On success path becomes the
// document's output path for subsequent saves.
func (c *Context) SaveTo(path string) error {
	if c.doc == nil {
		return &types.Error{Kind: types.ErrKindNoDocument, Msg: "save: no document loaded"}
	}
	if err := c.store.Write(c.doc.Tree, path); err != nil {
		return err
	}
	c.doc.Path = path
	return nil
}

func (c *Context) ensureLoaded(op string) error {
	if c.doc == nil {
		return &types.Error{Kind: types.ErrKindNoDocument, Msg: op + ": no document loaded"}
	}
	return nil
}

// FindByTag returns every element whose stored tag equals tag exactly, at
// any depth, the root element included, in document order.
func (c *Context) FindByTag(tag string) ([]*etree.Element, error) {
	if err := c.ensureLoaded("find by tag"); err != nil {
		return nil, err
	}
	return c.finder.ByTag(c.doc.Tree, tag), nil
}

// FindByPath evaluates a path expression against the working document.
// Relative steps address the root's children; rooted forms span the whole
// tree. Expressions outside the supported subset fail with INVALID_QUERY.
func (c *Context) FindByPath(expr string) ([]*etree.Element, error) {
	if err := c.ensureLoaded("find by path"); err != nil {
		return nil, err
	}
	return c.finder.ByPath(c.doc.Tree, expr)
}

// FindByAttr returns every element carrying an attribute named name whose
// value equals value exactly.
func (c *Context) FindByAttr(name, value string) ([]*etree.Element, error) {
	if err := c.ensureLoaded("find by attribute"); err != nil {
		return nil, err
	}
	return c.finder.ByAttr(c.doc.Tree, name, value), nil
}

// AddToElements sets name to value on every element in els. Returns the
// number of elements touched, which for an add is all of them.
func (c *Context) AddToElements(els []*etree.Element, name, value string) (int, error) {
	if err := c.ensureLoaded("add attribute"); err != nil {
		return 0, err
	}
	for _, e := range els {
		c.editor.Add(e, name, value)
	}
	return len(els), nil
}

// EditInElements overwrites name on the elements in els that already carry
// it. Returns the number actually modified; elements without the attribute
// are skipped, and skipping is not an error.
func (c *Context) EditInElements(els []*etree.Element, name, value string) (int, error) {
	if err := c.ensureLoaded("edit attribute"); err != nil {
		return 0, err
	}
	n := 0
	for _, e := range els {
		if c.editor.Edit(e, name, value) {
			n++
		}
	}
	return n, nil
}

// DeleteFromElements removes name from the elements in els that carry it.
// Returns the number actually modified.
func (c *Context) DeleteFromElements(els []*etree.Element, name string) (int, error) {
	if err := c.ensureLoaded("delete attribute"); err != nil {
		return 0, err
	}
	n := 0
	for _, e := range els {
		if c.editor.Delete(e, name) {
			n++
		}
	}
	return n, nil
}

// AddByTag sets name to value on every element with the given tag.
func (c *Context) AddByTag(tag, name, value string) (int, error) {
	els, err := c.FindByTag(tag)
	if err != nil {
		return 0, err
	}
	return c.AddToElements(els, name, value)
}

// EditByTag overwrites name on every element with the given tag that
// already carries it.
func (c *Context) EditByTag(tag, name, value string) (int, error) {
	els, err := c.FindByTag(tag)
	if err != nil {
		return 0, err
	}
	return c.EditInElements(els, name, value)
}

// DeleteByTag removes name from every element with the given tag that
// carries it.
func (c *Context) DeleteByTag(tag, name string) (int, error) {
	els, err := c.FindByTag(tag)
	if err != nil {
		return 0, err
	}
	return c.DeleteFromElements(els, name)
}

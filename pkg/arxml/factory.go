package arxml

import (
	"github.com/ecutools/arxmlkit/internal/edit"
	"github.com/ecutools/arxmlkit/internal/query"
	"github.com/ecutools/arxmlkit/internal/store"
	"github.com/ecutools/arxmlkit/pkg/types"
)

// Parts substitutes individual capabilities when constructing a Context.
// Nil fields fall back to the package defaults.
type Parts struct {
	Store  types.Store
	Finder types.Finder
	Editor types.Editor
}

// New returns an Empty context wired with the default file store, finder,
// and editor.
//
// Example:
//
//	ctx := arxml.New()
//	if err := ctx.Load("config.arxml"); err != nil {
//	    log.Fatal(err)
//	}
func New() *Context {
	return NewWithParts(Parts{})
}

// NewWithParts returns an Empty context with any subset of capabilities
// replaced. Use it to substitute fakes in tests or alternate backends.
//
// Example:
//
//	ctx := arxml.NewWithParts(arxml.Parts{Store: fakeStore})
func NewWithParts(p Parts) *Context {
	if p.Store == nil {
		p.Store = store.New()
	}
	if p.Finder == nil {
		p.Finder = query.New()
	}
	if p.Editor == nil {
		p.Editor = edit.New()
	}
	return &Context{store: p.Store, finder: p.Finder, editor: p.Editor}
}

package arxml

import (
	"fmt"
	"os"
	"strconv"

	"github.com/beevik/etree"

	"github.com/ecutools/arxmlkit/pkg/types"
)

// SetAttrByTag loads the document at path, sets name to value on every
// element with the given tag, and saves the result. An empty outPath saves
// back to path. Returns the number of elements touched.
//
// Example:
//
//	n, err := arxml.SetAttrByTag("ecu.arxml", "ECUC-MODULE-CONFIGURATION-VALUES", "version", "1.0", "output/ecu.arxml")
func SetAttrByTag(path, tag, name, value, outPath string) (int, error) {
	return modify(path, outPath, func(ctx *Context) (int, error) {
		return ctx.AddByTag(tag, name, value)
	})
}

// EditAttrByTag loads the document at path, overwrites name on every
// element with the given tag that already carries it, and saves the result.
// An empty outPath saves back to path. Returns the number of elements
// actually modified.
func EditAttrByTag(path, tag, name, value, outPath string) (int, error) {
	return modify(path, outPath, func(ctx *Context) (int, error) {
		return ctx.EditByTag(tag, name, value)
	})
}

// DeleteAttrByTag loads the document at path, removes name from every
// element with the given tag that carries it, and saves the result. An
// empty outPath saves back to path. Returns the number of elements
// actually modified.
func DeleteAttrByTag(path, tag, name, outPath string) (int, error) {
	return modify(path, outPath, func(ctx *Context) (int, error) {
		return ctx.DeleteByTag(tag, name)
	})
}

// modify runs one load-mutate-save cycle around fn.
func modify(path, outPath string, fn func(ctx *Context) (int, error)) (int, error) {
	if !fileExists(path) {
		return 0, &types.Error{Kind: types.ErrKindNotFound, Msg: fmt.Sprintf("document not found: %s", path)}
	}

	ctx := New()
	if err := ctx.Load(path); err != nil {
		return 0, fmt.Errorf("failed to load document %s: %w", path, err)
	}

	n, err := fn(ctx)
	if err != nil {
		return 0, err
	}

	if outPath == "" {
		if err := ctx.Save(); err != nil {
			return n, fmt.Errorf("failed to save document: %w", err)
		}
		return n, nil
	}
	if err := ctx.SaveTo(outPath); err != nil {
		return n, fmt.Errorf("failed to save document to %s: %w", outPath, err)
	}
	return n, nil
}

// Stats returns basic information about the document at path.
//
// Returns a map with string keys for flexibility in future additions.
//
// Example:
//
//	info, err := arxml.Stats("ecu.arxml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("Elements: %s\n", info["elements"])
func Stats(path string) (map[string]string, error) {
	if !fileExists(path) {
		return nil, &types.Error{Kind: types.ErrKindNotFound, Msg: fmt.Sprintf("document not found: %s", path)}
	}

	ctx := New()
	if err := ctx.Load(path); err != nil {
		return nil, fmt.Errorf("failed to load document %s: %w", path, err)
	}

	tags, err := ctx.Tags()
	if err != nil {
		return nil, err
	}

	fi, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat document %s: %w", path, err)
	}

	root := ctx.Document().Root()
	stats := map[string]string{
		"root_tag":    root.FullTag(),
		"elements":    strconv.Itoa(countElements(root)),
		"unique_tags": strconv.Itoa(len(tags)),
		"file_size":   strconv.FormatInt(fi.Size(), 10),
	}
	return stats, nil
}

// countElements counts the elements in the subtree rooted at e, e included.
func countElements(e *etree.Element) int {
	n := 1
	for _, c := range e.ChildElements() {
		n += countElements(c)
	}
	return n
}

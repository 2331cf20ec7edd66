package store

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/beevik/etree"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/ecutools/arxmlkit/pkg/types"
)

// declaration is the processing instruction every saved document carries.
const declaration = `version="1.0" encoding="ISO-8859-1"`

// Write serializes doc to path atomically via temp file + rename. Missing
// parent directories are created first.
func (s *fileStore) Write(doc *etree.Document, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &types.Error{
			Kind: types.ErrKindWrite,
			Msg:  fmt.Sprintf("create output directory %s", dir),
			Err:  err,
		}
	}

	setDeclaration(doc)

	// Create temp file in same directory to ensure atomic rename
	tmpFile, err := os.CreateTemp(dir, ".arxmlkit-tmp-*")
	if err != nil {
		return &types.Error{Kind: types.ErrKindWrite, Msg: "create temp file", Err: err}
	}
	tmpPath := tmpFile.Name()

	// Clean up temp file on error
	defer func() {
		if tmpFile != nil {
			_ = tmpFile.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	// Transcode to ISO-8859-1; runes outside the charset become numeric
	// character references, which parse back to the same rune.
	enc := encoding.HTMLEscapeUnsupported(charmap.ISO8859_1.NewEncoder())
	tw := transform.NewWriter(tmpFile, enc)
	bw := bufio.NewWriter(tw)

	if _, err := doc.WriteTo(bw); err != nil {
		return &types.Error{Kind: types.ErrKindWrite, Msg: "serialize document", Err: err}
	}
	if err := bw.Flush(); err != nil {
		return &types.Error{Kind: types.ErrKindWrite, Msg: "flush document", Err: err}
	}
	if err := tw.Close(); err != nil {
		return &types.Error{Kind: types.ErrKindWrite, Msg: "encode document", Err: err}
	}

	// Sync to disk
	if err := syncFile(tmpFile); err != nil {
		return &types.Error{Kind: types.ErrKindWrite, Msg: "sync temp file", Err: err}
	}

	// Close before rename
	if err := tmpFile.Close(); err != nil {
		return &types.Error{Kind: types.ErrKindWrite, Msg: "close temp file", Err: err}
	}
	tmpFile = nil // Don't clean up in defer

	// Atomic rename
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return &types.Error{
			Kind: types.ErrKindWrite,
			Msg:  fmt.Sprintf("replace %s", path),
			Err:  err,
		}
	}

	return nil
}

// setDeclaration pins the XML declaration to ISO-8859-1, updating an
// existing one in place or inserting one ahead of the root element.
func setDeclaration(doc *etree.Document) {
	for _, tok := range doc.Child {
		if pi, ok := tok.(*etree.ProcInst); ok && pi.Target == "xml" {
			pi.Inst = declaration
			return
		}
	}
	doc.InsertChildAt(0, &etree.ProcInst{Target: "xml", Inst: declaration})
}

package store

import (
	"fmt"
	"os"

	"github.com/beevik/etree"
	"golang.org/x/net/html/charset"

	"github.com/ecutools/arxmlkit/internal/mmfile"
	"github.com/ecutools/arxmlkit/pkg/types"
)

// Read parses the document at path.
func (s *fileStore) Read(path string) (*etree.Document, error) {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return nil, &types.Error{
			Kind: types.ErrKindNotFound,
			Msg:  fmt.Sprintf("document not found: %s", path),
			Err:  err,
		}
	}

	data, unmap, err := mmfile.Map(path)
	if err != nil {
		return nil, &types.Error{
			Kind: types.ErrKindNotFound,
			Msg:  fmt.Sprintf("open document %s", path),
			Err:  err,
		}
	}
	doc, parseErr := parse(data)
	if unmap != nil {
		_ = unmap() // parse copies everything it keeps
	}
	return doc, parseErr
}

// ReadBytes parses a document from an in-memory buffer.
func (s *fileStore) ReadBytes(data []byte) (*etree.Document, error) {
	return parse(data)
}

func parse(data []byte) (*etree.Document, error) {
	doc := etree.NewDocument()
	// Honor the declared charset (ISO-8859-1, windows-1252, ...); undeclared
	// input is treated as UTF-8.
	doc.ReadSettings.CharsetReader = charset.NewReaderLabel
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, &types.Error{Kind: types.ErrKindMalformed, Msg: "malformed document", Err: err}
	}
	if doc.Root() == nil {
		return nil, &types.Error{Kind: types.ErrKindMalformed, Msg: "document has no root element"}
	}
	return doc, nil
}

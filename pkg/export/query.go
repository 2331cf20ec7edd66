package export

import (
	"fmt"

	"github.com/beevik/etree"
	"github.com/jmespath/go-jmespath"

	"github.com/ecutools/arxmlkit/internal/store"
	"github.com/ecutools/arxmlkit/pkg/types"
)

// Query evaluates a JMESPath expression against the dictionary form of doc.
// Tag keys containing hyphens need quoting in the expression, for example
// `AUTOSAR."AR-PACKAGES"."AR-PACKAGE"."SHORT-NAME"`. A missing key yields
// nil, not an error; a malformed expression fails with INVALID_QUERY.
func Query(doc *etree.Document, expr string) (any, error) {
	result, err := jmespath.Search(expr, Map(doc))
	if err != nil {
		return nil, &types.Error{Kind: types.ErrKindQuery, Msg: fmt.Sprintf("invalid query %q", expr), Err: err}
	}
	return result, nil
}

// QueryFile evaluates a JMESPath expression against the document at path.
func QueryFile(path, expr string) (any, error) {
	if !fileExists(path) {
		return nil, &types.Error{Kind: types.ErrKindNotFound, Msg: fmt.Sprintf("document not found: %s", path)}
	}

	doc, err := store.New().Read(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load document %s: %w", path, err)
	}
	return Query(doc, expr)
}

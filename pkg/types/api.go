package types

import (
	"github.com/beevik/etree"
)

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindNotFound   ErrKind = iota // load path does not exist
	ErrKindMalformed                 // content is not well-formed XML
	ErrKindWrite                     // save-side failure (mkdir, create, encode, rename)
	ErrKindQuery                     // path expression outside the supported subset
	ErrKindNoDocument                // operation requires a loaded document
	ErrKindNoOutput                  // save with no output path ever established
)

// String implements the Stringer interface for ErrKind.
func (k ErrKind) String() string {
	switch k {
	case ErrKindNotFound:
		return "NOT_FOUND"
	case ErrKindMalformed:
		return "MALFORMED"
	case ErrKindWrite:
		return "WRITE_FAILURE"
	case ErrKindQuery:
		return "INVALID_QUERY"
	case ErrKindNoDocument:
		return "NO_DOCUMENT"
	case ErrKindNoOutput:
		return "NO_OUTPUT_PATH"
	default:
		return "UNKNOWN"
	}
}

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports kind equality, so errors.Is(err, types.ErrNotFound) matches any
// wrapped *Error of the same kind, not just the sentinel itself.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// Sentinels commonly returned by implementations.
var (
	// ErrNotFound indicates the document path does not exist.
	ErrNotFound = &Error{Kind: ErrKindNotFound, Msg: "document not found"}
	// ErrMalformed indicates the content could not be parsed as XML.
	ErrMalformed = &Error{Kind: ErrKindMalformed, Msg: "malformed document"}
	// ErrWriteFailed indicates the document could not be written out.
	ErrWriteFailed = &Error{Kind: ErrKindWrite, Msg: "write failed"}
	// ErrBadQuery indicates a path expression outside the supported subset.
	ErrBadQuery = &Error{Kind: ErrKindQuery, Msg: "invalid query"}
	// ErrNoDocument indicates an operation was attempted with no document loaded.
	ErrNoDocument = &Error{Kind: ErrKindNoDocument, Msg: "no document loaded"}
	// ErrNoOutput indicates a save with no output path ever established.
	ErrNoOutput = &Error{Kind: ErrKindNoOutput, Msg: "no output path"}
)

// -----------------------------------------------------------------------------
// Core Metadata
// -----------------------------------------------------------------------------

// AttrInfo is one attribute as stored on an element: namespace-prefixed key
// plus value. Order within ElementInfo.Attrs is the element's own order.
type AttrInfo struct {
	Key   string `json:"key"` // key as stored, e.g. "UUID" or "xsi:type"
	Value string `json:"value"`
}

// ElementInfo describes one element without exposing tree internals.
type ElementInfo struct {
	Tag      string     `json:"tag"`             // tag in its stored form, e.g. "AR-PACKAGE"
	Attrs    []AttrInfo `json:"attrs,omitempty"` // attributes in element order
	Text     string     `json:"text,omitempty"`  // trimmed character data, "" when none
	Children int        `json:"children"`        // number of direct child elements
}

// -----------------------------------------------------------------------------
// Capability contracts
// -----------------------------------------------------------------------------

// Store reads documents from and writes documents to backing storage.
// Implementations report failures through typed errors: ErrKindNotFound for a
// missing path, ErrKindMalformed for unparsable content, ErrKindWrite for any
// save-side failure.
type Store interface {
	// Read parses the document at path.
	Read(path string) (*etree.Document, error)

	// ReadBytes parses a document from an in-memory buffer.
	ReadBytes(data []byte) (*etree.Document, error)

	// Write serializes doc to path, creating missing parent directories.
	// The output carries an XML declaration and ISO-8859-1 encoding.
	Write(doc *etree.Document, path string) error
}

// Finder locates elements in a parsed document. Results may be empty; an
// empty result is not an error.
type Finder interface {
	// ByTag returns every element whose stored tag equals tag exactly,
	// at any depth, the root element included, in document order.
	ByTag(doc *etree.Document, tag string) []*etree.Element

	// ByPath evaluates a path expression against the document. Expressions
	// the engine cannot compile surface as ErrKindQuery, never as a
	// silently empty result.
	ByPath(doc *etree.Document, expr string) ([]*etree.Element, error)

	// ByAttr returns every element carrying an attribute named name whose
	// value equals value exactly. No coercion: "1" does not match "1.0".
	ByAttr(doc *etree.Document, name, value string) []*etree.Element
}

// Editor mutates attributes on a single element, in place. Absence of an
// attribute is a reportable outcome, never an error.
type Editor interface {
	// Add sets name to value, inserting or overwriting as needed.
	Add(e *etree.Element, name, value string)

	// Edit overwrites name only if it already exists. Returns whether the
	// element was modified.
	Edit(e *etree.Element, name, value string) bool

	// Delete removes name if present. Returns whether the element was
	// modified.
	Delete(e *etree.Element, name string) bool
}

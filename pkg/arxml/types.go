package arxml

import "github.com/ecutools/arxmlkit/pkg/types"

// Re-export commonly used types from pkg/types so users only need to import pkg/arxml

// Metadata types.
type (
	ElementInfo = types.ElementInfo
	AttrInfo    = types.AttrInfo
)

// Capability contracts, for substitution via Parts.
type (
	Store  = types.Store
	Finder = types.Finder
	Editor = types.Editor
)

// Error types.
type (
	Error   = types.Error
	ErrKind = types.ErrKind
)

// Error kind constants.
const (
	ErrKindNotFound   = types.ErrKindNotFound
	ErrKindMalformed  = types.ErrKindMalformed
	ErrKindWrite      = types.ErrKindWrite
	ErrKindQuery      = types.ErrKindQuery
	ErrKindNoDocument = types.ErrKindNoDocument
	ErrKindNoOutput   = types.ErrKindNoOutput
)

// Common error sentinels.
var (
	ErrNotFound    = types.ErrNotFound
	ErrMalformed   = types.ErrMalformed
	ErrWriteFailed = types.ErrWriteFailed
	ErrBadQuery    = types.ErrBadQuery
	ErrNoDocument  = types.ErrNoDocument
	ErrNoOutput    = types.ErrNoOutput
)

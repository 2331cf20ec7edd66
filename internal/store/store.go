// Package store provides the concrete types.Store implementation. The
// exported constructor is used by the public wrapper (pkg/arxml or CLI) to
// obtain a Store without exposing the parsing and serialization machinery
// directly.
package store

import (
	"github.com/ecutools/arxmlkit/pkg/types"
)

// New returns a Store backed by the local filesystem.
func New() types.Store {
	return &fileStore{}
}

// fileStore reads documents via memory mapping and writes them atomically.
type fileStore struct{}

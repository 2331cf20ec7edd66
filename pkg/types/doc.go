// Package types defines the contracts and core types for reading, querying,
// editing, and writing ARXML (AUTOSAR XML) documents.
//
// This package only exposes interfaces, metadata structs, and the typed error
// taxonomy. Separate internal packages provide the concrete implementations;
// pkg/arxml composes them into the high-level document API.
//
// Design goals:
//   - Capability interfaces with substitutable implementations.
//   - Typed errors with stable categories (not-found/malformed/write/...).
//   - Exact string semantics for tags and attribute values; no coercion.
package types

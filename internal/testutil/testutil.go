// Package testutil provides shared fixtures and helpers for arxmlkit tests.
package testutil

import (
	"io"
	"os"
	"path/filepath"
	"testing"
)

// SampleDocument is the committed ARXML fixture, relative to the repository
// root. Use the Setup helpers instead of hardcoding paths in test files.
const SampleDocument = "testdata/sample.arxml"

// SetupDocument copies the sample fixture into a temp directory and returns
// the copy's path, so tests can mutate and overwrite it freely.
//
// Example:
//
//	path := testutil.SetupDocument(t)
//	ctx := arxml.New()
//	err := ctx.Load(path)
func SetupDocument(t *testing.T) string {
	t.Helper()
	return SetupDocumentFrom(t, SampleDocument, "doc.arxml")
}

// SetupDocumentFrom copies the fixture at sourcePath into a temp directory
// under tempName and returns the copy's path.
// Calls t.Skip if the source fixture is not found.
func SetupDocumentFrom(t *testing.T, sourcePath, tempName string) string {
	t.Helper()

	src := resolveTestPath(t, sourcePath)
	dst := filepath.Join(t.TempDir(), tempName)
	copyFile(t, src, dst)
	return dst
}

// resolveTestPath attempts to find a fixture by trying multiple path
// resolutions, since tests run from their own package directories.
func resolveTestPath(t *testing.T, relativePath string) string {
	t.Helper()

	candidates := []string{
		relativePath,          // from repo root
		"../" + relativePath,  // from a package one level deep
		"../../" + relativePath,
		"../../../" + relativePath,
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	t.Skipf("fixture not found at any candidate path starting from: %s", relativePath)
	return "" // unreachable
}

// copyFile copies a fixture from src to dst.
// Calls t.Fatal if the copy fails.
func copyFile(t *testing.T, src, dst string) {
	t.Helper()

	srcFile, err := os.Open(src)
	if err != nil {
		t.Skipf("fixture not found: %v", err)
	}
	defer srcFile.Close()

	dstFile, err := os.Create(dst)
	if err != nil {
		t.Fatalf("Failed to create temp fixture: %v", err)
	}
	defer dstFile.Close()

	if _, copyErr := io.Copy(dstFile, srcFile); copyErr != nil {
		t.Fatalf("Failed to copy fixture: %v", copyErr)
	}
}

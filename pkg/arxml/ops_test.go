package arxml_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ecutools/arxmlkit/internal/testutil"
	"github.com/ecutools/arxmlkit/internal/testutil/arxmlval"
	"github.com/ecutools/arxmlkit/pkg/arxml"
)

var firstModulePath = []string{"AR-PACKAGES", "AR-PACKAGE", "ELEMENTS", "ECUC-MODULE-CONFIGURATION-VALUES"}

// TestSetAttrByTag_Simple tests the basic set-and-save cycle.
func TestSetAttrByTag_Simple(t *testing.T) {
	src := testutil.SetupDocument(t)

	// Set a fresh attribute on both module configurations
	n, err := arxml.SetAttrByTag(src, "ECUC-MODULE-CONFIGURATION-VALUES", "version", "1.2.3", "")
	if err != nil {
		t.Fatalf("SetAttrByTag failed: %v", err)
	}
	if n != 2 {
		t.Errorf("Expected 2 elements touched, got %d", n)
	}

	// Verify the saved document
	v, err := arxmlval.New(src)
	if err != nil {
		t.Fatalf("Failed to read result: %v", err)
	}
	v.AssertCountByTag(t, "ECUC-MODULE-CONFIGURATION-VALUES", 2)
	v.AssertAttr(t, firstModulePath, "version", "1.2.3")
}

// TestSetAttrByTag_Overwrite tests that setting an existing attribute
// replaces its value.
func TestSetAttrByTag_Overwrite(t *testing.T) {
	src := testutil.SetupDocument(t)

	n, err := arxml.SetAttrByTag(src, "AR-PACKAGE", "UUID", "00000000-0000-0000-0000-000000000000", "")
	if err != nil {
		t.Fatalf("SetAttrByTag failed: %v", err)
	}
	if n != 1 {
		t.Errorf("Expected 1 element touched, got %d", n)
	}

	v, err := arxmlval.New(src)
	if err != nil {
		t.Fatalf("Failed to read result: %v", err)
	}
	v.AssertAttr(t, []string{"AR-PACKAGES", "AR-PACKAGE"}, "UUID", "00000000-0000-0000-0000-000000000000")
}

// TestSetAttrByTag_OutputPath tests writing to a separate output file.
func TestSetAttrByTag_OutputPath(t *testing.T) {
	src := testutil.SetupDocument(t)
	out := filepath.Join(t.TempDir(), "out", "result.arxml")

	n, err := arxml.SetAttrByTag(src, "ECUC-CONTAINER-VALUE", "DEST", "ecuc", out)
	if err != nil {
		t.Fatalf("SetAttrByTag failed: %v", err)
	}
	if n != 2 {
		t.Errorf("Expected 2 elements touched, got %d", n)
	}

	// Source must be untouched
	srcVal, err := arxmlval.New(src)
	if err != nil {
		t.Fatalf("Failed to read source: %v", err)
	}
	srcVal.AssertNoAttr(t, append(firstModulePath, "CONTAINERS", "ECUC-CONTAINER-VALUE"), "DEST")

	// Output carries the change
	outVal, err := arxmlval.New(out)
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}
	outVal.AssertAttr(t, append(firstModulePath, "CONTAINERS", "ECUC-CONTAINER-VALUE"), "DEST", "ecuc")
}

// TestSetAttrByTag_FileNotFound tests the error for a missing document.
func TestSetAttrByTag_FileNotFound(t *testing.T) {
	_, err := arxml.SetAttrByTag("nonexistent.arxml", "ITEM", "k", "v", "")
	if err == nil {
		t.Fatal("Expected error for non-existent document")
	}
	if !errors.Is(err, arxml.ErrNotFound) {
		t.Errorf("Expected NOT_FOUND error, got: %v", err)
	}
}

// TestEditAttrByTag_OnlyExisting tests that edits skip elements without
// the attribute.
func TestEditAttrByTag_OnlyExisting(t *testing.T) {
	src := testutil.SetupDocument(t)

	// SHORT-NAME elements carry no attributes, so nothing is modified
	n, err := arxml.EditAttrByTag(src, "SHORT-NAME", "UUID", "x", "")
	if err != nil {
		t.Fatalf("EditAttrByTag failed: %v", err)
	}
	if n != 0 {
		t.Errorf("Expected 0 elements modified, got %d", n)
	}

	// Both container values carry a UUID
	n, err = arxml.EditAttrByTag(src, "ECUC-CONTAINER-VALUE", "UUID", "edited", "")
	if err != nil {
		t.Fatalf("EditAttrByTag failed: %v", err)
	}
	if n != 2 {
		t.Errorf("Expected 2 elements modified, got %d", n)
	}

	v, err := arxmlval.New(src)
	if err != nil {
		t.Fatalf("Failed to read result: %v", err)
	}
	v.AssertAttr(t, append(firstModulePath, "CONTAINERS", "ECUC-CONTAINER-VALUE"), "UUID", "edited")
}

// TestDeleteAttrByTag tests attribute removal.
func TestDeleteAttrByTag(t *testing.T) {
	src := testutil.SetupDocument(t)

	n, err := arxml.DeleteAttrByTag(src, "ECUC-MODULE-CONFIGURATION-VALUES", "UUID", "")
	if err != nil {
		t.Fatalf("DeleteAttrByTag failed: %v", err)
	}
	if n != 2 {
		t.Errorf("Expected 2 elements modified, got %d", n)
	}

	v, err := arxmlval.New(src)
	if err != nil {
		t.Fatalf("Failed to read result: %v", err)
	}
	v.AssertNoAttr(t, firstModulePath, "UUID")

	// Unrelated UUIDs survive
	v.AssertAttr(t, []string{"AR-PACKAGES", "AR-PACKAGE"}, "UUID", "6eed0f5c-2f4b-4e3a-9c1d-8b7a5e4d3c2b")

	// Deleting again finds nothing to remove
	n, err = arxml.DeleteAttrByTag(src, "ECUC-MODULE-CONFIGURATION-VALUES", "UUID", "")
	if err != nil {
		t.Fatalf("Second DeleteAttrByTag failed: %v", err)
	}
	if n != 0 {
		t.Errorf("Expected 0 elements modified on repeat delete, got %d", n)
	}
}

// TestStats tests document info retrieval.
func TestStats(t *testing.T) {
	src := testutil.SetupDocument(t)

	info, err := arxml.Stats(src)
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}

	if info["root_tag"] != "AUTOSAR" {
		t.Errorf("root_tag = %q, want AUTOSAR", info["root_tag"])
	}
	if info["elements"] != "15" {
		t.Errorf("elements = %q, want 15", info["elements"])
	}
	if info["unique_tags"] != "8" {
		t.Errorf("unique_tags = %q, want 8", info["unique_tags"])
	}
	if info["file_size"] == "" {
		t.Error("Stats missing file_size")
	}
}

// TestStats_FileNotFound tests info retrieval on a missing document.
func TestStats_FileNotFound(t *testing.T) {
	_, err := arxml.Stats("nonexistent.arxml")
	if !errors.Is(err, arxml.ErrNotFound) {
		t.Errorf("Expected NOT_FOUND error, got: %v", err)
	}
}

// TestStructuralRoundTrip tests that a load and save cycle preserves the
// document structure even though the serialized bytes may differ.
func TestStructuralRoundTrip(t *testing.T) {
	src := testutil.SetupDocument(t)
	out := filepath.Join(t.TempDir(), "copy.arxml")

	ctx := arxml.New()
	if err := ctx.Load(src); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if err := ctx.SaveTo(out); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	original, err := arxmlval.New(src)
	if err != nil {
		t.Fatalf("Failed to read source: %v", err)
	}
	copied, err := arxmlval.New(out)
	if err != nil {
		t.Fatalf("Failed to read copy: %v", err)
	}

	result := original.Compare(copied)
	if !result.Match {
		t.Errorf("Round trip changed the document structure: %v", result.Mismatches)
	}

	// The copy must declare the working encoding
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("Failed to read copy bytes: %v", err)
	}
	want := `<?xml version="1.0" encoding="ISO-8859-1"?>`
	if len(data) < len(want) || string(data[:len(want)]) != want {
		t.Errorf("Copy does not start with the ISO-8859-1 declaration")
	}
}

package export_test

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/beevik/etree"
	"github.com/google/go-cmp/cmp"

	"github.com/ecutools/arxmlkit/pkg/export"
	"github.com/ecutools/arxmlkit/pkg/types"
)

func parse(t *testing.T, src string) *etree.Document {
	t.Helper()
	doc := etree.NewDocument()
	if err := doc.ReadFromString(src); err != nil {
		t.Fatalf("Failed to parse test document: %v", err)
	}
	return doc
}

func TestMapGroupsRepeatedTags(t *testing.T) {
	doc := parse(t, `<R><C n="1"/><C n="2"/><D/></R>`)

	want := map[string]any{
		"R": map[string]any{
			"C": []any{
				map[string]any{"@n": "1"},
				map[string]any{"@n": "2"},
			},
			"D": nil,
		},
	}
	if diff := cmp.Diff(want, export.Map(doc)); diff != "" {
		t.Errorf("Map mismatch (-want +got):\n%s", diff)
	}
}

func TestMapLeafForms(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want map[string]any
	}{
		{
			name: "TextOnly",
			src:  `<R><NAME> Engine </NAME></R>`,
			want: map[string]any{"R": map[string]any{"NAME": "Engine"}},
		},
		{
			name: "TextWithAttrs",
			src:  `<R><V unit="ms">10</V></R>`,
			want: map[string]any{"R": map[string]any{"V": map[string]any{"@unit": "ms", "#text": "10"}}},
		},
		{
			name: "AttrsOnly",
			src:  `<R><E id="1"/></R>`,
			want: map[string]any{"R": map[string]any{"E": map[string]any{"@id": "1"}}},
		},
		{
			name: "Empty",
			src:  `<R><E/></R>`,
			want: map[string]any{"R": map[string]any{"E": nil}},
		},
		{
			name: "WhitespaceOnlyIsEmpty",
			src:  "<R><E>\n  </E></R>",
			want: map[string]any{"R": map[string]any{"E": nil}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, export.Map(parse(t, tt.src))); diff != "" {
				t.Errorf("Map mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMapStripsTagPrefixes(t *testing.T) {
	// Tag keys lose their namespace prefix, attribute keys keep theirs, and
	// xmlns declarations disappear entirely.
	doc := parse(t, `<ar:R xmlns:ar="http://example.com/ar" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance"><ar:C xsi:type="LEAF"/></ar:R>`)

	want := map[string]any{
		"R": map[string]any{
			"C": map[string]any{"@xsi:type": "LEAF"},
		},
	}
	if diff := cmp.Diff(want, export.Map(doc)); diff != "" {
		t.Errorf("Map mismatch (-want +got):\n%s", diff)
	}
}

func TestMapDropsTextAroundChildren(t *testing.T) {
	doc := parse(t, `<R>stray<C/></R>`)

	want := map[string]any{"R": map[string]any{"C": nil}}
	if diff := cmp.Diff(want, export.Map(doc)); diff != "" {
		t.Errorf("Map mismatch (-want +got):\n%s", diff)
	}
}

func TestJSONDeterministic(t *testing.T) {
	doc := parse(t, `<R b="2" a="1"/>`)

	got, err := export.JSON(doc)
	if err != nil {
		t.Fatalf("JSON failed: %v", err)
	}

	want := `{
  "R": {
    "@a": "1",
    "@b": "2"
  }
}`
	if string(got) != want {
		t.Errorf("JSON output mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestQuery(t *testing.T) {
	doc := parse(t, `<AUTOSAR><AR-PACKAGES><AR-PACKAGE><SHORT-NAME>EcucDefs</SHORT-NAME></AR-PACKAGE></AR-PACKAGES></AUTOSAR>`)

	// Hyphenated keys need quoting in JMESPath expressions.
	result, err := export.Query(doc, `AUTOSAR."AR-PACKAGES"."AR-PACKAGE"."SHORT-NAME"`)
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if result != "EcucDefs" {
		t.Errorf("Query result = %v, want EcucDefs", result)
	}
}

func TestQueryProjection(t *testing.T) {
	doc := parse(t, `<AUTOSAR><ELEMENTS><MODULE><SHORT-NAME>CanIf</SHORT-NAME></MODULE><MODULE><SHORT-NAME>CanNm</SHORT-NAME></MODULE></ELEMENTS></AUTOSAR>`)

	result, err := export.Query(doc, `AUTOSAR.ELEMENTS.MODULE[*]."SHORT-NAME"`)
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if diff := cmp.Diff([]any{"CanIf", "CanNm"}, result); diff != "" {
		t.Errorf("Query result mismatch (-want +got):\n%s", diff)
	}
}

func TestQueryMissingKeyIsNil(t *testing.T) {
	doc := parse(t, `<R><C/></R>`)

	result, err := export.Query(doc, "NOPE")
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if result != nil {
		t.Errorf("Query result = %v, want nil", result)
	}
}

func TestQueryInvalidExpression(t *testing.T) {
	doc := parse(t, `<R/>`)

	_, err := export.Query(doc, "R[")
	if !errors.Is(err, types.ErrBadQuery) {
		t.Errorf("Expected INVALID_QUERY error, got: %v", err)
	}
}

func TestToJSONFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "doc.arxml")
	out := filepath.Join(dir, "doc.json")

	content := `<?xml version="1.0" encoding="ISO-8859-1"?><AUTOSAR><X>1</X></AUTOSAR>`
	if err := os.WriteFile(src, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test document: %v", err)
	}

	if err := export.ToJSONFile(src, out); err != nil {
		t.Fatalf("ToJSONFile failed: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("Failed to read JSON output: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}
	want := map[string]any{"AUTOSAR": map[string]any{"X": "1"}}
	if diff := cmp.Diff(want, m); diff != "" {
		t.Errorf("JSON content mismatch (-want +got):\n%s", diff)
	}
}

func TestToJSONStringFileNotFound(t *testing.T) {
	_, err := export.ToJSONString("nonexistent.arxml")
	if !errors.Is(err, types.ErrNotFound) {
		t.Errorf("Expected NOT_FOUND error, got: %v", err)
	}
}

func TestQueryFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "doc.arxml")
	content := `<AUTOSAR><ELEMENTS><MODULE><SHORT-NAME>CanIf</SHORT-NAME></MODULE></ELEMENTS></AUTOSAR>`
	if err := os.WriteFile(src, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test document: %v", err)
	}

	result, err := export.QueryFile(src, `AUTOSAR.ELEMENTS.MODULE."SHORT-NAME"`)
	if err != nil {
		t.Fatalf("QueryFile failed: %v", err)
	}
	if result != "CanIf" {
		t.Errorf("QueryFile result = %v, want CanIf", result)
	}
}

package export

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/beevik/etree"

	"github.com/ecutools/arxmlkit/internal/store"
	"github.com/ecutools/arxmlkit/pkg/types"
)

// JSON renders the dictionary form of doc with two-space indentation.
func JSON(doc *etree.Document) ([]byte, error) {
	data, err := json.MarshalIndent(Map(doc), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode JSON: %w", err)
	}
	return data, nil
}

// ToJSONString renders the document at path as a JSON string.
//
// Example:
//
//	content, err := export.ToJSONString("ecu.arxml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(content)
func ToJSONString(path string) (string, error) {
	if !fileExists(path) {
		return "", &types.Error{Kind: types.ErrKindNotFound, Msg: fmt.Sprintf("document not found: %s", path)}
	}

	doc, err := store.New().Read(path)
	if err != nil {
		return "", fmt.Errorf("failed to load document %s: %w", path, err)
	}

	data, err := JSON(doc)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// ToJSONFile renders the document at docPath as JSON and writes the result
// to jsonPath.
//
// Example:
//
//	err := export.ToJSONFile("ecu.arxml", "ecu.json")
func ToJSONFile(docPath, jsonPath string) error {
	content, err := ToJSONString(docPath)
	if err != nil {
		return err
	}

	if err := os.WriteFile(jsonPath, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write JSON file %s: %w", jsonPath, err)
	}
	return nil
}

// fileExists checks if a file exists and is not a directory.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

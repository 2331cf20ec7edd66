package arxml_test

import (
	"fmt"

	"github.com/ecutools/arxmlkit/pkg/arxml"
)

// Example shows the load, mutate, save lifecycle.
func Example() {
	ctx := arxml.New()
	if err := ctx.Load("ecu.arxml"); err != nil {
		fmt.Printf("Load failed: %v\n", err)
		return
	}

	n, err := ctx.AddByTag("ECUC-MODULE-CONFIGURATION-VALUES", "verified", "true")
	if err != nil {
		fmt.Printf("Add failed: %v\n", err)
		return
	}
	fmt.Printf("Marked %d modules\n", n)

	if err := ctx.Save(); err != nil {
		fmt.Printf("Save failed: %v\n", err)
	}
}

// ExampleSetAttrByTag demonstrates the one-shot form.
func ExampleSetAttrByTag() {
	n, err := arxml.SetAttrByTag("ecu.arxml", "ECUC-CONTAINER-VALUE", "DEST", "ecuc", "out/ecu.arxml")
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Printf("Touched %d containers\n", n)
}

// ExampleStats demonstrates document info retrieval.
func ExampleStats() {
	info, err := arxml.Stats("ecu.arxml")
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Printf("%s elements under <%s>\n", info["elements"], info["root_tag"])
}

// ExampleContext_FindByTag demonstrates tag lookup on an in-memory document.
func ExampleContext_FindByTag() {
	ctx := arxml.New()
	if err := ctx.LoadBytes([]byte(`<ROOT><ITEM id="1"/><ITEM/></ROOT>`)); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	items, _ := ctx.FindByTag("ITEM")
	fmt.Println(len(items))
	// Output: 2
}

// ExampleContext_EditInElements shows that edits count only elements that
// already carry the attribute.
func ExampleContext_EditInElements() {
	ctx := arxml.New()
	if err := ctx.LoadBytes([]byte(`<ROOT><ITEM id="1"/><ITEM/></ROOT>`)); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	items, _ := ctx.FindByTag("ITEM")
	n, _ := ctx.EditInElements(items, "id", "9")
	fmt.Printf("%d of %d modified\n", n, len(items))
	// Output: 1 of 2 modified
}

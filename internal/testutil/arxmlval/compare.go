package arxmlval

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"
)

// Mismatch describes one structural difference between two documents.
type Mismatch struct {
	Category string // "tag", "attr", "text", "children"
	Path     string // slash-joined tag path to the differing element
	Message  string
}

// ComparisonResult collects the outcome of a structural comparison.
type ComparisonResult struct {
	Match      bool
	Mismatches []Mismatch
}

// Compare performs a deep, recursive comparison of the two documents'
// logical structure: element hierarchy, stored tag forms, attribute order
// and values, and character data (trimmed). Formatting differences between
// the serialized files do not register.
//
// Example:
//
//	before := arxmlval.Must(arxmlval.New(inPath))
//	after := arxmlval.Must(arxmlval.New(outPath))
//	result := before.Compare(after)
//	if !result.Match {
//	    for _, m := range result.Mismatches {
//	        t.Errorf("[%s] %s: %s", m.Category, m.Path, m.Message)
//	    }
//	}
func (v *Validator) Compare(other *Validator) *ComparisonResult {
	result := &ComparisonResult{Match: true}
	compareElements(v.doc.Root(), other.doc.Root(), v.doc.Root().FullTag(), result)
	return result
}

func compareElements(a, b *etree.Element, path string, result *ComparisonResult) {
	if a.FullTag() != b.FullTag() {
		result.add("tag", path, fmt.Sprintf("tag %q vs %q", a.FullTag(), b.FullTag()))
		return
	}

	if len(a.Attr) != len(b.Attr) {
		result.add("attr", path, fmt.Sprintf("%d attributes vs %d", len(a.Attr), len(b.Attr)))
	} else {
		for i := range a.Attr {
			ka, kb := a.Attr[i].FullKey(), b.Attr[i].FullKey()
			if ka != kb {
				result.add("attr", path, fmt.Sprintf("attribute %d is %q vs %q", i, ka, kb))
				continue
			}
			if a.Attr[i].Value != b.Attr[i].Value {
				result.add("attr", path, fmt.Sprintf("@%s = %q vs %q", ka, a.Attr[i].Value, b.Attr[i].Value))
			}
		}
	}

	ta, tb := strings.TrimSpace(a.Text()), strings.TrimSpace(b.Text())
	if ta != tb {
		result.add("text", path, fmt.Sprintf("text %q vs %q", ta, tb))
	}

	ca, cb := a.ChildElements(), b.ChildElements()
	if len(ca) != len(cb) {
		result.add("children", path, fmt.Sprintf("%d child elements vs %d", len(ca), len(cb)))
		return
	}
	for i := range ca {
		compareElements(ca[i], cb[i], path+"/"+ca[i].FullTag(), result)
	}
}

func (r *ComparisonResult) add(category, path, message string) {
	r.Match = false
	r.Mismatches = append(r.Mismatches, Mismatch{Category: category, Path: path, Message: message})
}

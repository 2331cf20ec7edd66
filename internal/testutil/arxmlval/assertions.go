package arxmlval

import (
	"testing"
)

// AssertElementExists checks an element exists at the given tag path.
//
// Example:
//
//	v.AssertElementExists(t, []string{"AR-PACKAGES", "AR-PACKAGE"})
func (v *Validator) AssertElementExists(t *testing.T, path []string) {
	t.Helper()
	if _, err := v.GetElement(path); err != nil {
		t.Errorf("Element %s should exist but doesn't: %v", pathString(path), err)
	}
}

// AssertElementNotExists checks no element exists at the given tag path.
func (v *Validator) AssertElementNotExists(t *testing.T, path []string) {
	t.Helper()
	if _, err := v.GetElement(path); err == nil {
		t.Errorf("Element %s should not exist but does", pathString(path))
	}
}

// AssertAttr checks the element at path carries an attribute with the given
// stored name and exact value.
func (v *Validator) AssertAttr(t *testing.T, path []string, name, want string) {
	t.Helper()
	e, err := v.GetElement(path)
	if err != nil {
		t.Errorf("Element %s not found: %v", pathString(path), err)
		return
	}
	for _, a := range e.Attr {
		if a.FullKey() == name {
			if a.Value != want {
				t.Errorf("%s@%s = %q, want %q", pathString(path), name, a.Value, want)
			}
			return
		}
	}
	t.Errorf("%s has no attribute %q", pathString(path), name)
}

// AssertNoAttr checks the element at path does not carry the attribute.
func (v *Validator) AssertNoAttr(t *testing.T, path []string, name string) {
	t.Helper()
	e, err := v.GetElement(path)
	if err != nil {
		t.Errorf("Element %s not found: %v", pathString(path), err)
		return
	}
	for _, a := range e.Attr {
		if a.FullKey() == name {
			t.Errorf("%s should not carry attribute %q, has value %q", pathString(path), name, a.Value)
			return
		}
	}
}

// AssertCountByTag checks how many elements carry the stored tag.
func (v *Validator) AssertCountByTag(t *testing.T, tag string, want int) {
	t.Helper()
	if got := v.CountByTag(tag); got != want {
		t.Errorf("count of <%s> = %d, want %d", tag, got, want)
	}
}

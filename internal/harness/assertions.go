package harness

import (
	"fmt"
	"slices"
	"strings"

	"github.com/roach88/jointpanel/internal/ir"
)

// AssertionError is returned when an assertion fails.
// It includes the layout's groups to help debug the failure.
type AssertionError struct {
	Type     string
	Expected string
	Actual   string
	Groups   [][]string
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	var buf strings.Builder
	fmt.Fprintf(&buf, "Assertion failed: %s\n", e.Type)
	fmt.Fprintf(&buf, "  Expected: %s\n", e.Expected)
	fmt.Fprintf(&buf, "  Actual: %s\n", e.Actual)

	fmt.Fprintf(&buf, "\nGroups:\n")
	for i, g := range e.Groups {
		fmt.Fprintf(&buf, "  [%d] %s\n", i+1, strings.Join(g, ", "))
	}
	return buf.String()
}

func evaluate(layout ir.Layout, a Assertion) error {
	switch a.Type {
	case AssertGroupCount:
		return assertGroupCount(layout, a)
	case AssertPaired:
		return assertPaired(layout, a)
	case AssertSingleton:
		return assertSingleton(layout, a)
	case AssertCategory:
		return assertCategory(layout, a)
	case AssertPrefixTrim:
		return assertPrefixTrim(layout, a)
	}
	return fmt.Errorf("unknown assertion type %q", a.Type)
}

func groupNames(layout ir.Layout) [][]string {
	out := make([][]string, len(layout.Groups))
	for i, g := range layout.Groups {
		out[i] = g.Names()
	}
	return out
}

// findGroup returns the group holding joint, or false.
func findGroup(layout ir.Layout, joint string) (ir.Group, bool) {
	for _, g := range layout.Groups {
		if slices.Contains(g.Names(), joint) {
			return g, true
		}
	}
	return ir.Group{}, false
}

func assertGroupCount(layout ir.Layout, a Assertion) error {
	if len(layout.Groups) == a.Count {
		return nil
	}
	return &AssertionError{
		Type:     AssertGroupCount,
		Expected: fmt.Sprintf("%d groups", a.Count),
		Actual:   fmt.Sprintf("%d groups", len(layout.Groups)),
		Groups:   groupNames(layout),
	}
}

func assertPaired(layout ir.Layout, a Assertion) error {
	g, ok := findGroup(layout, a.Joints[0])
	if ok && slices.Equal(g.Names(), a.Joints) {
		return nil
	}
	actual := "joint not in layout"
	if ok {
		actual = fmt.Sprintf("group %v", g.Names())
	}
	return &AssertionError{
		Type:     AssertPaired,
		Expected: fmt.Sprintf("pair %v", a.Joints),
		Actual:   actual,
		Groups:   groupNames(layout),
	}
}

func assertSingleton(layout ir.Layout, a Assertion) error {
	g, ok := findGroup(layout, a.Joint)
	if ok && !g.Paired() {
		return nil
	}
	actual := "joint not in layout"
	if ok {
		actual = fmt.Sprintf("group %v", g.Names())
	}
	return &AssertionError{
		Type:     AssertSingleton,
		Expected: fmt.Sprintf("%s alone", a.Joint),
		Actual:   actual,
		Groups:   groupNames(layout),
	}
}

func assertCategory(layout ir.Layout, a Assertion) error {
	want, err := ir.ParseCategory(a.Category)
	if err != nil {
		return err
	}
	g, ok := findGroup(layout, a.Joint)
	if ok && g.Category == want {
		return nil
	}
	actual := "joint not in layout"
	if ok {
		actual = g.Category.String()
	}
	return &AssertionError{
		Type:     AssertCategory,
		Expected: fmt.Sprintf("%s in category %s", a.Joint, want),
		Actual:   actual,
		Groups:   groupNames(layout),
	}
}

func assertPrefixTrim(layout ir.Layout, a Assertion) error {
	if layout.PrefixTrim == a.Count {
		return nil
	}
	return &AssertionError{
		Type:     AssertPrefixTrim,
		Expected: fmt.Sprintf("prefix trim %d", a.Count),
		Actual:   fmt.Sprintf("prefix trim %d", layout.PrefixTrim),
		Groups:   groupNames(layout),
	}
}

package ir

import (
	"fmt"
	"strings"
)

// Category is the display category assigned to a joint group.
type Category int

const (
	CategoryDefault Category = iota
	CategoryArm
	CategoryLeg
)

var categoryNames = [...]string{"default", "arm", "leg"}

func (c Category) String() string {
	if c < CategoryDefault || c > CategoryLeg {
		return categoryNames[CategoryDefault]
	}
	return categoryNames[c]
}

// ParseCategory parses a category name case-insensitively.
func ParseCategory(name string) (Category, error) {
	for i, n := range categoryNames {
		if strings.EqualFold(n, name) {
			return Category(i), nil
		}
	}
	return CategoryDefault, fmt.Errorf("unknown category %q", name)
}

func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Category) UnmarshalText(text []byte) error {
	v, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// Group is one display unit: a single joint, or a left/right pair in
// left-then-right order.
type Group struct {
	Joints   []JointRecord `json:"joints"`
	Category Category      `json:"category"`
}

// Paired reports whether the group holds a left/right pair.
func (g Group) Paired() bool {
	return len(g.Joints) == 2
}

// Names returns the member names in display order.
func (g Group) Names() []string {
	names := make([]string, len(g.Joints))
	for i, j := range g.Joints {
		names[i] = j.Name
	}
	return names
}

// NormalizePolicy selects how side markers are stripped from joint names
// before grouping.
type NormalizePolicy string

const (
	// PolicyPlaceholder replaces each side marker with a single "~".
	PolicyPlaceholder NormalizePolicy = "placeholder"
	// PolicyDelete drops side markers entirely.
	PolicyDelete NormalizePolicy = "delete"
)

// ValidPolicies lists the accepted normalization policies.
var ValidPolicies = []NormalizePolicy{PolicyPlaceholder, PolicyDelete}

// ParsePolicy parses a policy name. The empty string selects PolicyPlaceholder.
func ParsePolicy(name string) (NormalizePolicy, error) {
	if name == "" {
		return PolicyPlaceholder, nil
	}
	for _, p := range ValidPolicies {
		if strings.EqualFold(string(p), name) {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown normalization policy %q: must be one of %v", name, ValidPolicies)
}

// Rig is a named, ordered set of joints loaded from a rig description.
type Rig struct {
	Name   string        `json:"name"`
	Joints []JointRecord `json:"joints"`
}

// Names returns the joint names in rig order.
func (r Rig) Names() []string {
	names := make([]string, len(r.Joints))
	for i, j := range r.Joints {
		names[i] = j.Name
	}
	return names
}

// Layout is the organizer output for one rig, ready to be walked by a
// panel builder or persisted.
type Layout struct {
	Rig        string          `json:"rig"`
	Policy     NormalizePolicy `json:"policy"`
	PrefixTrim int             `json:"prefix_trim"`
	Groups     []Group         `json:"groups"`
}

// Build records one layout build of a rig.
// Seq is a logical clock value; builds are never ordered by wall time.
type Build struct {
	ID         string `json:"id"`
	Seq        int64  `json:"seq"`
	Rig        string `json:"rig"`
	LayoutHash string `json:"layout_hash"`
}

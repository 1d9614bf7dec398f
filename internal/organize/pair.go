package organize

import (
	"strings"

	"github.com/roach88/jointpanel/internal/ir"
)

// LeftScore counts left markers in name: one per "l", plus ten per "left".
func LeftScore(name string) int {
	n := strings.ToLower(name)
	return strings.Count(n, "l") + 10*strings.Count(n, "left")
}

// RightScore counts right markers in name: one per "r", plus ten per "right".
func RightScore(name string) int {
	n := strings.ToLower(name)
	return strings.Count(n, "r") + 10*strings.Count(n, "right")
}

// ResolvePair decides whether a and b form a left/right pair and returns them
// in left-then-right order. ok is false when the pair must be split.
//
// Rules, first match wins:
//  1. differing style sets reject the pair
//  2. side labels LEFT and RIGHT order the pair regardless of names
//  3. name scores: (a, b) if a is at least as left and b at least as right;
//     (b, a) symmetrically; ties keep input order
//  4. otherwise reject
func ResolvePair(a, b ir.JointRecord) (left, right ir.JointRecord, ok bool) {
	if !sameStyles(a.Styles, b.Styles) {
		return ir.JointRecord{}, ir.JointRecord{}, false
	}

	switch {
	case a.Side == ir.SideLeft && b.Side == ir.SideRight:
		return a, b, true
	case a.Side == ir.SideRight && b.Side == ir.SideLeft:
		return b, a, true
	}

	la, lb := LeftScore(a.Name), LeftScore(b.Name)
	ra, rb := RightScore(a.Name), RightScore(b.Name)

	if la >= lb && rb >= ra {
		return a, b, true
	}
	if lb >= la && ra >= rb {
		return b, a, true
	}
	return ir.JointRecord{}, ir.JointRecord{}, false
}

// sameStyles compares style sets, ignoring order and duplicates.
func sameStyles(a, b []ir.Style) bool {
	set := make(map[ir.Style]bool, len(a))
	for _, s := range a {
		set[s] = true
	}
	seen := make(map[ir.Style]bool, len(b))
	for _, s := range b {
		if !set[s] {
			return false
		}
		seen[s] = true
	}
	return len(seen) == len(set)
}

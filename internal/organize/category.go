package organize

import (
	"strings"

	"github.com/samber/lo"

	"github.com/roach88/jointpanel/internal/ir"
)

var armTypes = map[ir.JointType]bool{
	ir.TypeShoulder:     true,
	ir.TypeElbow:        true,
	ir.TypeHand:         true,
	ir.TypeFinger:       true,
	ir.TypeThumb:        true,
	ir.TypeIndexFinger:  true,
	ir.TypeMiddleFinger: true,
	ir.TypeRingFinger:   true,
	ir.TypePinkyFinger:  true,
	ir.TypeExtraFinger:  true,
}

var legTypes = map[ir.JointType]bool{
	ir.TypeKnee:      true,
	ir.TypeFoot:      true,
	ir.TypeToe:       true,
	ir.TypeBigToe:    true,
	ir.TypeIndexToe:  true,
	ir.TypeMiddleToe: true,
	ir.TypeRingToe:   true,
	ir.TypePinkyToe:  true,
	ir.TypeFootThumb: true,
}

var (
	armWords = []string{"shoulder", "elbow", "arm", "wrist", "hand", "finger", "thumb", "index", "middle", "ring", "pinky"}
	legWords = []string{"knee", "leg", "ankle", "foot", "toe"}
)

// AssignCategory picks the display category for a group's members.
// Shared type labels decide first; otherwise every member must lean the same
// way on the name vocabulary. CategoryDefault is the fallback.
func AssignCategory(members []ir.JointRecord) ir.Category {
	if len(members) == 0 {
		return ir.CategoryDefault
	}
	if c, ok := labelCategory(members); ok {
		return c
	}

	first := NameCategory(members[0].Name)
	if first == ir.CategoryDefault {
		return ir.CategoryDefault
	}
	agree := lo.EveryBy(members[1:], func(m ir.JointRecord) bool {
		return NameCategory(m.Name) == first
	})
	if !agree {
		return ir.CategoryDefault
	}
	return first
}

// labelCategory maps a type label shared by every member. ok is false when
// any member is unlabeled, labels differ, or the label maps to no category.
func labelCategory(members []ir.JointRecord) (ir.Category, bool) {
	t := members[0].Type
	if !t.Valid() {
		return ir.CategoryDefault, false
	}
	for _, m := range members[1:] {
		if m.Type != t {
			return ir.CategoryDefault, false
		}
	}

	switch {
	case armTypes[t]:
		return ir.CategoryArm, true
	case legTypes[t]:
		return ir.CategoryLeg, true
	default:
		return ir.CategoryDefault, false
	}
}

// NameCategory classifies one name by counting arm and leg vocabulary.
// Ties, including zero/zero, classify as CategoryDefault.
func NameCategory(name string) ir.Category {
	n := strings.ToLower(name)
	arm := vocabularyScore(n, armWords)
	leg := vocabularyScore(n, legWords)

	switch {
	case arm > leg:
		return ir.CategoryArm
	case leg > arm:
		return ir.CategoryLeg
	default:
		return ir.CategoryDefault
	}
}

func vocabularyScore(name string, words []string) int {
	return lo.SumBy(words, func(w string) int {
		return strings.Count(name, w)
	})
}

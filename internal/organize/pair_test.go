package organize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/jointpanel/internal/ir"
)

func TestScores(t *testing.T) {
	assert.Equal(t, 12, LeftScore("LeftLeg"))
	assert.Equal(t, 12, RightScore("rightArm"))
	assert.Equal(t, 1, LeftScore("L_arm"))
	assert.Equal(t, 1, RightScore("L_arm"))
	assert.Equal(t, 0, LeftScore(""))
}

func TestResolvePairHeuristic(t *testing.T) {
	l := ir.JointRecord{Name: "L_arm"}
	r := ir.JointRecord{Name: "R_arm"}

	left, right, ok := ResolvePair(l, r)
	require.True(t, ok)
	assert.Equal(t, "L_arm", left.Name)
	assert.Equal(t, "R_arm", right.Name)

	left, right, ok = ResolvePair(r, l)
	require.True(t, ok)
	assert.Equal(t, "L_arm", left.Name)
	assert.Equal(t, "R_arm", right.Name)
}

func TestResolvePairLabelsOverrideNames(t *testing.T) {
	// Names point the other way; labels win.
	a := ir.JointRecord{Name: "right_hand", Side: ir.SideLeft}
	b := ir.JointRecord{Name: "left_hand", Side: ir.SideRight}

	for _, in := range [][2]ir.JointRecord{{a, b}, {b, a}} {
		left, right, ok := ResolvePair(in[0], in[1])
		require.True(t, ok)
		assert.Equal(t, "right_hand", left.Name)
		assert.Equal(t, "left_hand", right.Name)
	}
}

func TestResolvePairInconclusiveLabelsFallThrough(t *testing.T) {
	tests := []struct {
		name  string
		sideA ir.Side
		sideB ir.Side
	}{
		{"both left", ir.SideLeft, ir.SideLeft},
		{"both right", ir.SideRight, ir.SideRight},
		{"center and none", ir.SideCenter, ir.SideNone},
		{"left and unset", ir.SideLeft, ir.SideUnset},
		{"unset", ir.SideUnset, ir.SideUnset},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := ir.JointRecord{Name: "R_arm", Side: tt.sideA}
			b := ir.JointRecord{Name: "L_arm", Side: tt.sideB}

			left, right, ok := ResolvePair(a, b)
			require.True(t, ok)
			assert.Equal(t, "L_arm", left.Name)
			assert.Equal(t, "R_arm", right.Name)
		})
	}
}

func TestResolvePairStyleMismatchRejects(t *testing.T) {
	a := ir.JointRecord{Name: "L_arm", Side: ir.SideLeft, Styles: []ir.Style{ir.StyleRotate}}
	b := ir.JointRecord{Name: "R_arm", Side: ir.SideRight, Styles: []ir.Style{ir.StyleTranslate}}

	_, _, ok := ResolvePair(a, b)
	assert.False(t, ok)
}

func TestResolvePairStyleSetsIgnoreOrder(t *testing.T) {
	a := ir.JointRecord{Name: "L_arm", Styles: []ir.Style{ir.StyleRotate, ir.StyleTranslate}}
	b := ir.JointRecord{Name: "R_arm", Styles: []ir.Style{ir.StyleTranslate, ir.StyleRotate, ir.StyleRotate}}

	_, _, ok := ResolvePair(a, b)
	assert.True(t, ok)
}

func TestResolvePairConflictingScoresReject(t *testing.T) {
	// "leftright" outscores "rl" on both axes, so neither ordering holds.
	_, _, ok := ResolvePair(ir.JointRecord{Name: "leftright"}, ir.JointRecord{Name: "rl"})
	assert.False(t, ok)
}

func TestResolvePairTieKeepsInputOrder(t *testing.T) {
	a := ir.JointRecord{Name: "spine", Ref: 1}
	b := ir.JointRecord{Name: "spine", Ref: 2}

	left, right, ok := ResolvePair(a, b)
	require.True(t, ok)
	assert.Equal(t, 1, left.Ref)
	assert.Equal(t, 2, right.Ref)
}

func TestSameStyles(t *testing.T) {
	assert.True(t, sameStyles(nil, nil))
	assert.True(t, sameStyles(nil, []ir.Style{}))
	assert.False(t, sameStyles([]ir.Style{ir.StyleRotate}, nil))
	assert.False(t, sameStyles([]ir.Style{ir.StyleRotate}, []ir.Style{ir.StyleRotate, ir.StyleTranslate}))
}

package harness

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/roach88/jointpanel/internal/ir"
)

func TestRun_FixturesPass(t *testing.T) {
	paths, err := filepath.Glob("testdata/fixtures/*.yaml")
	require.NoError(t, err)

	for _, p := range paths {
		t.Run(strings.TrimSuffix(filepath.Base(p), ".yaml"), func(t *testing.T) {
			s, err := LoadScenario(p)
			require.NoError(t, err)

			result, err := Run(s)
			require.NoError(t, err)
			assert.True(t, result.Pass, "errors: %v", result.Errors)
			assert.Empty(t, result.Errors)
		})
	}
}

func TestRun_RecordsDeterministicBuild(t *testing.T) {
	s, err := LoadScenario("testdata/fixtures/biped.yaml")
	require.NoError(t, err)

	first, err := Run(s)
	require.NoError(t, err)
	second, err := Run(s)
	require.NoError(t, err)

	assert.Equal(t, "build-0001", first.Build.ID)
	assert.Equal(t, int64(1), first.Build.Seq)
	assert.Equal(t, "biped", first.Build.Rig)
	assert.Equal(t, first.Build, second.Build)
	assert.Equal(t, ir.MustLayoutHash(first.Layout), first.Build.LayoutHash)
}

func TestRun_ReportsFailedAssertions(t *testing.T) {
	s := &Scenario{
		Name:        "failing",
		Description: "assertions that cannot hold",
		Joints: []JointStep{
			{Name: "L_arm", Styles: []string{"rotate"}},
			{Name: "R_arm", Styles: []string{"rotate"}},
			{Name: "spine", Styles: []string{"rotate"}},
		},
		Assertions: []Assertion{
			{Type: AssertGroupCount, Count: 2},
			{Type: AssertGroupCount, Count: 3},
			{Type: AssertSingleton, Joint: "L_arm"},
			{Type: AssertPaired, Joints: []string{"R_arm", "L_arm"}},
			{Type: AssertCategory, Joint: "spine", Category: "leg"},
			{Type: AssertPrefixTrim, Count: 4},
			{Type: AssertSingleton, Joint: "ghost"},
		},
	}

	result, err := RunContext(context.Background(), s, zap.NewNop())
	require.NoError(t, err)
	assert.False(t, result.Pass)
	require.Len(t, result.Errors, 6)
	assert.Contains(t, result.Errors[0], "assertions[1]")
	assert.Contains(t, result.Errors[0], "Expected: 3 groups")
	assert.Contains(t, result.Errors[1], "group [L_arm R_arm]")
	assert.Contains(t, result.Errors[5], "joint not in layout")
}

func TestRun_EmptyRig(t *testing.T) {
	s := &Scenario{
		Name:        "empty",
		Description: "no joints",
		Assertions:  []Assertion{{Type: AssertGroupCount, Count: 0}},
	}

	result, err := Run(s)
	require.NoError(t, err)
	assert.True(t, result.Pass, "errors: %v", result.Errors)
	assert.Empty(t, result.Layout.Groups)
}

func TestRun_InvalidJoint(t *testing.T) {
	s := &Scenario{
		Name:       "bad",
		Joints:     []JointStep{{Name: "a", Type: "tail"}},
		Assertions: []Assertion{{Type: AssertGroupCount}},
	}
	_, err := Run(s)
	assert.Error(t, err)
}

func TestAssertionError_Format(t *testing.T) {
	err := &AssertionError{
		Type:     AssertPaired,
		Expected: "pair [a b]",
		Actual:   "group [a]",
		Groups:   [][]string{{"a"}, {"b"}},
	}
	msg := err.Error()
	assert.Contains(t, msg, "Assertion failed: paired")
	assert.Contains(t, msg, "  [1] a\n")
	assert.Contains(t, msg, "  [2] b\n")
}

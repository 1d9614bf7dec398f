package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pairScenario = `name: pair
description: Two side-labeled shoulders pair up
joints:
- {name: Char_Arm_L, side: left, type: shoulder}
- {name: Char_Arm_R, side: right, type: shoulder}
assertions:
- {type: paired, joints: [Char_Arm_L, Char_Arm_R]}
- {type: category, joint: Char_Arm_L, category: arm}
- {type: prefix_trim, count: 9}
`

const failingScenario = `name: failing
description: Wrong group count
joints:
- {name: hip}
assertions:
- {type: group_count, count: 2}
`

func writeScenarios(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	}
	return dir
}

func TestTestCommandFixtures(t *testing.T) {
	fixtures := filepath.Join("..", "harness", "testdata", "fixtures")
	if _, err := os.Stat(fixtures); os.IsNotExist(err) {
		t.Skip("harness fixtures not found")
	}

	out, err := execute(NewTestCommand(&RootOptions{Format: "text"}), fixtures)
	require.NoError(t, err)
	assert.Contains(t, out, "✓ biped\n")
	assert.Contains(t, out, "✓ All scenarios passed")
}

func TestTestCommandFailure(t *testing.T) {
	dir := writeScenarios(t, map[string]string{"pair.yaml": pairScenario, "failing.yml": failingScenario})

	out, err := execute(NewTestCommand(&RootOptions{Format: "text"}), dir)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "✓ pair\n")
	assert.Contains(t, out, "✗ failing\n")
	assert.Contains(t, out, "Test Summary: 1 passed, 1 failed, 2 total")
}

func TestTestCommandJSON(t *testing.T) {
	dir := writeScenarios(t, map[string]string{"pair.yaml": pairScenario, "failing.yaml": failingScenario})

	out, err := execute(NewTestCommand(&RootOptions{Format: "json"}), dir)
	require.Error(t, err)

	var resp struct {
		Status string     `json:"status"`
		Data   TestResult `json:"data"`
		Error  *CLIError  `json:"error"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "error", resp.Status)
	assert.Equal(t, "E_TEST_FAILED", resp.Error.Code)
	assert.Equal(t, 2, resp.Data.Total)
	assert.Equal(t, 1, resp.Data.Failed)
}

func TestTestCommandFilter(t *testing.T) {
	dir := writeScenarios(t, map[string]string{"pair.yaml": pairScenario, "failing.yaml": failingScenario})

	out, err := execute(NewTestCommand(&RootOptions{Format: "text"}), dir, "--filter", "pa*")
	require.NoError(t, err)
	assert.Contains(t, out, "Test Summary: 1 passed, 0 failed, 1 total")

	_, err = execute(NewTestCommand(&RootOptions{Format: "text"}), dir, "--filter", "[")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestTestCommandGolden(t *testing.T) {
	dir := writeScenarios(t, map[string]string{"pair.yaml": pairScenario})
	golden := filepath.Join(dir, "golden", "pair.golden")

	out, err := execute(NewTestCommand(&RootOptions{Format: "text"}), dir, "--update")
	require.NoError(t, err)
	assert.Contains(t, out, "✓ pair (golden updated)")

	data, err := os.ReadFile(golden)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"rig":"pair"`)

	_, err = execute(NewTestCommand(&RootOptions{Format: "text"}), dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(golden, []byte(`{}`), 0644))
	out, err = execute(NewTestCommand(&RootOptions{Format: "text"}), dir)
	require.Error(t, err)
	assert.Contains(t, out, "layout does not match golden file")
}

func TestTestCommandLoadError(t *testing.T) {
	dir := writeScenarios(t, map[string]string{"broken.yaml": "name: broken\nbogus: 1\n"})

	out, err := execute(NewTestCommand(&RootOptions{Format: "text"}), dir)
	require.Error(t, err)
	assert.Contains(t, out, "✗ broken.yaml")
	assert.Contains(t, out, "failed to load scenario")
}

func TestTestCommandEmptyAndMissing(t *testing.T) {
	out, err := execute(NewTestCommand(&RootOptions{Format: "text"}), t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "No scenarios found.\n", out)

	_, err = execute(NewTestCommand(&RootOptions{Format: "text"}), "/nonexistent/scenarios")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestGoldenFilePath(t *testing.T) {
	assert.Equal(t, filepath.Join("s", "golden", "biped.golden"), goldenFilePath(filepath.Join("s", "biped.yaml")))
}

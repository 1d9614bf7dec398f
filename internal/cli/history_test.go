package cli

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recordBuilds(t *testing.T, db string, runs ...[]string) {
	t.Helper()
	for _, args := range runs {
		_, err := execute(NewOrganizeCommand(&RootOptions{Format: "json"}), append(args, "--db", db)...)
		require.NoError(t, err)
	}
}

func decodeHistory(t *testing.T, out string) HistoryResult {
	t.Helper()
	var resp struct {
		Status string        `json:"status"`
		Data   HistoryResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	require.Equal(t, "ok", resp.Status)
	return resp.Data
}

func TestHistoryListsBuildsInSeqOrder(t *testing.T) {
	dir := writeRigs(t, bipedRig)
	db := filepath.Join(t.TempDir(), "layouts.db")
	recordBuilds(t, db,
		[]string{dir},
		[]string{dir, "--policy", "delete"},
		[]string{"--influence", "a r b r", "--rig", "pair"},
	)

	out, err := execute(NewHistoryCommand(&RootOptions{Format: "json"}), "--db", db)
	require.NoError(t, err)
	result := decodeHistory(t, out)
	require.Len(t, result.Builds, 3)
	for i, b := range result.Builds {
		assert.Equal(t, int64(i+1), b.Seq)
	}
	assert.Equal(t, "biped", result.Builds[0].Rig)
	assert.Equal(t, "pair", result.Builds[2].Rig)
	assert.NotEqual(t, result.Builds[0].LayoutHash, result.Builds[1].LayoutHash)
	assert.Nil(t, result.Layout)

	out, err = execute(NewHistoryCommand(&RootOptions{Format: "json"}), "--db", db, "--rig", "biped")
	require.NoError(t, err)
	assert.Len(t, decodeHistory(t, out).Builds, 2)
}

func TestHistoryLatest(t *testing.T) {
	dir := writeRigs(t, bipedRig)
	db := filepath.Join(t.TempDir(), "layouts.db")
	recordBuilds(t, db, []string{dir}, []string{dir, "--policy", "delete"})

	out, err := execute(NewHistoryCommand(&RootOptions{Format: "json"}), "--db", db, "--latest")
	require.NoError(t, err)
	result := decodeHistory(t, out)
	require.Len(t, result.Builds, 1)
	assert.Equal(t, int64(2), result.Builds[0].Seq)
	require.NotNil(t, result.Layout)
	assert.Equal(t, "delete", result.Layout.Policy)
	assert.Equal(t, result.Builds[0].LayoutHash, result.Layout.LayoutHash)
	assert.Equal(t, []string{"Arm_L", "Arm_R"}, result.Layout.Groups[0].Titles)

	out, err = execute(NewHistoryCommand(&RootOptions{Format: "text"}), "--db", db, "--latest")
	require.NoError(t, err)
	assert.Contains(t, out, "   2  biped")
	assert.Contains(t, out, "biped (policy delete")
}

func TestHistoryEmpty(t *testing.T) {
	db := filepath.Join(t.TempDir(), "layouts.db")

	out, err := execute(NewHistoryCommand(&RootOptions{Format: "text"}), "--db", db)
	require.NoError(t, err)
	assert.Equal(t, "No builds recorded.\n", out)

	out, err = execute(NewHistoryCommand(&RootOptions{Format: "json"}), "--db", db)
	require.NoError(t, err)
	assert.Empty(t, decodeHistory(t, out).Builds)

	out, err = execute(NewHistoryCommand(&RootOptions{Format: "text"}), "--db", db, "--latest")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, out, "Error ["+ErrCodeNotFound+"]: no builds recorded")
}

func TestHistoryRequiresDB(t *testing.T) {
	_, err := execute(NewHistoryCommand(&RootOptions{Format: "text"}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"db" not set`)
}

package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

const bipedRig = `
package rigs

rig: biped: joints: [
	{name: "Char_Arm_L", side: "left", type: "shoulder"},
	{name: "Char_Arm_R", side: "right", type: "shoulder"},
	{name: "Char_Root", styles: ["t"]},
]
`

// writeRigs writes each CUE source into its own file in a fresh directory.
func writeRigs(t *testing.T, sources ...string) string {
	t.Helper()
	dir := t.TempDir()
	for i, src := range sources {
		path := filepath.Join(dir, "rig"+string(rune('a'+i))+".cue")
		require.NoError(t, os.WriteFile(path, []byte(src), 0644))
	}
	return dir
}

// execute runs cmd with args and returns its stdout.
// A nil args slice would make cobra fall back to os.Args.
func execute(cmd *cobra.Command, args ...string) (string, error) {
	if args == nil {
		args = []string{}
	}
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

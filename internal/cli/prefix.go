package cli

import (
	"fmt"
	"io"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/roach88/jointpanel/internal/organize"
)

// PrefixResult is the prefix command's output.
type PrefixResult struct {
	Prefix string   `json:"prefix"`
	Length int      `json:"length"`
	Titles []string `json:"titles"`
}

// NewPrefixCommand creates the prefix command.
func NewPrefixCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "prefix <name>...",
		Short: "Show the shared prefix panel titles drop",
		Long: `Compute the longest prefix shared by every name and the panel titles
that remain once it is dropped. A name no longer than the prefix keeps
its full title.

Example:
  jointpanel prefix Char_Arm_L Char_Arm_R Char_Root`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
			result := prefixOf(args)
			return formatter.Success(result, func(w io.Writer) {
				fmt.Fprintf(w, "prefix %q (%d bytes)\n", result.Prefix, result.Length)
				for _, t := range result.Titles {
					fmt.Fprintf(w, "  %s\n", t)
				}
			})
		},
	}
}

func prefixOf(names []string) PrefixResult {
	n := organize.CommonPrefix(names)
	return PrefixResult{
		Prefix: names[0][:n],
		Length: n,
		Titles: lo.Map(names, func(name string, _ int) string {
			return organize.TrimPrefix(name, n)
		}),
	}
}

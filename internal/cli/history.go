package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/roach88/jointpanel/internal/ir"
	"github.com/roach88/jointpanel/internal/store"
)

// HistoryOptions holds flags for the history command.
type HistoryOptions struct {
	*RootOptions
	DB     string // layout history database
	Rig    string // restrict to one rig
	Latest bool   // show only the newest build, with its layout
}

// HistoryResult is the history command's output.
type HistoryResult struct {
	Builds []ir.Build      `json:"builds"`
	Layout *OrganizeResult `json:"layout,omitempty"`
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HistoryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded layout builds",
		Long: `List the layout builds recorded by "organize --db", oldest first.

With --latest, only the newest build is shown together with the layout
it produced.

Examples:
  jointpanel history --db layouts.db
  jointpanel history --db layouts.db --rig biped --latest`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			return runHistory(ctx, opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.DB, "db", "", "layout history database (required)")
	cmd.Flags().StringVar(&opts.Rig, "rig", "", "only show builds of this rig")
	cmd.Flags().BoolVar(&opts.Latest, "latest", false, "show only the newest build and its layout")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func runHistory(ctx context.Context, opts *HistoryOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	log := opts.logger()

	st, err := store.Open(opts.DB)
	if err != nil {
		return commandError(formatter, ErrCodeLoadFailed, err.Error())
	}
	defer st.Close()

	result, err := readHistory(ctx, st, opts)
	if errors.Is(err, store.ErrNotFound) {
		return commandError(formatter, ErrCodeNotFound, "no builds recorded")
	}
	if err != nil {
		return commandError(formatter, ErrCodeGeneric, err.Error())
	}
	log.Debug("history read", zap.String("db", opts.DB), zap.Int("builds", len(result.Builds)))

	return formatter.Success(result, func(w io.Writer) {
		if len(result.Builds) == 0 {
			fmt.Fprintln(w, "No builds recorded.")
			return
		}
		for _, b := range result.Builds {
			fmt.Fprintf(w, "%4d  %-12s %s  %s\n", b.Seq, b.Rig, shortHash(b.LayoutHash), b.ID)
		}
		if result.Layout != nil {
			fmt.Fprintln(w)
			writeOrganizeText(w, *result.Layout)
		}
	})
}

func readHistory(ctx context.Context, st *store.Store, opts *HistoryOptions) (HistoryResult, error) {
	if !opts.Latest {
		builds, err := st.ListBuilds(ctx, opts.Rig)
		if err != nil {
			return HistoryResult{}, err
		}
		if builds == nil {
			builds = []ir.Build{}
		}
		return HistoryResult{Builds: builds}, nil
	}

	build, err := st.LatestBuild(ctx, opts.Rig)
	if err != nil {
		return HistoryResult{}, err
	}
	layout, err := st.ReadLayout(ctx, build.LayoutHash)
	if err != nil {
		return HistoryResult{}, err
	}
	view := newOrganizeResult(layout, build.LayoutHash)
	return HistoryResult{Builds: []ir.Build{build}, Layout: &view}, nil
}

package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/roach88/jointpanel/internal/compiler"
	"github.com/roach88/jointpanel/internal/ir"
	"github.com/roach88/jointpanel/internal/organize"
	"github.com/roach88/jointpanel/internal/store"
)

// OrganizeOptions holds flags for the organize command.
type OrganizeOptions struct {
	*RootOptions
	Rig       string // rig to organize when the directory holds several
	Policy    string // normalization policy name
	DB        string // layout history database; empty skips recording
	Influence string // host influence-object string, used instead of a rigs directory
}

// GroupView is one display row of an organized layout.
type GroupView struct {
	Category string   `json:"category"`
	Joints   []string `json:"joints"`
	Titles   []string `json:"titles"`
}

// OrganizeResult is the organize command's output.
type OrganizeResult struct {
	Rig        string      `json:"rig"`
	Policy     string      `json:"policy"`
	Prefix     string      `json:"prefix"`
	PrefixTrim int         `json:"prefix_trim"`
	LayoutHash string      `json:"layout_hash"`
	Groups     []GroupView `json:"groups"`
	Build      *ir.Build   `json:"build,omitempty"`
}

// NewOrganizeCommand creates the organize command.
func NewOrganizeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &OrganizeOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "organize [rigs-dir]",
		Short: "Organize a rig's joints into panel rows",
		Long: `Organize the joints of a rig into left/right pairs and singletons,
assign each row a category, and compute the shared name prefix that
panel titles drop.

Joints come either from a CUE rigs directory or, with --influence, from a
host influence-object string of "<dagPath> <presentation>" pairs.

Examples:
  jointpanel organize ./rigs
  jointpanel organize ./rigs --rig biped --policy delete
  jointpanel organize ./rigs --db layouts.db
  jointpanel organize --influence "|root|Arm_L r |root|Arm_R r"`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOrganize(cmd.Context(), opts, args, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Rig, "rig", "", "rig name (required when the directory holds several rigs)")
	cmd.Flags().StringVar(&opts.Policy, "policy", string(ir.PolicyPlaceholder), "side-marker normalization policy (placeholder|delete)")
	cmd.Flags().StringVar(&opts.DB, "db", "", "record the build in this layout history database")
	cmd.Flags().StringVar(&opts.Influence, "influence", "", "organize joints from a host influence-object string")

	return cmd
}

func runOrganize(ctx context.Context, opts *OrganizeOptions, args []string, cmd *cobra.Command) error {
	if ctx == nil {
		ctx = context.Background()
	}
	formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	log := opts.logger()

	policy, err := ir.ParsePolicy(opts.Policy)
	if err != nil {
		return commandError(formatter, ErrCodeBadInput, err.Error())
	}

	rig, loadErr := organizeInput(opts, args, log)
	if loadErr != nil {
		return commandError(formatter, loadErr.Code, loadErr.Message)
	}

	layout := organize.BuildLayout(rig, organize.WithPolicy(policy))
	hash, hashErr := ir.LayoutHash(layout)
	if hashErr != nil {
		return commandError(formatter, ErrCodeGeneric, hashErr.Error())
	}
	log.Debug("rig organized",
		zap.String("rig", rig.Name),
		zap.String("policy", string(policy)),
		zap.Int("joints", len(rig.Joints)),
		zap.Int("groups", len(layout.Groups)),
		zap.Int("prefix_trim", layout.PrefixTrim))

	result := newOrganizeResult(layout, hash)

	if opts.DB != "" {
		build, err := recordBuild(ctx, opts.DB, layout)
		if err != nil {
			return commandError(formatter, ErrCodeWriteFailed, err.Error())
		}
		log.Debug("build recorded", zap.String("id", build.ID), zap.Int64("seq", build.Seq))
		result.Build = &build
	}

	return formatter.Success(result, func(w io.Writer) {
		writeOrganizeText(w, result)
	})
}

// organizeInput resolves the rig to organize from the influence string or
// the rigs directory.
func organizeInput(opts *OrganizeOptions, args []string, log *zap.Logger) (ir.Rig, *LoadError) {
	if opts.Influence != "" {
		if len(args) > 0 {
			return ir.Rig{}, &LoadError{Code: ErrCodeBadInput, Message: "--influence cannot be combined with a rigs directory"}
		}
		joints, err := compiler.ParseInfluenceObjects(opts.Influence)
		if err != nil {
			return ir.Rig{}, &LoadError{Code: ErrCodeBadInput, Message: err.Error()}
		}
		name := opts.Rig
		if name == "" {
			name = "influence"
		}
		return ir.Rig{Name: name, Joints: joints}, nil
	}

	if len(args) == 0 {
		return ir.Rig{}, &LoadError{Code: ErrCodeBadInput, Message: "a rigs directory or --influence is required"}
	}

	loadResult, loadErrors := LoadRigs(args[0], LoadModeFailFast)
	if len(loadErrors) > 0 {
		return ir.Rig{}, firstLoadError(loadErrors)
	}
	log.Debug("rigs loaded", zap.String("dir", args[0]), zap.Int("files", loadResult.FileCount), zap.Int("rigs", len(loadResult.Rigs)))

	rig, err := SelectRig(loadResult.Rigs, opts.Rig)
	if err != nil {
		return ir.Rig{}, firstLoadError([]error{err})
	}
	return rig, nil
}

func recordBuild(ctx context.Context, path string, layout ir.Layout) (ir.Build, error) {
	st, err := store.Open(path)
	if err != nil {
		return ir.Build{}, err
	}
	defer st.Close()
	return st.RecordBuild(ctx, layout)
}

func newOrganizeResult(layout ir.Layout, hash string) OrganizeResult {
	prefix := ""
	if len(layout.Groups) > 0 && len(layout.Groups[0].Joints) > 0 {
		prefix = layout.Groups[0].Joints[0].Name[:layout.PrefixTrim]
	}
	return OrganizeResult{
		Rig:        layout.Rig,
		Policy:     string(layout.Policy),
		Prefix:     prefix,
		PrefixTrim: layout.PrefixTrim,
		LayoutHash: hash,
		Groups: lo.Map(layout.Groups, func(g ir.Group, _ int) GroupView {
			names := g.Names()
			return GroupView{
				Category: g.Category.String(),
				Joints:   names,
				Titles: lo.Map(names, func(n string, _ int) string {
					return organize.TrimPrefix(n, layout.PrefixTrim)
				}),
			}
		}),
	}
}

func writeOrganizeText(w io.Writer, r OrganizeResult) {
	fmt.Fprintf(w, "%s (policy %s, prefix %q, hash %s)\n", r.Rig, r.Policy, r.Prefix, shortHash(r.LayoutHash))
	for _, g := range r.Groups {
		fmt.Fprintf(w, "  %-8s %s\n", g.Category, strings.Join(g.Titles, "  "))
	}
	if r.Build != nil {
		fmt.Fprintf(w, "recorded build %s (seq %d)\n", r.Build.ID, r.Build.Seq)
	}
}

func shortHash(h string) string {
	if len(h) > 12 {
		return h[:12]
	}
	return h
}

// commandError reports a command-level error (exit code 2).
func commandError(formatter *OutputFormatter, code, message string) error {
	_ = formatter.Error(code, message, nil)
	return NewExitError(ExitCommandError, fmt.Sprintf("%s: %s", code, message))
}

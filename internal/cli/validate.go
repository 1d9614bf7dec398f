package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/roach88/jointpanel/internal/compiler"
)

// ValidationResult holds validation results.
type ValidationResult struct {
	Valid  bool                       `json:"valid"`
	Rigs   []string                   `json:"rigs,omitempty"`
	Errors []compiler.ValidationError `json:"errors,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <rigs-dir>",
		Short: "Validate rig descriptions",
		Long: `Validate the CUE rig descriptions in a directory.

Reports every compile error (unknown side, type or style labels, missing
joints) and every rig-level problem (empty or duplicate joint names,
joints with no styles) rather than stopping at the first.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runValidate(opts *RootOptions, rigsDir string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	log := opts.logger()

	loadResult, loadErrors := LoadRigs(rigsDir, LoadModeCollectAll)
	if loadResult == nil {
		loadErr := firstLoadError(loadErrors)
		return commandError(formatter, loadErr.Code, loadErr.Message)
	}
	log.Debug("rigs loaded", zap.String("dir", rigsDir), zap.Int("files", loadResult.FileCount))

	var validationErrors []compiler.ValidationError
	for _, err := range loadErrors {
		loadErr := firstLoadError([]error{err})
		validationErrors = append(validationErrors, compiler.ValidationError{
			Field:   "load",
			Message: loadErr.Message,
			Code:    loadErr.Code,
			Line:    loadErr.Line(),
		})
	}

	names := make([]string, 0, len(loadResult.Rigs))
	for i := range loadResult.Rigs {
		rig := &loadResult.Rigs[i]
		log.Debug("validating rig", zap.String("rig", rig.Name), zap.Int("joints", len(rig.Joints)))
		names = append(names, rig.Name)
		validationErrors = append(validationErrors, compiler.ValidateRig(rig)...)
	}

	if len(validationErrors) > 0 {
		return outputValidationErrors(formatter, names, validationErrors)
	}

	return formatter.Success(ValidationResult{Valid: true, Rigs: names}, func(w io.Writer) {
		fmt.Fprintf(w, "✓ All rigs valid (%d)\n", len(names))
	})
}

// outputValidationErrors outputs multiple validation errors.
func outputValidationErrors(formatter *OutputFormatter, rigs []string, errs []compiler.ValidationError) error {
	result := ValidationResult{Valid: false, Rigs: rigs, Errors: errs}
	err := formatter.Failure(errs[0].Code, errs[0].Message, result, func(w io.Writer) {
		fmt.Fprintln(w, "✗ Validation failed")
		fmt.Fprintln(w)
		for _, e := range errs {
			if e.Line > 0 {
				fmt.Fprintf(w, "line %d\n", e.Line)
			}
			fmt.Fprintf(w, "  %s: %s: %s\n\n", e.Code, e.Field, e.Message)
		}
	})
	if err != nil {
		return err
	}

	// Validation failures = exit code 1 (test/validation failure)
	return NewExitError(ExitFailure, fmt.Sprintf("validation failed with %d error(s)", len(errs)))
}

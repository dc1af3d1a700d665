package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Error codes owned by the CLI. Loader codes are E001-E005.
const (
	ErrCodeConfig      = "E007" // Config file unreadable or invalid
	ErrCodeWriteFailed = "E008" // Output file could not be written
)

// ValidateOptions holds flags for the validate command.
type ValidateOptions struct {
	*RootOptions
	Strategy string
}

// ValidationSummary is the JSON payload of a successful validation.
type ValidationSummary struct {
	Valid bool     `json:"valid"`
	Files []string `json:"files"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ValidateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "validate <path>...",
		Short: "Check that style documents compile",
		Long: `Load and compile style documents without writing any output.

All errors are collected and reported, not just the first one.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(opts, args, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Strategy, "strategy", "", "identifier strategy (sequential|hash|random)")

	return cmd
}

func runValidate(opts *ValidateOptions, paths []string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	builder, err := newBuilderFromFlags(opts.RootOptions, opts.Strategy, false, cmd)
	if err != nil {
		return outputCompileError(formatter, ErrCodeConfig, err.Error())
	}

	errs, files, err := ValidatePaths(builder, paths)
	if err != nil {
		return outputCompileError(formatter, errorCode(err), err.Error())
	}

	for _, f := range files {
		formatter.VerboseLog("Validated %s", f)
	}

	if len(errs) > 0 {
		if err := formatter.Errors("Validation failed", errs, nil); err != nil {
			return err
		}
		// Validation failures use exit code 1
		return NewExitError(ExitFailure, fmt.Sprintf("validation failed with %d error(s)", len(errs)))
	}

	if formatter.IsJSON() {
		return formatter.Success(ValidationSummary{Valid: true, Files: files})
	}
	fmt.Fprintf(formatter.Writer, "✓ All documents valid (%d file(s))\n", len(files))
	return nil
}

// ValidatePaths builds paths and returns the document errors and every
// document that was checked, including those that failed to load. The error
// return is set only when the build could not start.
func ValidatePaths(builder *Builder, paths []string) ([]CLIError, []string, error) {
	result, err := builder.Build(paths)
	if result == nil {
		return nil, nil, err
	}

	return toCLIErrors(err), result.Inputs, nil
}

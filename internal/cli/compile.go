package cli

import (
	"fmt"
	"os"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/roach88/styl/internal/ident"
)

// CompileOptions holds flags for the compile command.
type CompileOptions struct {
	*RootOptions
	Output   string // CSS output file path
	Classes  string // class map output file path
	Strategy string // overrides the config strategy
	Debug    bool   // readable identifiers
}

// CompilationStats holds summary statistics.
type CompilationStats struct {
	FileCount     int
	ClassCount    int
	KeyframeCount int
	ThemeCount    int
}

// NewCompileCommand creates the compile command.
func NewCompileCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CompileOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "compile <path>...",
		Short: "Compile style documents to CSS",
		Long: `Compile style documents to a single CSS sheet.

Each path is a document or a directory searched for .cue, .yaml, .yml,
.json and .toml files. Every document gets its own file scope, so the
generated names are stable from run to run.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true, // Don't print usage on errors - we handle our own error output
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompile(opts, args, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "CSS output file path (default stdout)")
	cmd.Flags().StringVar(&opts.Classes, "classes", "", "write the generated names as JSON to this file")
	cmd.Flags().StringVar(&opts.Strategy, "strategy", "", "identifier strategy (sequential|hash|random)")
	cmd.Flags().BoolVar(&opts.Debug, "debug", false, "readable identifiers with debug names")

	return cmd
}

func runCompile(opts *CompileOptions, paths []string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(), // Verbose logs go to stderr to avoid corrupting JSON
		Verbose:   opts.Verbose,
	}

	builder, err := newBuilderFromFlags(opts.RootOptions, opts.Strategy, opts.Debug, cmd)
	if err != nil {
		return outputCompileError(formatter, ErrCodeConfig, err.Error())
	}

	result, err := builder.Build(paths)
	if result == nil {
		return outputCompileError(formatter, errorCode(err), err.Error())
	}
	formatter.VerboseLog("Compiled %d document(s)", len(result.Files))
	if err != nil {
		return outputCompileErrors(formatter, toCLIErrors(err))
	}

	if opts.Output != "" {
		if err := os.WriteFile(opts.Output, []byte(result.CSS), 0o644); err != nil {
			return outputCompileError(formatter, ErrCodeWriteFailed, fmt.Sprintf("writing output file: %v", err))
		}
	}
	if opts.Classes != "" {
		if err := writeClassMap(result.Files, opts.Classes); err != nil {
			return outputCompileError(formatter, ErrCodeWriteFailed, fmt.Sprintf("writing class map: %v", err))
		}
	}

	return outputCompileSuccess(formatter, result, calculateStats(result), opts.Output)
}

// newBuilderFromFlags loads the config file and applies flag overrides.
func newBuilderFromFlags(root *RootOptions, strategy string, debug bool, cmd *cobra.Command) (*Builder, error) {
	cfg, err := LoadConfig(root.Config)
	if err != nil {
		return nil, err
	}
	if strategy != "" {
		if _, err := ident.ParseStrategy(strategy); err != nil {
			return nil, err
		}
		cfg.Strategy = strategy
	}
	if debug {
		cfg.Debug = true
	}
	return NewBuilder(cfg, newLogger(cmd.ErrOrStderr(), root.Verbose))
}

// calculateStats computes summary statistics from a build result.
func calculateStats(result *BuildResult) CompilationStats {
	stats := CompilationStats{FileCount: len(result.Files)}
	for _, f := range result.Files {
		stats.ClassCount += len(f.Classes)
		stats.KeyframeCount += len(f.Keyframes)
		stats.ThemeCount += len(f.Themes)
	}
	return stats
}

// outputCompileSuccess outputs successful compilation results. Without an
// output file, text mode prints the sheet itself.
func outputCompileSuccess(formatter *OutputFormatter, result *BuildResult, stats CompilationStats, outputFile string) error {
	if formatter.IsJSON() {
		return formatter.Success(result)
	}

	if outputFile == "" {
		_, err := fmt.Fprintln(formatter.Writer, result.CSS)
		return err
	}

	fmt.Fprintf(formatter.Writer, "✓ Compiled %d document(s): %d class(es), %d keyframes, %d theme(s)\n\n",
		stats.FileCount, stats.ClassCount, stats.KeyframeCount, stats.ThemeCount)
	for _, f := range result.Files {
		fmt.Fprintf(formatter.Writer, "  %s (scope %s)\n", f.File, f.Scope)
	}
	fmt.Fprintf(formatter.Writer, "\nWrote CSS to %s\n", outputFile)
	return nil
}

// outputCompileError outputs a single compilation error.
func outputCompileError(formatter *OutputFormatter, code, message string) error {
	_ = formatter.Error(code, message, nil)
	// Compilation errors are command-level errors (exit code 2)
	return NewExitError(ExitCommandError, fmt.Sprintf("%s: %s", code, message))
}

// outputCompileErrors outputs every error collected during the build.
func outputCompileErrors(formatter *OutputFormatter, errs []CLIError) error {
	if err := formatter.Errors("Compilation failed", errs, nil); err != nil {
		return err
	}
	return NewExitError(ExitCommandError, fmt.Sprintf("compilation failed with %d error(s)", len(errs)))
}

// writeClassMap writes file -> name -> generated name as indented JSON.
func writeClassMap(files []FileResult, filename string) error {
	data, err := json.MarshalIndent(files, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling class map: %w", err)
	}
	return os.WriteFile(filename, data, 0o644)
}

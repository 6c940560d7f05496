package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// Process exit statuses
const (
	ExitSuccess     = 0
	ExitFailure     = 1
	ExitUsage       = 2
	ExitInterrupted = 130
)

// ExitError carries the exit status a failed run should end with.
type ExitError struct {
	Code int
	Err  error
	// Logged is set once the error went through the run logger
	Logged bool
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewRootCommand creates and returns the root cobra command for grepy
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grepy [flags] PATTERN FILE [FILE...]",
		Short: "Search files for lines matching a regular expression",
		Long: `Grepy scans each FILE line by line and prints the lines that match PATTERN.

Directories are searched only with --recursive. Symbolic links, unreadable
paths and (by default) binary files are skipped silently. Options may also be
set in .grepy/config.yaml or $GREPY_HOME/config.yaml; flags win over the file.`,
		Example: `  grepy -n foo notes.txt
  grepy -Rfn --color 'err(or)?' ./logs`,
		Version: Version,
		Args:    requirePatternAndFiles,
		RunE:    runSearch,
		// Errors are printed once by Execute
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().BoolP("color", "c", false, "Highlight the matched text")
	cmd.Flags().BoolP("line-number", "n", false, "Prefix each line with its line number")
	cmd.Flags().BoolP("filenames", "f", false, "Prefix each line with the file name")
	cmd.Flags().BoolP("recursive", "R", false, "Search directories recursively")
	cmd.Flags().BoolP("binary", "b", false, "Search binary files too")
	cmd.Flags().Bool("all-matches", false, "Highlight every match on a line, not only the first")
	cmd.Flags().String("highlight-color", "", "Highlight color (black, red, green, yellow, blue, magenta, cyan, white)")
	cmd.Flags().BoolP("time", "t", false, "Print how long the search took to stderr")
	cmd.Flags().StringP("output", "o", "", "Write matches to this file instead of stdout")
	cmd.Flags().String("config", "", "Path to config file (default: .grepy/config.yaml)")
	cmd.Flags().String("log-level", "", "Diagnostic verbosity (trace, debug, info, warn, error)")
	cmd.Flags().Bool("verbose", false, "Same as --log-level debug")

	return cmd
}

// requirePatternAndFiles rejects runs without a pattern and at least one path.
func requirePatternAndFiles(cmd *cobra.Command, args []string) error {
	if len(args) >= 2 {
		return nil
	}
	fmt.Fprint(cmd.ErrOrStderr(), cmd.UsageString())
	return &ExitError{
		Code: ExitUsage,
		Err:  errors.New("requires a PATTERN and at least one FILE"),
	}
}

// Execute runs grepy with args and returns the process exit status.
// Errors not already logged are reported on stderr; flag parse errors map to ExitUsage.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	rootCmd := NewRootCommand()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		exitErr = &ExitError{Code: ExitUsage, Err: err}
	}
	if exitErr.Code != ExitInterrupted && !exitErr.Logged {
		fmt.Fprintf(stderr, "Error: %v\n", exitErr)
	}
	return exitErr.Code
}

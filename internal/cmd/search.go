package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/harrison/grepy/internal/config"
	"github.com/harrison/grepy/internal/executor"
	"github.com/harrison/grepy/internal/filelock"
	"github.com/harrison/grepy/internal/logger"
	"github.com/spf13/cobra"
)

func runSearch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return &ExitError{Code: ExitFailure, Err: err}
	}

	cfg.MergeWithFlags(flagOverrides(cmd))

	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose && !cmd.Flags().Changed("log-level") {
		cfg.LogLevel = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return &ExitError{Code: ExitFailure, Err: fmt.Errorf("invalid configuration: %w", err)}
	}

	log, closeLog := newRunLogger(cmd.ErrOrStderr(), cfg)
	defer closeLog()

	var out io.Writer = cmd.OutOrStdout()
	outputPath, _ := cmd.Flags().GetString("output")
	var outputFile *filelock.OutputFile
	if outputPath != "" {
		outputFile = filelock.NewOutputFile(outputPath)
		out = outputFile
	}

	searcher, err := executor.NewSearcher(args[0], cfg.SearchConfig(), out, log)
	if err != nil {
		return fatal(log, err)
	}

	summary, err := searcher.Run(cmd.Context(), args[1:])
	if err != nil {
		return fatal(log, err)
	}

	// Records collected before an interrupt are complete and still written
	if outputFile != nil {
		if err := outputFile.Commit(); err != nil {
			return fatal(log, err)
		}
		log.LogInfo(fmt.Sprintf("wrote %d matching line(s) to %s", summary.LinesMatched, outputFile.Path()))
	}

	if showTime, _ := cmd.Flags().GetBool("time"); showTime {
		fmt.Fprintf(cmd.ErrOrStderr(), "search took %s\n", summary.Duration)
	}

	if summary.Interrupted {
		return &ExitError{Code: ExitInterrupted, Err: errors.New("search interrupted")}
	}
	return nil
}

// fatal logs err at ERROR and turns it into a failed exit
func fatal(log runLogger, err error) error {
	log.LogError(err.Error())
	return &ExitError{Code: ExitFailure, Err: err, Logged: true}
}

// loadConfig reads --config when given, otherwise the default lookup chain.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath != "" {
		return config.LoadConfig(configPath)
	}
	return config.LoadConfigFromDir(".")
}

// flagOverrides collects only the flags the user actually set, so config values
// survive for everything else.
func flagOverrides(cmd *cobra.Command) config.FlagOverrides {
	var overrides config.FlagOverrides

	boolFlag := func(name string) *bool {
		if !cmd.Flags().Changed(name) {
			return nil
		}
		v, _ := cmd.Flags().GetBool(name)
		return &v
	}
	stringFlag := func(name string) *string {
		if !cmd.Flags().Changed(name) {
			return nil
		}
		v, _ := cmd.Flags().GetString(name)
		return &v
	}

	overrides.Color = boolFlag("color")
	overrides.LineNumber = boolFlag("line-number")
	overrides.Filenames = boolFlag("filenames")
	overrides.Recursive = boolFlag("recursive")
	overrides.AllMatches = boolFlag("all-matches")
	overrides.HighlightColor = stringFlag("highlight-color")
	overrides.LogLevel = stringFlag("log-level")

	// --binary turns the skip off
	if includeBinary := boolFlag("binary"); includeBinary != nil {
		skip := !*includeBinary
		overrides.SkipBinary = &skip
	}

	return overrides
}

// runLogger is the search logger plus the error level used for fatal errors
type runLogger interface {
	executor.Logger
	LogError(message string)
}

// newRunLogger returns the console logger, fanned out to a per-run log file when
// log_dir is configured. The returned func closes the file.
func newRunLogger(stderr io.Writer, cfg *config.Config) (runLogger, func()) {
	console := logger.NewConsoleLogger(stderr, cfg.LogLevel)
	if cfg.LogDir == "" {
		return console, func() {}
	}

	fileLog, err := logger.NewFileLogger(cfg.LogDir, cfg.LogLevel)
	if err != nil {
		console.LogWarn(fmt.Sprintf("file logging disabled: %v", err))
		return console, func() {}
	}
	console.LogDebug(fmt.Sprintf("run %s logging to %s", fileLog.RunID(), fileLog.Path()))

	return logger.NewMultiLogger(console, fileLog), func() { fileLog.Close() }
}

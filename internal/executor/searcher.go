package executor

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/harrison/grepy/internal/display"
	"github.com/harrison/grepy/internal/fileutil"
	"github.com/harrison/grepy/internal/models"
	"github.com/harrison/grepy/internal/pattern"
)

// Logger defines the interface for logging search diagnostics.
type Logger interface {
	LogTrace(message string)
	LogDebug(message string)
	LogInfo(message string)
	LogWarn(message string)
	LogSummary(summary models.SearchSummary)
}

// errInterrupted stops the scan of the current file when the run is cancelled.
var errInterrupted = errors.New("search interrupted")

// Searcher runs one search: it owns the compiled pattern, the formatter and the
// output stream for the whole run. Files are scanned one at a time, in order.
type Searcher struct {
	cfg       models.SearchConfig
	pattern   *pattern.Pattern
	formatter *display.Formatter
	out       io.Writer
	logger    Logger
}

// NewSearcher compiles expr and prepares the formatter for cfg.
// A malformed expression is returned as a *pattern.CompileError before any file is
// touched. The logger parameter is optional and can be nil.
func NewSearcher(expr string, cfg models.SearchConfig, out io.Writer, logger Logger) (*Searcher, error) {
	if out == nil {
		panic("output writer cannot be nil")
	}

	p, err := pattern.Compile(expr)
	if err != nil {
		return nil, err
	}

	formatter, err := display.NewFormatter(cfg)
	if err != nil {
		return nil, fmt.Errorf("invalid output settings: %w", err)
	}

	return &Searcher{
		cfg:       cfg,
		pattern:   p,
		formatter: formatter,
		out:       out,
		logger:    logger,
	}, nil
}

// Run enumerates args and writes one record per matching line to the output.
//
// SIGINT/SIGTERM and ctx cancellation stop the run between two lines, so the output
// never ends in a partial record. Files that cannot be opened or read are reported as
// warnings and skipped. The only error returned is a failure to write output.
func (s *Searcher) Run(ctx context.Context, args []string) (*models.SearchSummary, error) {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	startTime := time.Now()
	summary := &models.SearchSummary{}

	enumerated := fileutil.Enumerate(args, s.cfg)
	for _, skipped := range enumerated.Skipped {
		if skipped.Err != nil {
			GracefulDebug(s.logger, "skipping %s (%s): %v", skipped.Path, skipped.Reason, skipped.Err)
		} else {
			GracefulDebug(s.logger, "skipping %s (%s)", skipped.Path, skipped.Reason)
		}
	}
	GracefulDebug(s.logger, "searching %d file(s) for %q", len(enumerated.Tasks), s.pattern.String())

	var runErr error
	for _, task := range enumerated.Tasks {
		if ctx.Err() != nil {
			summary.Interrupted = true
			break
		}

		if s.logger != nil {
			s.logger.LogTrace("scanning " + task.Path)
		}
		matched, err := s.scanFile(ctx, task)
		summary.LinesMatched += matched

		var writeErr *outputError
		switch {
		case err == nil:
			summary.FilesScanned++
		case errors.Is(err, errInterrupted):
			summary.Interrupted = true
		case errors.As(err, &writeErr):
			runErr = err
		default:
			summary.FilesFailed++
			GracefulWarn(s.logger, "%s: %v", task.Path, err)
		}

		if summary.Interrupted || runErr != nil {
			break
		}
	}

	summary.Duration = time.Since(startTime)
	if s.logger != nil {
		s.logger.LogSummary(*summary)
	}

	return summary, runErr
}

// outputError marks a failure to write a record, which ends the run
type outputError struct {
	err error
}

func (e *outputError) Error() string {
	return fmt.Sprintf("failed to write output: %v", e.err)
}

func (e *outputError) Unwrap() error {
	return e.err
}

// scanFile reads task line by line and emits a record for every matching line.
// It returns the number of records written. The file is closed on every path.
func (s *Searcher) scanFile(ctx context.Context, task models.FileTask) (int, error) {
	f, err := os.Open(task.Path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	reader := bufio.NewReader(f)
	lineNumber := 0
	matched := 0

	for {
		if ctx.Err() != nil {
			return matched, errInterrupted
		}

		line, readErr := reader.ReadString('\n')
		if len(line) > 0 {
			lineNumber++
			// The terminator is "\n" or "\r\n"; any other CR is line text
			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")

			if result, ok := s.pattern.Scan(lineNumber, line, s.cfg.AllMatches); ok {
				if err := s.emit(task, result); err != nil {
					return matched, err
				}
				matched++
			}
		}

		if readErr == io.EOF {
			return matched, nil
		}
		if readErr != nil {
			return matched, fmt.Errorf("read failed after line %d: %w", lineNumber, readErr)
		}
	}
}

// emit writes one formatted record with a single Write call.
func (s *Searcher) emit(task models.FileTask, result models.MatchResult) error {
	record := s.formatter.Format(task, result) + "\n"
	if _, err := io.WriteString(s.out, record); err != nil {
		return &outputError{err: err}
	}
	return nil
}

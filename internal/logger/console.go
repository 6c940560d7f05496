// Package logger provides the diagnostic loggers used by grepy.
//
// Diagnostics never share a stream with match output: the console logger is meant for
// standard error, and the optional file logger writes a per-run log file. Both filter by
// level (trace, debug, info, warn, error) and are safe for concurrent use.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/harrison/grepy/internal/models"
	"github.com/mattn/go-isatty"
)

// ConsoleLogger writes levelled diagnostics with timestamps and thread safety.
// All output is prefixed with [HH:MM:SS] timestamps.
// Level tags are colored when the writer is a terminal.
type ConsoleLogger struct {
	writer      io.Writer
	logLevel    string
	mutex       sync.Mutex
	colorOutput bool
}

// NewConsoleLogger creates a ConsoleLogger that writes to the provided io.Writer.
// If writer is nil, messages are silently discarded.
// Valid levels: trace, debug, info, warn, error (case-insensitive).
// If logLevel is empty or invalid, defaults to DefaultLevel.
func NewConsoleLogger(writer io.Writer, logLevel string) *ConsoleLogger {
	return &ConsoleLogger{
		writer:      writer,
		logLevel:    normalizeLogLevel(logLevel),
		colorOutput: isTerminal(writer),
	}
}

// isTerminal checks if the writer is a terminal that supports colors.
// NO_COLOR disables color regardless of the terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok || f == nil {
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Level returns the normalized level the logger filters on
func (cl *ConsoleLogger) Level() string {
	return cl.logLevel
}

// LogTrace logs a trace-level message (most verbose).
func (cl *ConsoleLogger) LogTrace(message string) {
	cl.logWithLevel("TRACE", message)
}

// LogDebug logs a debug-level message.
func (cl *ConsoleLogger) LogDebug(message string) {
	cl.logWithLevel("DEBUG", message)
}

// LogInfo logs an info-level message.
func (cl *ConsoleLogger) LogInfo(message string) {
	cl.logWithLevel("INFO", message)
}

// LogWarn logs a warning-level message.
// Format: "[HH:MM:SS] [WARN] <message>"
func (cl *ConsoleLogger) LogWarn(message string) {
	cl.logWithLevel("WARN", message)
}

// LogError logs an error-level message.
func (cl *ConsoleLogger) LogError(message string) {
	cl.logWithLevel("ERROR", message)
}

// LogSummary logs the end-of-run statistics at INFO level.
// Format: "[HH:MM:SS] [INFO] Search complete: 3 files scanned, 0 failed, 5 matching lines (12ms)"
func (cl *ConsoleLogger) LogSummary(summary models.SearchSummary) {
	cl.logWithLevel("INFO", summaryMessage(summary))
}

// logWithLevel is a helper that logs a message at the specified level if filtering allows it.
func (cl *ConsoleLogger) logWithLevel(level string, message string) {
	if cl.writer == nil {
		return
	}

	if !enabled(cl.logLevel, level) {
		return
	}

	cl.mutex.Lock()
	defer cl.mutex.Unlock()

	tag := level
	if cl.colorOutput {
		tag = colorizeLevel(level)
	}

	fmt.Fprintf(cl.writer, "[%s] [%s] %s\n", timestamp(), tag, message)
}

// summaryMessage renders a SearchSummary as a single line.
func summaryMessage(summary models.SearchSummary) string {
	state := "Search complete"
	if summary.Interrupted {
		state = "Search interrupted"
	}
	return fmt.Sprintf("%s: %d files scanned, %d failed, %d matching lines (%s)",
		state,
		summary.FilesScanned,
		summary.FilesFailed,
		summary.LinesMatched,
		summary.Duration.Round(time.Millisecond),
	)
}

// timestamp returns the current time formatted as "15:04:05" (HH:MM:SS).
func timestamp() string {
	return time.Now().Format("15:04:05")
}

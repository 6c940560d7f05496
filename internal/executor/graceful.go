package executor

import "fmt"

// graceful.go provides helpers for the soft-fail pattern used by the search loop:
// report the problem, skip the file, keep going.

// GracefulWarn logs a warning if logger is non-nil, using the given format and args.
//
// Usage:
//
//	if err != nil {
//	    GracefulWarn(s.logger, "%s: %v", task.Path, err)
//	    continue
//	}
func GracefulWarn(logger Logger, format string, args ...interface{}) {
	if logger != nil {
		logger.LogWarn(fmt.Sprintf(format, args...))
	}
}

// GracefulDebug logs a debug message if logger is non-nil.
// Companion to GracefulWarn for consistent logger nil-checking.
func GracefulDebug(logger Logger, format string, args ...interface{}) {
	if logger != nil {
		logger.LogDebug(fmt.Sprintf(format, args...))
	}
}

package models

import "time"

// Match is one matched substring within a line.
// Start and End are byte offsets into the line text.
type Match struct {
	Text  string
	Start int
	End   int
}

// MatchResult describes a single line that contained at least one match.
type MatchResult struct {
	LineNumber int     // 1-based ordinal within the file
	Line       string  // Line text with the trailing newline removed
	Matches    []Match // Ordered by offset, never empty for reported lines
}

// Matched reports whether the line should be emitted.
func (r MatchResult) Matched() bool {
	return len(r.Matches) > 0
}

// SearchSummary aggregates the outcome of a run
type SearchSummary struct {
	FilesScanned int           // Files opened and read to the end
	FilesFailed  int           // Files skipped because of an I/O error mid-run
	LinesMatched int           // Records emitted
	Duration     time.Duration // Wall time of the scan phase
	Interrupted  bool          // Run stopped by a signal before completing
}

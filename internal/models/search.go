package models

// SearchConfig holds the options that shape a single grepy run.
// It is built once by the CLI layer and only read by the search core.
type SearchConfig struct {
	Colorize        bool // Highlight the matched text
	ShowLineNumbers bool // Prefix records with the 1-based line number
	ShowFilenames   bool // Prefix records with the file path
	Recursive       bool // Descend into directory arguments
	SkipBinary      bool // Drop files that fail the text heuristic
	AllMatches      bool // Highlight every non-overlapping match instead of the first

	// HighlightColor names the foreground color used when Colorize is set.
	HighlightColor string

	// CheckLength is how many leading bytes the binary heuristic inspects (<= 0 = whole file).
	CheckLength int64
	// ChunkSize is the read size used by the binary heuristic.
	ChunkSize int
}

// Default binary heuristic settings
const (
	DefaultCheckLength int64 = 1024
	DefaultChunkSize         = 1024
)

// DefaultSearchConfig returns the configuration used when no flags or config file apply.
func DefaultSearchConfig() SearchConfig {
	return SearchConfig{
		SkipBinary:     true,
		HighlightColor: "green",
		CheckLength:    DefaultCheckLength,
		ChunkSize:      DefaultChunkSize,
	}
}

// FileTask is a regular file that survived enumeration and may be scanned.
type FileTask struct {
	Path string // Path as derived from the command line argument
}

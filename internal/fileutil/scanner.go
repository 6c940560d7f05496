package fileutil

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/harrison/grepy/internal/models"
)

// Skip reasons reported in EnumerateResult.Skipped
const (
	ReasonMissing    = "missing"
	ReasonSymlink    = "symlink"
	ReasonUnreadable = "unreadable"
	ReasonDirectory  = "directory (not recursive)"
	ReasonIrregular  = "not a regular file"
	ReasonBinary     = "binary"
)

// Skipped records a path that was left out of the task list and why.
// Skips are policy, not failures; callers usually log them at debug level.
type Skipped struct {
	Path   string
	Reason string
	Err    error // Underlying error, if any
}

// EnumerateResult contains the files to scan and the paths that were filtered out.
type EnumerateResult struct {
	// Tasks is ordered by argument order, then by walk order inside directories
	Tasks []models.FileTask
	// Skipped lists excluded paths in the order they were encountered
	Skipped []Skipped
}

// walkEntry is a pending item on the directory work list
type walkEntry struct {
	path string
	mode fs.FileMode // type bits from Lstat / ReadDir, symlinks are not followed
}

// Enumerate expands path arguments into the ordered list of regular files to scan.
//
// Symbolic links are never followed, neither as arguments nor inside a walk.
// Missing and unreadable paths are dropped. Directories are walked only when
// cfg.Recursive is set; the walk uses an explicit work list and visits entries in
// lexical order, depth first. Duplicate paths are kept. When cfg.SkipBinary is set the
// text heuristic is applied to every candidate.
func Enumerate(args []string, cfg models.SearchConfig) *EnumerateResult {
	result := &EnumerateResult{
		Tasks:   make([]models.FileTask, 0, len(args)),
		Skipped: make([]Skipped, 0),
	}

	candidates := make([]string, 0, len(args))
	for _, arg := range args {
		info, err := os.Lstat(arg)
		if err != nil {
			result.skip(arg, ReasonMissing, err)
			continue
		}

		mode := info.Mode()
		switch {
		case mode&fs.ModeSymlink != 0:
			result.skip(arg, ReasonSymlink, nil)
		case mode.IsRegular():
			if err := checkReadable(arg); err != nil {
				result.skip(arg, ReasonUnreadable, err)
				continue
			}
			candidates = append(candidates, arg)
		case mode.IsDir():
			if !cfg.Recursive {
				result.skip(arg, ReasonDirectory, nil)
				continue
			}
			candidates = append(candidates, result.walk(arg)...)
		default:
			result.skip(arg, ReasonIrregular, nil)
		}
	}

	for _, path := range candidates {
		if cfg.SkipBinary {
			text, err := IsTextFile(path, cfg.CheckLength, cfg.ChunkSize)
			if err != nil {
				// Vanished or became unreadable since it was listed
				result.skip(path, ReasonUnreadable, err)
				continue
			}
			if !text {
				result.skip(path, ReasonBinary, nil)
				continue
			}
		}
		result.Tasks = append(result.Tasks, models.FileTask{Path: path})
	}

	return result
}

// walk collects the regular files below root. Children are pushed in reverse so that
// popping the stack yields them in the lexical order os.ReadDir returns.
func (r *EnumerateResult) walk(root string) []string {
	files := make([]string, 0)
	stack := []walkEntry{{path: root, mode: fs.ModeDir}}

	for len(stack) > 0 {
		entry := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch {
		case entry.mode&fs.ModeSymlink != 0:
			r.skip(entry.path, ReasonSymlink, nil)
		case entry.mode.IsDir():
			children, err := os.ReadDir(entry.path)
			if err != nil {
				r.skip(entry.path, ReasonUnreadable, err)
				continue
			}
			for i := len(children) - 1; i >= 0; i-- {
				stack = append(stack, walkEntry{
					path: filepath.Join(entry.path, children[i].Name()),
					mode: children[i].Type(),
				})
			}
		case entry.mode.IsRegular():
			if err := checkReadable(entry.path); err != nil {
				r.skip(entry.path, ReasonUnreadable, err)
				continue
			}
			files = append(files, entry.path)
		default:
			r.skip(entry.path, ReasonIrregular, nil)
		}
	}

	return files
}

func (r *EnumerateResult) skip(path, reason string, err error) {
	r.Skipped = append(r.Skipped, Skipped{Path: path, Reason: reason, Err: err})
}

// checkReadable opens and immediately closes path
func checkReadable(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	return f.Close()
}

// Package fileutil turns command line path arguments into the files grepy scans.
//
// It owns two decisions: which paths become scan tasks, and whether a file is text.
//
// # Enumeration
//
// Enumerate expands a list of file and directory arguments into an ordered list of
// models.FileTask values:
//   - Regular files are kept in argument order
//   - Directories are walked only in recursive mode, depth first, in lexical order
//   - Symbolic links are never followed, which also rules out link cycles
//   - Missing, unreadable and non-regular paths are dropped without failing the run
//   - Duplicate arguments are scanned once per occurrence
//
// Every dropped path is reported in EnumerateResult.Skipped with a reason, so callers can
// log the decisions without the enumerator deciding how loud to be:
//
//	result := fileutil.Enumerate([]string{"notes.txt", "src/"}, cfg)
//	for _, task := range result.Tasks {
//	    fmt.Println(task.Path)
//	}
//	for _, s := range result.Skipped {
//	    log.LogDebug(fmt.Sprintf("skipped %s: %s", s.Path, s.Reason))
//	}
//
// # Binary detection
//
// IsTextFile reads the head of a file in fixed size chunks and classifies it as binary
// when a zero byte appears within the checked window:
//
//	text, err := fileutil.IsTextFile("data.bin", 1024, 512)
//
// A non-positive check length inspects the whole file. Errors opening or reading the file
// are returned rather than treated as binary; Enumerate drops such files silently because
// they may have disappeared between listing and checking.
package fileutil

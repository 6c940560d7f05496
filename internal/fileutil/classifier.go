package fileutil

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/harrison/grepy/internal/models"
)

// IsTextFile reports whether the file at path looks like text.
// It reads up to checkLength bytes (the whole file when checkLength <= 0) in chunks of
// at most chunkSize bytes and classifies the file as binary as soon as a chunk
// contains a zero byte. Open and read errors are returned to the caller.
func IsTextFile(path string, checkLength int64, chunkSize int) (bool, error) {
	if chunkSize <= 0 {
		chunkSize = models.DefaultChunkSize
	}

	f, err := os.Open(path)
	if err != nil {
		return false, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	buf := make([]byte, chunkSize)
	remaining := checkLength
	for checkLength <= 0 || remaining > 0 {
		want := len(buf)
		if checkLength > 0 && remaining < int64(want) {
			want = int(remaining)
		}

		n, err := f.Read(buf[:want])
		if n > 0 {
			if bytes.IndexByte(buf[:n], 0) >= 0 {
				return false, nil
			}
			remaining -= int64(n)
		}
		if errors.Is(err, io.EOF) {
			return true, nil
		}
		if err != nil {
			return false, fmt.Errorf("failed to read %s: %w", path, err)
		}
	}

	// Checked window exhausted without a zero byte
	return true, nil
}

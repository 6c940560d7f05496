// Package filelock writes grepy's collected records to an output file so that
// concurrent runs never interleave and readers never observe a partial file.
package filelock

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// lockSuffix is appended to the target path to name its lock file.
const lockSuffix = ".lock"

// FileLock wraps a flock file lock for coordinating access to an output file.
type FileLock struct {
	flock *flock.Flock
	path  string
}

// NewFileLock creates a new file lock for the given path.
// The lock file will be created at the specified path.
func NewFileLock(path string) *FileLock {
	return &FileLock{
		flock: flock.New(path),
		path:  path,
	}
}

// Lock acquires an exclusive lock on the file, blocking until the lock is available.
func (fl *FileLock) Lock() error {
	if err := fl.flock.Lock(); err != nil {
		return fmt.Errorf("failed to acquire lock on %s: %w", fl.path, err)
	}
	return nil
}

// Unlock releases the lock.
func (fl *FileLock) Unlock() error {
	if err := fl.flock.Unlock(); err != nil {
		return fmt.Errorf("failed to release lock on %s: %w", fl.path, err)
	}
	return nil
}

// AtomicWrite replaces path with data using a temp file in the same directory and a
// rename. An existing file keeps its permission bits; new files get 0644.
func AtomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	perm := os.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}

	tempFile, err := os.CreateTemp(dir, ".grepy-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tempPath := tempFile.Name()

	committed := false
	defer func() {
		if !committed {
			tempFile.Close()
			os.Remove(tempPath)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		return fmt.Errorf("failed to write to temp file: %w", err)
	}
	if err := tempFile.Sync(); err != nil {
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Chmod(tempPath, perm); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}

	// Rename is atomic within one filesystem
	if err := os.Rename(tempPath, path); err != nil {
		return fmt.Errorf("failed to rename temp file to %s: %w", path, err)
	}

	committed = true
	return nil
}

// LockAndWrite acquires <path>.lock, performs an atomic write, and releases the lock.
func LockAndWrite(path string, data []byte) error {
	lock := NewFileLock(path + lockSuffix)
	if err := lock.Lock(); err != nil {
		return err
	}
	defer lock.Unlock()

	return AtomicWrite(path, data)
}

// OutputFile collects records in memory and publishes them to its path on Commit.
// It implements io.Writer so the search driver can write to it like stdout.
type OutputFile struct {
	path string
	buf  bytes.Buffer
}

// NewOutputFile creates an OutputFile targeting path. Nothing touches the disk until Commit.
func NewOutputFile(path string) *OutputFile {
	return &OutputFile{path: path}
}

// Write appends p to the pending output
func (o *OutputFile) Write(p []byte) (int, error) {
	return o.buf.Write(p)
}

// Path returns the target path
func (o *OutputFile) Path() string {
	return o.path
}

// Commit writes everything collected so far to the target path under its lock.
// An empty result still replaces the file, matching a shell redirect.
func (o *OutputFile) Commit() error {
	if err := LockAndWrite(o.path, o.buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write output %s: %w", o.path, err)
	}
	return nil
}

package fileutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func TestIsTextFile(t *testing.T) {
	tmpDir := t.TempDir()

	// Zero byte placed after 2000 bytes of text
	lateZero := append([]byte(strings.Repeat("a", 2000)), 0, 'b')

	tests := []struct {
		name        string
		data        []byte
		checkLength int64
		chunkSize   int
		want        bool
	}{
		{name: "plain ascii", data: []byte("hello\nworld\n"), checkLength: 1024, chunkSize: 1024, want: true},
		{name: "utf-8 text", data: []byte("grüße, 世界\n"), checkLength: 1024, chunkSize: 1024, want: true},
		{name: "empty file", data: []byte{}, checkLength: 1024, chunkSize: 1024, want: true},
		{name: "zero byte at start", data: []byte{0, 'a', 'b'}, checkLength: 1024, chunkSize: 1024, want: false},
		{name: "zero byte in second chunk", data: []byte("abcdefgh\x00"), checkLength: 1024, chunkSize: 4, want: false},
		{name: "zero byte beyond window", data: lateZero, checkLength: 1024, chunkSize: 256, want: true},
		{name: "zero byte beyond window, whole file checked", data: lateZero, checkLength: 0, chunkSize: 256, want: false},
		{name: "negative check length reads everything", data: lateZero, checkLength: -1, chunkSize: 512, want: false},
		{name: "zero byte exactly at window edge", data: []byte("abc\x00"), checkLength: 4, chunkSize: 3, want: false},
		{name: "zero byte just past window edge", data: []byte("abcd\x00"), checkLength: 4, chunkSize: 3, want: true},
		{name: "non-positive chunk size falls back to default", data: []byte("x\x00"), checkLength: 1024, chunkSize: 0, want: false},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tmpDir, filepath.Join("case", string(rune('a'+i))), tt.data)

			got, err := IsTextFile(path, tt.checkLength, tt.chunkSize)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsTextFile_MissingFile(t *testing.T) {
	_, err := IsTextFile(filepath.Join(t.TempDir(), "nope.txt"), 1024, 1024)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

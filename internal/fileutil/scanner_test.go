package fileutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/harrison/grepy/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func taskPaths(result *EnumerateResult) []string {
	paths := make([]string, 0, len(result.Tasks))
	for _, task := range result.Tasks {
		paths = append(paths, task.Path)
	}
	return paths
}

func skippedReasons(result *EnumerateResult) map[string]string {
	reasons := make(map[string]string, len(result.Skipped))
	for _, s := range result.Skipped {
		reasons[s.Path] = s.Reason
	}
	return reasons
}

func TestEnumerate(t *testing.T) {
	// Create test directory structure:
	// tmpDir/
	//   a.txt
	//   b.txt
	//   tree/
	//     z.txt
	//     bin.dat      (contains a zero byte)
	//     sub/
	//       deep.txt
	//       deeper/
	//         deepest.txt
	//     m.txt
	tmpDir := t.TempDir()
	a := writeFile(t, tmpDir, "a.txt", []byte("alpha\n"))
	b := writeFile(t, tmpDir, "b.txt", []byte("beta\n"))
	tree := filepath.Join(tmpDir, "tree")
	z := writeFile(t, tree, "z.txt", []byte("zeta\n"))
	bin := writeFile(t, tree, "bin.dat", []byte("cat\x00dog"))
	deep := writeFile(t, tree, "sub/deep.txt", []byte("deep\n"))
	deepest := writeFile(t, tree, "sub/deeper/deepest.txt", []byte("deepest\n"))
	m := writeFile(t, tree, "m.txt", []byte("mu\n"))

	base := models.DefaultSearchConfig()

	recursive := base
	recursive.Recursive = true

	recursiveWithBinary := recursive
	recursiveWithBinary.SkipBinary = false

	tests := []struct {
		name string
		args []string
		cfg  models.SearchConfig
		want []string
	}{
		{
			name: "files kept in argument order",
			args: []string{b, a},
			cfg:  base,
			want: []string{b, a},
		},
		{
			name: "directory ignored when not recursive",
			args: []string{a, tree, b},
			cfg:  base,
			want: []string{a, b},
		},
		{
			name: "recursive walk is lexical and depth first",
			args: []string{tree},
			cfg:  recursive,
			want: []string{m, deep, deepest, z},
		},
		{
			name: "binary files kept when skip disabled",
			args: []string{tree},
			cfg:  recursiveWithBinary,
			want: []string{bin, m, deep, deepest, z},
		},
		{
			name: "duplicates are not collapsed",
			args: []string{a, a, b},
			cfg:  base,
			want: []string{a, a, b},
		},
		{
			name: "missing arguments dropped",
			args: []string{filepath.Join(tmpDir, "missing.txt"), a},
			cfg:  base,
			want: []string{a},
		},
		{
			name: "empty argument list",
			args: nil,
			cfg:  recursive,
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Enumerate(tt.args, tt.cfg)
			assert.Equal(t, tt.want, taskPaths(result))
		})
	}
}

func TestEnumerate_BinaryArgumentSkipped(t *testing.T) {
	tmpDir := t.TempDir()
	bin := writeFile(t, tmpDir, "bin.dat", []byte{0x7f, 'E', 'L', 'F', 0x00})
	text := writeFile(t, tmpDir, "x.txt", []byte("cat\n"))

	result := Enumerate([]string{bin, text}, models.DefaultSearchConfig())

	assert.Equal(t, []string{text}, taskPaths(result))
	assert.Equal(t, ReasonBinary, skippedReasons(result)[bin])
}

func TestEnumerate_SkipsSymlinks(t *testing.T) {
	tmpDir := t.TempDir()
	target := writeFile(t, tmpDir, "dir/target.txt", []byte("target\n"))
	dir := filepath.Dir(target)

	fileLink := filepath.Join(dir, "link.txt")
	dirLink := filepath.Join(dir, "loop")
	argLink := filepath.Join(tmpDir, "arg-link.txt")
	require.NoError(t, os.Symlink(target, fileLink))
	// Self-referential cycle: dir/loop -> dir
	require.NoError(t, os.Symlink(dir, dirLink))
	require.NoError(t, os.Symlink(target, argLink))

	cfg := models.DefaultSearchConfig()
	cfg.Recursive = true

	result := Enumerate([]string{argLink, dir, dirLink}, cfg)

	assert.Equal(t, []string{target}, taskPaths(result))

	reasons := skippedReasons(result)
	assert.Equal(t, ReasonSymlink, reasons[argLink])
	assert.Equal(t, ReasonSymlink, reasons[fileLink])
	assert.Equal(t, ReasonSymlink, reasons[dirLink])
}

func TestEnumerate_SkipsUnreadable(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced for root")
	}

	tmpDir := t.TempDir()
	readable := writeFile(t, tmpDir, "ok.txt", []byte("ok\n"))
	locked := writeFile(t, tmpDir, "locked.txt", []byte("secret\n"))
	lockedDir := filepath.Join(tmpDir, "private")
	writeFile(t, lockedDir, "hidden.txt", []byte("hidden\n"))

	require.NoError(t, os.Chmod(locked, 0000))
	require.NoError(t, os.Chmod(lockedDir, 0000))
	t.Cleanup(func() {
		os.Chmod(locked, 0644)
		os.Chmod(lockedDir, 0755)
	})

	cfg := models.DefaultSearchConfig()
	cfg.Recursive = true

	result := Enumerate([]string{locked, readable, lockedDir}, cfg)

	assert.Equal(t, []string{readable}, taskPaths(result))
	reasons := skippedReasons(result)
	assert.Equal(t, ReasonUnreadable, reasons[locked])
	assert.Equal(t, ReasonUnreadable, reasons[lockedDir])
}

func TestEnumerate_ReportsSkippedDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, tmpDir, "d/x.txt", []byte("x\n"))
	dir := filepath.Join(tmpDir, "d")

	result := Enumerate([]string{dir}, models.DefaultSearchConfig())

	assert.Empty(t, result.Tasks)
	require.Len(t, result.Skipped, 1)
	assert.Equal(t, ReasonDirectory, result.Skipped[0].Reason)
}

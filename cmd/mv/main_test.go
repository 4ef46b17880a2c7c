package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tlenix/tlenix/pkg/errno"
	"github.com/tlenix/tlenix/pkg/file"
	"github.com/tlenix/tlenix/pkg/fsops"
)

// TestMoveIntoDirectory exercises the "mv into a directory" path
// directly against fsops, the same logic main() composes.
func TestMoveIntoDirectory(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "f")
	destDir := filepath.Join(dir, "d")
	require.NoError(t, os.WriteFile(src, []byte("contents"), 0o644))
	require.NoError(t, os.Mkdir(destDir, 0o755))

	st, err := fsops.StatPath(destDir)
	require.NoError(t, err)
	typ, ok := st.Type()
	require.True(t, ok)
	require.Equal(t, file.TypeDirectory, typ)

	dst := filepath.Join(destDir, filepath.Base(src))
	require.NoError(t, fsops.Rename(src, dst, 0))

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	require.Equal(t, "contents", string(data))

	_, err = os.Stat(src)
	require.True(t, os.IsNotExist(err))
}

// TestMoveNoClobberReturnsEexist exercises the "no-clobber" scenario: with
// RenameNoReplace set, an existing destination is left untouched and
// fsops.Rename reports [errno.Eexist].
func TestMoveNoClobberReturnsEexist(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a")
	b := filepath.Join(dir, "b")
	require.NoError(t, os.WriteFile(a, []byte("aaa"), 0o644))
	require.NoError(t, os.WriteFile(b, []byte("bbb"), 0o644))

	err := fsops.Rename(a, b, fsops.RenameNoReplace)
	require.Equal(t, errno.Eexist, err)

	aData, rerr := os.ReadFile(a)
	require.NoError(t, rerr)
	require.Equal(t, "aaa", string(aData))

	bData, rerr := os.ReadFile(b)
	require.NoError(t, rerr)
	require.Equal(t, "bbb", string(bData))
}

func TestGetFileName(t *testing.T) {
	name, ok := getFileName("/a/b/c")
	require.True(t, ok)
	require.Equal(t, "c", name)

	name, ok = getFileName("/a/b/c///")
	require.True(t, ok)
	require.Equal(t, "c", name)

	_, ok = getFileName("/a/b/.")
	require.False(t, ok)

	_, ok = getFileName("..")
	require.False(t, ok)
}

// TestMoveFilesMultipleSourcesIntoDirectory exercises the 3-or-more-args
// branch of moveFiles: every source lands inside the destination directory.
func TestMoveFilesMultipleSourcesIntoDirectory(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a")
	b := filepath.Join(dir, "b")
	destDir := filepath.Join(dir, "d")
	require.NoError(t, os.WriteFile(a, []byte("aaa"), 0o644))
	require.NoError(t, os.WriteFile(b, []byte("bbb"), 0o644))
	require.NoError(t, os.Mkdir(destDir, 0o755))

	require.NoError(t, moveFiles(settings{paths: []string{a, b, destDir}}))

	aData, err := os.ReadFile(filepath.Join(destDir, "a"))
	require.NoError(t, err)
	require.Equal(t, "aaa", string(aData))

	bData, err := os.ReadFile(filepath.Join(destDir, "b"))
	require.NoError(t, err)
	require.Equal(t, "bbb", string(bData))
}

// TestMoveFilesMultipleSourcesNonDirectoryDestFails mirrors move_files:
// three-or-more args with a non-directory destination is Enotdir.
func TestMoveFilesMultipleSourcesNonDirectoryDestFails(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a")
	b := filepath.Join(dir, "b")
	dest := filepath.Join(dir, "dest")
	require.NoError(t, os.WriteFile(a, nil, 0o644))
	require.NoError(t, os.WriteFile(b, nil, 0o644))
	require.NoError(t, os.WriteFile(dest, nil, 0o644))

	err := moveFiles(settings{paths: []string{a, b, dest}})
	require.Equal(t, errno.Enotdir, err)
}

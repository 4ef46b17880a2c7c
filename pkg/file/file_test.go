package file_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tlenix/tlenix/pkg/errno"
	"github.com/tlenix/tlenix/pkg/file"
)

func TestWriteSeekReadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "roundtrip.txt")

	f, err := file.NewOpenOptions().ReadWrite().Create(true).Open(path)
	require.NoError(t, err)
	defer f.Close()

	n, err := f.Write([]byte("hello world"))
	require.NoError(t, err)
	require.Equal(t, 11, n)

	off, seekable, err := f.SetCursor(0)
	require.NoError(t, err)
	require.True(t, seekable)
	require.Zero(t, off)

	got, err := f.ReadToString()
	require.NoError(t, err)
	require.Equal(t, "hello world", got)
}

func TestCloseIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "closeme.txt")

	f, err := file.Create(path)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	require.NoError(t, f.Close())
}

func TestOpenNonexistentIsEnoent(t *testing.T) {
	_, err := file.Open("/nonexistent/path/for/tlenix/tests")
	require.Equal(t, errno.Enoent, err)
}

func TestCreateExclusiveOnExistingIsEexist(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "excl.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	_, err := file.NewOpenOptions().WriteOnly().CreateExclusive(true).Open(path)
	require.Equal(t, errno.Eexist, err)
}

func TestStatReportsRegularFileAndSize(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "stat.txt")
	require.NoError(t, os.WriteFile(path, []byte("12345"), 0o644))

	st, err := file.Stat(path)
	require.NoError(t, err)

	typ, ok := st.Type()
	require.True(t, ok)
	require.Equal(t, file.TypeRegular, typ)

	size, ok := st.Size()
	require.True(t, ok)
	require.EqualValues(t, 5, size)
}

func TestDirEntsListsEntries(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), nil, 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))

	d, err := file.Open(dir)
	require.NoError(t, err)
	defer d.Close()

	entries, err := d.DirEnts()
	require.NoError(t, err)

	names := map[string]file.EntryType{}
	for _, e := range entries {
		names[e.Name] = e.Type
	}
	require.Equal(t, file.TypeRegular, names["a.txt"])
	require.Equal(t, file.TypeDirectory, names["sub"])
}

func TestReadToBytesRestoresCursor(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cursor.txt")
	require.NoError(t, os.WriteFile(path, []byte("0123456789"), 0o644))

	f, err := file.NewOpenOptions().ReadWrite().Open(path)
	require.NoError(t, err)
	defer f.Close()

	_, _, err = f.SetCursor(4)
	require.NoError(t, err)

	got, err := f.ReadToBytes()
	require.NoError(t, err)
	require.Equal(t, []byte("456789"), got)

	off, seekable, err := f.Cursor()
	require.NoError(t, err)
	require.True(t, seekable)
	require.EqualValues(t, 4, off)
}

func TestDirEntsOnRegularFileIsEnotdir(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plain.txt")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	f, err := file.Open(path)
	require.NoError(t, err)
	defer f.Close()

	_, err = f.DirEnts()
	require.Equal(t, errno.Enotdir, err)
}

func TestIsDirEmpty(t *testing.T) {
	dir := t.TempDir()
	empty := filepath.Join(dir, "empty")
	require.NoError(t, os.Mkdir(empty, 0o755))

	d, err := file.Open(empty)
	require.NoError(t, err)
	defer d.Close()

	isEmpty, err := d.IsDirEmpty()
	require.NoError(t, err)
	require.True(t, isEmpty)
}

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFmtStrDefaultFiltersHiddenAndImplied(t *testing.T) {
	got := fmtStr([]string{"b", ".", "..", ".a", "a"}, entrySeparator, true, true)
	require.Equal(t, "a\tb", got)
}

func TestFmtStrAllKeepsEverything(t *testing.T) {
	got := fmtStr([]string{"b", ".", "..", ".a", "a"}, entrySeparator, false, false)
	require.Equal(t, ".\t..\t.a\ta\tb", got)
}

func TestFmtStrAlmostAllKeepsDotfilesNotImplied(t *testing.T) {
	got := fmtStr([]string{"b", ".", "..", ".a", "a"}, entrySeparator, false, true)
	require.Equal(t, ".a\ta\tb", got)
}

func TestFmtStrListUsesNewlineSeparator(t *testing.T) {
	got := fmtStr([]string{"b", "a"}, listEntrySeparator, true, true)
	require.Equal(t, "a\nb", got)
}

func TestFmtStrEmpty(t *testing.T) {
	require.Equal(t, "", fmtStr(nil, entrySeparator, true, true))
}

// TestDentNamesListsRealEntries exercises dentNames against an actual
// filesystem, confirming it surfaces every entry fmtStr then filters.
func TestDentNamesListsRealEntries(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{".a", ".b", "a", "b"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}

	names, err := dentNames(dir)
	require.NoError(t, err)
	require.Equal(t, "a\tb", fmtStr(names, entrySeparator, true, true))
}

// Command ls lists directory entries: tab-separated by default, one per
// line under -l/--list/--long, with "." / ".." and dotfiles filtered
// unless told otherwise.
package main

import (
	"os"
	"sort"
	"strings"

	"github.com/spf13/pflag"

	"github.com/tlenix/tlenix/internal/diag"
	"github.com/tlenix/tlenix/pkg/file"
	"github.com/tlenix/tlenix/pkg/stream"
)

const (
	entrySeparator     = "\t"
	listEntrySeparator = "\n"

	thisDir  = "."
	superDir = ".."

	hiddenPrefix = "."
)

func main() {
	log := diag.New("ls")

	list := pflag.BoolP("list", "l", false, "list one entry per line")
	pflag.BoolVarP(list, "long", "", false, "alias for --list")
	all := pflag.BoolP("all", "a", false, "do not filter dotfiles, '.', or '..'")
	almostAll := pflag.BoolP("almost-all", "A", false, "do not filter dotfiles, but still filter '.' and '..'")
	pflag.Parse()

	dir := thisDir
	if pflag.NArg() > 0 {
		dir = pflag.Arg(0)
	}

	separator := entrySeparator
	if *list {
		separator = listEntrySeparator
	}

	filterHidden := true
	filterImplied := true
	switch {
	case *all:
		filterHidden = false
		filterImplied = false
	case *almostAll:
		filterHidden = false
		filterImplied = true
	}

	names, err := dentNames(dir)
	if err != nil {
		os.Exit(diag.Fail(log, err))
	}

	stream.Print("%s\n", fmtStr(names, separator, filterHidden, filterImplied))
	os.Exit(0)
}

// dentNames reads the names of every entry in the directory at path.
func dentNames(path string) ([]string, error) {
	f, err := file.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	entries, err := f.DirEnts()
	if err != nil {
		return nil, err
	}

	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names, nil
}

// fmtStr sorts names, filters hidden files and/or "." and ".." as asked,
// and joins what remains with separator.
func fmtStr(names []string, separator string, filterHidden, filterImplied bool) string {
	sorted := append([]string(nil), names...)
	sort.Strings(sorted)

	kept := sorted[:0]
	for _, n := range sorted {
		if filterHidden && strings.HasPrefix(n, hiddenPrefix) {
			continue
		}
		if filterImplied && (n == thisDir || n == superDir) {
			continue
		}
		kept = append(kept, n)
	}
	return strings.Join(kept, separator)
}

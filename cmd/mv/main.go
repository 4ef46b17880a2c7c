// Command mv renames or moves one or more files: a single source renames
// onto (or into) its destination, several sources all move inside a
// destination directory.
package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"

	"github.com/tlenix/tlenix/internal/diag"
	"github.com/tlenix/tlenix/pkg/console"
	"github.com/tlenix/tlenix/pkg/errno"
	"github.com/tlenix/tlenix/pkg/file"
	"github.com/tlenix/tlenix/pkg/fsops"
	"github.com/tlenix/tlenix/pkg/stream"
)

// settings is the CLI surface mv reads into a single bundle before
// acting on it.
type settings struct {
	paths           []string
	verbose         bool
	renameFlags     fsops.RenameFlag
	promptOverwrite bool
}

func main() {
	log := diag.New("mv")
	s := parseSettings()

	if len(s.paths) < 2 {
		log.Error("usage: mv SOURCE... DEST")
		os.Exit(255)
	}

	if err := moveFiles(s); err != nil {
		os.Exit(diag.Fail(log, err))
	}
	os.Exit(0)
}

func parseSettings() settings {
	var s settings

	verbose := pflag.BoolP("debug", "v", false, "print each rename as it happens")
	force := pflag.BoolP("force", "f", false, "never prompt, overwrite the destination if it exists")
	noClobber := pflag.BoolP("no-clobber", "n", false, "never overwrite an existing destination")
	interactive := pflag.BoolP("interactive", "i", false, "prompt before overwriting an existing destination")
	exchange := pflag.Bool("exchange", false, "atomically swap source and destination")
	pflag.Parse()

	switch {
	case *force:
		s.promptOverwrite = false
		s.renameFlags &^= fsops.RenameNoReplace
	case *noClobber:
		s.promptOverwrite = false
		s.renameFlags |= fsops.RenameNoReplace
		s.renameFlags &^= fsops.RenameExchange
	case *interactive:
		s.promptOverwrite = true
		s.renameFlags &^= fsops.RenameNoReplace
	}
	if *exchange {
		s.renameFlags |= fsops.RenameExchange
		s.renameFlags &^= fsops.RenameNoReplace
	}

	s.verbose = *verbose
	s.paths = pflag.Args()
	return s
}

// moveFiles replicates move_files: a single source renames onto (or into)
// the destination directly, while two-or-more sources all move inside a
// destination directory.
func moveFiles(s settings) error {
	destPath := s.paths[len(s.paths)-1]
	destStats, destErr := fsops.StatPath(destPath)
	var destIsDir bool
	if destErr == nil {
		t, ok := destStats.Type()
		destIsDir = ok && t == file.TypeDirectory
	}

	if len(s.paths) == 2 {
		sourcePath := s.paths[0]
		sourceStats, err := fsops.StatPath(sourcePath)
		if err != nil {
			return err
		}
		sourceType, _ := sourceStats.Type()

		switch {
		case destIsDir:
			return moveFileInsideDirectory(sourcePath, destPath, s)
		case sourceType == file.TypeDirectory && destErr == nil:
			return errno.Enotdir
		default:
			return renameWithSettings(sourcePath, destPath, s)
		}
	}

	if !destIsDir {
		return errno.Enotdir
	}
	for _, src := range s.paths[:len(s.paths)-1] {
		if err := moveFileInsideDirectory(src, destPath, s); err != nil {
			return err
		}
	}
	return nil
}

// getFileName returns the final non-empty, non-"."/".." path component,
// after trimming trailing slashes.
func getFileName(path string) (string, bool) {
	trimmed := strings.TrimRight(path, "/")
	parts := strings.Split(trimmed, "/")
	for i := len(parts) - 1; i >= 0; i-- {
		if parts[i] == "" {
			continue
		}
		if parts[i] == "." || parts[i] == ".." {
			return "", false
		}
		return parts[i], true
	}
	return "", false
}

func moveFileInsideDirectory(filePath, dirPath string, s settings) error {
	name, ok := getFileName(filePath)
	if !ok {
		return errno.Einval
	}
	return renameWithSettings(filePath, filepath.Join(dirPath, name), s)
}

func renameWithSettings(source, destination string, s settings) error {
	if s.promptOverwrite {
		if _, err := fsops.StatPath(destination); err == nil {
			ok, err := promptOverwrite(destination)
			if err != nil {
				return err
			}
			if !ok {
				return nil
			}
		}
	}

	if err := fsops.Rename(source, destination, s.renameFlags); err != nil {
		return err
	}
	if s.verbose {
		stream.Println("Renamed '%s' to '%s'.", source, destination)
	}
	return nil
}

func promptOverwrite(destination string) (bool, error) {
	c, err := console.Open()
	if err != nil {
		return false, err
	}
	defer c.Close()

	stream.Print("Overwrite '%s'? [y/N] ", destination)
	line, err := c.ReadLine(4096)
	if err != nil {
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(string(line))) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

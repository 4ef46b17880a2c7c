package file

import (
	"encoding/binary"

	"golang.org/x/sys/unix"

	"github.com/tlenix/tlenix/pkg/errno"
)

// EntryType tags a directory entry with the type getdents64 reported for
// it; the variants coincide with [Type].
type EntryType = Type

// DirEntry is one directory entry: name, inode, and type tag, plus the raw
// fixed header (ino, next-offset, record length, type) getdents64 returned
// it in.
type DirEntry struct {
	Name string
	Ino  uint64
	Type EntryType

	RawOffset int64
	RawRecLen uint16
	RawType   uint8
}

// linux_dirent64 fixed header layout on x86_64:
//
//	d_ino    uint64  offset 0
//	d_off    int64   offset 8
//	d_reclen uint16  offset 16
//	d_type   uint8   offset 18
//	d_name   char[]  offset 19, NUL-terminated
const direntHeaderLen = 19

// DirEnts iterates the directory's entries by repeatedly invoking
// getdents64 into a page-sized scratch buffer and parsing the
// variable-length records it returns. Only valid on a directory; returns
// [errno.Enotdir] otherwise. The cursor is preserved across the call using
// the same save/restore discipline as [File.ReadToBytes].
func (f *File) DirEnts() ([]DirEntry, error) {
	stats, err := f.Stat()
	if err != nil {
		return nil, err
	}
	if t, ok := stats.Type(); !ok || t != TypeDirectory {
		return nil, errno.Enotdir
	}

	start, seekable, err := f.trySaveCursor()
	if err != nil {
		return nil, err
	}

	var entries []DirEntry
	buf := make([]byte, pageSize)
	for {
		n, err := unix.Getdents(int(f.fd), buf)
		if err != nil {
			f.tryRestoreCursor(start, seekable)
			return nil, errno.FromSyscallErr(err)
		}
		if n == 0 {
			break
		}
		parsed, perr := parseDirents(buf[:n])
		if perr != nil {
			f.tryRestoreCursor(start, seekable)
			return nil, perr
		}
		entries = append(entries, parsed...)
	}
	f.tryRestoreCursor(start, seekable)
	return entries, nil
}

func parseDirents(buf []byte) ([]DirEntry, error) {
	var out []DirEntry
	for off := 0; off < len(buf); {
		if off+direntHeaderLen > len(buf) {
			return nil, errno.Efault
		}
		ino := binary.LittleEndian.Uint64(buf[off : off+8])
		recOff := int64(binary.LittleEndian.Uint64(buf[off+8 : off+16]))
		reclen := binary.LittleEndian.Uint16(buf[off+16 : off+18])
		dtype := buf[off+18]
		if reclen == 0 || off+int(reclen) > len(buf) {
			return nil, errno.Efault
		}
		nameBytes := buf[off+direntHeaderLen : off+int(reclen)]
		nul := indexByte(nameBytes, 0)
		if nul >= 0 {
			nameBytes = nameBytes[:nul]
		}
		out = append(out, DirEntry{
			Name:      string(nameBytes),
			Ino:       ino,
			Type:      entryTypeFromDType(dtype),
			RawOffset: recOff,
			RawRecLen: reclen,
			RawType:   dtype,
		})
		off += int(reclen)
	}
	return out, nil
}

func indexByte(b []byte, c byte) int {
	for i, v := range b {
		if v == c {
			return i
		}
	}
	return -1
}

// d_type values from <dirent.h>.
const (
	dtUnknown = 0
	dtFIFO    = 1
	dtChr     = 2
	dtDir     = 4
	dtBlk     = 6
	dtReg     = 8
	dtLnk     = 10
	dtSock    = 12
)

func entryTypeFromDType(t byte) EntryType {
	switch t {
	case dtFIFO:
		return TypeFIFO
	case dtChr:
		return TypeCharDevice
	case dtDir:
		return TypeDirectory
	case dtBlk:
		return TypeBlockDevice
	case dtReg:
		return TypeRegular
	case dtLnk:
		return TypeSymlink
	case dtSock:
		return TypeSocket
	default:
		return TypeUnknown
	}
}

// IsDirEmpty reports whether the directory's entry list contains exactly
// the two entries "." and "..", both typed as directories.
func (f *File) IsDirEmpty() (bool, error) {
	entries, err := f.DirEnts()
	if err != nil {
		return false, err
	}
	if len(entries) != 2 {
		return false, nil
	}
	seen := map[string]bool{}
	for _, e := range entries {
		if e.Type != TypeDirectory {
			return false, nil
		}
		seen[e.Name] = true
	}
	return seen["."] && seen[".."], nil
}

// Package file implements Tlenix's owning file-descriptor handle. Go has
// no deterministic destructors, so ownership is expressed as an explicit
// io.Closer: Close issues the kernel close exactly once, and callers must
// call Close.
package file

import (
	"sync/atomic"
	"unicode/utf8"

	"golang.org/x/sys/unix"

	"github.com/tlenix/tlenix/pkg/errno"
)

// pageSize is the chunk size ReadToBytes/ReadToString and DirEnts scratch
// buffers use.
const pageSize = 4096

// File pairs a file descriptor with the open-options record that produced
// it. Exclusively owned: Close issues the kernel close exactly once, and a
// second Close call is a safe no-op (the kernel tolerates double-close, but
// File's own bookkeeping never triggers it).
type File struct {
	fd     Descriptor
	opts   *OpenOptions
	closed atomic.Bool
}

// NewFromDescriptor wraps an already-open descriptor (e.g. a standard
// stream fd) without an originating OpenOptions record.
func NewFromDescriptor(fd Descriptor) *File {
	return &File{fd: fd, opts: NewOpenOptions()}
}

// Descriptor returns the underlying file descriptor.
func (f *File) Descriptor() Descriptor { return f.fd }

// Options returns a copy of the options this file was opened with.
func (f *File) Options() OpenOptions {
	if f.opts == nil {
		return OpenOptions{}
	}
	return *f.opts
}

// Read reads up to len(buf) bytes. 0 means EOF. Propagates kernel errors:
// [errno.Ebadf] if opened write-only, [errno.Eisdir] for directory reads,
// [errno.Eagain] for non-blocking reads with nothing available.
func (f *File) Read(buf []byte) (int, error) {
	n, err := unix.Read(int(f.fd), buf)
	if err != nil {
		return 0, errno.FromSyscallErr(err)
	}
	return n, nil
}

// ReadByte reads a single byte. ok is false at EOF.
func (f *File) ReadByte() (b byte, ok bool, err error) {
	var buf [1]byte
	n, err := f.Read(buf[:])
	if err != nil {
		return 0, false, err
	}
	if n == 0 {
		return 0, false, nil
	}
	return buf[0], true, nil
}

// ReadToBytes reads until EOF into a growing buffer in page-sized chunks.
// On a seekable descriptor the cursor is recorded at entry and restored
// both on success and on failure; non-seekable descriptors (stdin, pipes,
// sockets) are detected via the Espipe error from a probe seek and the
// restore is silently skipped for them.
func (f *File) ReadToBytes() ([]byte, error) {
	start, seekable, err := f.trySaveCursor()
	if err != nil {
		return nil, err
	}

	var out []byte
	buf := make([]byte, pageSize)
	for {
		n, err := f.Read(buf)
		if err != nil {
			f.tryRestoreCursor(start, seekable)
			return nil, err
		}
		if n == 0 {
			break
		}
		out = append(out, buf[:n]...)
	}
	f.tryRestoreCursor(start, seekable)
	return out, nil
}

// ReadToString is [File.ReadToBytes] with the result interpreted as UTF-8.
// Returns [errno.Eilseq] if the bytes are not valid UTF-8.
func (f *File) ReadToString() (string, error) {
	b, err := f.ReadToBytes()
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", errno.Eilseq
	}
	return string(b), nil
}

// Write writes all bytes in buf, looping internally on short writes.
// Returns the total written and propagates kernel errors.
func (f *File) Write(buf []byte) (int, error) {
	total := 0
	for total < len(buf) {
		n, err := unix.Write(int(f.fd), buf[total:])
		if err != nil {
			return total, errno.FromSyscallErr(err)
		}
		if n == 0 {
			break
		}
		total += n
	}
	return total, nil
}

// WriteByte writes a single byte.
func (f *File) WriteByte(b byte) error {
	_, err := f.Write([]byte{b})
	return err
}

// Cursor returns the file's current offset. ok is false ([errno.Espipe])
// when the underlying resource is not seekable.
func (f *File) Cursor() (int64, bool, error) {
	off, err := unix.Seek(int(f.fd), 0, int(WhenceCurrent))
	if err != nil {
		if errno.IsErrno(errno.FromSyscallErr(err), errno.Espipe) {
			return 0, false, nil
		}
		return 0, false, errno.FromSyscallErr(err)
	}
	return off, true, nil
}

// CursorOffset reports the current offset without moving it; equivalent
// to [File.Cursor].
func (f *File) CursorOffset() (int64, bool, error) { return f.Cursor() }

// SetCursor moves the file offset to the given absolute position.
func (f *File) SetCursor(offset int64) (int64, bool, error) {
	off, err := unix.Seek(int(f.fd), offset, int(WhenceStart))
	if err != nil {
		if errno.IsErrno(errno.FromSyscallErr(err), errno.Espipe) {
			return 0, false, nil
		}
		return 0, false, errno.FromSyscallErr(err)
	}
	return off, true, nil
}

// CursorToEnd moves the file offset to the end of the file.
func (f *File) CursorToEnd() (int64, bool, error) {
	off, err := unix.Seek(int(f.fd), 0, int(WhenceEnd))
	if err != nil {
		if errno.IsErrno(errno.FromSyscallErr(err), errno.Espipe) {
			return 0, false, nil
		}
		return 0, false, errno.FromSyscallErr(err)
	}
	return off, true, nil
}

// CursorToEndOffset reports the offset of the end of the file, leaving
// the cursor there; equivalent to [File.CursorToEnd].
func (f *File) CursorToEndOffset() (int64, bool, error) { return f.CursorToEnd() }

// trySaveCursor records the current offset, returning seekable=false
// (instead of propagating Espipe) for non-seekable descriptors.
func (f *File) trySaveCursor() (offset int64, seekable bool, err error) {
	off, ok, err := f.Cursor()
	if err != nil {
		return 0, false, err
	}
	return off, ok, nil
}

func (f *File) tryRestoreCursor(offset int64, seekable bool) {
	if !seekable {
		return
	}
	_, _, _ = f.SetCursor(offset)
}

// Close issues close on the descriptor exactly once; a repeated call is a
// no-op and never re-issues the syscall, so a kernel-level double-close
// (which the kernel tolerates but File never deliberately performs) cannot
// happen through this API.
func (f *File) Close() error {
	if f.closed.Swap(true) {
		return nil
	}
	return errno.FromSyscallErr(unix.Close(int(f.fd)))
}

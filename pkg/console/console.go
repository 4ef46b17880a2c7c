// Package console implements Tlenix's non-blocking TTY console with a
// cooked-mode line reader.
package console

import (
	"github.com/tlenix/tlenix/pkg/errno"
	"github.com/tlenix/tlenix/pkg/file"
	"github.com/tlenix/tlenix/pkg/sleep"
	"github.com/tlenix/tlenix/pkg/termios"
)

// devicePath is the character device console.Open opens. Release builds
// use /dev/console; debug builds use /dev/tty, matching the kernel's own
// idea of "the program's controlling terminal" for interactive
// development. Selected by the tlenix_debug build tag in device_debug.go /
// device_release.go.
var devicePath = consoleDevicePath()

// Console is a handle onto the controlling terminal, opened read-write and
// non-blocking.
type Console struct {
	f *file.File
}

// Open opens the console device. Rejects the open with [errno.Enotty] if
// the resolved path does not refer to a character device.
func Open() (*Console, error) {
	f, err := file.NewOpenOptions().ReadWrite().NonBlocking(true).Open(devicePath)
	if err != nil {
		return nil, err
	}
	stats, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	if t, ok := stats.Type(); !ok || t != file.TypeCharDevice {
		f.Close()
		return nil, errno.Enotty
	}
	return &Console{f: f}, nil
}

// Close closes the console's underlying descriptor.
func (c *Console) Close() error { return c.f.Close() }

// ReadByte blocks (via a cooperative spin, not a blocking syscall) until a
// byte is available, sleeping one PIT tick between non-blocking read
// attempts that return empty or [errno.Eagain]. Any other error is
// propagated immediately.
func (c *Console) ReadByte() (byte, error) {
	for {
		b, ok, err := c.f.ReadByte()
		if err != nil {
			if errno.IsErrno(err, errno.Eagain) {
				if serr := sleep.Sleep(sleep.PITPeriod); serr != nil {
					return 0, serr
				}
				continue
			}
			return 0, err
		}
		if !ok {
			if serr := sleep.Sleep(sleep.PITPeriod); serr != nil {
				return 0, serr
			}
			continue
		}
		return b, nil
	}
}

// Mode describes the line discipline [Console.ReadLine] implements in
// software: canonical editing with local echo. The kernel's own termios
// state is never read or written; the console carries its cooked-mode
// behavior itself.
func (c *Console) Mode() termios.Mode {
	return termios.Mode{Local: termios.LocalCanon | termios.LocalEcho}
}

// WriteByte writes a single byte to the console.
func (c *Console) WriteByte(b byte) error { return c.f.WriteByte(b) }

// Write writes buf to the console.
func (c *Console) Write(buf []byte) (int, error) { return c.f.Write(buf) }

const backspace = 0x08

// ReadLine is a cooked-mode line editor driven by ReadByte:
//
//   - newline terminates the line and returns the accumulated bytes
//     (without the newline);
//   - a preceding backslash escapes the next newline, which is appended
//     literally and reading continues;
//   - backspace pops the last accumulated byte (no underflow when empty)
//     and echoes "\x08 \x08" instead of the backspace byte itself;
//   - any other byte is echoed back to the console, then appended;
//   - reaching maxBytes returns whatever has been collected so far.
func (c *Console) ReadLine(maxBytes int) ([]byte, error) {
	var acc []byte
	// pendingBackslash holds an unresolved '\\' that hasn't yet been
	// followed by a byte telling us whether it was escaping a newline.
	pendingBackslash := false
	for len(acc) < maxBytes {
		b, err := c.ReadByte()
		if err != nil {
			return acc, err
		}

		if pendingBackslash {
			pendingBackslash = false
			if b == '\n' {
				// Escaped newline: append it literally, keep reading.
				if err := c.WriteByte(b); err != nil {
					return acc, err
				}
				acc = append(acc, b)
				continue
			}
			// Not an escape after all: the backslash stands for itself.
			if err := c.WriteByte('\\'); err != nil {
				return acc, err
			}
			acc = append(acc, '\\')
			// Fall through to process b normally below.
		}

		switch {
		case b == '\n':
			return acc, nil
		case b == backspace || b == 0x7f:
			if len(acc) > 0 {
				acc = acc[:len(acc)-1]
			}
			if _, err := c.Write([]byte("\x08 \x08")); err != nil {
				return acc, err
			}
		case b == '\\':
			pendingBackslash = true
		default:
			if err := c.WriteByte(b); err != nil {
				return acc, err
			}
			acc = append(acc, b)
		}
	}
	return acc, nil
}

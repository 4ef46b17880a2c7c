// Package stream implements Tlenix's standard-stream singletons and the
// formatted-output helpers built on top of them.
package stream

import (
	"fmt"
	"sync"

	"github.com/tlenix/tlenix/pkg/file"
)

// Stream pairs a [file.File] with the lock that makes a formatted
// write atomic with respect to other writers of the same stream. The lock
// is non-recursive by contract: nothing in this package calls back into a
// Stream method while already holding its lock.
type Stream struct {
	mu sync.Mutex
	f  *file.File
}

var (
	stdinOnce  sync.Once
	stdoutOnce sync.Once
	stderrOnce sync.Once

	stdin  *Stream
	stdout *Stream
	stderr *Stream
)

// Stdin returns the process-wide stdin singleton (fd 0), read-only.
// Never closed: fd 0 outlives the program.
func Stdin() *Stream {
	stdinOnce.Do(func() { stdin = &Stream{f: file.NewFromDescriptor(0)} })
	return stdin
}

// Stdout returns the process-wide stdout singleton (fd 1), write-only.
func Stdout() *Stream {
	stdoutOnce.Do(func() { stdout = &Stream{f: file.NewFromDescriptor(1)} })
	return stdout
}

// Stderr returns the process-wide stderr singleton (fd 2), write-only.
func Stderr() *Stream {
	stderrOnce.Do(func() { stderr = &Stream{f: file.NewFromDescriptor(2)} })
	return stderr
}

// Read reads from stdin. Not valid on stdout/stderr singletons.
func (g *Stream) Read(buf []byte) (int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.f.Read(buf)
}

// Write writes to the stream under its lock, so interleaved formatted
// writes from concurrent callers never interleave mid-line.
func (g *Stream) Write(buf []byte) (int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.f.Write(buf)
}

// Format builds a formatted string without writing it anywhere.
func Format(format string, args ...any) string {
	return fmt.Sprintf(format, args...)
}

// Print writes a formatted string to stdout.
func Print(format string, args ...any) {
	_, _ = Stdout().Write([]byte(Format(format, args...)))
}

// Println is Print with a trailing newline.
func Println(format string, args ...any) {
	_, _ = Stdout().Write([]byte(Format(format, args...) + "\n"))
}

// Eprint writes a formatted string to stderr.
func Eprint(format string, args ...any) {
	_, _ = Stderr().Write([]byte(Format(format, args...)))
}

// Eprintln is Eprint with a trailing newline.
func Eprintln(format string, args ...any) {
	_, _ = Stderr().Write([]byte(Format(format, args...) + "\n"))
}

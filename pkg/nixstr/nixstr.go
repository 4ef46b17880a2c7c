// Package nixstr implements Tlenix's owned, NUL-terminated byte and string
// buffers, the shape every path, argv entry, and envp entry takes once it
// is about to cross into the kernel.
package nixstr

import (
	"unicode/utf8"

	"github.com/tlenix/tlenix/internal/arena"
	"github.com/tlenix/tlenix/pkg/errno"
)

// Bytes is an owned, heap-allocated buffer guaranteed to end in a single
// zero byte, with any internal zero bytes filtered out on construction.
type Bytes struct {
	buf []byte
}

// NewBytes builds a Bytes from b, dropping any internal NUL bytes and
// appending exactly one terminating NUL.
func NewBytes(b []byte) Bytes {
	out := make([]byte, 0, len(b)+1)
	for _, c := range b {
		if c == 0 {
			continue
		}
		out = append(out, c)
	}
	out = append(out, 0)
	return Bytes{buf: out}
}

// NewBytesIn is [NewBytes], but carves the result out of a, falling back to
// a fresh heap allocation if a has no room left. Used by hot paths (e.g.
// console.ReadLine callers building many short-lived command lines) that
// want to reuse one arena across iterations instead of pressuring the GC.
func NewBytesIn(a *arena.Arena, b []byte) Bytes {
	n := 0
	for _, c := range b {
		if c != 0 {
			n++
		}
	}
	if dst := a.Alloc(n + 1); dst != nil {
		i := 0
		for _, c := range b {
			if c == 0 {
				continue
			}
			dst[i] = c
			i++
		}
		dst[n] = 0
		return Bytes{buf: dst}
	}
	return NewBytes(b)
}

// Len returns the length excluding the terminating NUL.
func (b Bytes) Len() int { return len(b.buf) - 1 }

// Bytes returns the buffer including its terminating NUL, suitable for
// passing to the kernel as a C string. Callers must not mutate it.
func (b Bytes) Bytes() []byte { return b.buf }

// Trimmed returns the buffer excluding the terminating NUL.
func (b Bytes) Trimmed() []byte { return b.buf[:len(b.buf)-1] }

// String is a [Bytes] additionally guaranteed to hold valid UTF-8.
type String struct {
	b Bytes
}

// NewString validates s as UTF-8 and wraps it as a String. Returns
// [errno.Eilseq] if s is not valid UTF-8.
func NewString(s string) (String, error) {
	if !utf8.ValidString(s) {
		return String{}, errno.Eilseq
	}
	return String{b: NewBytes([]byte(s))}, nil
}

// MustString panics if s is not valid UTF-8; for use with compile-time
// constant strings only.
func MustString(s string) String {
	v, err := NewString(s)
	if err != nil {
		panic(err)
	}
	return v
}

// String returns the Go string form, excluding the terminating NUL.
func (s String) String() string { return string(s.b.Trimmed()) }

// Bytes returns the underlying [Bytes].
func (s String) Bytes() Bytes { return s.b }

// CString returns the buffer including its terminating NUL.
func (s String) CString() []byte { return s.b.Bytes() }

// ParseString round-trips a previously-built String's C-string
// representation back into a validated String: trailing NULs are trimmed
// and the remainder re-validated, so ParseString(s.CString()) equals s.
func ParseString(cstr []byte) (String, error) {
	n := len(cstr)
	for n > 0 && cstr[n-1] == 0 {
		n--
	}
	return NewString(string(cstr[:n]))
}

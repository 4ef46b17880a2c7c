// Package arena implements a trivial, replaceable allocator: a fixed-size
// bump arena behind a lock. Go's own runtime allocator backs everything
// else in this module; arena exists only so pkg/nixstr has somewhere to
// point when a caller explicitly wants an arena-backed buffer instead of
// one from the garbage-collected heap (e.g. a hot console read-line loop
// that wants to reuse one buffer across iterations).
package arena

import "sync"

// Arena is a fixed-size bump allocator. The zero value is not usable; use
// [New].
type Arena struct {
	mu     sync.Mutex
	buf    []byte
	offset int
}

// New creates an Arena backed by a buffer of the given size.
func New(size int) *Arena {
	return &Arena{buf: make([]byte, size)}
}

// Alloc returns an n-byte slice carved from the arena, or nil if the arena
// has no room left. The lock is held only for the duration of the bump; it
// is never re-entered from within a held lock (callers must not call Alloc
// or Reset from code invoked while holding another Arena's lock).
func (a *Arena) Alloc(n int) []byte {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.offset+n > len(a.buf) {
		return nil
	}
	out := a.buf[a.offset : a.offset+n : a.offset+n]
	a.offset += n
	return out
}

// Reset reclaims all previously allocated slices. Callers must ensure
// nothing still references memory handed out by Alloc before calling this.
func (a *Arena) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.offset = 0
}

// Cap returns the arena's total capacity in bytes.
func (a *Arena) Cap() int { return len(a.buf) }

// Used returns the number of bytes currently allocated.
func (a *Arena) Used() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.offset
}

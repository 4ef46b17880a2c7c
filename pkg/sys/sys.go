// Package sys is Tlenix's syscall trampoline: the one place that crosses
// from Go into the raw x86_64 Linux syscall ABI. Every other package in the
// module calls the kernel only through here.
package sys

import (
	"golang.org/x/sys/unix"

	"github.com/tlenix/tlenix/pkg/errno"
)

// Call0 through Call6 are the arity-indexed entry points: one per number
// of register arguments the x86_64 syscall convention accepts (rdi, rsi,
// rdx, r10, r8, r9). They are thin wrappers over golang.org/x/sys/unix's
// RawSyscall/RawSyscall6; the trampoline still owns ABI-level result
// decoding via [Result], rather than deferring to unix's own error
// reinterpretation, so this package remains the single place where "a
// return in [-4095,-1] is an error" is asserted.

// Call0 invokes a syscall taking no arguments.
func Call0(nr uintptr) (uintptr, uintptr, unix.Errno) {
	return unix.RawSyscall(nr, 0, 0, 0)
}

// Call1 invokes a syscall taking one argument.
func Call1(nr, a1 uintptr) (uintptr, uintptr, unix.Errno) {
	return unix.RawSyscall(nr, a1, 0, 0)
}

// Call2 invokes a syscall taking two arguments.
func Call2(nr, a1, a2 uintptr) (uintptr, uintptr, unix.Errno) {
	return unix.RawSyscall(nr, a1, a2, 0)
}

// Call3 invokes a syscall taking three arguments.
func Call3(nr, a1, a2, a3 uintptr) (uintptr, uintptr, unix.Errno) {
	return unix.RawSyscall(nr, a1, a2, a3)
}

// Call4 invokes a syscall taking four arguments.
func Call4(nr, a1, a2, a3, a4 uintptr) (uintptr, uintptr, unix.Errno) {
	return unix.RawSyscall6(nr, a1, a2, a3, a4, 0, 0)
}

// Call5 invokes a syscall taking five arguments.
func Call5(nr, a1, a2, a3, a4, a5 uintptr) (uintptr, uintptr, unix.Errno) {
	return unix.RawSyscall6(nr, a1, a2, a3, a4, a5, 0)
}

// Call6 invokes a syscall taking six arguments, the maximum the x86_64
// convention supports.
func Call6(nr, a1, a2, a3, a4, a5, a6 uintptr) (uintptr, uintptr, unix.Errno) {
	return unix.RawSyscall6(nr, a1, a2, a3, a4, a5, a6)
}

// Call is the generic entry point: call number plus a heterogeneous
// argument pack, each element already reduced to its raw machine-word
// representation. Extra arguments beyond 6 are rejected with Einval;
// the kernel ABI has no register for a seventh.
func Call(nr uintptr, args ...uintptr) (uintptr, uintptr, unix.Errno) {
	var a [6]uintptr
	if len(args) > 6 {
		return 0, 0, unix.EINVAL
	}
	copy(a[:], args)
	return unix.RawSyscall6(nr, a[0], a[1], a[2], a[3], a[4], a[5])
}

// Result reinterprets a raw syscall return: values in
// [-4095,-1] are errors, everything else is the success value. Go's
// RawSyscall already splits the raw return into (r1, r2, errno) for us at
// the assembly boundary; Result re-derives the same [-4095,-1] contract
// explicitly so the decoding rule lives in this package rather than being
// implicitly delegated to the unix package.
func Result(r1 uintptr, e unix.Errno) (uintptr, error) {
	if e != 0 {
		n, _ := errno.FromRaw(int(e))
		return 0, n
	}
	return r1, nil
}

// Arg reduces a typed value to the uniform numeric representation the
// trampoline's Call entry points expect: the contract is that the returned
// word's bit pattern equals what the kernel expects, nothing more.
type Arg interface {
	~int | ~int32 | ~int64 | ~uint | ~uint32 | ~uint64 | ~uintptr
}

// ToWord converts a typed argument to its raw machine-word representation.
func ToWord[T Arg](v T) uintptr { return uintptr(v) }

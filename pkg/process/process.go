// Package process implements Tlenix's process lifecycle primitives:
// fork, execve, wait, and the composed ExecuteProcess.
package process

import (
	"runtime"
	stdsyscall "syscall"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/tlenix/tlenix/pkg/errno"
	"github.com/tlenix/tlenix/pkg/nixstr"
	"github.com/tlenix/tlenix/pkg/sys"
)

// Fork is the zero-argument fork wrapper: it returns the child's pid in
// the parent and 0 in the child.
//
// Unsafe to use directly in a Go process except under one discipline: the
// child path must end in [Execve] or exit and must not otherwise touch Go
// runtime state (no goroutines, no allocations beyond what Execve needs,
// no GC-visible mutation). Go's runtime is multi-threaded; any other OS
// thread may be mid-syscall, mid-GC, or holding an internal lock at the
// instant of fork, and the child inherits only the forking thread.
// [ExecuteProcess] avoids all of this by using the standard library's
// syscall.ForkExec, which performs fork and exec as a single
// runtime-coordinated operation; prefer it unless you genuinely need a
// bare fork.
func Fork() (pid int, inChild bool, err error) {
	r1, _, e := sys.Call0(unix.SYS_FORK)
	if e != 0 {
		n, _ := errno.FromRaw(int(e))
		return 0, false, n
	}
	if r1 == 0 {
		return 0, true, nil
	}
	return int(r1), false, nil
}

// cstrArray bundles an array of C-string pointers with the NUL-terminated
// buffers they point into, so the backings stay reachable for as long as
// the pointer array does. The kernel reads through the raw pointers during
// execve, after Go has in principle lost interest in the slices;
// runtime.KeepAlive on the bundle pins everything until the syscall
// returns (or the process image is replaced and the question is moot).
type cstrArray struct {
	ptrs     []*byte
	backings []nixstr.String
}

func newCstrArray(strs []string) (*cstrArray, error) {
	a := &cstrArray{
		ptrs:     make([]*byte, 0, len(strs)+1),
		backings: make([]nixstr.String, 0, len(strs)),
	}
	for _, s := range strs {
		ns, err := nixstr.NewString(s)
		if err != nil {
			return nil, err
		}
		a.backings = append(a.backings, ns)
		a.ptrs = append(a.ptrs, &ns.CString()[0])
	}
	a.ptrs = append(a.ptrs, nil)
	return a, nil
}

func (a *cstrArray) ptr() uintptr {
	return uintptr(unsafe.Pointer(&a.ptrs[0]))
}

// Execve replaces the current process image with the program at argv[0],
// passing argv and envp as two NUL-terminated arrays of C-string pointers,
// each array terminated by a null pointer. Does not return on success.
// Empty argv yields [errno.Enoent] without invoking the kernel.
func Execve(argv, envp []string) error {
	if len(argv) == 0 {
		return errno.Enoent
	}

	path, err := nixstr.NewString(argv[0])
	if err != nil {
		return err
	}
	argvArr, err := newCstrArray(argv)
	if err != nil {
		return err
	}
	envpArr, err := newCstrArray(envp)
	if err != nil {
		return err
	}

	pathPtr := uintptr(unsafe.Pointer(&path.CString()[0]))
	_, _, e := sys.Call3(unix.SYS_EXECVE, pathPtr, argvArr.ptr(), envpArr.ptr())
	runtime.KeepAlive(path)
	runtime.KeepAlive(argvArr)
	runtime.KeepAlive(envpArr)

	// Only reached on failure: on success the process image is gone.
	_, rerr := sys.Result(0, e)
	if rerr == nil {
		panic("execve returned without an error")
	}
	return rerr
}

// ExecuteProcess composes fork, execve, and wait into a single blocking
// "run a child to completion" primitive:
//
//   - if the fork fails, the error propagates;
//   - a failed exec in the child surfaces as the returned error rather
//     than ever running caller code in the child;
//   - the parent blocks in waitid for this specific pid with WEXITED, and
//     converts the result to an [ExitStatus].
//
// Built on syscall.ForkExec (the Go runtime's safe fork+exec composition)
// rather than [Fork] + [Execve] directly; see [Fork]'s doc comment.
func ExecuteProcess(argv, envp []string) (ExitStatus, error) {
	if len(argv) == 0 {
		return ExitStatus{}, errno.Enoent
	}

	pid, err := stdsyscall.ForkExec(argv[0], argv, &stdsyscall.ProcAttr{
		Env:   envp,
		Files: []uintptr{0, 1, 2},
	})
	if err != nil {
		return ExitStatus{}, errno.FromSyscallErr(err)
	}
	runtime.KeepAlive(argv)
	runtime.KeepAlive(envp)

	info, err := Wait(IDPid, pid, WaitExited)
	if err != nil {
		return ExitStatus{}, err
	}
	return info.ToExitStatus(), nil
}

package process

import (
	"encoding/binary"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/tlenix/tlenix/pkg/errno"
)

// IDType selects what [Wait]'s id argument identifies.
type IDType int

const (
	IDPid  IDType = unix.P_PID
	IDPgid IDType = unix.P_PGID
	IDAll  IDType = unix.P_ALL
)

// WaitOptions is a bitset for [Wait].
type WaitOptions int

const (
	WaitExited    WaitOptions = unix.WEXITED
	WaitStopped   WaitOptions = unix.WSTOPPED
	WaitContinued WaitOptions = unix.WCONTINUED
	WaitNoHang    WaitOptions = unix.WNOHANG
)

// ChildCode is the kernel's classification of why waitid reported the
// child.
type ChildCode int

const (
	ChildExited    ChildCode = unix.CLD_EXITED
	ChildKilled    ChildCode = unix.CLD_KILLED
	ChildDumped    ChildCode = unix.CLD_DUMPED
	ChildTrapped   ChildCode = unix.CLD_TRAPPED
	ChildStopped   ChildCode = unix.CLD_STOPPED
	ChildContinued ChildCode = unix.CLD_CONTINUED
)

// WaitInfo is the decoded result of waitid: child pid, child uid, the raw
// status word, and the kernel's classification of the event.
type WaitInfo struct {
	Pid    int32
	UID    uint32
	Status int32
	Code   ChildCode
}

// waitidPidOffset through waitidStatusOffset locate the si_pid/si_uid/
// si_status fields of the SIGCHLD union inside siginfo_t's trailing
// opaque bytes, which golang.org/x/sys/unix's Siginfo type exposes only
// as an unexported byte blob. On x86_64 the union starts right after the
// 16-byte {signo,errno,code,pad} header.
const (
	waitidPidOffset    = 16
	waitidUIDOffset    = 20
	waitidStatusOffset = 24
)

// Wait wraps waitid, blocking until a child matching (idType, id) reports
// one of the requested options, and decodes the result into a [WaitInfo].
func Wait(idType IDType, id int, options WaitOptions) (WaitInfo, error) {
	var info unix.Siginfo
	if err := unix.Waitid(int(idType), id, &info, int(options), nil); err != nil {
		return WaitInfo{}, errno.FromSyscallErr(err)
	}

	raw := unsafe.Slice((*byte)(unsafe.Pointer(&info)), unsafe.Sizeof(info))
	pid := binary.LittleEndian.Uint32(raw[waitidPidOffset : waitidPidOffset+4])
	uid := binary.LittleEndian.Uint32(raw[waitidUIDOffset : waitidUIDOffset+4])
	status := binary.LittleEndian.Uint32(raw[waitidStatusOffset : waitidStatusOffset+4])

	return WaitInfo{
		Pid:    int32(pid),
		UID:    uid,
		Status: int32(status),
		Code:   ChildCode(info.Code),
	}, nil
}

// ToExitStatus decodes the (code, status) pair into an [ExitStatus]:
// a zero exit is success, a nonzero exit is failure with that code,
// killed/dumped map to terminated-by-signal, stopped maps to
// stopped-by-signal, and continued/trapped surface as failures carrying
// the raw status.
func (w WaitInfo) ToExitStatus() ExitStatus {
	switch w.Code {
	case ChildExited:
		if w.Status == 0 {
			return Success()
		}
		return Failure(w.Status)
	case ChildKilled, ChildDumped:
		return TerminatedBy(Signal(w.Status))
	case ChildStopped:
		return StoppedBy(Signal(w.Status))
	case ChildContinued, ChildTrapped:
		return Failure(w.Status)
	default:
		return Failure(w.Status)
	}
}

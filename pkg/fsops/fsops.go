// Package fsops implements Tlenix's directory and filesystem operations:
// chdir/getcwd, mkdir/rmdir/rm, flag-aware rename, and the
// mount/umount/pivot_root/chroot family.
package fsops

import (
	"unicode/utf8"

	"golang.org/x/sys/unix"

	"github.com/tlenix/tlenix/pkg/errno"
	"github.com/tlenix/tlenix/pkg/file"
	"github.com/tlenix/tlenix/pkg/nixstr"
)

// kpath funnels a path through [nixstr.String] before it crosses the
// syscall boundary, upholding the contract that every kernel-bound string
// is NUL-filtered and valid UTF-8 ([errno.Eilseq] otherwise).
func kpath(path string) (string, error) {
	s, err := nixstr.NewString(path)
	if err != nil {
		return "", err
	}
	return s.String(), nil
}

// ChangeDir changes the process's current working directory.
func ChangeDir(path string) error {
	p, err := kpath(path)
	if err != nil {
		return err
	}
	return errno.FromSyscallErr(unix.Chdir(p))
}

// initialCwdBufSize is GetCwd's starting buffer size.
const initialCwdBufSize = 256

// GetCwd returns the current working directory. The internal buffer
// starts at 256 bytes and doubles on [errno.Erange] until the kernel's
// answer fits. Trailing zero bytes are trimmed and the result is
// validated as UTF-8 ([errno.Eilseq] otherwise).
func GetCwd() (string, error) {
	size := initialCwdBufSize
	for {
		buf := make([]byte, size)
		n, err := unix.Getcwd(buf)
		if err != nil {
			if errno.IsErrno(errno.FromSyscallErr(err), errno.Erange) {
				size *= 2
				continue
			}
			return "", errno.FromSyscallErr(err)
		}
		out := buf[:n]
		for len(out) > 0 && out[len(out)-1] == 0 {
			out = out[:len(out)-1]
		}
		if !utf8.Valid(out) {
			return "", errno.Eilseq
		}
		return string(out), nil
	}
}

// Mkdir creates a directory with the given permission mode.
func Mkdir(path string, mode file.Permissions) error {
	p, err := kpath(path)
	if err != nil {
		return err
	}
	return errno.FromSyscallErr(unix.Mkdir(p, uint32(mode)))
}

// Rmdir removes an empty directory.
func Rmdir(path string) error {
	p, err := kpath(path)
	if err != nil {
		return err
	}
	return errno.FromSyscallErr(unix.Rmdir(p))
}

// Rm unlinks path. Returns [errno.Eisdir] on a directory, [errno.Enoent]
// on an empty path.
func Rm(path string) error {
	if path == "" {
		return errno.Enoent
	}
	p, err := kpath(path)
	if err != nil {
		return err
	}
	return errno.FromSyscallErr(unix.Unlink(p))
}

// RenameFlag is a modifier for [Rename].
type RenameFlag uint

const (
	RenameNoReplace RenameFlag = unix.RENAME_NOREPLACE
	RenameExchange  RenameFlag = unix.RENAME_EXCHANGE
	RenameWhiteout  RenameFlag = unix.RENAME_WHITEOUT
)

// Rename moves src to dst using the flag-aware renameat2 syscall.
// RenameNoReplace and RenameExchange are mutually exclusive, as are
// RenameWhiteout and RenameExchange; the kernel itself rejects invalid
// combinations with [errno.Einval].
func Rename(src, dst string, flags RenameFlag) error {
	s, err := kpath(src)
	if err != nil {
		return err
	}
	d, err := kpath(dst)
	if err != nil {
		return err
	}
	err = unix.Renameat2(int(file.AtFDCWD), s, int(file.AtFDCWD), d, uint(flags))
	return errno.FromSyscallErr(err)
}

// MountType names a filesystem type for [Mount].
type MountType string

const (
	MountProc     MountType = "proc"
	MountSysfs    MountType = "sysfs"
	MountDevtmpfs MountType = "devtmpfs"
	MountExt4     MountType = "ext4"
	MountTmpfs    MountType = "tmpfs"
	MountOverlay  MountType = "overlay"
	MountBind     MountType = "bind" // pseudo-type: set MountFlagBind instead
)

// MountFlag is a bitset for [Mount].
type MountFlag uintptr

const (
	MountFlagBind     MountFlag = unix.MS_BIND
	MountFlagRec      MountFlag = unix.MS_REC
	MountFlagReadOnly MountFlag = unix.MS_RDONLY
	MountFlagNoSuid   MountFlag = unix.MS_NOSUID
	MountFlagNoDev    MountFlag = unix.MS_NODEV
	MountFlagNoExec   MountFlag = unix.MS_NOEXEC
	MountFlagPrivate  MountFlag = unix.MS_PRIVATE
	MountFlagSlave    MountFlag = unix.MS_SLAVE
)

// Mount mounts source at target with the given filesystem type and flags.
func Mount(source, target string, fstype MountType, flags MountFlag, data string) error {
	s, err := kpath(source)
	if err != nil {
		return err
	}
	tgt, err := kpath(target)
	if err != nil {
		return err
	}
	return errno.FromSyscallErr(unix.Mount(s, tgt, string(fstype), uintptr(flags), data))
}

// UnmountFlag is a bitset for [Unmount].
type UnmountFlag int

const (
	UnmountForce  UnmountFlag = unix.MNT_FORCE
	UnmountDetach UnmountFlag = unix.MNT_DETACH // lazy unmount
)

// Unmount unmounts target.
func Unmount(target string, flags UnmountFlag) error {
	tgt, err := kpath(target)
	if err != nil {
		return err
	}
	return errno.FromSyscallErr(unix.Unmount(tgt, int(flags)))
}

// PivotRoot moves the current root filesystem to putOld and makes newRoot
// the new root, per pivot_root(2).
func PivotRoot(newRoot, putOld string) error {
	nr, err := kpath(newRoot)
	if err != nil {
		return err
	}
	po, err := kpath(putOld)
	if err != nil {
		return err
	}
	return errno.FromSyscallErr(unix.PivotRoot(nr, po))
}

// Chroot changes the process's root directory.
func Chroot(path string) error {
	p, err := kpath(path)
	if err != nil {
		return err
	}
	return errno.FromSyscallErr(unix.Chroot(p))
}

// StatPath stats the file at path. It opens path with [file.Flag]
// PathOnly and delegates to statx, rather than issuing statx directly, so
// the same descriptor-lifetime discipline applies to path-based stats as
// to fd-based ones.
func StatPath(path string) (file.Stats, error) {
	f, err := file.NewOpenOptions().PathOnly(true).Open(path)
	if err != nil {
		return file.Stats{}, err
	}
	defer f.Close()
	return f.Stat()
}

package file

import (
	"golang.org/x/sys/unix"
)

// Descriptor is an opaque, process-unique integer identifying a kernel I/O
// resource. Cheap to copy; lifecycle semantics live on [File].
type Descriptor int32

// AtFDCWD is the sentinel dirfd meaning "resolve relative to the current
// working directory", per the *at() syscall family.
const AtFDCWD Descriptor = unix.AT_FDCWD

// AccessMode is the read/write access a file was opened with.
type AccessMode int

const (
	AccessReadOnly  AccessMode = unix.O_RDONLY
	AccessWriteOnly AccessMode = unix.O_WRONLY
	AccessReadWrite AccessMode = unix.O_RDWR
)

// Flag is a modifier bit for [OpenOptions].
type Flag int

const (
	FlagAppend      Flag = unix.O_APPEND
	FlagTruncate    Flag = unix.O_TRUNC
	FlagCreate      Flag = unix.O_CREAT
	FlagCreateExcl  Flag = unix.O_EXCL
	FlagDirect      Flag = unix.O_DIRECT
	FlagDirectory   Flag = unix.O_DIRECTORY
	FlagNoFollow    Flag = unix.O_NOFOLLOW
	FlagNoAtime     Flag = unix.O_NOATIME
	FlagNonBlocking Flag = unix.O_NONBLOCK
	FlagPathOnly    Flag = unix.O_PATH
	FlagCreateTemp  Flag = unix.O_TMPFILE
	FlagSync        Flag = unix.O_SYNC
	FlagCloseOnExec Flag = unix.O_CLOEXEC
)

// Permissions is a bit-flag record for the nine standard permission bits
// plus setuid/setgid/sticky.
type Permissions uint32

const (
	PermUserRead   Permissions = unix.S_IRUSR
	PermUserWrite  Permissions = unix.S_IWUSR
	PermUserExec   Permissions = unix.S_IXUSR
	PermGroupRead  Permissions = unix.S_IRGRP
	PermGroupWrite Permissions = unix.S_IWGRP
	PermGroupExec  Permissions = unix.S_IXGRP
	PermOtherRead  Permissions = unix.S_IROTH
	PermOtherWrite Permissions = unix.S_IWOTH
	PermOtherExec  Permissions = unix.S_IXOTH
	PermSetUID     Permissions = unix.S_ISUID
	PermSetGID     Permissions = unix.S_ISGID
	PermSticky     Permissions = unix.S_ISVTX

	// DefaultPermissions is the default mode for newly created files, 0644.
	DefaultPermissions Permissions = PermUserRead | PermUserWrite | PermGroupRead | PermOtherRead
)

// Type is the seven-variant file type tag derived from the upper bits of
// the kernel mode word.
type Type int

const (
	TypeUnknown Type = iota
	TypeSocket
	TypeSymlink
	TypeRegular
	TypeBlockDevice
	TypeDirectory
	TypeCharDevice
	TypeFIFO
)

// TypeFromMode derives a Type from a raw kernel mode word (the S_IFMT
// bits).
func TypeFromMode(mode uint32) Type {
	switch mode & unix.S_IFMT {
	case unix.S_IFSOCK:
		return TypeSocket
	case unix.S_IFLNK:
		return TypeSymlink
	case unix.S_IFREG:
		return TypeRegular
	case unix.S_IFBLK:
		return TypeBlockDevice
	case unix.S_IFDIR:
		return TypeDirectory
	case unix.S_IFCHR:
		return TypeCharDevice
	case unix.S_IFIFO:
		return TypeFIFO
	default:
		return TypeUnknown
	}
}

// Whence selects the reference point for [File.SetCursor].
type Whence int

const (
	WhenceStart   Whence = unix.SEEK_SET
	WhenceCurrent Whence = unix.SEEK_CUR
	WhenceEnd     Whence = unix.SEEK_END
)

package file

import (
	"golang.org/x/sys/unix"

	"github.com/tlenix/tlenix/pkg/errno"
	"github.com/tlenix/tlenix/pkg/nixstr"
)

// OpenOptions is a configuration record for [Open]: an access mode, a set
// of modifier flags, and the permission mask applied to newly created
// files. Every setter reasserts the record's invariants, so it never
// holds a contradictory flag combination.
type OpenOptions struct {
	access AccessMode
	flags  Flag
	perm   Permissions
}

// NewOpenOptions returns an OpenOptions defaulted to read-only access and
// mode 0644.
func NewOpenOptions() *OpenOptions {
	return &OpenOptions{access: AccessReadOnly, perm: DefaultPermissions}
}

// ReadOnly sets read-only access. Clears the truncate flag, per the
// truncate+read-only mutual exclusion invariant.
func (o *OpenOptions) ReadOnly() *OpenOptions {
	o.access = AccessReadOnly
	o.flags &^= FlagTruncate
	return o
}

// WriteOnly sets write-only access.
func (o *OpenOptions) WriteOnly() *OpenOptions {
	o.access = AccessWriteOnly
	return o
}

// ReadWrite sets read-write access.
func (o *OpenOptions) ReadWrite() *OpenOptions {
	o.access = AccessReadWrite
	return o
}

// Truncate enables O_TRUNC. Read-only is auto-promoted to read-write,
// since truncate+read-only is never valid.
func (o *OpenOptions) Truncate(v bool) *OpenOptions {
	if v {
		o.flags |= FlagTruncate
		if o.access == AccessReadOnly {
			o.access = AccessReadWrite
		}
	} else {
		o.flags &^= FlagTruncate
	}
	return o
}

// Create enables O_CREAT. Disabling it also disables CreateExclusive,
// since exclusive implies create.
func (o *OpenOptions) Create(v bool) *OpenOptions {
	if v {
		o.flags |= FlagCreate
	} else {
		o.flags &^= FlagCreate
		o.flags &^= FlagCreateExcl
	}
	return o
}

// CreateExclusive enables O_EXCL, which implies Create.
func (o *OpenOptions) CreateExclusive(v bool) *OpenOptions {
	if v {
		o.flags |= FlagCreateExcl
		o.flags |= FlagCreate
	} else {
		o.flags &^= FlagCreateExcl
	}
	return o
}

// CreateTemp enables O_TMPFILE. Requires write access: a read-only handle
// is promoted to read-write. When set, the path argument given to [Open]
// is the directory that will hold the anonymous file, not a file name.
func (o *OpenOptions) CreateTemp(v bool) *OpenOptions {
	if v {
		o.flags |= FlagCreateTemp
		if o.access == AccessReadOnly {
			o.access = AccessReadWrite
		}
	} else {
		o.flags &^= FlagCreateTemp
	}
	return o
}

func (o *OpenOptions) setFlag(f Flag, v bool) *OpenOptions {
	if v {
		o.flags |= f
	} else {
		o.flags &^= f
	}
	return o
}

func (o *OpenOptions) Append(v bool) *OpenOptions       { return o.setFlag(FlagAppend, v) }
func (o *OpenOptions) Direct(v bool) *OpenOptions       { return o.setFlag(FlagDirect, v) }
func (o *OpenOptions) Directory(v bool) *OpenOptions    { return o.setFlag(FlagDirectory, v) }
func (o *OpenOptions) NoFollow(v bool) *OpenOptions     { return o.setFlag(FlagNoFollow, v) }
func (o *OpenOptions) NoAtime(v bool) *OpenOptions      { return o.setFlag(FlagNoAtime, v) }
func (o *OpenOptions) NonBlocking(v bool) *OpenOptions  { return o.setFlag(FlagNonBlocking, v) }
func (o *OpenOptions) PathOnly(v bool) *OpenOptions     { return o.setFlag(FlagPathOnly, v) }
func (o *OpenOptions) Sync(v bool) *OpenOptions         { return o.setFlag(FlagSync, v) }
func (o *OpenOptions) CloseOnExec(v bool) *OpenOptions  { return o.setFlag(FlagCloseOnExec, v) }

// Mode sets the permission mask applied when a new file is created.
func (o *OpenOptions) Mode(p Permissions) *OpenOptions {
	o.perm = p
	return o
}

// Access returns the currently configured access mode. Value receiver, so
// it also works on the copied record [File.Options] returns.
func (o OpenOptions) Access() AccessMode { return o.access }

// Has reports whether the given modifier flag is currently set.
func (o OpenOptions) Has(f Flag) bool { return o.flags&f != 0 }

// Perm returns the permission mask applied to newly created files.
func (o OpenOptions) Perm() Permissions { return o.perm }

// normalize enforces the invariant that at most one of
// {read_only, write_only, read_write} is meaningfully set: read-write is
// canonical whenever both read-only and write-only bits would otherwise
// collide. AccessMode here is already a single enum value rather than a
// bit field, so this mostly documents the contract OpenOptions upholds;
// it matters once flags like CreateTemp/Truncate have forced a promotion.
func (o *OpenOptions) normalize() AccessMode {
	return o.access
}

// rawFlags returns the accumulated open(2) flags.
func (o *OpenOptions) rawFlags() int {
	return int(o.normalize()) | int(o.flags)
}

// Open invokes the kernel open syscall with the accumulated flags and
// permission mask, wrapping the returned descriptor in a new owning
// [File] tagged with a clone of these options. The path crosses the
// syscall boundary as a [nixstr.String], so it is NUL-filtered and must
// be valid UTF-8 ([errno.Eilseq] otherwise).
func (o *OpenOptions) Open(path string) (*File, error) {
	return o.OpenAt(AtFDCWD, path)
}

// OpenAt is like Open but resolves path relative to dir when path is
// relative ([AtFDCWD] to resolve relative to the current working
// directory).
func (o *OpenOptions) OpenAt(dir Descriptor, path string) (*File, error) {
	p, err := nixstr.NewString(path)
	if err != nil {
		return nil, err
	}
	opts := *o
	fd, err := unix.Openat(int(dir), p.String(), opts.rawFlags(), uint32(opts.perm))
	if err != nil {
		return nil, errno.FromSyscallErr(err)
	}
	return &File{fd: Descriptor(fd), opts: &opts}, nil
}

// Open is shorthand for NewOpenOptions().ReadOnly().Open(path).
func Open(path string) (*File, error) {
	return NewOpenOptions().Open(path)
}

// Create is shorthand for opening path write-only, creating it with
// [DefaultPermissions] if it does not exist, truncating it if it does.
func Create(path string) (*File, error) {
	return NewOpenOptions().WriteOnly().Create(true).Truncate(true).Open(path)
}

package file

import (
	"time"

	"golang.org/x/sys/unix"

	"github.com/tlenix/tlenix/pkg/errno"
)

// StatMask indicates which [Stats] fields a statx call requested and which
// the kernel actually supplied; unrequested or unsupported fields read as
// absent rather than zero.
type StatMask uint32

const (
	MaskType       StatMask = unix.STATX_TYPE
	MaskMode       StatMask = unix.STATX_MODE
	MaskNlink      StatMask = unix.STATX_NLINK
	MaskUID        StatMask = unix.STATX_UID
	MaskGID        StatMask = unix.STATX_GID
	MaskATime      StatMask = unix.STATX_ATIME
	MaskMTime      StatMask = unix.STATX_MTIME
	MaskCTime      StatMask = unix.STATX_CTIME
	MaskBTime      StatMask = unix.STATX_BTIME
	MaskIno        StatMask = unix.STATX_INO
	MaskSize       StatMask = unix.STATX_SIZE
	MaskBlocks     StatMask = unix.STATX_BLOCKS
	MaskBasicStats StatMask = unix.STATX_BASIC_STATS
	MaskAll        StatMask = unix.STATX_ALL
)

// Stats is the result of a statx call: a mask of which fields are present,
// plus the fields themselves. Accessors return (value, ok) so a field the
// kernel didn't (or couldn't) fill in is visibly absent.
type Stats struct {
	mask StatMask

	fileType     Type
	mode         Permissions
	size         int64
	blockSize    int64
	links        uint32
	uid          uint32
	gid          uint32
	ino          uint64
	dioMemAlign  uint32
	dioOffsAlign uint32

	accessedAt         time.Time
	modifiedAt         time.Time
	modifiedMetadataAt time.Time
	createdAt          time.Time
}

func (s Stats) has(m StatMask) bool { return s.mask&m != 0 }

// Type returns the file's type tag, if the kernel reported it.
func (s Stats) Type() (Type, bool) { return s.fileType, s.has(MaskType) }

// Mode returns the permission bits, if reported.
func (s Stats) Mode() (Permissions, bool) { return s.mode, s.has(MaskMode) }

// Size returns the file size in bytes, if reported.
func (s Stats) Size() (int64, bool) { return s.size, s.has(MaskSize) }

// BlockSize returns the preferred I/O block size, if reported.
func (s Stats) BlockSize() (int64, bool) { return s.blockSize, s.has(MaskBasicStats) }

// Links returns the hard link count, if reported.
func (s Stats) Links() (uint32, bool) { return s.links, s.has(MaskNlink) }

// UID returns the owning user ID, if reported.
func (s Stats) UID() (uint32, bool) { return s.uid, s.has(MaskUID) }

// GID returns the owning group ID, if reported.
func (s Stats) GID() (uint32, bool) { return s.gid, s.has(MaskGID) }

// Inode returns the inode number, if reported.
func (s Stats) Inode() (uint64, bool) { return s.ino, s.has(MaskIno) }

// AccessedAt returns the last-access timestamp, if reported.
func (s Stats) AccessedAt() (time.Time, bool) { return s.accessedAt, s.has(MaskATime) }

// ModifiedAt returns the last-content-modification timestamp, if reported.
func (s Stats) ModifiedAt() (time.Time, bool) { return s.modifiedAt, s.has(MaskMTime) }

// ModifiedMetadataAt returns the last-metadata-change timestamp, if
// reported.
func (s Stats) ModifiedMetadataAt() (time.Time, bool) { return s.modifiedMetadataAt, s.has(MaskCTime) }

// CreatedAt returns the creation timestamp, if reported (not all
// filesystems support it).
func (s Stats) CreatedAt() (time.Time, bool) { return s.createdAt, s.has(MaskBTime) }

// DirectIOAlignment returns the atomic-write/direct-IO memory and offset
// alignment requirements, if reported.
func (s Stats) DirectIOAlignment() (mem, offset uint32, ok bool) {
	return s.dioMemAlign, s.dioOffsAlign, s.has(MaskBasicStats)
}

func fromStatxTimestamp(t unix.StatxTimestamp) time.Time {
	return time.Unix(t.Sec, int64(t.Nsec))
}

func statsFromStatx(raw *unix.Statx_t) Stats {
	return Stats{
		mask:               StatMask(raw.Mask),
		fileType:           TypeFromMode(uint32(raw.Mode)),
		mode:               Permissions(raw.Mode) &^ Permissions(unix.S_IFMT),
		size:               int64(raw.Size),
		blockSize:          int64(raw.Blksize),
		links:              raw.Nlink,
		uid:                raw.Uid,
		gid:                raw.Gid,
		ino:                raw.Ino,
		dioMemAlign:        raw.Dio_mem_align,
		dioOffsAlign:       raw.Dio_offset_align,
		accessedAt:         fromStatxTimestamp(raw.Atime),
		modifiedAt:         fromStatxTimestamp(raw.Mtime),
		modifiedMetadataAt: fromStatxTimestamp(raw.Ctime),
		createdAt:          fromStatxTimestamp(raw.Btime),
	}
}

// StatAt issues statx on path resolved relative to dir, requesting the
// fields named by mask.
func StatAt(dir Descriptor, path string, flags int, mask StatMask) (Stats, error) {
	var raw unix.Statx_t
	if err := unix.Statx(int(dir), path, flags, int(mask), &raw); err != nil {
		return Stats{}, errno.FromSyscallErr(err)
	}
	return statsFromStatx(&raw), nil
}

// Stat issues statx on path, following symlinks.
func Stat(path string) (Stats, error) {
	return StatAt(AtFDCWD, path, unix.AT_STATX_SYNC_AS_STAT, MaskAll)
}

// LStat issues statx on path without following a trailing symlink.
func LStat(path string) (Stats, error) {
	return StatAt(AtFDCWD, path, unix.AT_STATX_SYNC_AS_STAT|unix.AT_SYMLINK_NOFOLLOW, MaskAll)
}

// Stat fills a [Stats] record for the open file. Fails with [errno.Ebadf]
// on an invalid descriptor.
func (f *File) Stat() (Stats, error) {
	return StatAt(f.fd, "", unix.AT_EMPTY_PATH|unix.AT_STATX_SYNC_AS_STAT, MaskAll)
}

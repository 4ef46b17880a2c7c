// Package errno provides Tlenix's closed error taxonomy: a single
// enumeration mapping numeric Linux errno codes to named variants, the
// form every other package surfaces kernel failures as.
package errno

import "golang.org/x/sys/unix"

// Errno is a named Linux error code. The zero value is not a valid Errno;
// use [FromRaw] or one of the named constants.
type Errno int

// Named variants. Values match the kernel's own numeric codes so
// conversion is a direct cast.
const (
	Eperm        Errno = Errno(unix.EPERM)
	Enoent       Errno = Errno(unix.ENOENT)
	Esrch        Errno = Errno(unix.ESRCH)
	Eintr        Errno = Errno(unix.EINTR)
	Eio          Errno = Errno(unix.EIO)
	Enxio        Errno = Errno(unix.ENXIO)
	E2big        Errno = Errno(unix.E2BIG)
	Enoexec      Errno = Errno(unix.ENOEXEC)
	Ebadf        Errno = Errno(unix.EBADF)
	Echild       Errno = Errno(unix.ECHILD)
	Eagain       Errno = Errno(unix.EAGAIN)
	Enomem       Errno = Errno(unix.ENOMEM)
	Eacces       Errno = Errno(unix.EACCES)
	Efault       Errno = Errno(unix.EFAULT)
	Ebusy        Errno = Errno(unix.EBUSY)
	Eexist       Errno = Errno(unix.EEXIST)
	Enotdir      Errno = Errno(unix.ENOTDIR)
	Eisdir       Errno = Errno(unix.EISDIR)
	Einval       Errno = Errno(unix.EINVAL)
	Emfile       Errno = Errno(unix.EMFILE)
	Enfile       Errno = Errno(unix.ENFILE)
	Enotty       Errno = Errno(unix.ENOTTY)
	Etxtbsy      Errno = Errno(unix.ETXTBSY)
	Efbig        Errno = Errno(unix.EFBIG)
	Enospc       Errno = Errno(unix.ENOSPC)
	Espipe       Errno = Errno(unix.ESPIPE)
	Erofs        Errno = Errno(unix.EROFS)
	Epipe        Errno = Errno(unix.EPIPE)
	Erange       Errno = Errno(unix.ERANGE)
	Enametoolong Errno = Errno(unix.ENAMETOOLONG)
	Enotempty    Errno = Errno(unix.ENOTEMPTY)
	Eloop        Errno = Errno(unix.ELOOP)
	Enotsup      Errno = Errno(unix.EOPNOTSUPP)
	Eoverflow    Errno = Errno(unix.EOVERFLOW)
	Eilseq       Errno = Errno(unix.EILSEQ)
)

// names backs Error and FromRaw. One flat table covers the whole
// enumeration; a variant absent here is reported as unknown.
var names = map[Errno]string{
	Eperm:        "operation not permitted",
	Enoent:       "no such file or directory",
	Esrch:        "no such process",
	Eintr:        "interrupted system call",
	Eio:          "I/O error",
	Enxio:        "no such device or address",
	E2big:        "argument list too long",
	Enoexec:      "exec format error",
	Ebadf:        "bad file descriptor",
	Echild:       "no child processes",
	Eagain:       "resource temporarily unavailable",
	Enomem:       "cannot allocate memory",
	Eacces:       "permission denied",
	Efault:       "bad address",
	Ebusy:        "device or resource busy",
	Eexist:       "file exists",
	Enotdir:      "not a directory",
	Eisdir:       "is a directory",
	Einval:       "invalid argument",
	Emfile:       "too many open files",
	Enfile:       "too many open files in system",
	Enotty:       "inappropriate ioctl for device",
	Etxtbsy:      "text file busy",
	Efbig:        "file too large",
	Enospc:       "no space left on device",
	Espipe:       "illegal seek",
	Erofs:        "read-only file system",
	Epipe:        "broken pipe",
	Erange:       "numerical result out of range",
	Enametoolong: "file name too long",
	Enotempty:    "directory not empty",
	Eloop:        "too many levels of symbolic links",
	Enotsup:      "operation not supported",
	Eoverflow:    "value too large for defined data type",
	Eilseq:       "invalid or incomplete multibyte or wide character",
}

// Error implements the error interface.
func (e Errno) Error() string {
	if s, ok := names[e]; ok {
		return s
	}
	return "unknown error " + unix.Errno(e).Error()
}

// Number returns the underlying numeric errno value.
func (e Errno) Number() int { return int(e) }

// FromRaw converts a raw positive errno number into its named variant. ok
// is false for numbers outside the known enumeration, in which case e still
// carries the raw numeric value so callers can fall back to
// [unix.Errno.Error] for a message.
func FromRaw(raw int) (e Errno, ok bool) {
	e = Errno(raw)
	_, known := names[e]
	return e, known
}

// FromSyscallErr converts an error returned by a golang.org/x/sys/unix
// syscall wrapper (always a unix.Errno, or nil) into an Errno. Returns nil
// if err is nil.
func FromSyscallErr(err error) error {
	if err == nil {
		return nil
	}
	if ue, ok := err.(unix.Errno); ok {
		e, _ := FromRaw(int(ue))
		return e
	}
	return err
}

// IsErrno reports whether err wraps the given Errno.
func IsErrno(err error, target Errno) bool {
	e, ok := err.(Errno)
	return ok && e == target
}

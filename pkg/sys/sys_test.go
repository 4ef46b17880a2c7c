package sys_test

import (
	"os"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"

	"github.com/tlenix/tlenix/pkg/errno"
	"github.com/tlenix/tlenix/pkg/sys"
)

func bufPtr(b []byte) unsafe.Pointer { return unsafe.Pointer(&b[0]) }

func TestCall0Getpid(t *testing.T) {
	r1, _, e := sys.Call0(unix.SYS_GETPID)
	require.Zero(t, e)
	require.EqualValues(t, os.Getpid(), r1)
}

func TestCallMatchesArityEntryPoint(t *testing.T) {
	r1, _, e := sys.Call(unix.SYS_GETPID)
	require.Zero(t, e)
	require.EqualValues(t, os.Getpid(), r1)
}

func TestCallRejectsSeventhArgument(t *testing.T) {
	_, _, e := sys.Call(unix.SYS_GETPID, 1, 2, 3, 4, 5, 6, 7)
	require.Equal(t, unix.EINVAL, e)
}

func TestResultDecodesErrno(t *testing.T) {
	_, err := sys.Result(0, unix.ENOENT)
	require.Equal(t, errno.Enoent, err)
}

func TestResultPassesThroughSuccess(t *testing.T) {
	v, err := sys.Result(42, 0)
	require.NoError(t, err)
	require.EqualValues(t, 42, v)
}

func TestToWordPreservesBitPattern(t *testing.T) {
	require.Equal(t, uintptr(7), sys.ToWord(int32(7)))
	require.Equal(t, ^uintptr(0), sys.ToWord(int64(-1)))
}

func TestCall3Write(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()
	defer w.Close()

	msg := []byte("tlenix")
	n, _, e := sys.Call3(unix.SYS_WRITE, w.Fd(), uintptr(bufPtr(msg)), uintptr(len(msg)))
	require.Zero(t, e)
	require.EqualValues(t, len(msg), n)

	got := make([]byte, len(msg))
	_, err = r.Read(got)
	require.NoError(t, err)
	require.Equal(t, msg, got)
}

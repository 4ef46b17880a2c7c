package errno_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"

	"github.com/tlenix/tlenix/pkg/errno"
)

func TestFromRawKnownCodes(t *testing.T) {
	e, ok := errno.FromRaw(int(unix.ENOENT))
	require.True(t, ok)
	require.Equal(t, errno.Enoent, e)
	require.Equal(t, "no such file or directory", e.Error())
}

func TestFromRawUnknownCode(t *testing.T) {
	_, ok := errno.FromRaw(987654)
	require.False(t, ok)
}

func TestFromSyscallErrNil(t *testing.T) {
	require.NoError(t, errno.FromSyscallErr(nil))
}

func TestIsErrno(t *testing.T) {
	require.True(t, errno.IsErrno(errno.Enoent, errno.Enoent))
	require.False(t, errno.IsErrno(errno.Enoent, errno.Eexist))
}

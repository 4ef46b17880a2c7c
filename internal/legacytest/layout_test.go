// Package legacytest holds drift assertions for kernel-facing constants:
// every public constant in pkg/file must agree with the
// golang.org/x/sys/unix value it was built from, which is itself checked
// against the kernel ABI upstream. A cgo comparison against <linux/*.h>
// would catch the same drift; pinning to x/sys/unix catches it without a
// C toolchain dependency.
package legacytest

import (
	"testing"

	"golang.org/x/sys/unix"

	"github.com/tlenix/tlenix/internal/tlenixtest"
	"github.com/tlenix/tlenix/pkg/file"
)

func init() {
	tlenixtest.Register("file/creation-flags-match-unix", func(t *testing.T) {
		tlenixtest.AssertEqual(t, int(file.FlagCreate), unix.O_CREAT)
		tlenixtest.AssertEqual(t, int(file.FlagCreateExcl), unix.O_EXCL)
		tlenixtest.AssertEqual(t, int(file.FlagDirectory), unix.O_DIRECTORY)
		tlenixtest.AssertEqual(t, int(file.FlagTruncate), unix.O_TRUNC)
		tlenixtest.AssertEqual(t, int(file.FlagCreateTemp), unix.O_TMPFILE)
	})

	tlenixtest.Register("file/access-modes-match-unix", func(t *testing.T) {
		tlenixtest.AssertEqual(t, int(file.AccessReadOnly), unix.O_RDONLY)
		tlenixtest.AssertEqual(t, int(file.AccessWriteOnly), unix.O_WRONLY)
		tlenixtest.AssertEqual(t, int(file.AccessReadWrite), unix.O_RDWR)
	})

	tlenixtest.Register("file/permissions-match-unix", func(t *testing.T) {
		tlenixtest.AssertEqual(t, uint32(file.PermUserRead), uint32(unix.S_IRUSR))
		tlenixtest.AssertEqual(t, uint32(file.PermSetUID), uint32(unix.S_ISUID))
		tlenixtest.AssertEqual(t, uint32(file.PermSticky), uint32(unix.S_ISVTX))
	})
}

func TestLegacyLayoutAssertions(t *testing.T) {
	tlenixtest.RunAll(t)
}

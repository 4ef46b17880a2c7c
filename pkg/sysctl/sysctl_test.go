package sysctl_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tlenix/tlenix/pkg/errno"
	"github.com/tlenix/tlenix/pkg/sysctl"
)

// TestRebootWithoutCapSysBootIsEperm exercises the documented failure mode:
// a caller without CAP_SYS_BOOT gets Eperm rather than actually rebooting.
// Skipped when run as root, where the syscall would succeed.
func TestRebootWithoutCapSysBootIsEperm(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("running as root: reboot(2) would succeed rather than fail")
	}

	err := sysctl.Reboot(sysctl.Halt)
	require.Equal(t, errno.Eperm, err)
}

func TestCommandConstantsAreDistinct(t *testing.T) {
	require.NotEqual(t, sysctl.PowerOff, sysctl.Restart)
	require.NotEqual(t, sysctl.Restart, sysctl.Halt)
	require.NotEqual(t, sysctl.PowerOff, sysctl.Halt)
}

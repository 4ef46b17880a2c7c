// Package sysctl implements Tlenix's single system-control operation, the
// reboot(2) syscall.
package sysctl

import (
	"golang.org/x/sys/unix"

	"github.com/tlenix/tlenix/pkg/errno"
)

// Command selects the reboot(2) behavior.
type Command int

const (
	PowerOff Command = unix.LINUX_REBOOT_CMD_POWER_OFF
	Restart  Command = unix.LINUX_REBOOT_CMD_RESTART
	Halt     Command = unix.LINUX_REBOOT_CMD_HALT
)

// Reboot issues the reboot syscall with the two canonical magic numbers
// (supplied internally by golang.org/x/sys/unix's Reboot wrapper) and the
// given command. Returns only on failure, typically [errno.Eperm] when
// the caller lacks CAP_SYS_BOOT.
func Reboot(cmd Command) error {
	return errno.FromSyscallErr(unix.Reboot(int(cmd)))
}

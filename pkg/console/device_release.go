//go:build !tlenix_debug

package console

// consoleDevicePath resolves to /dev/console in release builds, the
// system console a freestanding userland boots against.
func consoleDevicePath() string { return "/dev/console" }

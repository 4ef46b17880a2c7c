//go:build tlenix_debug

package console

// consoleDevicePath resolves to /dev/tty under the tlenix_debug build tag,
// so development builds attach to whatever terminal launched the process
// instead of requiring a real /dev/console.
func consoleDevicePath() string { return "/dev/tty" }

package termios_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"

	"github.com/tlenix/tlenix/pkg/termios"
)

func TestFromRawProjectsEachFlagGroup(t *testing.T) {
	raw := &unix.Termios{
		Iflag: uint32(unix.IGNBRK | unix.ICRNL),
		Lflag: uint32(unix.ICANON | unix.ECHO | unix.ISIG),
		Cflag: uint32(unix.CS8 | unix.CREAD),
	}

	mode := termios.FromRaw(raw)
	require.Equal(t, termios.InputIgnoreBreak|termios.InputTranslateCR, mode.Input)
	require.Equal(t, termios.LocalCanon|termios.LocalEcho|termios.LocalISig, mode.Local)
	require.Equal(t, termios.ControlCharSize8|termios.ControlEnableRecv, mode.Control)
}

func TestIsCookedRequiresCanonAndEcho(t *testing.T) {
	cooked := termios.Mode{Local: termios.LocalCanon | termios.LocalEcho | termios.LocalISig}
	require.True(t, cooked.IsCooked())

	noEcho := termios.Mode{Local: termios.LocalCanon}
	require.False(t, noEcho.IsCooked())
}

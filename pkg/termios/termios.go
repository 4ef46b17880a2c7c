// Package termios defines structural-only termios flag types. The core
// describes terminal mode bits without programmatically altering them:
// cooked-mode editing lives entirely in pkg/console's line reader, never
// in the kernel's own termios state.
package termios

import "golang.org/x/sys/unix"

// InputFlag mirrors c_iflag bits.
type InputFlag uint32

const (
	InputIgnoreBreak InputFlag = unix.IGNBRK
	InputStripChar   InputFlag = unix.ISTRIP
	InputIgnoreCR    InputFlag = unix.IGNCR
	InputTranslateCR InputFlag = unix.ICRNL
	InputXonXoff     InputFlag = unix.IXON
)

// LocalFlag mirrors c_lflag bits.
type LocalFlag uint32

const (
	LocalEcho    LocalFlag = unix.ECHO
	LocalCanon   LocalFlag = unix.ICANON
	LocalISig    LocalFlag = unix.ISIG
	LocalIExten  LocalFlag = unix.IEXTEN
	LocalEchoCtl LocalFlag = unix.ECHOCTL
	LocalEchoKE  LocalFlag = unix.ECHOKE
	LocalEchoK   LocalFlag = unix.ECHOK
	LocalEchoNL  LocalFlag = unix.ECHONL
)

// ControlFlag mirrors c_cflag bits.
type ControlFlag uint32

const (
	ControlCharSize8  ControlFlag = unix.CS8
	ControlEnableRecv ControlFlag = unix.CREAD
	ControlLocal      ControlFlag = unix.CLOCAL
)

// Mode is Tlenix's structural view of a terminal's mode bits, built from
// (not written back through) [unix.Termios]. Cooked mode is the
// combination LocalCanon|LocalEcho.
type Mode struct {
	Input   InputFlag
	Local   LocalFlag
	Control ControlFlag
}

// FromRaw builds a Mode from a raw kernel termios struct.
func FromRaw(t *unix.Termios) Mode {
	return Mode{
		Input:   InputFlag(t.Iflag),
		Local:   LocalFlag(t.Lflag),
		Control: ControlFlag(t.Cflag),
	}
}

// IsCooked reports whether m describes cooked (canonical, echoing) mode.
func (m Mode) IsCooked() bool {
	const cooked = LocalCanon | LocalEcho
	return m.Local&cooked == cooked
}

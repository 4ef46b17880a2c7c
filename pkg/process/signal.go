package process

import "golang.org/x/sys/unix"

// Signal is a closed enumeration of the 31 standard POSIX signals.
type Signal int

const (
	SIGHUP    Signal = Signal(unix.SIGHUP)
	SIGINT    Signal = Signal(unix.SIGINT)
	SIGQUIT   Signal = Signal(unix.SIGQUIT)
	SIGILL    Signal = Signal(unix.SIGILL)
	SIGTRAP   Signal = Signal(unix.SIGTRAP)
	SIGABRT   Signal = Signal(unix.SIGABRT)
	SIGBUS    Signal = Signal(unix.SIGBUS)
	SIGFPE    Signal = Signal(unix.SIGFPE)
	SIGKILL   Signal = Signal(unix.SIGKILL)
	SIGUSR1   Signal = Signal(unix.SIGUSR1)
	SIGSEGV   Signal = Signal(unix.SIGSEGV)
	SIGUSR2   Signal = Signal(unix.SIGUSR2)
	SIGPIPE   Signal = Signal(unix.SIGPIPE)
	SIGALRM   Signal = Signal(unix.SIGALRM)
	SIGTERM   Signal = Signal(unix.SIGTERM)
	SIGSTKFLT Signal = Signal(unix.SIGSTKFLT)
	SIGCHLD   Signal = Signal(unix.SIGCHLD)
	SIGCONT   Signal = Signal(unix.SIGCONT)
	SIGSTOP   Signal = Signal(unix.SIGSTOP)
	SIGTSTP   Signal = Signal(unix.SIGTSTP)
	SIGTTIN   Signal = Signal(unix.SIGTTIN)
	SIGTTOU   Signal = Signal(unix.SIGTTOU)
	SIGURG    Signal = Signal(unix.SIGURG)
	SIGXCPU   Signal = Signal(unix.SIGXCPU)
	SIGXFSZ   Signal = Signal(unix.SIGXFSZ)
	SIGVTALRM Signal = Signal(unix.SIGVTALRM)
	SIGPROF   Signal = Signal(unix.SIGPROF)
	SIGWINCH  Signal = Signal(unix.SIGWINCH)
	SIGIO     Signal = Signal(unix.SIGIO)
	SIGPWR    Signal = Signal(unix.SIGPWR)
	SIGSYS    Signal = Signal(unix.SIGSYS)
)

func (s Signal) String() string { return unix.SignalName(unix.Signal(s)) }

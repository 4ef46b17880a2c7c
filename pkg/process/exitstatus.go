package process

// ExitStatusKind tags the variant of [ExitStatus].
type ExitStatusKind int

const (
	ExitSuccess ExitStatusKind = iota
	ExitFailureKind
	Terminated
	Stopped
)

// ExitStatus is the sum type over exit-with-code (0 = success),
// terminated-by-signal, and stopped-by-signal.
type ExitStatus struct {
	Kind  ExitStatusKind
	Value int32 // exit code, or signal number for Terminated/Stopped
}

// Success builds the ExitSuccess variant.
func Success() ExitStatus { return ExitStatus{Kind: ExitSuccess} }

// Failure builds the exit-with-nonzero-code variant.
func Failure(code int32) ExitStatus { return ExitStatus{Kind: ExitFailureKind, Value: code} }

// TerminatedBy builds the terminated-by-signal variant.
func TerminatedBy(sig Signal) ExitStatus { return ExitStatus{Kind: Terminated, Value: int32(sig)} }

// StoppedBy builds the stopped-by-signal variant.
func StoppedBy(sig Signal) ExitStatus { return ExitStatus{Kind: Stopped, Value: int32(sig)} }

// IsSuccess reports whether the status represents a clean, zero exit.
func (e ExitStatus) IsSuccess() bool { return e.Kind == ExitSuccess }

// Code returns the status's integer projection: 0 for ExitSuccess, n for
// Failure(n), the signal number for Terminated/Stopped.
func (e ExitStatus) Code() int32 { return e.Value }

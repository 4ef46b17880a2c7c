// Package diag provides the structured diagnostic logger every cmd/*
// binary uses.
package diag

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/tlenix/tlenix/pkg/errno"
)

// New returns a logrus logger tagged with the binary's name, writing
// terse single-line text diagnostics to stderr.
func New(binary string) *logrus.Entry {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	return log.WithField("bin", binary)
}

// Fail logs err (adding an "errno" field when err is an [errno.Errno])
// and returns the process exit code to use: the numeric errno if
// available, otherwise 1.
func Fail(log *logrus.Entry, err error) int {
	if e, ok := err.(errno.Errno); ok {
		log.WithField("errno", e.Number()).Error(err)
		return e.Number()
	}
	log.Error(err)
	return 1
}

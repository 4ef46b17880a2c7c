// Command printenv prints the process environment. With no arguments it
// lists every KEY=VALUE pair; given one or more names, it prints only the
// matching values (one per line, in environment order).
package main

import (
	"os"

	"github.com/spf13/pflag"

	"github.com/tlenix/tlenix/internal/diag"
	"github.com/tlenix/tlenix/pkg/procenv"
	"github.com/tlenix/tlenix/pkg/stream"
)

func main() {
	log := diag.New("printenv")

	nullTerminate := pflag.BoolP("null", "0", false, "terminate each entry with NUL instead of newline")
	pflag.Parse()

	parsed, err := procenv.Parse(os.Args, os.Environ())
	if err != nil {
		os.Exit(diag.Fail(log, err))
	}

	sep := "\n"
	if *nullTerminate {
		sep = "\x00"
	}

	stream.Print("%s", formatEnv(parsed.Envp, pflag.Args(), sep))
	os.Exit(0)
}

// formatEnv renders env joined by sep: with no filter, every KEY=VALUE
// entry; with a non-empty filter, only the values of entries whose key
// appears in filter, in env's own order.
func formatEnv(env []procenv.EnvVar, filter []string, sep string) string {
	matches := func(key string) bool {
		if len(filter) == 0 {
			return true
		}
		for _, f := range filter {
			if f == key {
				return true
			}
		}
		return false
	}

	out := ""
	first := true
	for _, ev := range env {
		if !matches(ev.Key) {
			continue
		}
		if !first {
			out += sep
		}
		first = false
		if len(filter) == 0 {
			out += ev.String()
		} else {
			out += ev.Value
		}
	}
	return out
}

// Package procenv implements Tlenix's argv/envp validation contract. The
// Go runtime has already walked the kernel's initial stack layout by the
// time main() runs (there is no Tlenix _start to hook into), so Parse
// applies the validation rules (length caps, UTF-8, KEY=VALUE splitting)
// to the already-materialized os.Args/os.Environ()-shaped string slices
// instead of raw stack pointers.
package procenv

import (
	"strings"
	"unicode/utf8"

	"github.com/tlenix/tlenix/pkg/errno"
)

// MaxArgLen is the per-argument length limit, including the would-be NUL
// terminator.
const MaxArgLen = 4096

// MaxEnvLen is the per-environment-variable length limit.
const MaxEnvLen = 4096

// MaxTotalLen is the cumulative cap on all argv and envp bytes combined.
const MaxTotalLen = 128 * 1024

// EnvVar is a parsed KEY=VALUE environment entry. Key is always non-empty;
// Value may be empty.
type EnvVar struct {
	Key   string
	Value string
}

// ParseEnvVar splits s on its first '=' into an EnvVar. Returns
// [errno.Einval] if s has no '=' or an empty key.
func ParseEnvVar(s string) (EnvVar, error) {
	i := strings.IndexByte(s, '=')
	if i <= 0 {
		return EnvVar{}, errno.Einval
	}
	return EnvVar{Key: s[:i], Value: s[i+1:]}, nil
}

// String renders the EnvVar back as KEY=VALUE, the inverse of
// [ParseEnvVar]: ParseEnvVar(v.String()) == v for any non-empty Key.
func (v EnvVar) String() string { return v.Key + "=" + v.Value }

// Parsed is the validated result of [Parse].
type Parsed struct {
	Argv []string
	Envp []EnvVar
}

// Parse validates argv and envp: each
// string (including its notional NUL terminator) must be at most
// [MaxArgLen]/[MaxEnvLen] bytes, the cumulative total across both slices
// must be at most [MaxTotalLen] ([errno.E2big] otherwise), every string
// must be valid UTF-8 ([errno.Eilseq] otherwise), and every environment
// entry must contain '=' with a non-empty key ([errno.Einval] otherwise).
func Parse(argv, envp []string) (Parsed, error) {
	total := 0

	for _, a := range argv {
		if !utf8.ValidString(a) {
			return Parsed{}, errno.Eilseq
		}
		if len(a)+1 > MaxArgLen {
			return Parsed{}, errno.E2big
		}
		total += len(a) + 1
	}

	envs := make([]EnvVar, 0, len(envp))
	for _, e := range envp {
		if !utf8.ValidString(e) {
			return Parsed{}, errno.Eilseq
		}
		if len(e)+1 > MaxEnvLen {
			return Parsed{}, errno.E2big
		}
		total += len(e) + 1
		ev, err := ParseEnvVar(e)
		if err != nil {
			return Parsed{}, err
		}
		envs = append(envs, ev)
	}

	if total > MaxTotalLen {
		return Parsed{}, errno.E2big
	}

	out := make([]string, len(argv))
	copy(out, argv)
	return Parsed{Argv: out, Envp: envs}, nil
}

// ParseEnvFile parses the contents of an environment file such as
// /etc/environment: one KEY=VALUE per line, '#'-prefixed lines are
// comments, blank lines are ignored. Unlike [Parse], a malformed line here
// is simply skipped rather than treated as fatal; the caller (cmd/mash)
// is expected to log a warning and continue with whatever parsed.
func ParseEnvFile(contents string) []EnvVar {
	var out []EnvVar
	for _, line := range strings.Split(contents, "\n") {
		line = strings.TrimRight(line, "\r")
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		if ev, err := ParseEnvVar(trimmed); err == nil {
			out = append(out, ev)
		}
	}
	return out
}

package procenv_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tlenix/tlenix/pkg/errno"
	"github.com/tlenix/tlenix/pkg/procenv"
)

func TestParseArgBoundary(t *testing.T) {
	// Exactly 4 KiB including the notional NUL terminator is accepted.
	arg := strings.Repeat("a", procenv.MaxArgLen-1)
	_, err := procenv.Parse([]string{arg}, nil)
	require.NoError(t, err)

	// One byte over yields E2big.
	tooLong := arg + "a"
	_, err = procenv.Parse([]string{tooLong}, nil)
	require.Equal(t, errno.E2big, err)
}

func TestParseAggregateBoundary(t *testing.T) {
	// Aggregate argv+envp of exactly 128 KiB is accepted.
	arg := strings.Repeat("a", procenv.MaxArgLen-1)
	n := procenv.MaxTotalLen / procenv.MaxArgLen
	argv := make([]string, n)
	for i := range argv {
		argv[i] = arg
	}
	_, err := procenv.Parse(argv, nil)
	require.NoError(t, err)

	argv = append(argv, "a")
	_, err = procenv.Parse(argv, nil)
	require.Equal(t, errno.E2big, err)
}

func TestParseEmptyEnvKeyIsInvalid(t *testing.T) {
	_, err := procenv.Parse(nil, []string{"=value"})
	require.Equal(t, errno.Einval, err)
}

func TestParseRejectsInvalidUTF8(t *testing.T) {
	_, err := procenv.Parse([]string{string([]byte{0xff, 0xfe})}, nil)
	require.Equal(t, errno.Eilseq, err)
}

func TestEnvVarRoundTrip(t *testing.T) {
	for _, s := range []string{"KEY=value", "PATH=/bin:/usr/bin", "EMPTY="} {
		ev, err := procenv.ParseEnvVar(s)
		require.NoError(t, err)
		require.Equal(t, s, ev.String())
	}
}

func TestParseEnvFileSkipsCommentsAndBlankLines(t *testing.T) {
	contents := "# comment\n\nFOO=bar\nBADLINE\nBAZ=qux\n"
	got := procenv.ParseEnvFile(contents)
	require.Equal(t, []procenv.EnvVar{{Key: "FOO", Value: "bar"}, {Key: "BAZ", Value: "qux"}}, got)
}

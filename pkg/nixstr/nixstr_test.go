package nixstr_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tlenix/tlenix/internal/arena"
	"github.com/tlenix/tlenix/pkg/errno"
	"github.com/tlenix/tlenix/pkg/nixstr"
)

func TestBytesTerminatesWithSingleZero(t *testing.T) {
	b := nixstr.NewBytes([]byte("hello\x00world"))
	buf := b.Bytes()
	require.Equal(t, byte(0), buf[len(buf)-1])
	for _, c := range buf[:len(buf)-1] {
		require.NotZero(t, c)
	}
}

func TestStringRejectsInvalidUTF8(t *testing.T) {
	_, err := nixstr.NewString(string([]byte{0xff, 0xfe}))
	require.Equal(t, errno.Eilseq, err)
}

func TestNewBytesInUsesArenaThenFallsBack(t *testing.T) {
	a := arena.New(16)

	b := nixstr.NewBytesIn(a, []byte("hi"))
	require.Equal(t, []byte("hi\x00"), b.Bytes())
	require.Equal(t, 3, a.Used())

	// Exhaust the arena, forcing the next call onto the heap fallback path.
	overflow := nixstr.NewBytesIn(a, []byte("this is far too long for what remains"))
	require.Equal(t, byte(0), overflow.Bytes()[overflow.Len()])
	require.Equal(t, "this is far too long for what remains", string(overflow.Trimmed()))
}

func TestStringRoundTrip(t *testing.T) {
	for _, s := range []string{"", "hello", "/etc/environment", "unicode: héllo wörld"} {
		v, err := nixstr.NewString(s)
		require.NoError(t, err)
		back, err := nixstr.ParseString(v.CString())
		require.NoError(t, err)
		require.Equal(t, v.String(), back.String())
		require.Equal(t, s, v.String())
	}
}

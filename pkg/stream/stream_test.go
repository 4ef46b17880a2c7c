package stream_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tlenix/tlenix/pkg/stream"
)

func TestSingletonsAreStable(t *testing.T) {
	require.Same(t, stream.Stdin(), stream.Stdin())
	require.Same(t, stream.Stdout(), stream.Stdout())
	require.Same(t, stream.Stderr(), stream.Stderr())
}

func TestSingletonsAreDistinctPerStream(t *testing.T) {
	require.NotSame(t, stream.Stdout(), stream.Stderr())
}

func TestFormatMatchesSprintf(t *testing.T) {
	require.Equal(t, "pid 7: exited", stream.Format("pid %d: %s", 7, "exited"))
}

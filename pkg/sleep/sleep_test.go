package sleep_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tlenix/tlenix/pkg/sleep"
)

func TestSleepWaitsAtLeastTheRequestedDuration(t *testing.T) {
	const d = 20 * time.Millisecond

	start := time.Now()
	require.NoError(t, sleep.Sleep(d))
	require.GreaterOrEqual(t, time.Since(start), d)
}

func TestSleepZeroReturnsImmediately(t *testing.T) {
	require.NoError(t, sleep.Sleep(0))
}

func TestPITPeriodIsTheDocumentedTick(t *testing.T) {
	require.Equal(t, 54925*time.Microsecond, sleep.PITPeriod)
}

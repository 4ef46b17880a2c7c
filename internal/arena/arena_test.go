package arena_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tlenix/tlenix/internal/arena"
)

func TestAllocBumpsUntilExhausted(t *testing.T) {
	a := arena.New(8)

	first := a.Alloc(5)
	require.Len(t, first, 5)
	require.Equal(t, 5, a.Used())

	second := a.Alloc(3)
	require.Len(t, second, 3)
	require.Equal(t, 8, a.Used())

	require.Nil(t, a.Alloc(1))
}

func TestAllocationsDoNotOverlap(t *testing.T) {
	a := arena.New(16)

	x := a.Alloc(4)
	y := a.Alloc(4)
	copy(x, "xxxx")
	copy(y, "yyyy")

	require.Equal(t, []byte("xxxx"), x)
	require.Equal(t, []byte("yyyy"), y)
}

func TestAllocatedSlicesHaveClampedCapacity(t *testing.T) {
	a := arena.New(16)

	x := a.Alloc(4)
	require.Equal(t, 4, cap(x))
}

func TestResetReclaimsEverything(t *testing.T) {
	a := arena.New(4)
	require.NotNil(t, a.Alloc(4))
	require.Nil(t, a.Alloc(1))

	a.Reset()
	require.Zero(t, a.Used())
	require.NotNil(t, a.Alloc(4))
}

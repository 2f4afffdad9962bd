package concurrent

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMapPreservesOrder(t *testing.T) {
	items := []int{5, 1, 4, 2, 3}
	out, err := Map(context.Background(), items, 2, func(_ context.Context, v int) (int, error) {
		return v * v, nil
	})
	require.NoError(t, err)
	require.Equal(t, []int{25, 1, 16, 4, 9}, out)
}

func TestMapLimitsWorkers(t *testing.T) {
	var running, peak atomic.Int32
	items := make([]int, 32)
	_, err := Map(context.Background(), items, 3, func(_ context.Context, _ int) (int, error) {
		n := running.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		running.Add(-1)
		return 0, nil
	})
	require.NoError(t, err)
	require.LessOrEqual(t, peak.Load(), int32(3))
}

func TestMapReturnsFirstError(t *testing.T) {
	boom := errors.New("boom")
	out, err := Map(context.Background(), []int{1, 2, 3}, 1, func(_ context.Context, v int) (int, error) {
		if v == 2 {
			return 0, boom
		}
		return v, nil
	})
	require.ErrorIs(t, err, boom)
	require.Nil(t, out)
}

func TestMapHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	called := false
	out, err := Map(ctx, []int{1}, 1, func(context.Context, int) (int, error) {
		called = true
		return 0, nil
	})
	require.ErrorIs(t, err, context.Canceled)
	require.Nil(t, out)
	require.False(t, called)
}

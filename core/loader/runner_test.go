package loader

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRunner_Stage(t *testing.T) {
	r := NewRunner(zap.NewNop())
	ctx := context.Background()

	require.NoError(t, r.Stage(ctx, "labels", func(context.Context) error { return nil }))
	r.Skip("items")

	err := r.Stage(ctx, "ships", func(context.Context) error { return errors.New("boom") })
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stage ships")

	timings := r.Timings()
	require.Len(t, timings, 3)
	assert.Equal(t, "labels", timings[0].Name)
	assert.True(t, timings[1].Skipped)

	summary := r.Summary()
	assert.Contains(t, summary, "labels")
	assert.Contains(t, summary, "skipped")
	assert.Contains(t, summary, "Total Elapsed")
}

func TestRunner_StageCancelled(t *testing.T) {
	r := NewRunner(zap.NewNop())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := r.Stage(ctx, "labels", func(context.Context) error { called = true; return nil })
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}

func TestRunner_Parallel(t *testing.T) {
	t.Run("Barrier", func(t *testing.T) {
		r := NewRunner(zap.NewNop())
		var done atomic.Int32

		slow := func(context.Context) error {
			time.Sleep(20 * time.Millisecond)
			done.Add(1)
			return nil
		}

		err := r.Parallel(context.Background(), "references",
			Step{Name: "manufacturers", Run: slow},
			Step{Name: "ammo", Run: slow},
		)
		require.NoError(t, err)
		// Both siblings must have completed before Parallel returns.
		assert.Equal(t, int32(2), done.Load())
		assert.Len(t, r.Timings(), 3)
	})

	t.Run("Error", func(t *testing.T) {
		r := NewRunner(zap.NewNop())
		err := r.Parallel(context.Background(), "references",
			Step{Name: "manufacturers", Run: func(context.Context) error { return nil }},
			Step{Name: "ammo", Run: func(context.Context) error { return errors.New("bad ammo") }},
		)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ammo: bad ammo")
	})
}

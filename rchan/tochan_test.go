package rchan_test

import (
	"context"
	"testing"

	"github.com/ripple-engine/ripple"
	"github.com/ripple-engine/ripple/internal/rtest"
	"github.com/ripple-engine/ripple/rchan"
	"github.com/stretchr/testify/require"
)

func TestToChan_forwardsEmittedValues(t *testing.T) {
	t.Parallel()

	s := ripple.NewSubject[int]()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	out := rchan.ToChan(ctx, s, 4)

	s.Next(1)
	s.Next(2)

	require.Equal(t, 1, rtest.ReceiveSoon(t, out))
	require.Equal(t, 2, rtest.ReceiveSoon(t, out))
}

func TestToChan_receivesSubjectReplay(t *testing.T) {
	t.Parallel()

	s := ripple.NewSubject[int]()
	s.Next(9)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	out := rchan.ToChan(ctx, s, 4)

	require.Equal(t, 9, rtest.ReceiveSoon(t, out))
}

func TestToChan_dropsWhenBufferFull(t *testing.T) {
	t.Parallel()

	s := ripple.NewSubject[int]()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	out := rchan.ToChan(ctx, s, 1)

	// Delivery is synchronous, so after these two calls
	// the single-slot buffer holds 1 and 2 was dropped.
	s.Next(1)
	s.Next(2)

	require.Equal(t, 1, rtest.ReceiveSoon(t, out))
	rtest.NotSending(t, out)
}

func TestToChan_closesOnContextCancel(t *testing.T) {
	t.Parallel()

	s := ripple.NewSubject[int]()

	ctx, cancel := context.WithCancel(context.Background())
	out := rchan.ToChan(ctx, s, 4)

	cancel()
	rtest.ClosedSoon(t, out)
}

package rchan

import (
	"context"
	"sync"

	"github.com/ripple-engine/ripple"
)

// ToChan subscribes to s and forwards emitted values to the returned
// channel, which has capacity buf.
//
// The stream's delivery is synchronous, so the bridge must not block
// the emitter: a value arriving while the buffer is full is dropped.
//
// The given context controls the bridge's lifecycle.
// When it is canceled the bridge unsubscribes from s and closes the
// returned channel.
func ToChan[T any](ctx context.Context, s ripple.Stream[T], buf int) <-chan T {
	b := &chanBridge[T]{
		out: make(chan T, buf),
	}

	sub := s.Subscribe(b)

	go func() {
		<-ctx.Done()
		sub.Unsubscribe()
		b.close()
	}()

	return b.out
}

type chanBridge[T any] struct {
	mu     sync.Mutex
	closed bool
	out    chan T
}

func (b *chanBridge[T]) Next(v T) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		// Unsubscribed, but a delivery pass already held the observer.
		return
	}

	select {
	case b.out <- v:
	default:
		// Full buffer: drop rather than block the emitter.
	}
}

func (b *chanBridge[T]) close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.closed = true
	close(b.out)
}

package rchan

import (
	"context"

	"github.com/ripple-engine/ripple"
)

// Run starts a background goroutine that reads values from ch
// and publishes them to the returned Subject.
//
// The returned done channel is closed when the goroutine stops,
// which will happen on context cancellation or
// if the given channel is closed.
func Run[T any](ctx context.Context, ch <-chan T) (
	s *ripple.Subject[T], done <-chan struct{},
) {
	s = ripple.NewSubject[T]()
	doneCh := make(chan struct{})

	go run(ctx, ch, s, doneCh)

	return s, doneCh
}

func run[T any](
	ctx context.Context,
	ch <-chan T,
	s *ripple.Subject[T],
	done chan<- struct{},
) {
	defer close(done)

	for {
		select {
		case <-ctx.Done():
			return

		case v, ok := <-ch:
			if !ok {
				return
			}
			s.Next(v)
		}
	}
}

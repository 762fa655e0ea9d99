package ripple

// Stream is the subscribable side shared by [Observable] and [Subject].
//
// AsStream returns the receiver itself, under the process-wide tag
// reported by InteropTag; foreign consumers that recognize the tag
// can treat any Stream as a conforming event source without knowing
// its concrete type.
type Stream[T any] interface {
	Subscribe(Observer[T]) *Subscription

	AsStream() Stream[T]
	InteropTag() string
}

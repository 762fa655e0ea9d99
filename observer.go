package ripple

// Observer receives values pushed from a [Stream].
type Observer[T any] interface {
	// Next is called once per emitted value,
	// synchronously, in the goroutine that produced the value.
	Next(v T)
}

// NextFunc adapts a bare function into an [Observer].
type NextFunc[T any] func(T)

// Next calls f(v).
func (f NextFunc[T]) Next(v T) { f(v) }

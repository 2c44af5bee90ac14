// Package options implements the generic functional-options pattern
// every configurable constructor in this module builds on (writer.Option
// is the public specialization for *writer.Options).
package options

// Option configures a value of type T, returning an error on invalid
// input instead of panicking, so a constructor can fail cleanly.
type Option[T any] interface {
	apply(T) error
}

// Func wraps a plain function as an Option.
type Func[T any] struct {
	applyFunc func(T) error
}

func (f *Func[T]) apply(target T) error { return f.applyFunc(target) }

// New creates an Option from a function that can fail.
func New[T any](fn func(T) error) *Func[T] {
	return &Func[T]{applyFunc: fn}
}

// NoError creates an Option from a function that cannot fail.
func NoError[T any](fn func(T)) *Func[T] {
	return &Func[T]{applyFunc: func(target T) error {
		fn(target)

		return nil
	}}
}

// Apply runs every option against target in order, stopping at the
// first error.
func Apply[T any](target T, opts ...Option[T]) error {
	for _, opt := range opts {
		if err := opt.apply(target); err != nil {
			return err
		}
	}

	return nil
}

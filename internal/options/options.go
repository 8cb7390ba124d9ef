// Package options provides a small generic functional-options helper shared by
// every configurable constructor in this module (value.DecodeAt/EncodeAt's
// endian_flag, sizing's model selection).
package options

import "fmt"

// Option represents a functional option for configuring any type T.
// This is a generic interface that can be used with any type.
type Option[T any] interface {
	apply(T) error
}

// Func is a generic functional option that wraps a function. It implements
// the Option interface for any type T. name is optional and, when set, is
// included in the error Apply returns if applyFunc fails, so a caller
// passing several options can tell which one rejected its configuration.
type Func[T any] struct {
	name      string
	applyFunc func(T) error
}

// apply implements the Option interface.
func (f *Func[T]) apply(target T) error {
	if err := f.applyFunc(target); err != nil {
		if f.name != "" {
			return fmt.Errorf("%s: %w", f.name, err)
		}
		return err
	}
	return nil
}

// New creates a new functional option from a function that can fail.
func New[T any](fn func(T) error) *Func[T] {
	return &Func[T]{applyFunc: fn}
}

// Named creates a functional option like New, but labels it so a failure
// applying it is reported with that label attached.
func Named[T any](name string, fn func(T) error) *Func[T] {
	return &Func[T]{name: name, applyFunc: fn}
}

// NoError creates a functional option from a function that cannot fail.
func NoError[T any](fn func(T)) *Func[T] {
	return &Func[T]{
		applyFunc: func(target T) error {
			fn(target)
			return nil
		},
	}
}

// Apply applies options to target in order, stopping at the first one that
// fails. The returned error identifies the option's position in opts so a
// caller passing several can tell which one was rejected.
func Apply[T any](target T, opts ...Option[T]) error {
	for i, opt := range opts {
		if err := opt.apply(target); err != nil {
			return fmt.Errorf("option %d: %w", i, err)
		}
	}

	return nil
}

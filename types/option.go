package types

import "fmt"

// Option is a value that may be absent.
//
// The zero value is None.
type Option[T any] struct {
	value T
	valid bool
}

// Some returns a present value.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, valid: true}
}

// None returns an absent value.
func None[T any]() Option[T] {
	return Option[T]{}
}

// Get returns the value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.valid
}

// IsSome reports whether the value is present.
func (o Option[T]) IsSome() bool { return o.valid }

// IsNone reports whether the value is absent.
func (o Option[T]) IsNone() bool { return !o.valid }

// ValueOr returns the value if present, def otherwise.
func (o Option[T]) ValueOr(def T) T {
	if o.valid {
		return o.value
	}
	return def
}

func (o Option[T]) String() string {
	if !o.valid {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}

package bitmap

import (
	"iter"

	"github.com/hupe1980/colpar/invariant"
	"github.com/hupe1980/colpar/types"
)

// ValueIter is an exact-size iterator over dense values.
type ValueIter[T any] interface {
	Next() (T, bool)
	Len() int
}

// PresenceIter is an exact-size iterator over presence flags.
type PresenceIter interface {
	Next() (bool, bool)
	Len() int
}

// ZipValidity zips values with presence flags into optional values.
type ZipValidity[T any] struct {
	values   ValueIter[T]
	validity PresenceIter
	onDone   func()
	done     bool
}

// NewZipValidity combines values with validity. A nil validity means every
// value is present.
func NewZipValidity[T any](values ValueIter[T], validity PresenceIter) *ZipValidity[T] {
	if validity != nil && validity.Len() != values.Len() {
		invariant.Failf("zip validity: %d values but %d presence flags", values.Len(), validity.Len())
	}
	return &ZipValidity[T]{values: values, validity: validity}
}

// OnDone registers fn to run once, when the iterator is exhausted or closed.
func (z *ZipValidity[T]) OnDone(fn func()) *ZipValidity[T] {
	z.onDone = fn
	return z
}

// Next returns the next optional value, or false once both inputs are exhausted.
func (z *ZipValidity[T]) Next() (types.Option[T], bool) {
	v, ok := z.values.Next()

	if z.validity == nil {
		if !ok {
			z.Close()
			return types.None[T](), false
		}
		return types.Some(v), true
	}

	present, pok := z.validity.Next()
	if ok != pok {
		invariant.Failf("zip validity: value and presence sequences ended at different positions (values=%t, presence=%t)", ok, pok)
	}
	if !ok {
		z.Close()
		return types.None[T](), false
	}
	if !present {
		return types.None[T](), true
	}
	return types.Some(v), true
}

// Len returns the number of items not yet returned.
func (z *ZipValidity[T]) Len() int { return z.values.Len() }

// Close runs the OnDone callback if it has not run yet. Remaining items are
// discarded.
func (z *ZipValidity[T]) Close() {
	if z.done {
		return
	}
	z.done = true
	if z.onDone != nil {
		z.onDone()
	}
}

// Seq drains the iterator as an iter.Seq. Stopping early closes it.
func (z *ZipValidity[T]) Seq() iter.Seq[types.Option[T]] {
	return func(yield func(types.Option[T]) bool) {
		defer z.Close()
		for {
			v, ok := z.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

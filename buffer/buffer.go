package buffer

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/hupe1980/colpar/internal/conv"
	"github.com/hupe1980/colpar/internal/mem"
	"github.com/hupe1980/colpar/invariant"
	"github.com/hupe1980/colpar/resource"
	"github.com/hupe1980/colpar/types"
)

type storage[T types.Native] struct {
	data  []T
	refs  atomic.Int64
	bytes int64
	ctrl  *resource.Controller
}

// Buffer is a view over shared immutable storage.
//
// The zero value is an empty buffer that owns nothing.
type Buffer[T types.Native] struct {
	st     *storage[T]
	offset int
	length int
}

type options struct {
	ctrl *resource.Controller
}

// Option configures buffer construction.
type Option func(*options)

// WithController accounts the buffer's bytes against c until the last
// reference is released.
func WithController(c *resource.Controller) Option {
	return func(o *options) {
		o.ctrl = c
	}
}

// Build allocates an aligned buffer of n values and lets fill initialize it.
// fill may be nil, in which case all values are zero.
func Build[T types.Native](n int, fill func(dst []T), optFns ...Option) (Buffer[T], error) {
	return BuildContext(context.Background(), n, fill, optFns...)
}

// BuildContext is like Build but waits on ctx when the controller's memory
// limit is currently exhausted.
func BuildContext[T types.Native](ctx context.Context, n int, fill func(dst []T), optFns ...Option) (Buffer[T], error) {
	opts := options{}
	for _, fn := range optFns {
		fn(&opts)
	}

	bytes, err := conv.MulInt64(n, types.SizeOf[T]())
	if err != nil {
		return Buffer[T]{}, fmt.Errorf("buffer: size of %d values: %w", n, err)
	}

	if err := opts.ctrl.AcquireMemory(ctx, bytes); err != nil {
		return Buffer[T]{}, fmt.Errorf("buffer: reserve %d bytes: %w", bytes, err)
	}

	st := &storage[T]{
		data:  mem.AllocSlice[T](n),
		bytes: bytes,
		ctrl:  opts.ctrl,
	}
	st.refs.Store(1)

	if fill != nil {
		fill(st.data)
	}

	return Buffer[T]{st: st, length: n}, nil
}

// FromSlice copies values into a new aligned buffer.
func FromSlice[T types.Native](values []T) Buffer[T] {
	// Without a controller Build cannot fail.
	b, _ := Build(len(values), func(dst []T) { copy(dst, values) })
	return b
}

// Wrap takes ownership of values without copying.
// The caller must not modify values afterwards.
func Wrap[T types.Native](values []T) Buffer[T] {
	st := &storage[T]{data: values}
	st.refs.Store(1)
	return Buffer[T]{st: st, length: len(values)}
}

// Len returns the number of values in the view.
func (b Buffer[T]) Len() int { return b.length }

// Offset returns the view's start within the shared storage.
func (b Buffer[T]) Offset() int { return b.offset }

// RefCount returns the number of live references to the shared storage.
func (b Buffer[T]) RefCount() int64 {
	if b.st == nil {
		return 0
	}
	return b.st.refs.Load()
}

// Values returns the view's values. The slice must not be modified.
func (b Buffer[T]) Values() []T {
	if b.st == nil {
		return nil
	}
	b.checkLive("read")
	end := b.offset + b.length
	return b.st.data[b.offset:end:end]
}

// At returns the i-th value of the view.
func (b Buffer[T]) At(i int) T {
	invariant.Checkf(i >= 0 && i < b.length, "buffer: index %d out of range [0, %d)", i, b.length)
	b.checkLive("read")
	return b.st.data[b.offset+i]
}

// Sliced narrows the view to [offset, offset+length) without copying.
// The receiver's reference moves to the result.
func (b Buffer[T]) Sliced(offset, length int) Buffer[T] {
	invariant.Checkf(offset >= 0 && length >= 0 && offset+length <= b.length,
		"buffer: slice [%d, %d) out of range [0, %d)", offset, offset+length, b.length)
	return Buffer[T]{st: b.st, offset: b.offset + offset, length: length}
}

// Clone returns the same view holding an additional reference.
func (b Buffer[T]) Clone() Buffer[T] {
	if b.st == nil {
		return b
	}
	if b.st.refs.Add(1) <= 1 {
		invariant.Failf("buffer: clone of released buffer")
	}
	return b
}

// Release drops the view's reference.
func (b Buffer[T]) Release() {
	if b.st == nil {
		return
	}
	switch n := b.st.refs.Add(-1); {
	case n == 0:
		b.st.ctrl.ReleaseMemory(b.st.bytes)
	case n < 0:
		invariant.Failf("buffer: release of released buffer")
	}
}

// Iter returns a forward iterator over the view's values.
func (b Buffer[T]) Iter() *Iter[T] {
	return &Iter[T]{values: b.Values()}
}

func (b Buffer[T]) checkLive(op string) {
	if b.st.refs.Load() <= 0 {
		invariant.Failf("buffer: %s after release", op)
	}
}

// Iter yields the values of a buffer view in order.
type Iter[T types.Native] struct {
	values []T
	pos    int
}

// Next returns the next value, or false once the view is exhausted.
func (it *Iter[T]) Next() (T, bool) {
	if it.pos >= len(it.values) {
		var zero T
		return zero, false
	}
	v := it.values[it.pos]
	it.pos++
	return v, true
}

// Len returns the number of values not yet returned.
func (it *Iter[T]) Len() int { return len(it.values) - it.pos }

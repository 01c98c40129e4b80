package array

import (
	"github.com/hupe1980/colpar/invariant"
	"github.com/hupe1980/colpar/par"
	"github.com/hupe1980/colpar/types"
)

// ParIter is a parallel iterator over the elements of an array.
type ParIter[T types.Native] struct {
	arr      Primitive[T]
	opts     []par.Option
	logger   *par.Logger
	consumed bool
}

// NewParIter wraps arr. The array's references move into the iterator.
func NewParIter[T types.Native](arr Primitive[T]) *ParIter[T] {
	return &ParIter[T]{arr: arr}
}

// OptLen always reports the exact length.
func (it *ParIter[T]) OptLen() (int, bool) { return it.arr.Len(), true }

// Len returns the number of elements.
func (it *ParIter[T]) Len() int { return it.arr.Len() }

// WithProducer hands a producer over the whole array to cb. It may be
// called once; the iterator is consumed afterwards.
func (it *ParIter[T]) WithProducer(cb par.ProducerCallback[types.Option[T]]) {
	invariant.Checkf(!it.consumed, "array: parallel iterator already consumed")
	it.consumed = true
	cb.Callback(dataProducer[T]{arr: it.arr})
}

// WithMinLen sets the minimum number of elements per leaf.
func (it *ParIter[T]) WithMinLen(n int) *ParIter[T] {
	it.opts = append(it.opts, par.WithMinLen(n))
	return it
}

// WithMaxLen sets the preferred maximum number of elements per leaf.
func (it *ParIter[T]) WithMaxLen(n int) *ParIter[T] {
	it.opts = append(it.opts, par.WithMaxLen(n))
	return it
}

// WithJoiner sets the fork-join primitive.
func (it *ParIter[T]) WithJoiner(j par.Joiner) *ParIter[T] {
	it.opts = append(it.opts, par.WithJoiner(j))
	return it
}

// WithLogger configures the logger.
func (it *ParIter[T]) WithLogger(l *par.Logger) *ParIter[T] {
	it.logger = l
	it.opts = append(it.opts, par.WithLogger(l))
	return it
}

// Collect returns the elements in index order.
func (it *ParIter[T]) Collect() []types.Option[T] {
	return par.Collect[types.Option[T]](it, it.opts...)
}

// TryCollect is like Collect but returns invariant violations as errors
// instead of panicking.
func (it *ParIter[T]) TryCollect() (out []types.Option[T], err error) {
	defer func() {
		if err != nil && it.logger != nil {
			it.logger.WithLen(it.Len()).LogRecovered("try collect", err)
		}
	}()
	defer invariant.Recover(&err)

	return it.Collect(), nil
}

// ForEach calls op for every element. Calls for different leaves run
// concurrently.
func (it *ParIter[T]) ForEach(op func(types.Option[T])) {
	par.ForEach[types.Option[T]](it, op, it.opts...)
}

// Drive consumes it into an indexed consumer.
func Drive[T types.Native, R any](it *ParIter[T], c par.Consumer[types.Option[T], R]) R {
	return par.Bridge[types.Option[T], R](it, c, it.opts...)
}

// DriveUnindexed consumes it into an unindexed consumer. The length is
// always known, so this takes the indexed path.
func DriveUnindexed[T types.Native, R any](it *ParIter[T], c par.UnindexedConsumer[types.Option[T], R]) R {
	return par.DriveUnindexed[types.Option[T], R](it, c, it.opts...)
}

// dataProducer is a splittable view over an array.
type dataProducer[T types.Native] struct {
	arr Primitive[T]
}

func (p dataProducer[T]) Len() int { return p.arr.Len() }

func (p dataProducer[T]) SplitAt(index int) (par.Producer[types.Option[T]], par.Producer[types.Option[T]]) {
	n := p.arr.Len()
	invariant.Checkf(index >= 0 && index <= n, "array: split index %d out of range [0, %d]", index, n)
	p.arr.checkValidity()

	left := p.arr.Clone().Sliced(0, index)
	right := p.arr.Sliced(index, n-index)
	return dataProducer[T]{arr: left}, dataProducer[T]{arr: right}
}

func (p dataProducer[T]) IntoIter() par.Iterator[types.Option[T]] {
	return p.arr.IntoIter()
}

// Release drops the producer's references without iterating.
func (p dataProducer[T]) Release() {
	p.arr.Release()
}

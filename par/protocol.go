package par

// Iterator is a forward-only, non-restartable sequence.
//
// If an iterator also has a Close method, the bridge calls it once the leaf
// has been folded, whether or not the iterator was drained.
type Iterator[T any] interface {
	Next() (T, bool)
}

// Producer is a divisible source of exactly Len items.
//
// SplitAt(i) must return producers over [0, i) and [i, Len()) that yield,
// left then right, the same items in the same order as the receiver. The
// receiver is consumed by SplitAt and IntoIter. The two halves must be safe
// to use from different goroutines. A SplitAt that panics must leave the
// receiver unconsumed.
type Producer[T any] interface {
	Len() int
	SplitAt(index int) (left, right Producer[T])
	IntoIter() Iterator[T]
}

// Releaser is implemented by producers that hold resources. When a panic
// unwinds a bridge, producers that were never split or drained are released
// through it; producers without it are drained with IntoIter and closed.
type Releaser interface {
	Release()
}

// ProducerCallback receives the producer of an indexed source.
type ProducerCallback[T any] interface {
	Callback(p Producer[T])
}

// ProducerFunc adapts a function to ProducerCallback.
type ProducerFunc[T any] func(p Producer[T])

// Callback calls f(p).
func (f ProducerFunc[T]) Callback(p Producer[T]) { f(p) }

// ParallelIterator is a source of items that may be consumed in parallel.
type ParallelIterator[T any] interface {
	// OptLen returns the exact number of items if it is known up front.
	OptLen() (int, bool)
}

// IndexedParallelIterator is a ParallelIterator with an exact length that can
// hand out a Producer.
type IndexedParallelIterator[T any] interface {
	ParallelIterator[T]
	Len() int
	// WithProducer builds the source's producer and passes it to cb.
	WithProducer(cb ProducerCallback[T])
}

// Folder accumulates the items of one leaf.
type Folder[T, R any] interface {
	Consume(item T)
	Full() bool
	Complete() R
}

// Reducer merges the results of two adjacent halves, left first.
type Reducer[R any] interface {
	Reduce(left, right R) R
}

// ReducerFunc adapts a function to Reducer.
type ReducerFunc[R any] func(left, right R) R

// Reduce calls f(left, right).
func (f ReducerFunc[R]) Reduce(left, right R) R { return f(left, right) }

// Consumer receives the items of a producer. It is split at the same indices
// as the producer so that results can be merged in index order.
type Consumer[T, R any] interface {
	SplitAt(index int) (left, right Consumer[T, R], reducer Reducer[R])
	IntoFolder() Folder[T, R]
	Full() bool
}

// UnindexedConsumer is a Consumer that can also be split without an index.
type UnindexedConsumer[T, R any] interface {
	Consumer[T, R]
	SplitOff() UnindexedConsumer[T, R]
	ToReducer() Reducer[R]
}

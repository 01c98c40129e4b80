// Package colpar provides splittable parallel iteration over nullable
// columnar arrays.
//
// An array is a dense buffer of fixed-width values plus an optional presence
// bitmap. Both are immutable and reference counted, so an array can be cut
// into any number of contiguous views without copying. The parallel iterator
// hands out a producer over the whole array; a fork-join bridge splits it
// recursively, drains every leaf as a sequence of optional values and merges
// the per-leaf results back in index order.
//
// # Quick Start
//
//	arr := array.FromOptions([]types.Option[int32]{
//		types.Some[int32](1), types.None[int32](), types.Some[int32](3),
//	})
//	out := arr.ParIter().WithMinLen(2).Collect() // [Some(1) None Some(3)]
//
// # Packages
//
//   - array: Primitive arrays and their parallel iterator
//   - bitmap: presence bitmaps and the value/presence zip
//   - buffer: shared reference-counted value buffers
//   - par: producer/consumer protocol, bridge, splitter and joiners
//   - resource: memory and worker slot limits
//   - types: element constraint and Option
//   - invariant: assertion failures for broken internal consistency
//
// # Concurrency
//
// Buffers and bitmaps are never written after construction, and reference
// counts are atomic. Sibling producers may be split and drained on different
// goroutines without locking. The Joiner decides whether a branch runs
// inline or on another goroutine; Pool never blocks waiting for a worker
// slot, so nested joins cannot deadlock.
//
// # Errors
//
// Construction functions return errors (array.ErrLengthMismatch,
// resource.ErrMemoryLimit). Violated internal invariants, such as a presence
// bitmap shorter than its values or a split index out of range, panic with
// an assertion failure. ParIter.TryCollect converts those panics into errors.
package colpar

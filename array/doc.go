// Package array provides immutable, nullable arrays of fixed-width values
// and their parallel iterator.
//
// A Primitive is a view over a shared value buffer and an optional presence
// bitmap. Slicing adjusts offsets only; cloning adds a reference to the
// shared storage.
//
// # Parallel iteration
//
// ParIter exposes an array to package par. It always reports an exact
// length, so both ordered and unordered consumption go through the same
// indexed bridge: the array is handed out as one producer, halved without
// copying until the splitter stops, and every leaf is drained through a
// bitmap.ZipValidity. Results come back in index order:
//
//	arr := array.FromOptions([]types.Option[int32]{types.Some[int32](1), types.None[int32](), types.Some[int32](3)})
//	out := arr.ParIter().WithMinLen(2).Collect()
//	// [Some(1) None Some(3)]
package array

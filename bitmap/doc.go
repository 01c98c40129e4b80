// Package bitmap implements the presence bitmap of nullable arrays and the
// validity combinator that zips it with a value sequence.
//
// A Bitmap is a view (offset, length in bits) over shared, immutable, 64-bit
// words. The words live in a buffer.Buffer[uint64] and are read through a
// github.com/bits-and-blooms/bitset wrapper, so bit tests and rank queries
// never copy. Sparse null sets can be exchanged as roaring bitmaps:
//
//	nulls := roaring.BitmapOf(1, 5)
//	validity, _ := bitmap.FromNulls(8, nulls)
//	validity.NullCount() // 2
//
// # ZipValidity
//
// ZipValidity advances a value iterator and a presence iterator in lockstep
// and yields types.Option values. A nil presence iterator means every value
// is present. Inputs of different lengths are an invariant violation and
// panic; the combinator never truncates or pads.
package bitmap

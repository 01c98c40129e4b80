// Package conv provides checked integer conversions.
//
// Bitmap positions cross between Go's int and roaring's uint32, and buffer
// sizes are computed as element count times element width; both are checked
// here so that oversized inputs fail with ErrOverflow instead of wrapping.
package conv

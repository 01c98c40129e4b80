// Package buffer provides shared, reference-counted, immutable value buffers.
//
// A Buffer is a small view record (storage pointer, offset, length) over a
// 64-byte aligned slice of fixed-width values. Copying the record is free;
// ownership is tracked explicitly:
//
//   - Clone adds a reference and returns the same view.
//   - Sliced narrows the view and transfers the receiver's reference to the
//     result, so the receiver must not be used afterwards.
//   - Release drops a reference. When the last reference is dropped the
//     buffer's bytes are returned to its resource.Controller.
//
// The payload is never written after construction, so any number of
// goroutines may read overlapping or disjoint views concurrently.
package buffer

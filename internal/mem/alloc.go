package mem

import (
	"unsafe"

	"github.com/hupe1980/colpar/types"
)

// Alignment is the byte alignment of every allocation (one cache line).
const Alignment = 64

// AllocSlice allocates a zeroed slice of n elements of T with 64-byte alignment.
// The returned slice is guaranteed to start at a memory address divisible by 64.
//
// Note: This function allocates up to Alignment bytes more than requested.
// The underlying array is kept alive by the returned slice.
func AllocSlice[T types.Native](n int) []T {
	if n <= 0 {
		return nil
	}

	// Over-allocate so the start can be shifted up to Alignment-1 bytes
	size := n * types.SizeOf[T]()
	buf := make([]byte, size+Alignment)

	// Offset of the first aligned byte
	addr := uintptr(unsafe.Pointer(&buf[0])) //nolint:gosec // unsafe is required for memory alignment
	offset := (Alignment - (addr & (Alignment - 1))) & (Alignment - 1)

	// Every Native type is at most 8 bytes wide, so a 64-byte aligned
	// start is aligned for T as well.
	ptr := unsafe.Pointer(&buf[offset]) //nolint:gosec // unsafe is required for memory alignment
	return unsafe.Slice((*T)(ptr), n)   //nolint:gosec // unsafe is required for memory alignment
}

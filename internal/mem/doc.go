// Package mem provides memory allocation utilities.
//
// # Aligned Allocation
//
// Value and bitmap buffers start on a 64-byte boundary so that every element
// type is naturally aligned and leaf producers scan whole cache lines.
package mem

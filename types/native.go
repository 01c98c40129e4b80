package types

import "unsafe"

// Native is the set of fixed-width numeric element types an array can hold.
type Native interface {
	~int8 | ~int16 | ~int32 | ~int64 |
		~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// SizeOf returns the width of T in bytes.
func SizeOf[T Native]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

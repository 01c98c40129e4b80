// Package types defines the element types shared by the colpar packages.
//
// # Native
//
// Native constrains array elements to fixed-width numeric types. Platform
// dependent widths (int, uint, uintptr) are intentionally excluded so that
// buffer sizes are identical on every architecture.
//
// # Option
//
// Option is the unit item produced when iterating a nullable array:
//
//	for v := range arr.All() {
//	    if x, ok := v.Get(); ok {
//	        fmt.Println(x)
//	    }
//	}
package types

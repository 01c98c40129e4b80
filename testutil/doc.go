// Package testutil provides testing utilities for colpar.
//
// This package is intended for use in tests and benchmarks only.
// It generates reproducible random columns and split patterns.
//
// # Random Columns
//
//	rng := testutil.NewRNG(seed)
//	values := rng.Int64s(1000)        // dense values
//	valid := rng.Validity(1000, 0.3)  // ~30% nulls
//
// # Split Patterns
//
//	cuts := rng.Partition(1000, 8)    // sorted cut points in [0, 1000]
package testutil

// Package par is a small divide-and-conquer framework for consuming
// indexed sources in parallel.
//
// # Protocol
//
// A source (IndexedParallelIterator) knows its exact length and builds a
// Producer on request. A Producer can be split at any index into two
// producers and finally turned into a sequential Iterator. A Consumer is
// split at the same indices, folds each leaf, and merges leaf results with a
// Reducer, left before right, so the output order is the input order no
// matter which goroutine finished first.
//
//	out := par.Collect(src, par.WithMinLen(1024))
//
// # Scheduling
//
// The splitting logic is scheduler-agnostic. Branches are run by a Joiner:
//
//   - Serial runs everything on the calling goroutine.
//   - Pool runs the right branch on a new goroutine when a worker slot from
//     its resource.Controller is free, and inline otherwise.
//
// A LengthSplitter bounds how often a producer is divided: about one split
// per worker, renewed whenever a branch migrates to another goroutine, and
// never below the configured minimum leaf length.
//
// # Failure model
//
// Producers and consumers report broken invariants by panicking (see
// package invariant). A panic in a branch is re-raised by Join on the
// joining goroutine, so it surfaces from Bridge, Collect or ForEach.
package par

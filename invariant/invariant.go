// Package invariant reports internal consistency failures.
//
// A violated invariant means a view, split or buffer was constructed
// incorrectly upstream. It is never caused by input data, so it is raised as
// a panic carrying an assertion-failure error rather than returned. Callers
// that must not crash can convert such panics at an API boundary with
// Recover.
package invariant

import (
	"github.com/cockroachdb/errors"
)

// Failf panics with an assertion-failure error.
func Failf(format string, args ...any) {
	panic(errors.AssertionFailedf(format, args...))
}

// Checkf panics with an assertion-failure error if cond is false.
func Checkf(cond bool, format string, args ...any) {
	if !cond {
		panic(errors.AssertionFailedf(format, args...))
	}
}

// IsViolation reports whether err is, or wraps, an invariant violation.
func IsViolation(err error) bool {
	return err != nil && errors.IsAssertionFailure(err)
}

// Recover converts a panicking invariant violation into *errp.
// Any other panic is re-raised unchanged.
//
// It must be called directly by a deferred statement:
//
//	defer invariant.Recover(&err)
func Recover(errp *error) {
	r := recover()
	if r == nil {
		return
	}
	if err, ok := r.(error); ok && errors.IsAssertionFailure(err) {
		*errp = err
		return
	}
	panic(r)
}

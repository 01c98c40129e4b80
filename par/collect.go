package par

import (
	"github.com/hupe1980/colpar/invariant"
)

// Collect gathers the items of src into a slice in index order.
// Every leaf writes straight into its own window of the result.
func Collect[T any](src IndexedParallelIterator[T], optFns ...Option) []T {
	n := src.Len()
	out := make([]T, n)

	res := Bridge[T, collectResult](src, collectConsumer[T]{target: out}, optFns...)
	invariant.Checkf(res.start == 0 && res.len == n, "par: expected %d total writes, but got %d", n, res.len)

	return out
}

// collectResult is the contiguous window [start, start+len) written so far.
type collectResult struct {
	start, len int
}

type collectConsumer[T any] struct {
	target []T
	offset int
}

func (c collectConsumer[T]) SplitAt(index int) (Consumer[T, collectResult], Consumer[T, collectResult], Reducer[collectResult]) {
	invariant.Checkf(index >= 0 && index <= len(c.target), "par: collect split %d out of range [0, %d]", index, len(c.target))
	left := collectConsumer[T]{target: c.target[:index:index], offset: c.offset}
	right := collectConsumer[T]{target: c.target[index:], offset: c.offset + index}
	return left, right, ReducerFunc[collectResult](reduceCollect)
}

func (c collectConsumer[T]) IntoFolder() Folder[T, collectResult] {
	return &collectFolder[T]{target: c.target, offset: c.offset}
}

func (c collectConsumer[T]) Full() bool { return false }

// reduceCollect joins adjacent windows. A gap means a leaf under-reported;
// the final length check in Collect catches it.
func reduceCollect(left, right collectResult) collectResult {
	if left.start+left.len == right.start {
		return collectResult{start: left.start, len: left.len + right.len}
	}
	return left
}

type collectFolder[T any] struct {
	target []T
	offset int
	n      int
}

func (f *collectFolder[T]) Consume(item T) {
	invariant.Checkf(f.n < len(f.target), "par: too many values pushed to consumer (window %d)", len(f.target))
	f.target[f.n] = item
	f.n++
}

func (f *collectFolder[T]) Full() bool { return false }

func (f *collectFolder[T]) Complete() collectResult {
	return collectResult{start: f.offset, len: f.n}
}

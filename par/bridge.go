package par

import (
	"github.com/hupe1980/colpar/invariant"
)

// Bridge drives an indexed source into c, splitting its producer across the
// configured joiner. Results are merged in index order.
func Bridge[T, R any](src IndexedParallelIterator[T], c Consumer[T, R], optFns ...Option) R {
	n := src.Len()

	var (
		out    R
		called bool
	)
	src.WithProducer(ProducerFunc[T](func(p Producer[T]) {
		invariant.Checkf(!called, "par: producer callback invoked twice")
		called = true
		invariant.Checkf(p.Len() == n, "par: producer length %d, source length %d", p.Len(), n)
		out = BridgeProducer(p, c, optFns...)
	}))
	invariant.Checkf(called, "par: source did not call the producer callback")

	return out
}

// DriveUnindexed drives a source into an unindexed consumer. Sources with an
// exact length take the indexed path; there is no separate unordered
// algorithm.
func DriveUnindexed[T, R any](src IndexedParallelIterator[T], c UnindexedConsumer[T, R], optFns ...Option) R {
	n, ok := src.OptLen()
	invariant.Checkf(ok && n == src.Len(), "par: indexed source reports inexact length (%d, %t), len %d", n, ok, src.Len())
	return Bridge[T, R](src, c, optFns...)
}

// BridgeProducer splits p and c in lockstep until the splitter stops,
// folds each leaf, and reduces the leaf results left to right.
func BridgeProducer[T, R any](p Producer[T], c Consumer[T, R], optFns ...Option) R {
	opts := newOptions(optFns)

	n := p.Len()
	splitter := NewLengthSplitter(opts.minLen, opts.maxLen, n, opts.joiner.Workers())
	opts.logger.LogBridge(n, splitter)

	return bridgeHelper(n, false, splitter, p, c, opts.joiner)
}

func bridgeHelper[T, R any](n int, migrated bool, s LengthSplitter, p Producer[T], c Consumer[T, R], j Joiner) R {
	if c.Full() {
		discard(p)
		return c.IntoFolder().Complete()
	}

	if !s.TrySplit(n, migrated) {
		return fold(p, c.IntoFolder())
	}

	mid := n / 2
	lp, rp := split(p, mid)

	// Halves whose branch never started are released if a panic unwinds
	// through here.
	var leftRan, rightRan bool
	defer func() {
		if !leftRan {
			discard(lp)
		}
		if !rightRan {
			discard(rp)
		}
	}()

	invariant.Checkf(lp.Len() == mid && rp.Len() == n-mid,
		"par: split of %d at %d produced lengths %d and %d", n, mid, lp.Len(), rp.Len())
	lc, rc, reducer := c.SplitAt(mid)

	var lr, rr R
	j.Join(
		func(m bool) {
			leftRan = true
			lr = bridgeHelper(mid, m, s, lp, lc, j)
		},
		func(m bool) {
			rightRan = true
			rr = bridgeHelper(n-mid, m, s, rp, rc, j)
		},
	)
	return reducer.Reduce(lr, rr)
}

// split is p.SplitAt(mid), releasing p if the split panics.
func split[T any](p Producer[T], mid int) (Producer[T], Producer[T]) {
	done := false
	defer func() {
		if !done {
			discard(p)
		}
	}()

	lp, rp := p.SplitAt(mid)
	done = true
	return lp, rp
}

// discard drops a producer without folding it.
func discard[T any](p Producer[T]) {
	if r, ok := p.(Releaser); ok {
		r.Release()
		return
	}
	closeIter(p.IntoIter())
}

func fold[T, R any](p Producer[T], f Folder[T, R]) R {
	it := p.IntoIter()
	defer closeIter(it)

	for !f.Full() {
		v, ok := it.Next()
		if !ok {
			break
		}
		f.Consume(v)
	}
	return f.Complete()
}

func closeIter(it any) {
	if c, ok := it.(interface{ Close() }); ok {
		c.Close()
	}
}

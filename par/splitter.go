package par

// LengthSplitter decides whether a producer of a given length is divided
// again.
//
// It starts with a budget of one split per worker (or len/maxLen when that
// is larger) and halves the budget at every split. A branch that was moved
// to another goroutine gets its budget reset to at least one split per
// worker, so idle workers that pick up work can keep dividing it.
type LengthSplitter struct {
	splits  int
	workers int
	min     int
}

// NewLengthSplitter returns a splitter for n items.
func NewLengthSplitter(minLen, maxLen, n, workers int) LengthSplitter {
	if minLen < 1 {
		minLen = 1
	}
	if workers < 1 {
		workers = 1
	}

	splits := workers
	if maxLen > 0 {
		if minSplits := n / maxLen; minSplits > splits {
			splits = minSplits
		}
	}

	return LengthSplitter{splits: splits, workers: workers, min: minLen}
}

// TrySplit reports whether a producer of n items should be split, and
// consumes one unit of the split budget if so.
func (s *LengthSplitter) TrySplit(n int, migrated bool) bool {
	return n/2 >= s.min && s.trySplit(migrated)
}

func (s *LengthSplitter) trySplit(migrated bool) bool {
	if migrated {
		s.splits = max(s.workers, s.splits/2)
		return true
	}
	if s.splits > 0 {
		s.splits /= 2
		return true
	}
	return false
}

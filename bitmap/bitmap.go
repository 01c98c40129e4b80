package bitmap

import (
	"errors"
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/bits-and-blooms/bitset"
	"github.com/hupe1980/colpar/buffer"
	"github.com/hupe1980/colpar/internal/conv"
	"github.com/hupe1980/colpar/invariant"
)

const wordBits = 64

// ErrOutOfRange is returned when a null position lies outside the bitmap.
var ErrOutOfRange = errors.New("bitmap: position out of range")

// Bitmap is an immutable presence bitmap view.
// A set bit marks a present value.
type Bitmap struct {
	words  buffer.Buffer[uint64]
	bits   *bitset.BitSet
	offset int
	length int
}

// New builds a bitmap of n bits where bit i is set if isSet(i) is true.
func New(n int, isSet func(i int) bool, optFns ...buffer.Option) (Bitmap, error) {
	return build(n, func(bs *bitset.BitSet, _ []uint64) {
		for i := 0; i < n; i++ {
			if isSet(i) {
				bs.Set(uint(i))
			}
		}
	}, optFns...)
}

// FromBools builds a bitmap from one presence flag per position.
func FromBools(valid []bool) Bitmap {
	b, _ := New(len(valid), func(i int) bool { return valid[i] })
	return b
}

// AllSet returns a bitmap of n set bits.
func AllSet(n int) Bitmap {
	b, _ := build(n, func(_ *bitset.BitSet, words []uint64) { fillSet(words, n) })
	return b
}

// AllUnset returns a bitmap of n unset bits.
func AllUnset(n int) Bitmap {
	b, _ := build(n, nil)
	return b
}

// FromNulls builds a bitmap of n bits with every bit set except the
// positions in nulls.
func FromNulls(n int, nulls *roaring.Bitmap, optFns ...buffer.Option) (Bitmap, error) {
	if nulls != nil && !nulls.IsEmpty() {
		maxPos, err := conv.Uint32ToInt(nulls.Maximum())
		if err != nil {
			return Bitmap{}, err
		}
		if maxPos >= n {
			return Bitmap{}, fmt.Errorf("%w: null position %d, length %d", ErrOutOfRange, maxPos, n)
		}
	}

	return build(n, func(bs *bitset.BitSet, words []uint64) {
		fillSet(words, n)
		if nulls == nil {
			return
		}
		it := nulls.Iterator()
		for it.HasNext() {
			bs.Clear(uint(it.Next()))
		}
	}, optFns...)
}

func build(n int, fill func(bs *bitset.BitSet, words []uint64), optFns ...buffer.Option) (Bitmap, error) {
	invariant.Checkf(n >= 0, "bitmap: negative length %d", n)

	var bs *bitset.BitSet
	words, err := buffer.Build(wordsFor(n), func(dst []uint64) {
		bs = bitset.From(dst)
		if fill != nil {
			fill(bs, dst)
		}
	}, optFns...)
	if err != nil {
		return Bitmap{}, err
	}

	return Bitmap{words: words, bits: bs, length: n}, nil
}

func wordsFor(n int) int {
	return (n + wordBits - 1) / wordBits
}

// fillSet sets bits [0, n), leaving the tail of the last word clear.
func fillSet(words []uint64, n int) {
	for i := range words {
		words[i] = ^uint64(0)
	}
	if rem := n % wordBits; rem != 0 {
		words[len(words)-1] = (uint64(1) << rem) - 1
	}
}

// Len returns the number of bits in the view.
func (b Bitmap) Len() int { return b.length }

// Offset returns the view's first bit within the shared words.
func (b Bitmap) Offset() int { return b.offset }

// Get reports whether bit i of the view is set.
func (b Bitmap) Get(i int) bool {
	invariant.Checkf(i >= 0 && i < b.length, "bitmap: index %d out of range [0, %d)", i, b.length)
	return b.bits.Test(uint(b.offset + i))
}

// SetCount returns the number of set bits in the view.
func (b Bitmap) SetCount() int {
	if b.length == 0 {
		return 0
	}
	hi := int(b.bits.Rank(uint(b.offset + b.length - 1)))
	if b.offset == 0 {
		return hi
	}
	return hi - int(b.bits.Rank(uint(b.offset-1)))
}

// NullCount returns the number of unset bits in the view.
func (b Bitmap) NullCount() int {
	return b.length - b.SetCount()
}

// Nulls returns the view-relative positions of the unset bits.
func (b Bitmap) Nulls() (*roaring.Bitmap, error) {
	if _, err := conv.IntToUint32(b.length); err != nil {
		return nil, err
	}

	rb := roaring.New()
	for i := 0; i < b.length; i++ {
		if !b.bits.Test(uint(b.offset + i)) {
			rb.Add(uint32(i))
		}
	}
	return rb, nil
}

// Sliced narrows the view to [offset, offset+length) without copying.
// The receiver's reference moves to the result.
func (b Bitmap) Sliced(offset, length int) Bitmap {
	invariant.Checkf(offset >= 0 && length >= 0 && offset+length <= b.length,
		"bitmap: slice [%d, %d) out of range [0, %d)", offset, offset+length, b.length)
	b.offset += offset
	b.length = length
	return b
}

// Clone returns the same view holding an additional reference to the words.
func (b Bitmap) Clone() Bitmap {
	b.words = b.words.Clone()
	return b
}

// Release drops the view's reference to the words.
func (b Bitmap) Release() {
	b.words.Release()
}

// RefCount returns the number of live references to the shared words.
func (b Bitmap) RefCount() int64 {
	return b.words.RefCount()
}

// Iter returns an iterator over the view's bits.
func (b Bitmap) Iter() *BitIter {
	return &BitIter{bits: b.bits, pos: b.offset, end: b.offset + b.length}
}

// BitIter yields the bits of a bitmap view in order.
type BitIter struct {
	bits     *bitset.BitSet
	pos, end int
}

// Next returns the next bit, or false once the view is exhausted.
func (it *BitIter) Next() (bool, bool) {
	if it.pos >= it.end {
		return false, false
	}
	set := it.bits.Test(uint(it.pos))
	it.pos++
	return set, true
}

// Len returns the number of bits not yet returned.
func (it *BitIter) Len() int { return it.end - it.pos }

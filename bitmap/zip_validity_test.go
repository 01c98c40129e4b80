package bitmap

import (
	"testing"

	"github.com/hupe1980/colpar/buffer"
	"github.com/hupe1980/colpar/invariant"
	"github.com/hupe1980/colpar/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// lyingIter reports len but yields n items.
type lyingIter struct {
	n, len int
}

func (l *lyingIter) Next() (bool, bool) {
	if l.n == 0 {
		return false, false
	}
	l.n--
	l.len--
	return true, true
}

func (l *lyingIter) Len() int { return l.len }

func drain[T any](z *ZipValidity[T]) []types.Option[T] {
	var out []types.Option[T]
	for v := range z.Seq() {
		out = append(out, v)
	}
	return out
}

func requireViolation(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected invariant violation")
		err, ok := r.(error)
		require.True(t, ok)
		assert.True(t, invariant.IsViolation(err))
	}()
	fn()
}

func TestZipValidity(t *testing.T) {
	values := buffer.FromSlice([]int32{1, 2, 3})

	t.Run("with validity", func(t *testing.T) {
		z := NewZipValidity[int32](values.Iter(), FromBools([]bool{true, false, true}).Iter())
		assert.Equal(t, 3, z.Len())
		assert.Equal(t, []types.Option[int32]{types.Some[int32](1), types.None[int32](), types.Some[int32](3)}, drain(z))
	})

	t.Run("without validity", func(t *testing.T) {
		z := NewZipValidity[int32](values.Iter(), nil)
		assert.Equal(t, []types.Option[int32]{types.Some[int32](1), types.Some[int32](2), types.Some[int32](3)}, drain(z))
	})

	t.Run("all null", func(t *testing.T) {
		z := NewZipValidity[int32](values.Iter(), AllUnset(3).Iter())
		assert.Equal(t, []types.Option[int32]{types.None[int32](), types.None[int32](), types.None[int32]()}, drain(z))
	})

	t.Run("empty", func(t *testing.T) {
		z := NewZipValidity[int32](values.Sliced(0, 0).Iter(), AllSet(0).Iter())
		assert.Empty(t, drain(z))
	})

	t.Run("sliced views", func(t *testing.T) {
		vals := buffer.FromSlice([]int32{1, 2, 3}).Sliced(1, 2)
		valid := FromBools([]bool{true, false, true}).Sliced(1, 2)
		z := NewZipValidity[int32](vals.Iter(), valid.Iter())
		assert.Equal(t, []types.Option[int32]{types.None[int32](), types.Some[int32](3)}, drain(z))
	})
}

func TestZipValidity_LengthMismatch(t *testing.T) {
	values := buffer.FromSlice([]int64{1, 2, 3})

	t.Run("declared", func(t *testing.T) {
		requireViolation(t, func() {
			NewZipValidity[int64](values.Iter(), AllSet(2).Iter())
		})
	})

	t.Run("presence ends early", func(t *testing.T) {
		z := NewZipValidity[int64](values.Iter(), &lyingIter{n: 2, len: 3})
		requireViolation(t, func() { drain(z) })
	})

	t.Run("values end early", func(t *testing.T) {
		z := NewZipValidity[int64](values.Sliced(0, 2).Iter(), &lyingIter{n: 3, len: 2})
		requireViolation(t, func() { drain(z) })
	})
}

func TestZipValidity_OnDone(t *testing.T) {
	t.Run("runs once when exhausted", func(t *testing.T) {
		calls := 0
		z := NewZipValidity[uint8](buffer.FromSlice([]uint8{1}).Iter(), nil).OnDone(func() { calls++ })

		_, ok := z.Next()
		assert.True(t, ok)
		assert.Equal(t, 0, calls)

		_, ok = z.Next()
		assert.False(t, ok)
		_, ok = z.Next()
		assert.False(t, ok)
		z.Close()
		assert.Equal(t, 1, calls)
	})

	t.Run("early break closes", func(t *testing.T) {
		calls := 0
		z := NewZipValidity[uint8](buffer.FromSlice([]uint8{1, 2, 3}).Iter(), nil).OnDone(func() { calls++ })
		for range z.Seq() {
			break
		}
		assert.Equal(t, 1, calls)
	})
}

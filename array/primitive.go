package array

import (
	"iter"
	"slices"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/colpar/bitmap"
	"github.com/hupe1980/colpar/buffer"
	"github.com/hupe1980/colpar/invariant"
	"github.com/hupe1980/colpar/types"
)

// Primitive is an immutable nullable array of T.
//
// A nil validity means every value is present.
type Primitive[T types.Native] struct {
	values   buffer.Buffer[T]
	validity *bitmap.Bitmap
}

// New creates an array from a value buffer and an optional validity bitmap.
// Both references move into the array.
func New[T types.Native](values buffer.Buffer[T], validity *bitmap.Bitmap) (Primitive[T], error) {
	if validity != nil && validity.Len() != values.Len() {
		return Primitive[T]{}, &ErrValidityLength{Values: values.Len(), Validity: validity.Len()}
	}
	return Primitive[T]{values: values, validity: validity}, nil
}

// FromSlice copies values into an array without a validity bitmap.
func FromSlice[T types.Native](values []T) Primitive[T] {
	return Primitive[T]{values: buffer.FromSlice(values)}
}

// FromOptions builds an array from optional values. A validity bitmap is
// only allocated if at least one item is None.
func FromOptions[T types.Native](items []types.Option[T]) Primitive[T] {
	values, _ := buffer.Build(len(items), func(dst []T) {
		for i, o := range items {
			dst[i] = o.ValueOr(0)
		}
	})

	if !slices.ContainsFunc(items, types.Option[T].IsNone) {
		return Primitive[T]{values: values}
	}

	validity, _ := bitmap.New(len(items), func(i int) bool { return items[i].IsSome() })
	return Primitive[T]{values: values, validity: &validity}
}

// FromValuesAndNulls copies values into an array whose positions in nulls
// are null.
func FromValuesAndNulls[T types.Native](values []T, nulls *roaring.Bitmap) (Primitive[T], error) {
	if nulls == nil || nulls.IsEmpty() {
		return FromSlice(values), nil
	}

	validity, err := bitmap.FromNulls(len(values), nulls)
	if err != nil {
		return Primitive[T]{}, err
	}
	return Primitive[T]{values: buffer.FromSlice(values), validity: &validity}, nil
}

// Nulls returns an array of n nulls.
func Nulls[T types.Native](n int) Primitive[T] {
	values, _ := buffer.Build[T](n, nil)
	validity := bitmap.AllUnset(n)
	return Primitive[T]{values: values, validity: &validity}
}

// Len returns the number of elements.
func (a Primitive[T]) Len() int { return a.values.Len() }

// NullCount returns the number of null elements.
func (a Primitive[T]) NullCount() int {
	if a.validity == nil {
		return 0
	}
	return a.validity.NullCount()
}

// IsValid reports whether element i is present.
func (a Primitive[T]) IsValid(i int) bool {
	invariant.Checkf(i >= 0 && i < a.Len(), "array: index %d out of range [0, %d)", i, a.Len())
	return a.validity == nil || a.validity.Get(i)
}

// Value returns the raw value of element i, regardless of validity.
func (a Primitive[T]) Value(i int) T {
	return a.values.At(i)
}

// Get returns element i.
func (a Primitive[T]) Get(i int) types.Option[T] {
	if !a.IsValid(i) {
		return types.None[T]()
	}
	return types.Some(a.values.At(i))
}

// Values returns the raw values of the array. The slice must not be modified.
func (a Primitive[T]) Values() []T { return a.values.Values() }

// Validity returns the validity bitmap, if any.
//
// The bitmap is borrowed from the array: it holds no reference of its own
// and must not be released. Call Clone on it to keep it beyond the array.
func (a Primitive[T]) Validity() (bitmap.Bitmap, bool) {
	if a.validity == nil {
		return bitmap.Bitmap{}, false
	}
	return *a.validity, true
}

// Sliced narrows the array to [offset, offset+length) without copying.
// The receiver's references move to the result.
func (a Primitive[T]) Sliced(offset, length int) Primitive[T] {
	out := Primitive[T]{values: a.values.Sliced(offset, length)}
	if a.validity != nil {
		v := a.validity.Sliced(offset, length)
		out.validity = &v
	}
	return out
}

// Slice returns a new reference to [offset, offset+length), leaving the
// receiver usable.
func (a Primitive[T]) Slice(offset, length int) Primitive[T] {
	return a.Clone().Sliced(offset, length)
}

// Clone returns the same array holding additional references to its storage.
func (a Primitive[T]) Clone() Primitive[T] {
	out := Primitive[T]{values: a.values.Clone()}
	if a.validity != nil {
		v := a.validity.Clone()
		out.validity = &v
	}
	return out
}

// Release drops the array's references to its storage.
func (a Primitive[T]) Release() {
	a.values.Release()
	if a.validity != nil {
		a.validity.Release()
	}
}

// IntoIter consumes the array and returns its elements in order. The
// array's references are released when the iterator is exhausted or closed.
func (a Primitive[T]) IntoIter() *bitmap.ZipValidity[T] {
	if a.validity != nil && a.validity.Len() != a.values.Len() {
		a.Release()
		a.checkValidity()
	}

	var validity bitmap.PresenceIter
	if a.validity != nil {
		validity = a.validity.Iter()
	}
	return bitmap.NewZipValidity[T](a.values.Iter(), validity).OnDone(a.Release)
}

// All returns the elements in order without consuming the array.
func (a Primitive[T]) All() iter.Seq[types.Option[T]] {
	return func(yield func(types.Option[T]) bool) {
		for i, v := range a.values.Values() {
			o := types.Some(v)
			if a.validity != nil && !a.validity.Get(i) {
				o = types.None[T]()
			}
			if !yield(o) {
				return
			}
		}
	}
}

// ToSlice returns the elements in order without consuming the array.
func (a Primitive[T]) ToSlice() []types.Option[T] {
	out := make([]types.Option[T], 0, a.Len())
	for o := range a.All() {
		out = append(out, o)
	}
	return out
}

// checkValidity panics if the validity bitmap does not cover the values.
func (a Primitive[T]) checkValidity() {
	if a.validity != nil && a.validity.Len() != a.values.Len() {
		invariant.Failf("array: %d values but %d validity bits", a.values.Len(), a.validity.Len())
	}
}

// ParIter consumes the array and returns its parallel iterator.
func (a Primitive[T]) ParIter() *ParIter[T] {
	return NewParIter(a)
}

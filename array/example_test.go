package array_test

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/colpar/array"
	"github.com/hupe1980/colpar/par"
	"github.com/hupe1980/colpar/types"
)

// ExamplePrimitive_ParIter collects a nullable array in parallel.
func ExamplePrimitive_ParIter() {
	a := array.FromOptions([]types.Option[int32]{types.Some[int32](1), types.None[int32](), types.Some[int32](3)})

	// Leaves of at least one element, at most four goroutines
	out := a.ParIter().
		WithMinLen(1).
		WithJoiner(par.NewPool(par.WithWorkers(4))).
		Collect()

	fmt.Println(out)
	// Output: [Some(1) None Some(3)]
}

// ExampleFromValuesAndNulls builds an array from dense values and the set
// of null positions.
func ExampleFromValuesAndNulls() {
	a, err := array.FromValuesAndNulls([]float64{0.5, 1.5, 2.5, 3.5}, roaring.BitmapOf(0, 2))
	if err != nil {
		panic(err)
	}
	defer a.Release()

	fmt.Println(a.NullCount(), a.ToSlice())
	// Output: 2 [None Some(1.5) None Some(3.5)]
}

// ExampleParIter_ForEach sums the present values of an array.
func ExampleParIter_ForEach() {
	a := array.FromSlice([]int64{1, 2, 3, 4, 5, 6, 7, 8})

	var sum int64
	a.ParIter().WithJoiner(par.Serial).ForEach(func(o types.Option[int64]) {
		sum += o.ValueOr(0)
	})

	fmt.Println(sum)
	// Output: 36
}

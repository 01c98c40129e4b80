package par

// ForEach calls op for every item of src. Calls run concurrently on
// different leaves; within a leaf they run in index order.
func ForEach[T any](src IndexedParallelIterator[T], op func(T), optFns ...Option) {
	DriveUnindexed[T, struct{}](src, forEachConsumer[T]{op: op}, optFns...)
}

var noopReducer = ReducerFunc[struct{}](func(struct{}, struct{}) struct{} { return struct{}{} })

type forEachConsumer[T any] struct {
	op func(T)
}

func (c forEachConsumer[T]) SplitAt(int) (Consumer[T, struct{}], Consumer[T, struct{}], Reducer[struct{}]) {
	return c, c, noopReducer
}

func (c forEachConsumer[T]) SplitOff() UnindexedConsumer[T, struct{}] { return c }

func (c forEachConsumer[T]) ToReducer() Reducer[struct{}] { return noopReducer }

func (c forEachConsumer[T]) IntoFolder() Folder[T, struct{}] { return c }

func (c forEachConsumer[T]) Full() bool { return false }

func (c forEachConsumer[T]) Consume(item T) { c.op(item) }

func (c forEachConsumer[T]) Complete() struct{} { return struct{}{} }

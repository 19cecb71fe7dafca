package itertools

import "context"

// FilterFalseIter yields the values its predicate rejects.
type FilterFalseIter[T any] struct {
	pred   Predicate[T]
	source Iterator[T]
	done   bool
}

// FilterFalse yields the values of src for which pred is false. A nil
// pred selects the values that are not Truthy.
func FilterFalse[T any](pred Predicate[T], src Iterator[T]) *FilterFalseIter[T] {
	return &FilterFalseIter[T]{pred: pred, source: src}
}

func (it *FilterFalseIter[T]) Next(ctx context.Context) (T, bool, error) {
	var zero T
	if it.done {
		return zero, false, nil
	}
	for {
		val, ok, err := it.source.Next(ctx)
		if err != nil {
			return zero, false, err
		}
		if !ok {
			it.done = true
			return zero, false, nil
		}
		if it.pred == nil {
			if !Truthy(val) {
				return val, true, nil
			}
			continue
		}
		keep, err := it.pred(val)
		if err != nil {
			return zero, false, err
		}
		if !keep {
			return val, true, nil
		}
	}
}

func (it *FilterFalseIter[T]) Close() error { return it.source.Close() }

func (it *FilterFalseIter[T]) Snapshot() *Snapshot {
	return &Snapshot{Kind: KindFilterFalse, Args: []any{it.pred, it.source}}
}

func (it *FilterFalseIter[T]) Restore(state any) error {
	return restoreNil(KindFilterFalse, state)
}

type takeWhileIter[T any] struct {
	pred   Predicate[T]
	source Iterator[T]
	done   bool
}

// TakeWhile yields values from src while pred holds. The first failing
// value is consumed and ends the iteration for good.
func TakeWhile[T any](pred Predicate[T], src Iterator[T]) Iterator[T] {
	mustCallable(pred != nil, "TakeWhile")
	return &takeWhileIter[T]{pred: pred, source: src}
}

func (it *takeWhileIter[T]) Next(ctx context.Context) (T, bool, error) {
	var zero T
	if it.done {
		return zero, false, nil
	}
	val, ok, err := it.source.Next(ctx)
	if err != nil {
		return zero, false, err
	}
	if !ok {
		it.done = true
		return zero, false, nil
	}
	keep, err := it.pred(val)
	if err != nil {
		return zero, false, err
	}
	if !keep {
		it.done = true
		return zero, false, nil
	}
	return val, true, nil
}

func (it *takeWhileIter[T]) Close() error { return it.source.Close() }

type dropWhileIter[T any] struct {
	pred     Predicate[T]
	source   Iterator[T]
	dropping bool
	done     bool
}

// DropWhile skips values from src while pred holds, then yields the first
// failing value and everything after it.
func DropWhile[T any](pred Predicate[T], src Iterator[T]) Iterator[T] {
	mustCallable(pred != nil, "DropWhile")
	return &dropWhileIter[T]{pred: pred, source: src, dropping: true}
}

func (it *dropWhileIter[T]) Next(ctx context.Context) (T, bool, error) {
	var zero T
	if it.done {
		return zero, false, nil
	}
	for {
		val, ok, err := it.source.Next(ctx)
		if err != nil {
			return zero, false, err
		}
		if !ok {
			it.done = true
			return zero, false, nil
		}
		if !it.dropping {
			return val, true, nil
		}
		drop, err := it.pred(val)
		if err != nil {
			return zero, false, err
		}
		if !drop {
			it.dropping = false
			return val, true, nil
		}
	}
}

func (it *dropWhileIter[T]) Close() error { return it.source.Close() }

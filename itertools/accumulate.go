package itertools

import "context"

// AccumulateState is the Restore state of an accumulator.
type AccumulateState[T any] struct {
	Total    T
	HasTotal bool
}

// AccumulateIter yields running totals.
type AccumulateIter[T any] struct {
	source     Iterator[T]
	fn         Combine[T]
	total      T
	hasTotal   bool
	initial    T
	hasInitial bool
	done       bool
}

// Accumulate yields the first value of src, then fn(total, v) for each
// later value.
func Accumulate[T any](src Iterator[T], fn Combine[T]) *AccumulateIter[T] {
	mustCallable(fn != nil, "Accumulate")
	return &AccumulateIter[T]{source: src, fn: fn}
}

// AccumulateInitial is Accumulate seeded with initial, which is yielded
// first.
func AccumulateInitial[T any](src Iterator[T], fn Combine[T], initial T) *AccumulateIter[T] {
	it := Accumulate(src, fn)
	it.initial, it.hasInitial = initial, true
	return it
}

// AccumulateSum yields running sums.
func AccumulateSum[T Addable](src Iterator[T]) *AccumulateIter[T] {
	return Accumulate(src, Add[T])
}

func (it *AccumulateIter[T]) Next(ctx context.Context) (T, bool, error) {
	var zero T
	if it.hasInitial {
		it.total, it.hasTotal = it.initial, true
		it.initial, it.hasInitial = zero, false
		return it.total, true, nil
	}
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
	if !it.hasTotal {
		it.total, it.hasTotal = val, true
		return val, true, nil
	}
	total, err := it.fn(it.total, val)
	if err != nil {
		return zero, false, err
	}
	it.total = total
	return total, true, nil
}

func (it *AccumulateIter[T]) Close() error { return it.source.Close() }

// Snapshot folds a pending initial value back into the source; otherwise
// State carries the running total.
func (it *AccumulateIter[T]) Snapshot() *Snapshot {
	if it.hasInitial {
		src := Chain(FromSlice([]T{it.initial}), it.source)
		return &Snapshot{Kind: KindAccumulate, Args: []any{src, it.fn}}
	}
	return &Snapshot{
		Kind:  KindAccumulate,
		Args:  []any{it.source, it.fn},
		State: AccumulateState[T]{Total: it.total, HasTotal: it.hasTotal},
	}
}

// Restore sets the running total.
func (it *AccumulateIter[T]) Restore(state any) error {
	if state == nil {
		return nil
	}
	s, err := asState[AccumulateState[T]](KindAccumulate, state)
	if err != nil {
		return err
	}
	it.total, it.hasTotal = s.Total, s.HasTotal
	return nil
}

package itertools

import "context"

// StarmapIter applies fn to each argument slice from its source.
type StarmapIter[A, R any] struct {
	fn     func(args ...A) (R, error)
	source Iterator[[]A]
	done   bool
}

// Starmap yields fn(args...) for every args produced by src.
func Starmap[A, R any](fn func(args ...A) (R, error), src Iterator[[]A]) *StarmapIter[A, R] {
	mustCallable(fn != nil, "Starmap")
	return &StarmapIter[A, R]{fn: fn, source: src}
}

func (it *StarmapIter[A, R]) Next(ctx context.Context) (R, bool, error) {
	var zero R
	if it.done {
		return zero, false, nil
	}
	args, ok, err := it.source.Next(ctx)
	if err != nil {
		return zero, false, err
	}
	if !ok {
		it.done = true
		return zero, false, nil
	}
	out, err := it.fn(args...)
	if err != nil {
		return zero, false, err
	}
	return out, true, nil
}

func (it *StarmapIter[A, R]) Close() error { return it.source.Close() }

func (it *StarmapIter[A, R]) Snapshot() *Snapshot {
	return &Snapshot{Kind: KindStarmap, Args: []any{it.fn, it.source}}
}

func (it *StarmapIter[A, R]) Restore(state any) error {
	return restoreNil(KindStarmap, state)
}

package itertools

import "context"

// RepeatIter yields one value a fixed or unbounded number of times.
type RepeatIter[T any] struct {
	elem T
	cnt  int // -1 means unbounded
}

// Repeat yields v forever.
func Repeat[T any](v T) *RepeatIter[T] {
	return &RepeatIter[T]{elem: v, cnt: -1}
}

// RepeatN yields v times times. Negative counts yield nothing.
func RepeatN[T any](v T, times int) *RepeatIter[T] {
	return &RepeatIter[T]{elem: v, cnt: max(times, 0)}
}

func (it *RepeatIter[T]) Next(_ context.Context) (T, bool, error) {
	if it.cnt == 0 {
		var zero T
		return zero, false, nil
	}
	if it.cnt > 0 {
		it.cnt--
	}
	return it.elem, true, nil
}

func (it *RepeatIter[T]) Close() error { return nil }

// LengthHint returns the remaining count; false when unbounded.
func (it *RepeatIter[T]) LengthHint() (int, bool) {
	if it.cnt < 0 {
		return 0, false
	}
	return it.cnt, true
}

// Snapshot records the value and the remaining count.
func (it *RepeatIter[T]) Snapshot() *Snapshot {
	if it.cnt >= 0 {
		return &Snapshot{Kind: KindRepeat, Args: []any{it.elem, it.cnt}}
	}
	return &Snapshot{Kind: KindRepeat, Args: []any{it.elem}}
}

func (it *RepeatIter[T]) Restore(state any) error {
	return restoreNil(KindRepeat, state)
}

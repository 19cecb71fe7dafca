package itertools

import (
	"context"

	"golang.org/x/exp/constraints"
)

// Number is the set of types Count can step through.
type Number interface {
	constraints.Integer | constraints.Float
}

// CountIter yields an unbounded arithmetic progression.
type CountIter[T Number] struct {
	cur  T
	step T
}

// Count yields start, start+step, start+2*step, ...
func Count[T Number](start, step T) *CountIter[T] {
	return &CountIter[T]{cur: start, step: step}
}

func (it *CountIter[T]) Next(_ context.Context) (T, bool, error) {
	v := it.cur
	it.cur += it.step
	return v, true, nil
}

func (it *CountIter[T]) Close() error { return nil }

// Snapshot records the next value and the step.
func (it *CountIter[T]) Snapshot() *Snapshot {
	return &Snapshot{Kind: KindCount, Args: []any{it.cur, it.step}}
}

func (it *CountIter[T]) Restore(state any) error {
	return restoreNil(KindCount, state)
}

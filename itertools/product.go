package itertools

import (
	"context"

	"github.com/samber/lo"

	"github.com/kbukum/iterkit/validation"
)

// ProductState is the Restore state of a product iterator.
type ProductState struct {
	Indices []int
	Started bool
	Done    bool
}

// ProductIter yields the cartesian product of its gears.
type ProductIter[T any] struct {
	gears   [][]T
	indices []int
	started bool
	done    bool
}

// Product yields every row taking one value from each input, with the
// inputs repeated repeat times. The rightmost position advances fastest.
// All inputs are drained and closed first.
func Product[T any](ctx context.Context, repeat int, srcs ...Iterator[T]) (*ProductIter[T], error) {
	if err := validation.NonNegative("repeat", repeat); err != nil {
		_ = closeAll(srcs...)
		return nil, err
	}
	pools := make([][]T, len(srcs))
	for i, src := range srcs {
		pool, err := Collect(ctx, src)
		if err != nil {
			_ = closeAll(srcs[i+1:]...)
			return nil, err
		}
		pools[i] = pool
	}
	gears := make([][]T, 0, len(pools)*repeat)
	for range repeat {
		gears = append(gears, pools...)
	}
	return newProduct(gears), nil
}

func newProduct[T any](gears [][]T) *ProductIter[T] {
	return &ProductIter[T]{
		gears:   gears,
		indices: make([]int, len(gears)),
		done:    lo.ContainsBy(gears, func(g []T) bool { return len(g) == 0 }),
	}
}

func (it *ProductIter[T]) Next(_ context.Context) ([]T, bool, error) {
	if it.done {
		return nil, false, nil
	}
	if !it.started {
		it.started = true
		return it.emit(), true, nil
	}
	for x := len(it.gears) - 1; x >= 0; x-- {
		it.indices[x]++
		if it.indices[x] < len(it.gears[x]) {
			return it.emit(), true, nil
		}
		it.indices[x] = 0
	}
	it.done = true
	return nil, false, nil
}

func (it *ProductIter[T]) emit() []T {
	return lo.Map(it.indices, func(idx int, x int) T { return it.gears[x][idx] })
}

func (it *ProductIter[T]) Close() error { return nil }

// Snapshot passes each gear as its own source with repeat 1.
func (it *ProductIter[T]) Snapshot() *Snapshot {
	args := make([]any, 0, len(it.gears)+1)
	args = append(args, 1)
	for _, g := range it.gears {
		args = append(args, FromSlice(append([]T(nil), g...)))
	}
	return &Snapshot{
		Kind: KindProduct,
		Args: args,
		State: ProductState{
			Indices: append([]int(nil), it.indices...),
			Started: it.started,
			Done:    it.done,
		},
	}
}

// Restore resumes from a ProductState. The index vector must have one
// entry per gear; values are clamped to each gear.
func (it *ProductIter[T]) Restore(state any) error {
	s, err := asState[ProductState](KindProduct, state)
	if err != nil {
		return err
	}
	if len(s.Indices) != len(it.gears) {
		return reject(KindProduct, errInvalidState(KindProduct, "index vector length mismatch"))
	}
	if s.Done {
		it.done = true
		return nil
	}
	if lo.ContainsBy(it.gears, func(g []T) bool { return len(g) == 0 }) {
		it.done = true
		return nil
	}
	for i, g := range it.gears {
		it.indices[i] = clamp(s.Indices[i], 0, len(g)-1)
	}
	it.started = s.Started
	it.done = false
	return nil
}

package itertools

import (
	"context"

	"github.com/samber/lo"

	"github.com/kbukum/iterkit/validation"
)

// CombinationsState is the Restore state of both combinations iterators.
type CombinationsState struct {
	Indices []int
	Started bool
	Done    bool
}

// CombinationsIter yields r-length selections of a pool in lexicographic
// order of positions.
type CombinationsIter[T any] struct {
	kind        Kind
	pool        []T
	r           int
	indices     []int
	replacement bool
	started     bool
	done        bool
}

// Combinations yields every r-length subsequence of the values of src.
// src is drained and closed first.
func Combinations[T any](ctx context.Context, src Iterator[T], r int) (*CombinationsIter[T], error) {
	if err := validation.NonNegative("r", r); err != nil {
		_ = src.Close()
		return nil, err
	}
	pool, err := Collect(ctx, src)
	if err != nil {
		return nil, err
	}
	return &CombinationsIter[T]{
		kind:    KindCombinations,
		pool:    pool,
		r:       r,
		indices: lo.Range(r),
		done:    r > len(pool),
	}, nil
}

// CombinationsWithReplacement is Combinations where a value may be
// selected more than once.
func CombinationsWithReplacement[T any](ctx context.Context, src Iterator[T], r int) (*CombinationsIter[T], error) {
	if err := validation.NonNegative("r", r); err != nil {
		_ = src.Close()
		return nil, err
	}
	pool, err := Collect(ctx, src)
	if err != nil {
		return nil, err
	}
	return &CombinationsIter[T]{
		kind:        KindCombinationsWithReplacement,
		pool:        pool,
		r:           r,
		indices:     make([]int, r),
		replacement: true,
		done:        len(pool) == 0 && r > 0,
	}, nil
}

// maximum is the largest index position i may hold.
func (it *CombinationsIter[T]) maximum(i int) int {
	if it.replacement {
		return len(it.pool) - 1
	}
	return i + len(it.pool) - it.r
}

func (it *CombinationsIter[T]) Next(_ context.Context) ([]T, bool, error) {
	if it.done {
		return nil, false, nil
	}
	if !it.started {
		it.started = true
		return it.emit(), true, nil
	}
	i := it.r - 1
	for i >= 0 && it.indices[i] == it.maximum(i) {
		i--
	}
	if i < 0 {
		it.done = true
		return nil, false, nil
	}
	it.indices[i]++
	for j := i + 1; j < it.r; j++ {
		if it.replacement {
			it.indices[j] = it.indices[j-1]
		} else {
			it.indices[j] = it.indices[j-1] + 1
		}
	}
	return it.emit(), true, nil
}

func (it *CombinationsIter[T]) emit() []T {
	return lo.Map(it.indices, func(idx int, _ int) T { return it.pool[idx] })
}

func (it *CombinationsIter[T]) Close() error { return nil }

func (it *CombinationsIter[T]) Snapshot() *Snapshot {
	return &Snapshot{
		Kind: it.kind,
		Args: []any{FromSlice(append([]T(nil), it.pool...)), it.r},
		State: CombinationsState{
			Indices: append([]int(nil), it.indices...),
			Started: it.started,
			Done:    it.done,
		},
	}
}

// Restore resumes from a CombinationsState. The index vector must have
// length r; values are clamped to each position's range.
func (it *CombinationsIter[T]) Restore(state any) error {
	s, err := asState[CombinationsState](it.kind, state)
	if err != nil {
		return err
	}
	if len(s.Indices) != it.r {
		return reject(it.kind, errInvalidState(it.kind, "index vector length mismatch"))
	}
	if s.Done {
		it.done = true
		return nil
	}
	n := len(it.pool)
	if it.r > 0 && (n == 0 || (!it.replacement && it.r > n)) {
		return reject(it.kind, errInvalidState(it.kind, "pool too small to resume"))
	}
	for i := range it.r {
		it.indices[i] = clamp(s.Indices[i], 0, it.maximum(i))
	}
	it.started = s.Started
	it.done = false
	return nil
}

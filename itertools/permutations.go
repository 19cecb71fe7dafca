package itertools

import (
	"context"

	"github.com/samber/lo"

	"github.com/kbukum/iterkit/validation"
)

// PermutationsState is the Restore state of a permutations iterator.
type PermutationsState struct {
	Indices []int
	Cycles  []int
	Started bool
	Done    bool
}

// PermutationsIter yields r-length orderings of a pool.
type PermutationsIter[T any] struct {
	pool    []T
	r       int
	indices []int
	cycles  []int
	started bool
	done    bool
}

// Permutations yields every r-length ordering of the values of src, in
// lexicographic order of positions. src is drained and closed first.
func Permutations[T any](ctx context.Context, src Iterator[T], r int) (*PermutationsIter[T], error) {
	if err := validation.NonNegative("r", r); err != nil {
		_ = src.Close()
		return nil, err
	}
	pool, err := Collect(ctx, src)
	if err != nil {
		return nil, err
	}
	return newPermutations(pool, r), nil
}

// AllPermutations yields every full-length ordering of the values of src.
func AllPermutations[T any](ctx context.Context, src Iterator[T]) (*PermutationsIter[T], error) {
	pool, err := Collect(ctx, src)
	if err != nil {
		return nil, err
	}
	return newPermutations(pool, len(pool)), nil
}

func newPermutations[T any](pool []T, r int) *PermutationsIter[T] {
	n := len(pool)
	it := &PermutationsIter[T]{pool: pool, r: r}
	if r > n {
		it.done = true
		return it
	}
	it.indices = lo.Range(n)
	it.cycles = lo.Times(r, func(i int) int { return n - i })
	return it
}

func (it *PermutationsIter[T]) Next(_ context.Context) ([]T, bool, error) {
	if it.done {
		return nil, false, nil
	}
	if !it.started {
		it.started = true
		return it.emit(), true, nil
	}
	n := len(it.pool)
	for i := it.r - 1; i >= 0; i-- {
		it.cycles[i]--
		if it.cycles[i] == 0 {
			first := it.indices[i]
			copy(it.indices[i:], it.indices[i+1:])
			it.indices[n-1] = first
			it.cycles[i] = n - i
			continue
		}
		j := it.cycles[i]
		it.indices[i], it.indices[n-j] = it.indices[n-j], it.indices[i]
		return it.emit(), true, nil
	}
	it.done = true
	return nil, false, nil
}

func (it *PermutationsIter[T]) emit() []T {
	return lo.Map(it.indices[:it.r], func(idx int, _ int) T { return it.pool[idx] })
}

func (it *PermutationsIter[T]) Close() error { return nil }

func (it *PermutationsIter[T]) Snapshot() *Snapshot {
	return &Snapshot{
		Kind: KindPermutations,
		Args: []any{FromSlice(append([]T(nil), it.pool...)), it.r},
		State: PermutationsState{
			Indices: append([]int(nil), it.indices...),
			Cycles:  append([]int(nil), it.cycles...),
			Started: it.started,
			Done:    it.done,
		},
	}
}

// Restore resumes from a PermutationsState. Index vectors must match the
// pool size and r, even for a finished state; their values are clamped
// into range.
func (it *PermutationsIter[T]) Restore(state any) error {
	s, err := asState[PermutationsState](KindPermutations, state)
	if err != nil {
		return err
	}
	// Vectors are empty when r exceeds the pool.
	if len(s.Indices) != len(it.indices) || len(s.Cycles) != len(it.cycles) {
		return reject(KindPermutations, errInvalidState(KindPermutations, "index vector length mismatch"))
	}
	if s.Done {
		it.done = true
		return nil
	}
	n := len(it.pool)
	if it.r > n {
		return reject(KindPermutations, errInvalidState(KindPermutations, "r exceeds pool size"))
	}
	for i := range n {
		it.indices[i] = clamp(s.Indices[i], 0, n-1)
	}
	for i := range it.r {
		it.cycles[i] = clamp(s.Cycles[i], 1, n-i)
	}
	it.started = s.Started
	it.done = false
	return nil
}

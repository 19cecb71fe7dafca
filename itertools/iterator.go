package itertools

import (
	"context"
	"iter"
)

// Iterator provides pull-based sequential access to a stream of values.
type Iterator[T any] interface {
	// Next returns the next value. Returns (zero, false, nil) when exhausted.
	Next(ctx context.Context) (T, bool, error)
	// Close releases any resources held by the iterator.
	Close() error
}

// LengthHinter is implemented by iterators that know how many values remain.
type LengthHinter interface {
	// LengthHint returns the remaining count, or false when unsized.
	LengthHint() (int, bool)
}

// Cloner is implemented by iterators that can be duplicated cheaply.
// Tee uses it instead of buffering.
type Cloner[T any] interface {
	Iterator[T]
	Clone() Iterator[T]
}

// --- Sources ---

// FromSlice returns an iterator over items. The slice is not copied.
func FromSlice[T any](items []T) Iterator[T] {
	return &sliceIter[T]{items: items}
}

// FromFunc adapts a next function into an Iterator. Close is a no-op.
func FromFunc[T any](next func(ctx context.Context) (T, bool, error)) Iterator[T] {
	if next == nil {
		panic("itertools: FromFunc requires a non-nil function")
	}
	return &funcIter[T]{next: next}
}

// Empty returns an iterator that is exhausted from the start.
func Empty[T any]() Iterator[T] {
	return &sliceIter[T]{}
}

// --- Terminals ---

// All adapts it to a range-over-func sequence. The same instance is
// advanced, so ranging twice continues where the first loop stopped.
// Iteration ends after the first error is yielded.
func All[T any](ctx context.Context, it Iterator[T]) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for {
			val, ok, err := it.Next(ctx)
			if err != nil {
				yield(val, err)
				return
			}
			if !ok {
				return
			}
			if !yield(val, nil) {
				return
			}
		}
	}
}

// Collect drains it into a slice and closes it.
func Collect[T any](ctx context.Context, it Iterator[T]) ([]T, error) {
	defer it.Close()
	var result []T
	for {
		val, ok, err := it.Next(ctx)
		if err != nil {
			return result, err
		}
		if !ok {
			return result, nil
		}
		result = append(result, val)
	}
}

// Take pulls at most n values from it. The iterator is left open so the
// caller can keep pulling.
func Take[T any](ctx context.Context, it Iterator[T], n int) ([]T, error) {
	result := make([]T, 0, max(n, 0))
	for len(result) < n {
		val, ok, err := it.Next(ctx)
		if err != nil {
			return result, err
		}
		if !ok {
			break
		}
		result = append(result, val)
	}
	return result, nil
}

// ForEach pulls all values and calls fn for each, then closes it.
func ForEach[T any](ctx context.Context, it Iterator[T], fn func(context.Context, T) error) error {
	defer it.Close()
	for {
		val, ok, err := it.Next(ctx)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if err := fn(ctx, val); err != nil {
			return err
		}
	}
}

// closeAll closes every non-nil iterator and returns the first error.
func closeAll[T any](iters ...Iterator[T]) error {
	var firstErr error
	for _, it := range iters {
		if it == nil {
			continue
		}
		if err := it.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// --- Internal iterators ---

type sliceIter[T any] struct {
	items []T
	index int
}

func (it *sliceIter[T]) Next(_ context.Context) (T, bool, error) {
	if it.index >= len(it.items) {
		var zero T
		return zero, false, nil
	}
	val := it.items[it.index]
	it.index++
	return val, true, nil
}

func (it *sliceIter[T]) Close() error { return nil }

func (it *sliceIter[T]) LengthHint() (int, bool) {
	return len(it.items) - it.index, true
}

// Clone returns an independent cursor over the same backing slice.
func (it *sliceIter[T]) Clone() Iterator[T] {
	return &sliceIter[T]{items: it.items, index: it.index}
}

type funcIter[T any] struct {
	next func(ctx context.Context) (T, bool, error)
	done bool
}

func (it *funcIter[T]) Next(ctx context.Context) (T, bool, error) {
	if it.done {
		var zero T
		return zero, false, nil
	}
	val, ok, err := it.next(ctx)
	if err == nil && !ok {
		it.done = true
	}
	return val, ok, err
}

func (it *funcIter[T]) Close() error { return nil }

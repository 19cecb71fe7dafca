package itertools

import "context"

// ZipLongestIter yields rows with one value per input, padding
// exhausted inputs with a fill value.
type ZipLongestIter[T any] struct {
	fill      T
	iters     []Iterator[T] // nil once exhausted
	all       []Iterator[T]
	numActive int
}

// ZipLongest yields []T rows until every input is exhausted. Zero inputs
// yield nothing. A source error ends the whole zip.
func ZipLongest[T any](fill T, srcs ...Iterator[T]) *ZipLongestIter[T] {
	iters := make([]Iterator[T], len(srcs))
	copy(iters, srcs)
	return &ZipLongestIter[T]{fill: fill, iters: iters, all: srcs, numActive: len(srcs)}
}

// Next returns the next row. A source error is returned once and leaves
// the zip exhausted; later calls do not retry the failed input.
func (it *ZipLongestIter[T]) Next(ctx context.Context) ([]T, bool, error) {
	if len(it.iters) == 0 || it.numActive == 0 {
		return nil, false, nil
	}
	row := make([]T, len(it.iters))
	for idx, src := range it.iters {
		if src == nil {
			row[idx] = it.fill
			continue
		}
		val, ok, err := src.Next(ctx)
		if err != nil {
			it.numActive = 0
			return nil, false, err
		}
		if !ok {
			it.numActive--
			if it.numActive == 0 {
				return nil, false, nil
			}
			it.iters[idx] = nil
			val = it.fill
		}
		row[idx] = val
	}
	return row, true, nil
}

func (it *ZipLongestIter[T]) Close() error { return closeAll(it.all...) }

// Snapshot passes live inputs by reference and replaces exhausted ones
// with Empty. State is the fill value.
func (it *ZipLongestIter[T]) Snapshot() *Snapshot {
	args := make([]any, len(it.iters))
	for i, src := range it.iters {
		if src == nil {
			args[i] = Empty[T]()
		} else {
			args[i] = src
		}
	}
	return &Snapshot{Kind: KindZipLongest, Args: args, State: it.fill}
}

// Restore sets the fill value.
func (it *ZipLongestIter[T]) Restore(state any) error {
	if state == nil {
		var zero T
		if any(zero) == nil {
			it.fill = zero
			return nil
		}
	}
	fill, err := asState[T](KindZipLongest, state)
	if err != nil {
		return err
	}
	it.fill = fill
	return nil
}

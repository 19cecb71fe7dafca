package itertools

import "context"

// CompressIter yields the data values whose selector is Truthy.
type CompressIter[T, S any] struct {
	data      Iterator[T]
	selectors Iterator[S]
	done      bool
}

// Compress pairs data with selectors and keeps the values whose selector
// is Truthy. It stops when either input is exhausted.
func Compress[T, S any](data Iterator[T], selectors Iterator[S]) *CompressIter[T, S] {
	return &CompressIter[T, S]{data: data, selectors: selectors}
}

func (it *CompressIter[T, S]) Next(ctx context.Context) (T, bool, error) {
	var zero T
	if it.done {
		return zero, false, nil
	}
	for {
		val, ok, err := it.data.Next(ctx)
		if err != nil {
			return zero, false, err
		}
		if !ok {
			it.done = true
			return zero, false, nil
		}
		sel, ok, err := it.selectors.Next(ctx)
		if err != nil {
			return zero, false, err
		}
		if !ok {
			it.done = true
			return zero, false, nil
		}
		if Truthy(sel) {
			return val, true, nil
		}
	}
}

func (it *CompressIter[T, S]) Close() error {
	err := it.data.Close()
	if serr := it.selectors.Close(); serr != nil && err == nil {
		err = serr
	}
	return err
}

func (it *CompressIter[T, S]) Snapshot() *Snapshot {
	return &Snapshot{Kind: KindCompress, Args: []any{it.data, it.selectors}}
}

func (it *CompressIter[T, S]) Restore(state any) error {
	return restoreNil(KindCompress, state)
}

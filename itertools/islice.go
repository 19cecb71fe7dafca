package itertools

import (
	"context"

	"github.com/kbukum/iterkit/logger"
	"github.com/kbukum/iterkit/validation"
)

// Unbounded as a stop value slices to the end of the source.
const Unbounded = -1

type sliceBounds struct {
	Start int `validate:"min=0"`
	Stop  int `validate:"min=-1"`
	Step  int `validate:"min=1"`
}

// IsliceIter yields selected positions of its source.
type IsliceIter[T any] struct {
	source Iterator[T] // nil once released
	next   int
	stop   int
	step   int
	cnt    int
}

// Islice yields the first stop values of src (all of them for Unbounded).
func Islice[T any](src Iterator[T], stop int) (*IsliceIter[T], error) {
	return IsliceRange(src, 0, stop, 1)
}

// IsliceRange yields the values of src at positions start, start+step,
// ... below stop. It requires start >= 0, stop >= Unbounded and step >= 1.
func IsliceRange[T any](src Iterator[T], start, stop, step int) (*IsliceIter[T], error) {
	if err := validation.ValidateStruct(sliceBounds{Start: start, Stop: stop, Step: step}); err != nil {
		return nil, err
	}
	return &IsliceIter[T]{source: src, next: start, stop: stop, step: step}, nil
}

func (it *IsliceIter[T]) Next(ctx context.Context) (T, bool, error) {
	var zero T
	if it.source == nil {
		return zero, false, nil
	}
	for it.cnt < it.next {
		_, ok, err := it.source.Next(ctx)
		if err != nil {
			it.release()
			return zero, false, err
		}
		if !ok {
			it.release()
			return zero, false, nil
		}
		it.cnt++
	}
	if it.stop != Unbounded && it.cnt >= it.stop {
		it.release()
		return zero, false, nil
	}
	val, ok, err := it.source.Next(ctx)
	if err != nil {
		it.release()
		return zero, false, err
	}
	if !ok {
		it.release()
		return zero, false, nil
	}
	it.cnt++
	old := it.next
	it.next += it.step
	if it.next < old || (it.stop != Unbounded && it.next > it.stop) {
		it.next = it.stop
	}
	return val, true, nil
}

// release drops the source without closing it; the caller owns what is
// left of it.
func (it *IsliceIter[T]) release() {
	it.source = nil
	log().Debug("slicer released source", logger.Fields(logger.FieldCount, it.cnt))
}

// Close closes the source if it has not been released yet.
func (it *IsliceIter[T]) Close() error {
	if it.source == nil {
		return nil
	}
	src := it.source
	it.source = nil
	return src.Close()
}

// Snapshot records the remaining bounds; State is the consumed count.
func (it *IsliceIter[T]) Snapshot() *Snapshot {
	if it.source == nil {
		return &Snapshot{Kind: KindIslice, Args: []any{Empty[T](), 0}, State: 0}
	}
	return &Snapshot{
		Kind:  KindIslice,
		Args:  []any{it.source, it.next, it.stop, it.step},
		State: it.cnt,
	}
}

// Restore sets the consumed count.
func (it *IsliceIter[T]) Restore(state any) error {
	cnt, err := asCount(KindIslice, state)
	if err != nil {
		return err
	}
	it.cnt = cnt
	return nil
}

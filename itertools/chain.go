package itertools

import "context"

// ChainState is the Restore state of a chain.
type ChainState[T any] struct {
	// Source yields the iterators still to be chained.
	Source Iterator[Iterator[T]]
	// Active is the iterator being drained, or nil.
	Active Iterator[T]
}

// ChainIter yields every value of each input in turn.
type ChainIter[T any] struct {
	source Iterator[Iterator[T]]
	active Iterator[T]
}

// Chain yields the values of srcs one after another.
func Chain[T any](srcs ...Iterator[T]) *ChainIter[T] {
	return &ChainIter[T]{source: FromSlice(srcs)}
}

// ChainFrom is Chain over a lazily produced sequence of inputs.
func ChainFrom[T any](srcs Iterator[Iterator[T]]) *ChainIter[T] {
	return &ChainIter[T]{source: srcs}
}

func (it *ChainIter[T]) Next(ctx context.Context) (T, bool, error) {
	var zero T
	for it.source != nil {
		if it.active == nil {
			next, ok, err := it.source.Next(ctx)
			if err != nil {
				it.source = nil
				return zero, false, err
			}
			if !ok {
				it.source = nil
				break
			}
			it.active = next
		}
		val, ok, err := it.active.Next(ctx)
		if err != nil {
			return zero, false, err
		}
		if ok {
			return val, true, nil
		}
		it.active = nil
	}
	return zero, false, nil
}

// Close closes the active input and the outer source, if still held.
func (it *ChainIter[T]) Close() error {
	err := closeAll(it.active)
	if it.source != nil {
		if cerr := it.source.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	it.source, it.active = nil, nil
	return err
}

// Snapshot captures the outer source and the active input by reference.
func (it *ChainIter[T]) Snapshot() *Snapshot {
	if it.source == nil {
		return &Snapshot{Kind: KindChain}
	}
	return &Snapshot{Kind: KindChain, State: ChainState[T]{Source: it.source, Active: it.active}}
}

// Restore adopts the sources in a ChainState. Previously held sources are
// not closed, since a snapshot may share them.
func (it *ChainIter[T]) Restore(state any) error {
	if state == nil {
		return nil
	}
	s, err := asState[ChainState[T]](KindChain, state)
	if err != nil {
		return err
	}
	if s.Source == nil {
		return reject(KindChain, errInvalidState(KindChain, "source must not be nil"))
	}
	it.source, it.active = s.Source, s.Active
	return nil
}

package itertools

import (
	"context"

	"github.com/eapache/queue"
)

// CycleState is the Restore state of a cycle.
type CycleState[T any] struct {
	// Saved holds the values seen on the first pass.
	Saved []T
	// Done reports that the first pass is over; values still coming from
	// the source are not saved again.
	Done bool
}

// CycleIter yields its source, then replays the saved values forever.
type CycleIter[T any] struct {
	source    Iterator[T]
	saved     *queue.Queue
	index     int
	firstPass bool
}

// Cycle yields the values of src, then repeats them indefinitely. An
// empty source is exhausted on the first call.
func Cycle[T any](src Iterator[T]) *CycleIter[T] {
	return &CycleIter[T]{source: src, saved: queue.New()}
}

func (it *CycleIter[T]) Next(ctx context.Context) (T, bool, error) {
	var zero T
	if it.source != nil {
		val, ok, err := it.source.Next(ctx)
		if err != nil {
			return zero, false, err
		}
		if ok {
			if !it.firstPass {
				it.saved.Add(val)
			}
			return val, true, nil
		}
		it.source = nil
	}
	n := it.saved.Length()
	if n == 0 {
		return zero, false, nil
	}
	val := it.saved.Get(it.index).(T)
	it.index++
	if it.index >= n {
		it.index = 0
	}
	return val, true, nil
}

// Close closes the source while it is still being read.
func (it *CycleIter[T]) Close() error {
	if it.source == nil {
		return nil
	}
	src := it.source
	it.source = nil
	return src.Close()
}

func (it *CycleIter[T]) savedValues() []T {
	out := make([]T, it.saved.Length())
	for i := range out {
		out[i] = it.saved.Get(i).(T)
	}
	return out
}

// Snapshot captures the saved values. Once the source is exhausted the
// constructor source is the unreplayed tail of the current round.
func (it *CycleIter[T]) Snapshot() *Snapshot {
	saved := it.savedValues()
	if it.source == nil {
		tail := append([]T(nil), saved[min(it.index, len(saved)):]...)
		return &Snapshot{
			Kind:  KindCycle,
			Args:  []any{FromSlice(tail)},
			State: CycleState[T]{Saved: saved, Done: true},
		}
	}
	return &Snapshot{
		Kind:  KindCycle,
		Args:  []any{it.source},
		State: CycleState[T]{Saved: saved, Done: it.firstPass},
	}
}

// Restore replaces the saved values and restarts replay at the first one.
func (it *CycleIter[T]) Restore(state any) error {
	s, err := asState[CycleState[T]](KindCycle, state)
	if err != nil {
		return err
	}
	saved := queue.New()
	for _, v := range s.Saved {
		saved.Add(v)
	}
	it.saved = saved
	it.firstPass = s.Done
	it.index = 0
	return nil
}

package itertools

import (
	"context"

	"github.com/google/uuid"

	"github.com/kbukum/iterkit/errors"
	"github.com/kbukum/iterkit/logger"
	"github.com/kbukum/iterkit/validation"
)

// teeBlock is one fixed-capacity run of buffered values.
type teeBlock[T any] struct {
	values []T
	next   int // handle of the following block, -1 until allocated
	refs   int
}

// teeArena owns the source shared by a family of tee consumers. Every
// value is pulled from the source exactly once and buffered until all
// consumers and pins have moved past its block.
type teeArena[T any] struct {
	id      uuid.UUID
	source  Iterator[T]
	size    int
	blocks  map[int]*teeBlock[T]
	head    int
	nextID  int
	running bool
	srcDone bool
	closed  bool
}

func newTeeArena[T any](src Iterator[T], size int) *teeArena[T] {
	a := &teeArena[T]{
		id:     uuid.New(),
		source: src,
		size:   size,
		blocks: make(map[int]*teeBlock[T]),
	}
	a.head = a.alloc()
	return a
}

func (a *teeArena[T]) alloc() int {
	id := a.nextID
	a.nextID++
	a.blocks[id] = &teeBlock[T]{values: make([]T, 0, a.size), next: -1}
	iteratorMetrics().RecordBlocks(context.Background(), 1)
	if l := log(); l.DebugEnabled() {
		l.Debug("tee block allocated", logger.Fields(
			logger.FieldArena, a.id.String(),
			logger.FieldBlock, id,
		))
	}
	return id
}

func (a *teeArena[T]) retain(id int) {
	a.blocks[id].refs++
}

// release drops one reference to block id and frees unreferenced blocks
// from the head of the chain. The source is closed once nothing is left.
func (a *teeArena[T]) release(id int) error {
	a.blocks[id].refs--
	for {
		b, ok := a.blocks[a.head]
		if !ok || b.refs > 0 {
			break
		}
		delete(a.blocks, a.head)
		iteratorMetrics().RecordBlocks(context.Background(), -1)
		if l := log(); l.DebugEnabled() {
			l.Debug("tee block freed", logger.Fields(
				logger.FieldArena, a.id.String(),
				logger.FieldBlock, a.head,
			))
		}
		if b.next < 0 {
			break
		}
		a.head = b.next
	}
	if len(a.blocks) > 0 || a.closed {
		return nil
	}
	a.closed = true
	log().Debug("tee source closed", logger.Fields(logger.FieldArena, a.id.String()))
	return a.source.Close()
}

// get returns slot i of block id, pulling the source when the slot is
// not buffered yet.
func (a *teeArena[T]) get(ctx context.Context, id, i int) (T, bool, error) {
	var zero T
	b := a.blocks[id]
	if i < len(b.values) {
		return b.values[i], true, nil
	}
	if a.srcDone {
		return zero, false, nil
	}
	if a.running {
		return zero, false, errors.Reentrant("tee")
	}
	a.running = true
	val, ok, err := a.source.Next(ctx)
	a.running = false
	if err != nil {
		return zero, false, err
	}
	if !ok {
		a.srcDone = true
		return zero, false, nil
	}
	b.values = append(b.values, val)
	iteratorMetrics().RecordPull(ctx)
	return val, true, nil
}

// teePin holds a block reference on behalf of a TeeState.
type teePin[T any] struct {
	arena    *teeArena[T]
	block    int
	released bool
}

// TeeState is the Restore state of a tee consumer. It keeps its block
// buffered until it is restored or released.
type TeeState[T any] struct {
	pin *teePin[T]
	// Index is the position within the pinned block.
	Index int
}

// Release drops the block reference of a state that will not be restored.
func (s TeeState[T]) Release() {
	if s.pin == nil || s.pin.released {
		return
	}
	s.pin.released = true
	_ = s.pin.arena.release(s.pin.block)
}

// TeeIter is one consumer of a shared tee arena.
type TeeIter[T any] struct {
	arena  *teeArena[T]
	block  int
	index  int
	closed bool
}

// NewTee wraps src in a tee consumer. If src is already a tee consumer a
// clone of it is returned.
func NewTee[T any](src Iterator[T], opts ...TeeOption) *TeeIter[T] {
	if t, ok := src.(*TeeIter[T]); ok {
		return t.Clone()
	}
	o := applyTeeOptions(opts)
	a := newTeeArena(src, o.blockSize)
	a.retain(a.head)
	return &TeeIter[T]{arena: a, block: a.head}
}

// Tee returns n independent iterators over the values of src. A tee
// consumer or other Cloner is duplicated directly; any other source is
// wrapped first and must not be used afterwards.
func Tee[T any](src Iterator[T], n int, opts ...TeeOption) ([]Iterator[T], error) {
	if err := validation.NonNegative("n", n); err != nil {
		return nil, err
	}
	out := make([]Iterator[T], n)
	if n == 0 {
		return out, nil
	}
	var clone func() Iterator[T]
	switch s := src.(type) {
	case *TeeIter[T]:
		clone = func() Iterator[T] { return s.Clone() }
	case Cloner[T]:
		clone = s.Clone
	default:
		t := NewTee(src, opts...)
		src = t
		clone = func() Iterator[T] { return t.Clone() }
	}
	out[0] = src
	for i := 1; i < n; i++ {
		out[i] = clone()
	}
	return out, nil
}

func (t *TeeIter[T]) Next(ctx context.Context) (T, bool, error) {
	var zero T
	if t.closed {
		return zero, false, nil
	}
	a := t.arena
	if t.index >= a.size {
		b := a.blocks[t.block]
		if b.next < 0 {
			if a.srcDone {
				return zero, false, nil
			}
			b.next = a.alloc()
		}
		next := b.next
		a.retain(next)
		old := t.block
		t.block, t.index = next, 0
		_ = a.release(old)
	}
	val, ok, err := a.get(ctx, t.block, t.index)
	if err != nil || !ok {
		return zero, false, err
	}
	t.index++
	return val, true, nil
}

// ArenaID identifies the buffer t reads from. Consumers created by Tee,
// NewTee or Clone from one source share it; it is also the arena field of
// the package's debug logs.
func (t *TeeIter[T]) ArenaID() uuid.UUID {
	return t.arena.id
}

// Clone returns a consumer positioned where t is.
func (t *TeeIter[T]) Clone() *TeeIter[T] {
	if t.closed {
		return &TeeIter[T]{arena: t.arena, closed: true}
	}
	t.arena.retain(t.block)
	return &TeeIter[T]{arena: t.arena, block: t.block, index: t.index}
}

// Close releases the consumer's block. The shared source is closed when
// the last consumer lets go.
func (t *TeeIter[T]) Close() error {
	if t.closed {
		return nil
	}
	t.closed = true
	return t.arena.release(t.block)
}

// Snapshot pins the consumer's current block. The returned State must be
// restored or released to let the block be freed.
func (t *TeeIter[T]) Snapshot() *Snapshot {
	snap := &Snapshot{Kind: KindTee, Args: []any{Empty[T]()}}
	if t.closed {
		return snap
	}
	t.arena.retain(t.block)
	snap.State = TeeState[T]{
		pin:   &teePin[T]{arena: t.arena, block: t.block},
		Index: t.index,
	}
	return snap
}

// Restore moves the consumer to a pinned position, taking over the pin.
func (t *TeeIter[T]) Restore(state any) error {
	s, err := asState[TeeState[T]](KindTee, state)
	if err != nil {
		return err
	}
	if s.pin == nil {
		return reject(KindTee, errInvalidState(KindTee, "state has no block pin"))
	}
	if s.pin.released {
		return reject(KindTee, errInvalidState(KindTee, "block pin already consumed"))
	}
	a := s.pin.arena
	if s.Index < 0 || s.Index > a.size {
		return reject(KindTee, errors.OutOfRange("index", s.Index, 0, a.size))
	}
	if n := len(a.blocks[s.pin.block].values); s.Index > n {
		return reject(KindTee, errors.OutOfRange("index", s.Index, 0, n))
	}

	s.pin.released = true
	oldArena, oldBlock, wasClosed := t.arena, t.block, t.closed
	t.arena, t.block, t.index, t.closed = a, s.pin.block, s.Index, false
	if !wasClosed {
		return oldArena.release(oldBlock)
	}
	return nil
}

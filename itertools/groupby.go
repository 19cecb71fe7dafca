package itertools

import "context"

// Grouping pairs a key with the view over its run of values.
type Grouping[K comparable, T any] struct {
	Key   K
	Group *GroupIter[K, T]
}

// groupCell is the lookahead shared by a driver and its views.
type groupCell[K comparable, T any] struct {
	source    Iterator[T]
	key       KeyFunc[T, K]
	currKey   K
	currValue T
	hasKey    bool
	hasValue  bool
	tgtKey    K
	hasTarget bool
	gen       uint64
	srcDone   bool
}

// step pulls one value into the cell.
func (c *groupCell[K, T]) step(ctx context.Context) (bool, error) {
	if c.srcDone {
		return false, nil
	}
	val, ok, err := c.source.Next(ctx)
	if err != nil {
		return false, err
	}
	if !ok {
		c.srcDone = true
		return false, nil
	}
	k, err := c.key(val)
	if err != nil {
		return false, err
	}
	c.currValue, c.hasValue = val, true
	c.currKey, c.hasKey = k, true
	return true, nil
}

// GroupByIter yields one Grouping per run of equal keys.
type GroupByIter[K comparable, T any] struct {
	cell *groupCell[K, T]
}

// GroupBy groups consecutive equal values of src.
func GroupBy[T comparable](src Iterator[T]) *GroupByIter[T, T] {
	return GroupByKey(src, func(v T) (T, error) { return v, nil })
}

// GroupByKey groups consecutive values of src with equal keys.
//
// Advancing the driver invalidates the previous group; values of a group
// must be read before the next call to Next.
func GroupByKey[T any, K comparable](src Iterator[T], key KeyFunc[T, K]) *GroupByIter[K, T] {
	mustCallable(key != nil, "GroupByKey")
	return &GroupByIter[K, T]{cell: &groupCell[K, T]{source: src, key: key}}
}

func (it *GroupByIter[K, T]) Next(ctx context.Context) (Grouping[K, T], bool, error) {
	c := it.cell
	c.gen++
	for {
		if c.hasKey && (!c.hasTarget || c.tgtKey != c.currKey) {
			break
		}
		ok, err := c.step(ctx)
		if err != nil {
			return Grouping[K, T]{}, false, err
		}
		if !ok {
			return Grouping[K, T]{}, false, nil
		}
	}
	c.tgtKey, c.hasTarget = c.currKey, true
	return Grouping[K, T]{
		Key:   c.currKey,
		Group: &GroupIter[K, T]{cell: c, gen: c.gen, key: c.currKey},
	}, true, nil
}

func (it *GroupByIter[K, T]) Close() error { return it.cell.source.Close() }

// GroupIter yields the values of one run. It is exhausted once the run
// ends or the driver moves on.
type GroupIter[K comparable, T any] struct {
	cell *groupCell[K, T]
	gen  uint64
	key  K
	done bool
}

func (g *GroupIter[K, T]) Next(ctx context.Context) (T, bool, error) {
	var zero T
	c := g.cell
	if g.done {
		return zero, false, nil
	}
	if c.gen != g.gen {
		g.done = true
		return zero, false, nil
	}
	if !c.hasValue {
		ok, err := c.step(ctx)
		if err != nil {
			return zero, false, err
		}
		if !ok {
			g.done = true
			return zero, false, nil
		}
	}
	if c.currKey != g.key {
		g.done = true
		return zero, false, nil
	}
	val := c.currValue
	c.currValue, c.hasValue = zero, false
	return val, true, nil
}

// Close detaches the view; the shared source stays with the driver.
func (g *GroupIter[K, T]) Close() error {
	g.done = true
	return nil
}

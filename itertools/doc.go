// Package itertools provides lazy, pull-based sequence combinators.
//
// Every combinator is a state machine implementing Iterator. No work
// happens until values are pulled with Next (or Collect, ForEach, All).
// Each stage pulls from its source on demand and passes ctx through on
// every call.
//
// # Contract
//
//   - (v, true, nil): a value was produced
//   - (zero, false, nil): exhausted; every later call returns the same
//     without touching the source again
//   - (zero, false, err): a source or callable failed; err is returned
//     unchanged
//
// Iterators are not safe for concurrent use. The only sharing is
// explicit: group views share one lookahead cell with their driver, and
// tee consumers share one buffered arena over a single source.
//
// # Combinators
//
//   - Repeat, RepeatN, Count: unbounded or counted generators
//   - Chain, ChainFrom: concatenation, eager or lazy over the inputs
//   - Starmap: apply a variadic function to argument slices
//   - FilterFalse, TakeWhile, DropWhile, Compress: predicate filtering
//   - ZipLongest: parallel iteration padded with a fill value
//   - Cycle: replay a source forever
//   - Islice, IsliceRange: bounded slicing by position
//   - Accumulate, AccumulateInitial, AccumulateSum: running totals
//   - GroupBy, GroupByKey: runs of equal keys
//   - Permutations, Combinations, CombinationsWithReplacement, Product:
//     combinatorics over materialized pools
//   - Tee, NewTee: independent consumers over one source
//
// # Snapshots
//
// Most combinators implement Snapshotter. A Snapshot records the
// constructor (Kind and Args, with live sources captured by reference)
// and the cursor State. Rebuilding from the constructor and calling
// Restore(State) resumes at the same position. Restore validates the
// whole state before changing anything.
//
// # Usage
//
//	it := itertools.IsliceRange(itertools.Count(0, 1), 2, 8, 3)
//	for v, err := range itertools.All(ctx, it) {
//	    if err != nil {
//	        return err
//	    }
//	    fmt.Println(v) // 2, 5
//	}
package itertools

package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"

	"github.com/kbukum/iterkit/errors"
	"github.com/kbukum/iterkit/itertools"
	"github.com/kbukum/iterkit/logger"
	"github.com/kbukum/iterkit/version"
)

func newPermutationsCmd() *cobra.Command {
	var r int
	cmd := &cobra.Command{
		Use:   "permutations [items...]",
		Short: "Print r-length orderings of the items",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			var (
				it  *itertools.PermutationsIter[string]
				err error
			)
			if cmd.Flags().Changed("length") {
				it, err = itertools.Permutations(ctx, itertools.FromSlice(args), r)
			} else {
				it, err = itertools.AllPermutations(ctx, itertools.FromSlice(args))
			}
			if err != nil {
				return err
			}
			return printTuples(ctx, cmd.OutOrStdout(), it)
		},
	}
	cmd.Flags().IntVarP(&r, "length", "r", 0, "tuple length (default: number of items)")
	return cmd
}

func newCombinationsCmd() *cobra.Command {
	var (
		r           int
		replacement bool
	)
	cmd := &cobra.Command{
		Use:   "combinations [items...]",
		Short: "Print r-length selections of the items in input order",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			build := itertools.Combinations[string]
			if replacement {
				build = itertools.CombinationsWithReplacement[string]
			}
			it, err := build(ctx, itertools.FromSlice(args), r)
			if err != nil {
				return err
			}
			return printTuples(ctx, cmd.OutOrStdout(), it)
		},
	}
	cmd.Flags().IntVarP(&r, "length", "r", 2, "tuple length")
	cmd.Flags().BoolVar(&replacement, "replacement", false, "allow an item to be selected more than once")
	return cmd
}

func newProductCmd() *cobra.Command {
	var repeat int
	cmd := &cobra.Command{
		Use:   "product [gear...]",
		Short: "Print the cartesian product of comma-separated gears",
		Example: "  iterctl product a,b 0,1\n" +
			"  iterctl product --repeat 3 0,1",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			gears := make([]itertools.Iterator[string], len(args))
			for i, arg := range args {
				gears[i] = itertools.FromSlice(splitGear(arg))
			}
			it, err := itertools.Product(ctx, repeat, gears...)
			if err != nil {
				return err
			}
			return printTuples(ctx, cmd.OutOrStdout(), it)
		},
	}
	cmd.Flags().IntVar(&repeat, "repeat", 1, "number of times the gears are repeated")
	return cmd
}

func newIsliceCmd() *cobra.Command {
	var start, stop, step int
	cmd := &cobra.Command{
		Use:   "islice [items...]",
		Short: "Print items start, start+step, ... before stop",
		RunE: func(cmd *cobra.Command, args []string) error {
			it, err := itertools.IsliceRange(itertools.FromSlice(args), start, stop, step)
			if err != nil {
				return err
			}
			return printValues(cmd.Context(), cmd.OutOrStdout(), it)
		},
	}
	cmd.Flags().IntVar(&start, "start", 0, "index of the first item")
	cmd.Flags().IntVar(&stop, "stop", itertools.Unbounded, "index to stop before (-1 for none)")
	cmd.Flags().IntVar(&step, "step", 1, "distance between items")
	return cmd
}

func newCycleCmd() *cobra.Command {
	var take int
	cmd := &cobra.Command{
		Use:   "cycle [items...]",
		Short: "Print the items repeated endlessly, up to --take values",
		RunE: func(cmd *cobra.Command, args []string) error {
			it, err := itertools.Islice(itertools.Cycle(itertools.FromSlice(args)), take)
			if err != nil {
				return err
			}
			return printValues(cmd.Context(), cmd.OutOrStdout(), it)
		},
	}
	cmd.Flags().IntVar(&take, "take", 10, "number of values to print")
	return cmd
}

func newAccumulateCmd() *cobra.Command {
	var (
		op      string
		initial string
	)
	cmd := &cobra.Command{
		Use:   "accumulate [ints...]",
		Short: "Print running totals of integer arguments",
		RunE: func(cmd *cobra.Command, args []string) error {
			nums, err := cast.ToIntSliceE(args)
			if err != nil {
				return errors.InvalidArgument("ints", err.Error())
			}
			fn, ok := accumulateOps[op]
			if !ok {
				return errors.InvalidArgument("op", fmt.Sprintf("unknown op %q", op))
			}
			src := itertools.FromSlice(nums)
			var it *itertools.AccumulateIter[int]
			if cmd.Flags().Changed("initial") {
				init, err := cast.ToIntE(initial)
				if err != nil {
					return errors.InvalidArgument("initial", err.Error())
				}
				it = itertools.AccumulateInitial(src, fn, init)
			} else {
				it = itertools.Accumulate(src, fn)
			}
			return printValues(cmd.Context(), cmd.OutOrStdout(), it)
		},
	}
	cmd.Flags().StringVar(&op, "op", "sum", "combining function: sum, product, max or min")
	cmd.Flags().StringVar(&initial, "initial", "", "value emitted before the first total")
	return cmd
}

var accumulateOps = map[string]itertools.Combine[int]{
	"sum":     itertools.Add[int],
	"product": func(acc, v int) (int, error) { return acc * v, nil },
	"max":     func(acc, v int) (int, error) { return max(acc, v), nil },
	"min":     func(acc, v int) (int, error) { return min(acc, v), nil },
}

func newGroupByCmd() *cobra.Command {
	var by string
	cmd := &cobra.Command{
		Use:   "groupby [items...]",
		Short: "Print runs of consecutive items that share a key",
		RunE: func(cmd *cobra.Command, args []string) error {
			key, ok := groupKeys[by]
			if !ok {
				return errors.InvalidArgument("by", fmt.Sprintf("unknown key %q", by))
			}
			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			groups := itertools.GroupByKey(itertools.FromSlice(args), key)
			defer groups.Close()
			for g, err := range itertools.All(ctx, groups) {
				if err != nil {
					return err
				}
				members, err := itertools.Collect(ctx, g.Group)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s: %s\n", g.Key, strings.Join(members, " "))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&by, "by", "value", "grouping key: value, length or prefix")
	return cmd
}

var groupKeys = map[string]itertools.KeyFunc[string, string]{
	"value":  func(s string) (string, error) { return s, nil },
	"length": func(s string) (string, error) { return cast.ToString(len(s)), nil },
	"prefix": func(s string) (string, error) {
		for _, r := range s {
			return string(r), nil
		}
		return "", nil
	},
}

func newTeeCmd() *cobra.Command {
	var n int
	cmd := &cobra.Command{
		Use:   "tee [items...]",
		Short: "Split the items into n independent copies and print each",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			copies, err := itertools.Tee(itertools.FromFunc(sliceSource(args)), n)
			if err != nil {
				return err
			}
			if len(copies) > 0 {
				if t, ok := copies[0].(*itertools.TeeIter[string]); ok {
					logger.Get(serviceName).Debug("tee split", logger.Fields(
						logger.FieldArena, t.ArenaID().String(),
						logger.FieldCount, n,
					))
				}
			}
			out := cmd.OutOrStdout()
			for i, c := range copies {
				values, err := itertools.Collect(ctx, c)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%d: %s\n", i, strings.Join(values, " "))
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&n, "n", "n", 2, "number of copies")
	return cmd
}

// sliceSource hides the slice behind a plain function so tee buffers it
// instead of cloning.
func sliceSource(items []string) func(context.Context) (string, bool, error) {
	i := 0
	return func(context.Context) (string, bool, error) {
		if i >= len(items) {
			return "", false, nil
		}
		i++
		return items[i-1], true, nil
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), version.Get().String())
			return err
		},
	}
}

func splitGear(arg string) []string {
	if arg == "" {
		return nil
	}
	return strings.Split(arg, ",")
}

func printTuples(ctx context.Context, w io.Writer, it itertools.Iterator[[]string]) error {
	return itertools.ForEach(ctx, it, func(_ context.Context, tuple []string) error {
		_, err := fmt.Fprintln(w, strings.Join(tuple, " "))
		return err
	})
}

func printValues[T any](ctx context.Context, w io.Writer, it itertools.Iterator[T]) error {
	return itertools.ForEach(ctx, it, func(_ context.Context, v T) error {
		_, err := fmt.Fprintln(w, cast.ToString(v))
		return err
	})
}

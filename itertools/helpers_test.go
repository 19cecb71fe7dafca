package itertools

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var errBoom = stderrors.New("boom")

// countingSource yields 0..n-1 and records how it is driven. It is not a
// Cloner, so tee has to buffer it.
type countingSource struct {
	items  []int
	pos    int
	calls  int
	closed int
	failAt int
}

func newCounting(n int) *countingSource {
	items := make([]int, n)
	for i := range items {
		items[i] = i
	}
	return &countingSource{items: items, failAt: -1}
}

func (s *countingSource) Next(_ context.Context) (int, bool, error) {
	s.calls++
	if s.failAt >= 0 && s.pos == s.failAt {
		return 0, false, errBoom
	}
	if s.pos >= len(s.items) {
		return 0, false, nil
	}
	v := s.items[s.pos]
	s.pos++
	return v, true, nil
}

func (s *countingSource) Close() error {
	s.closed++
	return nil
}

func ints(vs ...int) Iterator[int] { return FromSlice(vs) }

func diff(want, got any) string {
	return cmp.Diff(want, got, cmpopts.EquateEmpty())
}

func mustCollect[T any](t *testing.T, it Iterator[T]) []T {
	t.Helper()
	got, err := Collect(context.Background(), it)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return got
}

func mustTake[T any](t *testing.T, it Iterator[T], n int) []T {
	t.Helper()
	got, err := Take(context.Background(), it, n)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return got
}

// assertExhausted checks that it keeps reporting exhausted.
func assertExhausted[T any](t *testing.T, it Iterator[T]) {
	t.Helper()
	for i := 0; i < 3; i++ {
		v, ok, err := it.Next(context.Background())
		if err != nil {
			t.Fatalf("call %d: unexpected error: %v", i, err)
		}
		if ok {
			t.Fatalf("call %d: expected exhausted, got %v", i, v)
		}
	}
}

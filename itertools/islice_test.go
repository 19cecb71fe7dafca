package itertools

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/kbukum/iterkit/errors"
)

func TestIsliceRange(t *testing.T) {
	tests := []struct {
		name              string
		start, stop, step int
		want              []int
	}{
		{"start stop step", 2, 8, 3, []int{2, 5}},
		{"stop only", 0, 3, 1, []int{0, 1, 2}},
		{"unbounded", 7, Unbounded, 1, []int{7, 8, 9}},
		{"unbounded step", 1, Unbounded, 4, []int{1, 5, 9}},
		{"stop zero", 0, 0, 1, nil},
		{"start past end", 20, Unbounded, 1, nil},
		{"stop past end", 8, 50, 1, []int{8, 9}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			it, err := IsliceRange[int](newCounting(10), tc.start, tc.stop, tc.step)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if d := diff(tc.want, mustCollect[int](t, it)); d != "" {
				t.Errorf("mismatch (-want +got):\n%s", d)
			}
			assertExhausted[int](t, it)
		})
	}
}

func TestIslice_InvalidBounds(t *testing.T) {
	tests := []struct {
		name              string
		start, stop, step int
		field             string
	}{
		{"negative start", -1, 5, 1, "start"},
		{"stop below unbounded", 0, -2, 1, "stop"},
		{"zero step", 0, 5, 0, "step"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := IsliceRange(ints(1), tc.start, tc.stop, tc.step)
			if !errors.Is(err, errors.ErrCodeInvalidArgument) {
				t.Fatalf("expected INVALID_ARGUMENT, got %v", err)
			}
		})
	}
	if _, err := Islice(ints(1), -5); err == nil {
		t.Error("expected error for negative stop")
	}
}

func TestIslice_StopsWithoutConsuming(t *testing.T) {
	src := newCounting(10)
	it, err := Islice[int](src, 2)
	if err != nil {
		t.Fatal(err)
	}
	mustTake[int](t, it, 5)
	if src.calls != 2 {
		t.Errorf("got %d source calls, want 2", src.calls)
	}
	if src.closed != 0 {
		t.Error("releasing the source must not close it")
	}
	v, ok, err := src.Next(context.Background())
	if err != nil || !ok || v != 2 {
		t.Errorf("source should resume at 2, got (%v, %v, %v)", v, ok, err)
	}
}

func TestIslice_ErrorReleasesSource(t *testing.T) {
	src := newCounting(10)
	src.failAt = 1
	it, _ := IsliceRange[int](src, 3, Unbounded, 1)
	if _, _, err := it.Next(context.Background()); !stderrors.Is(err, errBoom) {
		t.Fatalf("got %v, want %v", err, errBoom)
	}
	calls := src.calls
	assertExhausted[int](t, it)
	if src.calls != calls {
		t.Error("source touched after release")
	}
}

func TestIslice_SnapshotResynchronises(t *testing.T) {
	ctx := context.Background()
	src := newCounting(10)
	it, _ := IsliceRange[int](src, 2, 8, 3)
	v, _, _ := it.Next(ctx)
	if v != 2 {
		t.Fatalf("got %d, want 2", v)
	}
	snap := it.Snapshot()
	if snap.Args[0] != Iterator[int](src) {
		t.Fatalf("expected the live source by reference, got %T", snap.Args[0])
	}
	if d := diff([]any{5, 8, 3}, snap.Args[1:]); d != "" {
		t.Fatalf("args mismatch (-want +got):\n%s", d)
	}

	rebuilt, err := IsliceRange(snap.Args[0].(Iterator[int]), snap.Args[1].(int), snap.Args[2].(int), snap.Args[3].(int))
	if err != nil {
		t.Fatal(err)
	}
	if err := rebuilt.Restore(snap.State); err != nil {
		t.Fatalf("restore: %v", err)
	}
	if d := diff([]int{5}, mustCollect[int](t, rebuilt)); d != "" {
		t.Errorf("mismatch (-want +got):\n%s", d)
	}
}

func TestIslice_SnapshotExhausted(t *testing.T) {
	it, _ := Islice(ints(1, 2), Unbounded)
	mustTake[int](t, it, 5)
	snap := it.Snapshot()
	if snap.Args[1] != 0 || snap.State != 0 {
		t.Errorf("unexpected exhausted snapshot %#v", snap)
	}
	rebuilt, err := Islice(snap.Args[0].(Iterator[int]), snap.Args[1].(int))
	if err != nil {
		t.Fatal(err)
	}
	assertExhausted[int](t, rebuilt)
}

func TestIslice_RestoreValidation(t *testing.T) {
	it, _ := Islice(ints(1, 2, 3), Unbounded)
	tests := []struct {
		name  string
		state any
		code  errors.ErrorCode
	}{
		{"negative", -1, errors.ErrCodeInvalidState},
		{"string", "3", errors.ErrCodeTypeMismatch},
		{"fractional float", 1.5, errors.ErrCodeTypeMismatch},
		{"nil", nil, errors.ErrCodeTypeMismatch},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := it.Restore(tc.state); !errors.Is(err, tc.code) {
				t.Errorf("got %v, want %s", err, tc.code)
			}
		})
	}
	for _, ok := range []any{int8(1), uint16(1), int64(1), float64(1)} {
		if err := it.Restore(ok); err != nil {
			t.Errorf("Restore(%T) unexpected error: %v", ok, err)
		}
	}
}

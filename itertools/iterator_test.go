package itertools

import (
	"context"
	stderrors "errors"
	"testing"
)

func TestFromSlice_Collect(t *testing.T) {
	got := mustCollect(t, FromSlice([]int{1, 2, 3}))
	if d := diff([]int{1, 2, 3}, got); d != "" {
		t.Errorf("mismatch (-want +got):\n%s", d)
	}
}

func TestEmpty(t *testing.T) {
	assertExhausted(t, Empty[string]())
}

func TestFromFunc_ExhaustionIsSticky(t *testing.T) {
	calls := 0
	it := FromFunc(func(_ context.Context) (int, bool, error) {
		calls++
		if calls > 2 {
			return 0, false, nil
		}
		return calls, true, nil
	})
	if d := diff([]int{1, 2}, mustTake(t, it, 10)); d != "" {
		t.Errorf("mismatch (-want +got):\n%s", d)
	}
	assertExhausted(t, it)
	if calls != 3 {
		t.Errorf("got %d calls, want 3", calls)
	}
}

func TestFromFunc_NilPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	FromFunc[int](nil)
}

func TestAll_RangesSameInstance(t *testing.T) {
	ctx := context.Background()
	it := ints(1, 2, 3, 4)
	var first []int
	for v, err := range All(ctx, it) {
		if err != nil {
			t.Fatal(err)
		}
		first = append(first, v)
		if v == 2 {
			break
		}
	}
	var rest []int
	for v, err := range All(ctx, it) {
		if err != nil {
			t.Fatal(err)
		}
		rest = append(rest, v)
	}
	if d := diff([]int{1, 2}, first); d != "" {
		t.Errorf("first loop mismatch (-want +got):\n%s", d)
	}
	if d := diff([]int{3, 4}, rest); d != "" {
		t.Errorf("second loop mismatch (-want +got):\n%s", d)
	}
}

func TestAll_YieldsError(t *testing.T) {
	src := newCounting(5)
	src.failAt = 2
	var got []int
	var gotErr error
	for v, err := range All(context.Background(), Iterator[int](src)) {
		if err != nil {
			gotErr = err
			continue
		}
		got = append(got, v)
	}
	if !stderrors.Is(gotErr, errBoom) {
		t.Errorf("got %v, want %v", gotErr, errBoom)
	}
	if d := diff([]int{0, 1}, got); d != "" {
		t.Errorf("mismatch (-want +got):\n%s", d)
	}
}

func TestCollect_ClosesSource(t *testing.T) {
	src := newCounting(2)
	mustCollect[int](t, src)
	if src.closed != 1 {
		t.Errorf("got %d closes, want 1", src.closed)
	}
}

func TestTake_LeavesOpen(t *testing.T) {
	src := newCounting(5)
	got := mustTake[int](t, src, 2)
	if d := diff([]int{0, 1}, got); d != "" {
		t.Errorf("mismatch (-want +got):\n%s", d)
	}
	if src.closed != 0 {
		t.Error("Take must not close its iterator")
	}
	if got := mustTake[int](t, src, 0); len(got) != 0 {
		t.Errorf("expected nothing for n=0, got %v", got)
	}
}

func TestForEach_StopsOnError(t *testing.T) {
	var seen []int
	err := ForEach(context.Background(), ints(1, 2, 3), func(_ context.Context, v int) error {
		seen = append(seen, v)
		if v == 2 {
			return errBoom
		}
		return nil
	})
	if !stderrors.Is(err, errBoom) {
		t.Errorf("got %v, want %v", err, errBoom)
	}
	if d := diff([]int{1, 2}, seen); d != "" {
		t.Errorf("mismatch (-want +got):\n%s", d)
	}
}

type flag bool

func (f flag) Truth() bool { return bool(f) }

func TestTruthy(t *testing.T) {
	var nilPtr *int
	var nilMap map[string]int
	one := 1
	tests := []struct {
		name string
		in   any
		want bool
	}{
		{"nil", nil, false},
		{"false", false, false},
		{"true", true, true},
		{"zero int", 0, false},
		{"int", 3, true},
		{"zero uint8", uint8(0), false},
		{"float", 0.5, true},
		{"zero float", 0.0, false},
		{"complex", complex(0, 1), true},
		{"empty string", "", false},
		{"string", "x", true},
		{"empty slice", []int{}, false},
		{"slice", []int{0}, true},
		{"nil map", nilMap, false},
		{"nil pointer", nilPtr, false},
		{"pointer", &one, true},
		{"struct", struct{}{}, true},
		{"truther false", flag(false), false},
		{"truther true", flag(true), true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Truthy(tc.in); got != tc.want {
				t.Errorf("Truthy(%#v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestTest_LiftsPredicate(t *testing.T) {
	p := Test(func(v int) bool { return v > 1 })
	ok, err := p(2)
	if err != nil || !ok {
		t.Errorf("got (%v, %v), want (true, nil)", ok, err)
	}
	if Test[int](nil) != nil {
		t.Error("expected nil predicate for nil func")
	}
}

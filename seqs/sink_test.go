package seqs_test

import (
	"advent/seqs"
	"errors"
	"slices"
	"testing"
)

func TestFirst(t *testing.T) {
	got, err := seqs.First(seqs.Of(5, 6))
	if err != nil || got != 5 {
		t.Errorf("First() = (%d, %v), want (5, nil)", got, err)
	}

	_, err = seqs.First(seqs.Of[int]())
	if !errors.Is(err, seqs.ErrEmptySequence) {
		t.Errorf("First(empty) error = %v, want %v", err, seqs.ErrEmptySequence)
	}
}

func TestLast(t *testing.T) {
	if v, ok := seqs.Last(seqs.Of(1, 2, 3)); !ok || v != 3 {
		t.Errorf("Last() = (%d, %v), want (3, true)", v, ok)
	}
	if _, ok := seqs.Last(seqs.Of[int]()); ok {
		t.Error("Last(empty) reported an element")
	}
}

func TestAllAny(t *testing.T) {
	positive := func(v int) bool { return v > 0 }

	tests := []struct {
		name    string
		input   []int
		wantAll bool
		wantAny bool
	}{
		{"Empty", []int{}, true, false},
		{"AllPositive", []int{1, 2}, true, true},
		{"Mixed", []int{-1, 2}, false, true},
		{"NonePositive", []int{-1, 0}, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := seqs.All(slices.Values(tt.input), positive); got != tt.wantAll {
				t.Errorf("All() = %v, want %v", got, tt.wantAll)
			}
			if got := seqs.Any(slices.Values(tt.input), positive); got != tt.wantAny {
				t.Errorf("Any() = %v, want %v", got, tt.wantAny)
			}
		})
	}
}

func TestAnyShortCircuits(t *testing.T) {
	pulled := 0
	seq := seqs.Peek(seqs.Range(0, 100, 1), func(int) { pulled++ })
	if !seqs.Any(seq, func(v int) bool { return v == 2 }) {
		t.Fatal("Any() = false, want true")
	}
	if pulled != 3 {
		t.Errorf("Any pulled %d elements, want 3", pulled)
	}
}

func TestCount(t *testing.T) {
	input := []int{1, 2, 3, 4, 5}
	even := func(v int) bool { return v%2 == 0 }

	if got := seqs.Count(slices.Values(input)); got != 5 {
		t.Errorf("Count() = %d, want 5", got)
	}
	if got := seqs.CountFunc(slices.Values(input), nil); got != 5 {
		t.Errorf("CountFunc(nil) = %d, want 5", got)
	}

	direct := seqs.CountFunc(slices.Values(input), even)
	filtered := seqs.Count(seqs.Filter(slices.Values(input), even))
	if direct != 2 || direct != filtered {
		t.Errorf("CountFunc() = %d, Count(Filter()) = %d, want 2", direct, filtered)
	}
}

func TestSumProduct(t *testing.T) {
	if got := seqs.Sum(seqs.Of(1, 2, 3, 4)); got != 10 {
		t.Errorf("Sum() = %d, want 10", got)
	}
	if got := seqs.Sum(seqs.Of[int]()); got != 0 {
		t.Errorf("Sum(empty) = %d, want 0", got)
	}
	if got := seqs.Product(seqs.Of(2, 3, 4)); got != 24 {
		t.Errorf("Product() = %d, want 24", got)
	}
	if got := seqs.Product(seqs.Of[int]()); got != 1 {
		t.Errorf("Product(empty) = %d, want 1", got)
	}
	if got := seqs.Sum(seqs.Of(0.5, 1.25)); got != 1.75 {
		t.Errorf("Sum(float64) = %v, want 1.75", got)
	}
}

func TestMinMax(t *testing.T) {
	if v, ok := seqs.Min(seqs.Of(3, -2, 7)); !ok || v != -2 {
		t.Errorf("Min() = (%d, %v)", v, ok)
	}
	if v, ok := seqs.Max(seqs.Of(3, -2, 7)); !ok || v != 7 {
		t.Errorf("Max() = (%d, %v)", v, ok)
	}
	if _, ok := seqs.Max(seqs.Of[int]()); ok {
		t.Error("Max(empty) reported a value")
	}
}

func TestFlowControl(t *testing.T) {
	input := seqs.Range(1, 8, 1)

	if got := seqs.Collect(seqs.Take(input, 3)); !slices.Equal(got, []int{1, 2, 3}) {
		t.Errorf("Take() = %v", got)
	}
	if got := seqs.Collect(seqs.Skip(input, 5)); !slices.Equal(got, []int{6, 7}) {
		t.Errorf("Skip() = %v", got)
	}
	small := func(v int) bool { return v < 3 }
	if got := seqs.Collect(seqs.TakeWhile(input, small)); !slices.Equal(got, []int{1, 2}) {
		t.Errorf("TakeWhile() = %v", got)
	}
	if got := seqs.Collect(seqs.DropWhile(input, small)); !slices.Equal(got, []int{3, 4, 5, 6, 7}) {
		t.Errorf("DropWhile() = %v", got)
	}
	if got := seqs.Collect(seqs.Range(5, 0, -2)); !slices.Equal(got, []int{5, 3, 1}) {
		t.Errorf("Range(5, 0, -2) = %v", got)
	}
}

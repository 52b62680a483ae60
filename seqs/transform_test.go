package seqs_test

import (
	"advent/seqs"
	"iter"
	"reflect"
	"slices"
	"testing"
)

func TestZip(t *testing.T) {
	tests := []struct {
		name string
		a, b []int
		want []seqs.Pair[int, int]
	}{
		{"SecondShorter", []int{1, 2, 3}, []int{10, 20}, []seqs.Pair[int, int]{{V1: 1, V2: 10}, {V1: 2, V2: 20}}},
		{"FirstShorter", []int{1}, []int{10, 20}, []seqs.Pair[int, int]{{V1: 1, V2: 10}}},
		{"Empty", []int{}, []int{10}, []seqs.Pair[int, int]{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := seqs.Collect(seqs.Zip(slices.Values(tt.a), slices.Values(tt.b)))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Zip() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUnzip(t *testing.T) {
	pairs := []seqs.Pair[int, string]{{V1: 1, V2: "a"}, {V1: 2, V2: "b"}, {V1: 3, V2: "c"}}
	left, right := seqs.Unzip(slices.Values(pairs))
	if !slices.Equal(left, []int{1, 2, 3}) || !slices.Equal(right, []string{"a", "b", "c"}) {
		t.Errorf("Unzip() = %v, %v", left, right)
	}

	left, right = seqs.Unzip(seqs.Of[seqs.Pair[int, string]]())
	if left == nil || right == nil || len(left)+len(right) != 0 {
		t.Errorf("Unzip(empty) = %#v, %#v, want two empty slices", left, right)
	}
}

func TestWithIndex(t *testing.T) {
	var indexes []int
	var items []string
	for i, v := range seqs.WithIndex(seqs.Of("x", "y", "z")) {
		indexes = append(indexes, i)
		items = append(items, v)
	}
	if !slices.Equal(indexes, []int{0, 1, 2}) || !slices.Equal(items, []string{"x", "y", "z"}) {
		t.Errorf("WithIndex() = %v %v", indexes, items)
	}
}

func TestChunkEvery(t *testing.T) {
	tests := []struct {
		name        string
		input       []int
		count, step int
		want        [][]int
	}{
		{"Pairs", []int{1, 2, 3, 4}, 2, 1, [][]int{{1, 2}, {2, 3}, {3, 4}}},
		{"OverlapTwo", []int{1, 2, 3, 4, 5, 6, 7}, 3, 2, [][]int{{1, 2, 3}, {3, 4, 5}, {5, 6, 7}}},
		{"Consecutive", []int{1, 2, 3, 4, 5}, 2, 2, [][]int{{1, 2}, {3, 4}}},
		{"Gapped", []int{1, 2, 3, 4, 5, 6}, 2, 3, [][]int{{1, 2}, {4, 5}}},
		{"TooShort", []int{1}, 2, 1, [][]int{}},
		{"ZeroCount", []int{1, 2}, 0, 1, [][]int{}},
		{"ZeroStep", []int{1, 2}, 1, 0, [][]int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := seqs.Collect(seqs.ChunkEvery(slices.Values(tt.input), tt.count, tt.step))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ChunkEvery(%d, %d) = %v, want %v", tt.count, tt.step, got, tt.want)
			}
		})
	}
}

func TestChunkEveryWindowsAreIndependent(t *testing.T) {
	windows := seqs.Collect(seqs.ChunkEvery(seqs.Of(1, 2, 3), 2, 1))
	windows[0][1] = 99
	if windows[1][0] != 2 {
		t.Errorf("windows share memory: %v", windows)
	}
}

func TestReverse(t *testing.T) {
	input := []int{1, 2, 3, 4}
	got := seqs.Collect(seqs.Reverse(slices.Values(input)))
	if !slices.Equal(got, []int{4, 3, 2, 1}) {
		t.Errorf("Reverse() = %v", got)
	}

	twice := seqs.Collect(seqs.Reverse(seqs.Reverse(slices.Values(input))))
	if !slices.Equal(twice, input) {
		t.Errorf("Reverse(Reverse()) = %v, want %v", twice, input)
	}
}

func TestConcatAndFlatMap(t *testing.T) {
	got := seqs.Collect(seqs.Concat(seqs.Of(1, 2), seqs.Of[int](), seqs.Of(3)))
	if !slices.Equal(got, []int{1, 2, 3}) {
		t.Errorf("Concat() = %v", got)
	}

	flat := seqs.Collect(seqs.FlatMap(seqs.Of(1, 2, 3), func(n int) iter.Seq[int] {
		return seqs.Repeat(n, n)
	}))
	if !slices.Equal(flat, []int{1, 2, 2, 3, 3, 3}) {
		t.Errorf("FlatMap() = %v", flat)
	}
}

func TestDistinctAndPeek(t *testing.T) {
	var seen []int
	got := seqs.Collect(seqs.Distinct(seqs.Peek(seqs.Of(1, 1, 2, 1, 3), func(v int) {
		seen = append(seen, v)
	})))
	if !slices.Equal(got, []int{1, 2, 3}) {
		t.Errorf("Distinct() = %v", got)
	}
	if len(seen) != 5 {
		t.Errorf("Peek saw %v, want all 5 elements", seen)
	}
}

func TestScan(t *testing.T) {
	got := seqs.Collect(seqs.Scan(seqs.Of(1, 2, 3), 0, func(v, acc int) int { return acc + v }))
	if !slices.Equal(got, []int{1, 3, 6}) {
		t.Errorf("Scan() = %v", got)
	}
}

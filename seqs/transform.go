package seqs

import (
	"iter"
	"slices"
)

func FlatMap[S any, T any](source iter.Seq[S], f func(S) iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for s := range source {
			for t := range f(s) {
				if !yield(t) {
					return
				}
			}
		}
	}
}

func Concat[T any](seqs ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, seq := range seqs {
			for v := range seq {
				if !yield(v) {
					return
				}
			}
		}
	}
}

type Pair[T1, T2 any] struct {
	V1 T1
	V2 T2
}

// Zip pairs up elements of seq1 and seq2 while both have elements left.
// The result is as long as the shorter input.
func Zip[T1, T2 any](seq1 iter.Seq[T1], seq2 iter.Seq[T2]) iter.Seq[Pair[T1, T2]] {
	return func(yield func(Pair[T1, T2]) bool) {
		next2, stop2 := iter.Pull(seq2)
		defer stop2()

		for v1 := range seq1 {
			v2, ok := next2()
			if !ok {
				return
			}
			if !yield(Pair[T1, T2]{V1: v1, V2: v2}) {
				return
			}
		}
	}
}

// Unzip splits a sequence of pairs into two slices, keeping the original order in both.
func Unzip[T1, T2 any](seq iter.Seq[Pair[T1, T2]]) ([]T1, []T2) {
	lists := Reduce(seq, Pair[[]T1, []T2]{V1: []T1{}, V2: []T2{}}, func(p Pair[T1, T2], acc Pair[[]T1, []T2]) Pair[[]T1, []T2] {
		acc.V1 = append(acc.V1, p.V1)
		acc.V2 = append(acc.V2, p.V2)
		return acc
	})
	return lists.V1, lists.V2
}

// WithIndex yields (index, item) pairs, counting from 0.
func WithIndex[T any](seq iter.Seq[T]) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		index := 0
		for v := range seq {
			if !yield(index, v) {
				return
			}
			index++
		}
	}
}

// ChunkEvery creates windows of count elements, starting a new window every step elements.
// A trailing window shorter than count is dropped.
//
// Scenario 1 (step < count): overlapping windows. For example, [1,2,3], [2,3,4] (count=3, step=1)
// Scenario 2 (step == count): consecutive chunks.
// Scenario 3 (step > count): gapped windows (some data is skipped in between).
func ChunkEvery[T any](seq iter.Seq[T], count, step int) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		if count <= 0 || step <= 0 {
			return
		}

		window := make([]T, 0, count)
		skip := 0

		for v := range seq {
			if skip > 0 {
				skip--
				continue
			}

			window = append(window, v)
			if len(window) < count {
				continue
			}

			if !yield(slices.Clone(window)) {
				return
			}

			if step < count {
				// keep the overlapping tail; copy handles the overlap
				n := copy(window, window[step:])
				window = window[:n]
			} else {
				window = window[:0]
				skip = step - count
			}
		}
	}
}

// Reverse materializes seq and yields its elements back to front.
func Reverse[T any](seq iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		items := Collect(seq)
		for i := len(items) - 1; i >= 0; i-- {
			if !yield(items[i]) {
				return
			}
		}
	}
}

// Distinct returns a sequence that yields only unique elements.
// It maintains a map of seen elements, so memory usage is proportional to the number of unique elements.
func Distinct[T comparable](seq iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		seen := make(map[T]struct{})
		for v := range seq {
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			if !yield(v) {
				return
			}
		}
	}
}

// Peek performs the provided action on each element of the sequence without modifying it.
// It is useful for debugging (e.g., logging) or side effects.
func Peek[T any](seq iter.Seq[T], action func(T)) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			action(v)
			if !yield(v) {
				return
			}
		}
	}
}

// Scan is similar to Reduce, but it yields the accumulated result at each step.
func Scan[T, R any](seq iter.Seq[T], initial R, reducer func(T, R) R) iter.Seq[R] {
	return func(yield func(R) bool) {
		acc := initial
		for v := range seq {
			acc = reducer(v, acc)
			if !yield(acc) {
				return
			}
		}
	}
}

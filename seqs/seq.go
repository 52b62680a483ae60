package seqs

import (
	"cmp"
	"iter"
	"slices"
)

// Of returns a sequence over the given items, in order.
func Of[T any](items ...T) iter.Seq[T] {
	return slices.Values(items)
}

// Filter applies predicate to each element of seq, yielding only those that satisfy the predicate.
func Filter[T any](seq iter.Seq[T], predicate func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if predicate(v) && !yield(v) {
				return
			}
		}
	}
}

// TryFilter returns a sequence of elements that satisfy the predicate.
// The predicate function can return an error.
//
// When the predicate fails, the element is yielded together with the error and
// the consumer decides whether to keep ranging.
func TryFilter[T any](seq iter.Seq[T], predicate func(T) (bool, error)) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for v := range seq {
			keep, err := predicate(v)
			if err != nil {
				if !yield(v, err) {
					return
				}
				continue
			}
			if keep && !yield(v, nil) {
				return
			}
		}
	}
}

// Map applies transform to each element of seq, yielding the transformed elements.
// Nothing is evaluated until the result is ranged over.
func Map[T, R any](seq iter.Seq[T], transform func(T) R) iter.Seq[R] {
	return func(yield func(R) bool) {
		for v := range seq {
			if !yield(transform(v)) {
				return
			}
		}
	}
}

// TryMap is Map for transforms that can fail. A failed element is yielded as
// the zero value of R alongside the error.
func TryMap[T, R any](seq iter.Seq[T], transform func(T) (R, error)) iter.Seq2[R, error] {
	return func(yield func(R, error) bool) {
		for v := range seq {
			if !yield(transform(v)) {
				return
			}
		}
	}
}

// Reduce folds seq from left to right, calling reducer(item, acc) for every element.
func Reduce[T, R any](seq iter.Seq[T], initial R, reducer func(T, R) R) R {
	acc := initial
	for v := range seq {
		acc = reducer(v, acc)
	}
	return acc
}

// TryReduce is Reduce with a fallible reducer. It stops at the first error and
// returns the accumulator as it was before the failing element.
func TryReduce[T, R any](seq iter.Seq[T], initial R, reducer func(T, R) (R, error)) (R, error) {
	acc := initial
	for v := range seq {
		next, err := reducer(v, acc)
		if err != nil {
			return acc, err
		}
		acc = next
	}
	return acc, nil
}

// Collect materializes seq into a slice. The result is never nil.
func Collect[T any](seq iter.Seq[T]) []T {
	return slices.AppendSeq([]T{}, seq)
}

// TryCollect materializes seq, stopping at the first error.
func TryCollect[T any](seq iter.Seq2[T, error]) ([]T, error) {
	out := []T{}
	for v, err := range seq {
		if err != nil {
			return out, err
		}
		out = append(out, v)
	}
	return out, nil
}

// Sort materializes seq and returns its elements in ascending order.
func Sort[T cmp.Ordered](seq iter.Seq[T]) []T {
	out := Collect(seq)
	slices.Sort(out)
	return out
}

// SortFunc is Sort with a custom comparison. The sort is stable.
func SortFunc[T any](seq iter.Seq[T], compare func(a, b T) int) []T {
	out := Collect(seq)
	slices.SortStableFunc(out, compare)
	return out
}

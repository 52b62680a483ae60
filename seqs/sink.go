package seqs

import "iter"

// First returns the first element of seq, or ErrEmptySequence if there is none.
func First[T any](seq iter.Seq[T]) (T, error) {
	for v := range seq {
		return v, nil
	}
	var zero T
	return zero, ErrEmptySequence
}

func Last[T any](seq iter.Seq[T]) (T, bool) {
	var last T
	found := false
	for v := range seq {
		last = v
		found = true
	}
	return last, found
}

// Any reports whether some element satisfies predicate. It stops at the first match
// and is false for an empty sequence.
func Any[T any](seq iter.Seq[T], predicate func(T) bool) bool {
	for v := range seq {
		if predicate(v) {
			return true
		}
	}
	return false
}

// All reports whether every element satisfies predicate. It stops at the first miss
// and is true for an empty sequence.
func All[T any](seq iter.Seq[T], predicate func(T) bool) bool {
	for v := range seq {
		if !predicate(v) {
			return false
		}
	}
	return true
}

func Count[T any](seq iter.Seq[T]) int {
	return CountFunc(seq, nil)
}

// CountFunc counts the elements satisfying predicate. A nil predicate counts every element.
func CountFunc[T any](seq iter.Seq[T], predicate func(T) bool) int {
	if predicate == nil {
		predicate = func(T) bool { return true }
	}
	return Reduce(seq, 0, func(v T, acc int) int {
		if predicate(v) {
			return acc + 1
		}
		return acc
	})
}

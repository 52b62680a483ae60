package seqs

import "iter"

type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Sum adds up all elements, starting from zero.
func Sum[T Number](seq iter.Seq[T]) T {
	return Reduce(seq, T(0), func(v, acc T) T { return acc + v })
}

// Product multiplies all elements, starting from one.
func Product[T Number](seq iter.Seq[T]) T {
	return Reduce(seq, T(1), func(v, acc T) T { return acc * v })
}

func Min[T Number](seq iter.Seq[T]) (T, bool) {
	var min T
	found := false
	for v := range seq {
		if !found || v < min {
			min = v
			found = true
		}
	}
	return min, found
}

func Max[T Number](seq iter.Seq[T]) (T, bool) {
	var max T
	found := false
	for v := range seq {
		if !found || v > max {
			max = v
			found = true
		}
	}
	return max, found
}

package sliceutil

// Filter returns a new slice containing all elements of the collection that satisfy the predicate.
func Filter[T any](collection []T, predicate func(T) bool) []T {
	if len(collection) == 0 {
		return []T{}
	}
	// BCE hint: avoid bounds check in loop
	_ = collection[len(collection)-1]

	res := make([]T, 0, len(collection)/2)
	for _, v := range collection {
		if predicate(v) {
			res = append(res, v)
		}
	}
	return res
}

// Map transforms a slice of type T to a slice of type R.
func Map[T any, R any](collection []T, transform func(T) R) []R {
	if len(collection) == 0 {
		return []R{}
	}
	_ = collection[len(collection)-1]

	res := make([]R, len(collection))
	for i, v := range collection {
		res[i] = transform(v)
	}
	return res
}

// TryMap is Map with a fallible transform. It returns at the first error.
func TryMap[T any, R any](collection []T, transform func(T) (R, error)) ([]R, error) {
	res := make([]R, len(collection))
	for i, v := range collection {
		var err error
		res[i], err = transform(v)
		if err != nil {
			return nil, err
		}
	}
	return res, nil
}

// Reduce folds the slice from left to right with reducer(item, acc),
// the same argument order as seqs.Reduce.
func Reduce[T any, R any](collection []T, initial R, reducer func(T, R) R) R {
	result := initial
	for _, item := range collection {
		result = reducer(item, result)
	}
	return result
}

// RemoveAt returns a copy of collection without the element at index.
// The remaining elements keep their order. An index outside the slice
// yields an unchanged copy.
func RemoveAt[T any](collection []T, index int) []T {
	if index < 0 || index >= len(collection) {
		return append([]T{}, collection...)
	}
	res := make([]T, 0, len(collection)-1)
	res = append(res, collection[:index]...)
	return append(res, collection[index+1:]...)
}

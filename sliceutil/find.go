package sliceutil

// Contains checks if the target element exists in the collection.
// Works for comparable types.
func Contains[T comparable](collection []T, target T) bool {
	return FindIndex(collection, func(v T) bool { return v == target }) >= 0
}

// Find searches for the first element that satisfies the predicate.
// Returns the element and true if found, otherwise returns the zero value and false.
func Find[T any](collection []T, predicate func(T) bool) (T, bool) {
	if i := FindIndex(collection, predicate); i >= 0 {
		return collection[i], true
	}
	var zero T
	return zero, false
}

// FindIndex searches for the index of the first element that satisfies the predicate.
// Returns the index if found, otherwise returns -1.
func FindIndex[T any](collection []T, predicate func(T) bool) int {
	for i, item := range collection {
		if predicate(item) {
			return i
		}
	}
	return -1
}

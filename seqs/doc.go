/*
Package seqs provides lazy sequence primitives on top of Go 1.23+ iterators (iter.Seq).

Sequences are pulled on demand: nothing upstream runs until a terminal operation
ranges over the result. The package is grouped as:

  - **Transformations**: [Map], [Filter], [FlatMap], [Concat], [Peek], [Distinct].
  - **Reshaping**: [Zip], [Unzip], [ChunkEvery], [Reverse], [WithIndex].
  - **Reductions**: [Reduce], [Sum], [Product], [Count], [CountFunc], [All], [Any], [Min], [Max].
  - **Terminals**: [Collect], [Sort], [First], [Last].
  - **Flow Control**: [Take], [Skip], [TakeWhile], [DropWhile].

# Reduce argument order

[Reduce] and [Scan] call the reducer with the item first and the accumulator second:

	total := seqs.Reduce(input, 0, func(item, acc int) int {
		return acc + item
	})

# Numeric types

[Sum] and [Product] accumulate in the element type. Sequences mixing integers and
floats have to be mapped to float64 first; there is no implicit widening.

# Error Handling

The "Try" variants (e.g., [TryMap], [TryFilter], [TryCollect]) carry errors inside the
stream as iter.Seq2[T, error]. [First] reports [ErrEmptySequence] instead of
returning a zero value.
*/
package seqs

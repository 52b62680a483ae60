// Package day01 solves "Historian Hysteria": two columns of location IDs
// compared by pairwise distance and by similarity score.
package day01

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"advent/internal/puzzle"
	"advent/seqs"
	"advent/strutil"
)

var Puzzle = puzzle.Day{Year: 2024, Day: 1, Title: "Historian Hysteria", Solve: Solve}

func Solve(lines iter.Seq[string]) (puzzle.Answer, error) {
	left, right, err := parse(lines)
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.Answer{
		Part1: seqs.Sum(distances(left, right)),
		Part2: seqs.Sum(similarities(left, right)),
	}, nil
}

func parse(lines iter.Seq[string]) ([]int, []int, error) {
	rows, err := seqs.TryCollect(seqs.TryMap(seqs.Filter(lines, notBlank), parseRow))
	if err != nil {
		return nil, nil, err
	}
	left, right := seqs.Unzip(slices.Values(rows))
	return left, right, nil
}

func parseRow(line string) (seqs.Pair[int, int], error) {
	ids := seqs.Collect(seqs.Map(strutil.Split(line, " ", strutil.Trim()), strutil.ToInt))
	if len(ids) != 2 {
		return seqs.Pair[int, int]{}, fmt.Errorf("%w: want two location IDs, got %q", puzzle.ErrMalformedInput, strings.TrimSpace(line))
	}
	return seqs.Pair[int, int]{V1: ids[0], V2: ids[1]}, nil
}

// distances pairs the smallest IDs of both lists, then the second smallest, and so on.
func distances(left, right []int) iter.Seq[int] {
	sorted := seqs.Zip(slices.Values(seqs.Sort(slices.Values(left))), slices.Values(seqs.Sort(slices.Values(right))))
	return seqs.Map(sorted, func(p seqs.Pair[int, int]) int {
		return abs(p.V1 - p.V2)
	})
}

// similarities scores every left ID by how often it occurs on the right.
func similarities(left, right []int) iter.Seq[int] {
	return seqs.Map(slices.Values(left), func(id int) int {
		return id * seqs.CountFunc(slices.Values(right), func(x int) bool { return x == id })
	})
}

func notBlank(line string) bool {
	return strings.TrimSpace(line) != ""
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Package day02 solves "Red-Nosed Reports": counting reports whose levels
// move steadily in one direction, with and without the problem dampener.
package day02

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"advent/internal/puzzle"
	"advent/seqs"
	"advent/sliceutil"
	"advent/strutil"
)

var Puzzle = puzzle.Day{Year: 2024, Day: 2, Title: "Red-Nosed Reports", Solve: Solve}

const maxStep = 3

func Solve(lines iter.Seq[string]) (puzzle.Answer, error) {
	reports, err := seqs.TryCollect(seqs.TryMap(seqs.Filter(lines, notBlank), parseReport))
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.Answer{
		Part1: seqs.CountFunc(slices.Values(reports), safe),
		Part2: seqs.CountFunc(slices.Values(reports), safeDampened),
	}, nil
}

func parseReport(line string) ([]int, error) {
	levels, err := sliceutil.TryMap(seqs.Collect(strutil.Split(line, " ", strutil.Trim())), strutil.ParseInt)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", puzzle.ErrMalformedInput, err)
	}
	return levels, nil
}

// safe reports whether the levels are strictly monotonic with steps of at most maxStep.
// Increasing reports are checked back to front so only the decreasing case is needed.
func safe(levels []int) bool {
	if len(levels) < 2 {
		return true
	}

	seq := slices.Values(levels)
	if levels[0] < levels[1] {
		seq = seqs.Reverse(seq)
	}
	return !seqs.Any(seqs.ChunkEvery(seq, 2, 1), func(w []int) bool {
		step := w[0] - w[1]
		return step <= 0 || step > maxStep
	})
}

// safeDampened also accepts reports that become safe once a single level is removed.
func safeDampened(levels []int) bool {
	return safe(levels) || seqs.Any(withoutEach(levels), safe)
}

// withoutEach yields a copy of levels for each index, with that level removed.
func withoutEach(levels []int) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		for i := range seqs.WithIndex(slices.Values(levels)) {
			if !yield(sliceutil.RemoveAt(levels, i)) {
				return
			}
		}
	}
}

func notBlank(line string) bool {
	return strings.TrimSpace(line) != ""
}

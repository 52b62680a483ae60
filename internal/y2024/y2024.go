// Package y2024 registers the 2024 puzzles.
package y2024

import (
	"advent/internal/puzzle"
	"advent/internal/y2024/day01"
	"advent/internal/y2024/day02"
	"advent/internal/y2024/day03"
)

// Days returns every solved 2024 puzzle.
func Days() []puzzle.Day {
	return []puzzle.Day{
		day01.Puzzle,
		day02.Puzzle,
		day03.Puzzle,
	}
}

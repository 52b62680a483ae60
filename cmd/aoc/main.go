// Command aoc runs the Advent of Code puzzle solvers.
package main

import (
	"os"

	"advent/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

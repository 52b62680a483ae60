// Package day03 solves "Mull It Over": summing the mul(a,b) instructions found
// in corrupted memory, optionally honouring do() and don't().
package day03

import (
	"fmt"
	"iter"
	"slices"

	"advent/internal/puzzle"
	"advent/regex"
	"advent/seqs"
	"advent/strutil"
)

var Puzzle = puzzle.Day{Year: 2024, Day: 3, Title: "Mull It Over", Solve: Solve}

// The alternatives are told apart by how many groups a match carries:
// mul has 2, do has 3 and don't has 4.
var instructionPattern = regex.MustCompile(`mul\((\d+,\d+)\)|(do)\(\)|(don't)\(\)`)

type op int

const (
	opMul op = iota
	opEnable
	opDisable
)

type instruction struct {
	op    op
	value int
}

func Solve(lines iter.Seq[string]) (puzzle.Answer, error) {
	program, err := parse(strutil.Join(lines, ""))
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.Answer{
		Part1: sumAll(slices.Values(program)),
		Part2: sumEnabled(slices.Values(program)),
	}, nil
}

func parse(memory string) ([]instruction, error) {
	return seqs.TryCollect(seqs.TryMap(instructionPattern.Scan(memory), decode))
}

func decode(m regex.Match) (instruction, error) {
	switch len(m) {
	case 2:
		factors := seqs.Map(strutil.Split(m.Text(1), ",", strutil.Trim()), strutil.ToInt)
		return instruction{op: opMul, value: seqs.Product(factors)}, nil
	case 3:
		return instruction{op: opEnable}, nil
	case 4:
		return instruction{op: opDisable}, nil
	default:
		return instruction{}, fmt.Errorf("%w: unexpected match %q", puzzle.ErrMalformedInput, m.Text(0))
	}
}

func sumAll(program iter.Seq[instruction]) int {
	return seqs.Sum(seqs.Map(program, func(in instruction) int { return in.value }))
}

// sumEnabled adds up mul results while enabled; execution starts enabled.
func sumEnabled(program iter.Seq[instruction]) int {
	state := seqs.Reduce(program, seqs.Pair[int, bool]{V1: 0, V2: true}, func(in instruction, acc seqs.Pair[int, bool]) seqs.Pair[int, bool] {
		switch in.op {
		case opEnable:
			acc.V2 = true
		case opDisable:
			acc.V2 = false
		default:
			if acc.V2 {
				acc.V1 += in.value
			}
		}
		return acc
	})
	return state.V1
}

// Package puzzle defines what a daily solver looks like and how it is run
// against an input file.
package puzzle

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"advent/reader"
	"advent/seqs"
	"advent/sliceutil"
)

var (
	// ErrUnknownDay is returned when a lookup matches no registered day.
	ErrUnknownDay = errors.New("unknown puzzle day")
	// ErrMalformedInput is returned by solvers for input they cannot parse.
	ErrMalformedInput = errors.New("malformed input")
)

// Answer holds the results of both parts of a puzzle.
type Answer struct {
	Part1 int
	Part2 int
}

// WriteTo prints the answer as "Part1: <n>" and "Part2: <n>" lines.
func (a Answer) WriteTo(w io.Writer) (int64, error) {
	n, err := fmt.Fprintf(w, "Part1: %d\nPart2: %d\n", a.Part1, a.Part2)
	return int64(n), err
}

// SolveFunc computes both answers from the raw input lines.
// Lines still carry their line terminators.
type SolveFunc func(lines iter.Seq[string]) (Answer, error)

// Day is one registered puzzle.
type Day struct {
	Year  int
	Day   int
	Title string
	Solve SolveFunc
}

// Name is the command name of the day, e.g. "day01".
func (d Day) Name() string {
	return fmt.Sprintf("day%02d", d.Day)
}

// Registry is an ordered set of days.
type Registry struct {
	days []Day
}

// NewRegistry returns a registry holding days sorted by year and day.
func NewRegistry(days ...Day) *Registry {
	return &Registry{days: seqs.SortFunc(seqs.Of(days...), func(a, b Day) int {
		if a.Year != b.Year {
			return a.Year - b.Year
		}
		return a.Day - b.Day
	})}
}

// Days returns the registered days in order.
func (r *Registry) Days() []Day {
	return append([]Day(nil), r.days...)
}

// Lookup finds a day by name. "day01", "01" and "1" all select day 1.
func (r *Registry) Lookup(name string) (Day, error) {
	n, err := strconv.Atoi(strings.TrimPrefix(strings.ToLower(name), "day"))
	if err == nil {
		if d, ok := sliceutil.Find(r.days, func(d Day) bool { return d.Day == n }); ok {
			return d, nil
		}
	}
	return Day{}, fmt.Errorf("%w: %q", ErrUnknownDay, name)
}

// Run solves d with the lines of r and writes the answer to w.
// Every input line is logged at debug level.
func Run(d Day, r *reader.Reader, w io.Writer, logger *slog.Logger) (Answer, error) {
	start := time.Now()
	count := 0
	lines := seqs.Peek(r.Lines(), func(line string) {
		count++
		logger.Debug("input line", "day", d.Name(), "n", count, "line", strings.TrimRight(line, "\r\n"))
	})

	answer, err := d.Solve(lines)
	if rerr := r.Err(); rerr != nil {
		return Answer{}, rerr
	}
	if err != nil {
		return Answer{}, fmt.Errorf("%s: %w", d.Name(), err)
	}

	logger.Debug("solved",
		"day", d.Name(),
		"input", r.Path(),
		"lines", count,
		"elapsed", time.Since(start),
	)

	if _, err := answer.WriteTo(w); err != nil {
		return Answer{}, fmt.Errorf("writing answer: %w", err)
	}
	return answer, nil
}

// Package reader streams the lines of an input file.
package reader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
)

var (
	// ErrUnreadable is returned when the input file cannot be opened or read.
	ErrUnreadable = errors.New("reader: unable to read file")
	// ErrMissingPath is returned by FromArgs when no path was given.
	ErrMissingPath = errors.New("reader: missing input file path")
)

// Reader reads one file line by line. The file is only held open while a
// sequence returned by Read or Lines is being ranged over.
type Reader struct {
	path string
	err  error
}

// New returns a Reader for path. The file is not opened until it is read.
func New(path string) *Reader {
	return &Reader{path: path}
}

// FromArgs returns a Reader for the first positional argument.
func FromArgs(args []string) (*Reader, error) {
	if len(args) == 0 || args[0] == "" {
		return nil, ErrMissingPath
	}
	return New(args[0]), nil
}

// Path returns the file path.
func (r *Reader) Path() string {
	return r.path
}

// Read yields the lines of the file in order, each with its trailing line
// terminator as found in the file; only the last line may lack one. A failure
// to open or read the file is yielded once as an error and ends the sequence.
// The file is closed when the sequence ends, including when the consumer
// stops early.
func (r *Reader) Read() iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		f, err := os.Open(r.path)
		if err != nil {
			yield("", fmt.Errorf("%w %q: %w", ErrUnreadable, r.path, err))
			return
		}
		defer f.Close()

		br := bufio.NewReader(f)
		for {
			line, err := br.ReadString('\n')
			if line != "" && !yield(line, nil) {
				return
			}
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				yield("", fmt.Errorf("%w %q: %w", ErrUnreadable, r.path, err))
				return
			}
		}
	}
}

// Lines is Read without the error channel, in the style of bufio.Scanner:
// the sequence ends at the first error, which is then reported by Err.
func (r *Reader) Lines() iter.Seq[string] {
	return func(yield func(string) bool) {
		r.err = nil
		for line, err := range r.Read() {
			if err != nil {
				r.err = err
				return
			}
			if !yield(line) {
				return
			}
		}
	}
}

// Err returns the error that ended the last Lines sequence, if any.
func (r *Reader) Err() error {
	return r.err
}

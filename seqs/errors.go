package seqs

import "errors"

// ErrEmptySequence is returned when a terminal operation needs at least one element.
var ErrEmptySequence = errors.New("seqs: empty sequence")

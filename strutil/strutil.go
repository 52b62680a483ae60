// Package strutil holds the tokenizing helpers used to turn puzzle input lines into values.
package strutil

import (
	"errors"
	"fmt"
	"iter"
	"strconv"
	"strings"

	"advent/seqs"
)

// ErrNotInteger is returned by ParseInt for tokens that are not base-10 integers.
var ErrNotInteger = errors.New("strutil: not an integer")

type splitOptions struct {
	trim    bool
	noEmpty bool
}

// SplitOption configures Split.
type SplitOption func(*splitOptions)

// Trim strips surrounding whitespace from every token before empty tokens are dropped.
func Trim() SplitOption {
	return func(o *splitOptions) { o.trim = true }
}

// KeepEmpty keeps empty tokens in the output.
func KeepEmpty() SplitOption {
	return func(o *splitOptions) { o.noEmpty = false }
}

// Split lazily splits text around every separator. Empty tokens are dropped
// unless KeepEmpty is given.
//
//	Split("3   1   2", " ", Trim()) // "3", "1", "2"
func Split(text, separator string, opts ...SplitOption) iter.Seq[string] {
	o := splitOptions{noEmpty: true}
	for _, opt := range opts {
		opt(&o)
	}

	parts := strings.SplitSeq(text, separator)
	if o.trim {
		parts = seqs.Map(parts, strings.TrimSpace)
	}
	if o.noEmpty {
		parts = seqs.Filter(parts, NotEmpty)
	}
	return parts
}

// Fields splits s on whitespace runs.
func Fields(s string) iter.Seq[string] {
	return strings.FieldsSeq(s)
}

// NotEmpty reports whether s has any characters.
func NotEmpty(s string) bool {
	return s != ""
}

// ToInt converts a token to an int the permissive way: leading whitespace and
// an optional sign are accepted, parsing stops at the first non-digit, and a
// token without leading digits converts to 0. Values that overflow saturate.
func ToInt(token string) int {
	s := strings.TrimLeft(token, " \t\n\r\v\f")
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0
	}

	// Atoi clamps out-of-range values, so the error can only be a range error
	n, _ := strconv.Atoi(s[:end])
	return n
}

// ParseInt converts a token to an int, failing with ErrNotInteger unless the
// whole token (surrounding whitespace aside) is a base-10 integer.
func ParseInt(token string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(token))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotInteger, token)
	}
	return n, nil
}

// Join concatenates values with separator between elements.
func Join(values iter.Seq[string], separator string) string {
	var b strings.Builder
	first := true
	for v := range values {
		if !first {
			b.WriteString(separator)
		}
		b.WriteString(v)
		first = false
	}
	return b.String()
}

// Package regex scans text with a regular expression and reports every match
// as an ordered record of its capture groups.
package regex

import (
	"errors"
	"fmt"
	"iter"
	"regexp"

	"advent/seqs"
)

// ErrInvalidPattern is returned when a pattern does not compile.
var ErrInvalidPattern = errors.New("regex: invalid pattern")

// Group is one capture group of a match. Valid is false when the group did
// not take part in the match, which is different from matching "".
type Group struct {
	Text  string
	Valid bool
}

// Match holds the groups of one match: index 0 is the whole match, followed by
// the capture groups in pattern order. Unmatched groups at the end are left
// out, so len(m) tells which alternative of the pattern matched.
type Match []Group

// Text returns the text of group i, or "" when it is absent.
func (m Match) Text(i int) string {
	if i < 0 || i >= len(m) {
		return ""
	}
	return m[i].Text
}

// Has reports whether group i took part in the match.
func (m Match) Has(i int) bool {
	return i >= 0 && i < len(m) && m[i].Valid
}

// Scanner is a compiled pattern.
type Scanner struct {
	re *regexp.Regexp
}

// Compile parses pattern using RE2 syntax.
func Compile(pattern string) (*Scanner, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPattern, err)
	}
	return &Scanner{re: re}, nil
}

// MustCompile is like Compile but panics if the pattern is invalid.
func MustCompile(pattern string) *Scanner {
	s, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return s
}

// String returns the source pattern.
func (s *Scanner) String() string {
	return s.re.String()
}

// Scan lazily yields the matches of s in text, left to right.
func (s *Scanner) Scan(text string) iter.Seq[Match] {
	return func(yield func(Match) bool) {
		// a negative limit lets FindAllStringSubmatchIndex return every match
		for _, loc := range s.re.FindAllStringSubmatchIndex(text, -1) {
			if !yield(toMatch(text, loc)) {
				return
			}
		}
	}
}

// Scan compiles pattern and returns all of its matches in text.
// No match at all is an empty result, not an error.
func Scan(pattern, text string) ([]Match, error) {
	s, err := Compile(pattern)
	if err != nil {
		return nil, err
	}
	return seqs.Collect(s.Scan(text)), nil
}

func toMatch(text string, loc []int) Match {
	groups := len(loc) / 2
	// trim trailing groups that did not participate
	for groups > 1 && loc[2*(groups-1)] < 0 {
		groups--
	}

	m := make(Match, groups)
	for i := range m {
		start, end := loc[2*i], loc[2*i+1]
		if start < 0 {
			continue
		}
		m[i] = Group{Text: text[start:end], Valid: true}
	}
	return m
}

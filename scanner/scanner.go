// SPDX-License-Identifier: MIT
package scanner

import (
	"iter"

	"gitlab.com/fisherprime/calibration/trie"
)

type (
	// Scanner yields the digit tokens of a single line from left to right.
	//
	// A Scanner is single-pass & is owned by one caller.
	Scanner struct {
		opts Opts

		trie *trie.Trie[int]
		line string

		// pos is the cursor; it only grows.
		pos int

		matchCounter int
	}
)

// New creates a new scanner for the input line.
func New(t *trie.Trie[int], line string, options ...Option) *Scanner {
	s := &Scanner{opts: *NewOpts(), trie: t, line: line}

	for _, opt := range options {
		opt(&s.opts)
	}
	s.opts.Validate()

	return s
}

// Pos obtains the cursor position.
func (s *Scanner) Pos() int { return s.pos }

// Matches obtains the number of Items yielded so far.
func (s *Scanner) Matches() int { return s.matchCounter }

// Next returns the next digit token in the line.
//
// The cursor moves forward by a single byte after every match attempt, not by the matched length,
// so tokens sharing characters (e.g. "eightwo") are all reported.
func (s *Scanner) Next() (item Item, ok bool) {
	for s.pos < len(s.line) {
		start := s.pos
		digit, length, matched := s.trie.MatchAt(s.line, start)
		s.pos++

		if !matched {
			continue
		}

		s.matchCounter++
		item = Item{Digit: digit, Pos: start, Len: length}

		if s.opts.Debug {
			s.opts.Logger.Debugf("matched %q at %d: %d", s.line[start:start+length], start, digit)
		}

		return item, true
	}

	return
}

// All returns an iterator over the remaining Items.
func (s *Scanner) All() iter.Seq[Item] {
	return func(yield func(Item) bool) {
		for {
			item, ok := s.Next()
			if !ok || !yield(item) {
				return
			}
		}
	}
}

// Digits drains the remaining digit values.
func (s *Scanner) Digits() (digits []int) {
	digits = make([]int, 0)
	for item := range s.All() {
		digits = append(digits, item.Digit)
	}

	return
}

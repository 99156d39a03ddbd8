// SPDX-License-Identifier: MIT

// Package calibration computes calibration values from lines of text.
//
// A line's calibration value is formed from the first & last digit tokens found in it, a digit
// token being an ASCII digit `1`-`9` or its lowercase spelling `one`-`nine`.
package calibration

import (
	"gitlab.com/fisherprime/calibration/scanner"
	"gitlab.com/fisherprime/calibration/trie"
)

// words holds the spelling of each digit at index digit-1.
var words = [...]string{"one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}

// DigitEntries lists the built-in vocabulary: every digit spelled & as its ASCII character.
func DigitEntries() (entries []trie.Entry[int]) {
	entries = make([]trie.Entry[int], 0, 2*len(words))
	for index, word := range words {
		digit := index + 1
		entries = append(entries,
			trie.NewEntry(word, digit),
			trie.NewEntry(string(rune('0'+digit)), digit))
	}

	return
}

// NewDigitTrie builds a [trie.Trie] holding the built-in vocabulary.
func NewDigitTrie(options ...trie.Option[int]) *trie.Trie[int] {
	b := trie.NewBuilder(options...)
	for _, entry := range DigitEntries() {
		if err := b.Insert(entry.Key(), entry.Value()); err != nil {
			// Unreachable, the vocabulary lacks empty keys.
			panic(err)
		}
	}

	return b.Build()
}

// CalibrateDigits reports the first & last digit tokens of a line; ok is false for lines lacking
// digit tokens.
func CalibrateDigits(t *trie.Trie[int], line string, options ...scanner.Option) (first, last int, ok bool) {
	s := scanner.New(t, line, options...)

	item, ok := s.Next()
	if !ok {
		return
	}
	first, last = item.Digit, item.Digit

	for item := range s.All() {
		last = item.Digit
	}

	return
}

// Calibrate computes a line's calibration value: 10*first + last, 0 for a line lacking digit
// tokens.
func Calibrate(t *trie.Trie[int], line string, options ...scanner.Option) int {
	first, last, _ := CalibrateDigits(t, line, options...)
	return first*10 + last
}

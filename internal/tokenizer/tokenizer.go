// Package tokenizer converts extracted text into normalized term-frequency
// maps. Terms are lowercased and stemmed with the Snowball English (Porter2)
// stemmer, so two word forms that stem alike are indistinguishable in the
// index.
package tokenizer

import (
	"strings"
	"unicode"

	"github.com/kljensen/snowball/english"
)

// Stem normalizes one surface word: lowercase, then English stem.
// Query terms and indexed terms must both pass through here so lookups
// compare like with like.
func Stem(word string) string {
	return english.Stem(strings.ToLower(word), true)
}

// Frequencies scans text and returns a map from normalized term to
// occurrence count.
//
// A word accumulates while runes are alphanumeric, apostrophe, or hyphen.
// Any other rune flushes the current word; if that rune is itself not
// whitespace it is flushed as its own one-character term. Punctuation
// becoming a term is surprising but deliberate: persisted indexes were
// built with this rule and must keep matching it.
func Frequencies(text string) map[string]int {
	counts := make(map[string]int)

	flush := func(word string) {
		if word == "" {
			return
		}
		counts[Stem(word)]++
	}

	var current strings.Builder
	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '\'' || r == '-' {
			current.WriteRune(r)
			continue
		}
		flush(current.String())
		current.Reset()
		if !unicode.IsSpace(r) {
			flush(string(r))
		}
	}
	flush(current.String())

	return counts
}

// TotalCount sums all term occurrences in a frequency map. The query
// engine uses it as the term-frequency denominator.
func TotalCount(counts map[string]int) int {
	total := 0
	for _, c := range counts {
		total += c
	}
	return total
}

package textutil

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

var lowerCaser = cases.Lower(language.Und)

// Normalize prepares raw page text for keyword matching: NFKC normalization
// followed by Unicode-aware lower casing. The result is what the axis scorer
// and signal extractor operate on.
func Normalize(text string) string {
	return lowerCaser.String(norm.NFKC.String(text))
}

// Words splits text into whitespace-delimited tokens. Punctuation is kept
// attached; callers that need bare words should normalize first.
func Words(text string) []string {
	return strings.Fields(text)
}

// Sentences splits text on sentence terminators (. ! ?) and drops empty
// fragments. Whitespace around each sentence is trimmed.
func Sentences(text string) []string {
	raw := strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})
	sentences := make([]string, 0, len(raw))
	for _, s := range raw {
		s = strings.TrimSpace(s)
		if s != "" {
			sentences = append(sentences, s)
		}
	}
	return sentences
}

// CountOccurrences counts non-overlapping occurrences of term in text with
// word-boundary semantics: the characters adjacent to the match must not be
// letters or digits. Both arguments are expected to be normalized already.
func CountOccurrences(text, term string) int {
	if term == "" {
		return 0
	}
	count := 0
	offset := 0
	for {
		idx := strings.Index(text[offset:], term)
		if idx < 0 {
			break
		}
		start := offset + idx
		end := start + len(term)
		if boundaryBefore(text, start) && boundaryAfter(text, end) {
			count++
		}
		offset = end
	}
	return count
}

// ContainsAny reports whether any of the terms occurs in text with word
// boundaries, used for required-context gating of keyword entries.
func ContainsAny(text string, terms []string) bool {
	for _, t := range terms {
		if CountOccurrences(text, t) > 0 {
			return true
		}
	}
	return false
}

// UppercaseWordRatio returns the fraction of words longer than two
// characters that are fully upper case. Operates on the raw (pre-fold) text
// since casing is the signal.
func UppercaseWordRatio(text string) float64 {
	words := Words(text)
	if len(words) == 0 {
		return 0
	}
	upper := 0
	for _, w := range words {
		w = strings.TrimFunc(w, func(r rune) bool { return !unicode.IsLetter(r) && !unicode.IsDigit(r) })
		if len(w) <= 2 {
			continue
		}
		hasLetter := false
		allUpper := true
		for _, r := range w {
			if unicode.IsLetter(r) {
				hasLetter = true
				if !unicode.IsUpper(r) {
					allUpper = false
					break
				}
			}
		}
		if hasLetter && allUpper {
			upper++
		}
	}
	return float64(upper) / float64(len(words))
}

func boundaryBefore(text string, i int) bool {
	if i == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(text[:i])
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

func boundaryAfter(text string, i int) bool {
	if i >= len(text) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(text[i:])
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

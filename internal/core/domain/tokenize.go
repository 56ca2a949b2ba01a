package domain

import "strings"

// stripWhitespace removes every whitespace rune. Remote records may embed
// line breaks and spaces in the sequence text that are not part of the
// sequence itself.
func stripWhitespace(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\r', '\v', '\f':
			return -1
		}
		return r
	}, s)
}

// Tokenize decomposes raw into an ordered compound slice using the alphabet.
//
// The scan is greedy shortest-match-first: at each position substring lengths
// 1 up to alphabet.MaxCompoundLength() are tried in increasing order and the
// first resolving length wins. Alphabets whose multi-character compounds
// share a prefix with a shorter compound are therefore a design precondition
// the tokenizer does not resolve: "AB" against an alphabet holding both "A"
// and "AB" tokenizes as "A" and then fails on "B" if "B" alone is unknown.
//
// Failure is atomic. If any position fails to resolve, a
// *CompoundNotFoundError naming the substring and its 1-based position is
// returned and no partial result is kept.
func Tokenize(raw string, alphabet Alphabet) ([]Compound, error) {
	cleaned := strings.TrimSpace(stripWhitespace(raw))

	compounds := make([]Compound, 0, len(cleaned))
	maxLen := alphabet.MaxCompoundLength()

	for i := 0; i < len(cleaned); {
		matched := false
		var candidate string
		for length := 1; length <= maxLen && i+length <= len(cleaned); length++ {
			candidate = cleaned[i : i+length]
			if compound, ok := alphabet.CompoundFor(candidate); ok {
				compounds = append(compounds, compound)
				i += length
				matched = true
				break
			}
		}
		if !matched {
			return nil, &CompoundNotFoundError{Substring: candidate, Position: i + 1}
		}
	}

	return compounds, nil
}

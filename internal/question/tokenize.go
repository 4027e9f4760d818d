package question

import "strings"

// TokenizerOptions selects which punctuation survives token cleaning.
type TokenizerOptions struct {
	KeepApostrophes bool
	KeepHyphens     bool
	KeepSlashes     bool
}

// Tokenizer splits question and context text into cleaned words. Case is
// preserved; every character outside [A-Za-z0-9] and the kept punctuation is
// removed from each word, and words that end up empty are dropped.
type Tokenizer struct {
	keep string
}

// NewTokenizer builds a tokenizer for the given cleaning policy.
func NewTokenizer(opts TokenizerOptions) Tokenizer {
	var keep strings.Builder
	if opts.KeepApostrophes {
		keep.WriteByte('\'')
	}
	if opts.KeepHyphens {
		keep.WriteByte('-')
	}
	if opts.KeepSlashes {
		keep.WriteByte('/')
	}
	return Tokenizer{keep: keep.String()}
}

// Tokenize returns the cleaned, non-empty words of text in order.
func (t Tokenizer) Tokenize(text string) []string {
	fields := strings.Fields(text)
	tokens := make([]string, 0, len(fields))
	for _, field := range fields {
		if word := t.Clean(field); word != "" {
			tokens = append(tokens, word)
		}
	}
	return tokens
}

// Clean strips disallowed characters from a single word.
func (t Tokenizer) Clean(word string) string {
	return strings.Map(func(r rune) rune {
		if isASCIIAlnum(r) || (t.keep != "" && strings.ContainsRune(t.keep, r)) {
			return r
		}
		return -1
	}, word)
}

func isASCIIAlnum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

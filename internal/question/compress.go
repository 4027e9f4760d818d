package question

import (
	"cmp"
	"slices"
	"strings"
)

// Compressor rewrites questions down to their most context-specific words.
type Compressor struct {
	tokenizer Tokenizer
	length    int
}

// NewCompressor returns a compressor keeping at most length words.
func NewCompressor(tokenizer Tokenizer, length int) Compressor {
	return Compressor{tokenizer: tokenizer, length: max(length, 0)}
}

// Length returns the target question length.
func (c Compressor) Length() int {
	return c.length
}

// CompressQuestion tokenizes question and returns the selected words joined
// by single spaces.
func (c Compressor) CompressQuestion(question string, corpus, context FrequencyIndex) string {
	return strings.Join(SelectTokens(c.tokenizer.Tokenize(question), corpus, context, c.length), " ")
}

type rankedToken struct {
	position int
	score    int
}

// SelectTokens keeps the n highest scoring tokens in their original order.
// A token scores contextCount - corpusCount. Ranking is by (score, position)
// descending, so among equal scores the later word wins.
func SelectTokens(tokens []string, corpus, context FrequencyIndex, n int) []string {
	n = min(max(n, 0), len(tokens))
	if n == 0 {
		return []string{}
	}
	ranked := make([]rankedToken, len(tokens))
	for i, token := range tokens {
		ranked[i] = rankedToken{position: i, score: context.Count(token) - corpus.Count(token)}
	}
	slices.SortFunc(ranked, func(a, b rankedToken) int {
		if c := cmp.Compare(b.score, a.score); c != 0 {
			return c
		}
		return cmp.Compare(b.position, a.position)
	})

	positions := make([]int, n)
	for i := range n {
		positions[i] = ranked[i].position
	}
	slices.Sort(positions)

	selected := make([]string, n)
	for i, position := range positions {
		selected[i] = tokens[position]
	}
	return selected
}

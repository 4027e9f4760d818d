package question

import "squadtrim/internal/squad"

// FrequencyIndex counts token occurrences. It is immutable once built and
// reports zero for tokens it has never seen.
type FrequencyIndex struct {
	counts map[string]int
	total  int
}

// NewFrequencyIndex counts every token, duplicates included.
func NewFrequencyIndex(tokens []string) FrequencyIndex {
	counts := make(map[string]int, len(tokens))
	for _, token := range tokens {
		counts[token]++
	}
	return FrequencyIndex{counts: counts, total: len(tokens)}
}

// CorpusIndex counts tokens across every context in the dataset.
func CorpusIndex(dataset squad.Dataset, tokenizer Tokenizer) FrequencyIndex {
	counts := map[string]int{}
	total := 0
	for _, article := range dataset.Articles {
		for _, paragraph := range article.Paragraphs {
			for _, token := range tokenizer.Tokenize(paragraph.Context) {
				counts[token]++
				total++
			}
		}
	}
	return FrequencyIndex{counts: counts, total: total}
}

// ContextIndex counts tokens of a single context.
func ContextIndex(context string, tokenizer Tokenizer) FrequencyIndex {
	return NewFrequencyIndex(tokenizer.Tokenize(context))
}

// Count returns how often token occurred.
func (f FrequencyIndex) Count(token string) int {
	return f.counts[token]
}

// Total returns the number of counted tokens.
func (f FrequencyIndex) Total() int {
	return f.total
}

// Vocabulary returns the number of distinct tokens.
func (f FrequencyIndex) Vocabulary() int {
	return len(f.counts)
}

package question

import (
	"strings"

	"squadtrim/internal/squad"
)

// Stats summarizes a dataset compression pass.
type Stats struct {
	Paragraphs     int
	Questions      int
	TokensBefore   int
	TokensAfter    int
	CorpusTokens   int
	CorpusDistinct int
}

// AverageBefore returns the mean tokenized question length before compression.
func (s Stats) AverageBefore() float64 {
	return average(s.TokensBefore, s.Questions)
}

// AverageAfter returns the mean question length after compression.
func (s Stats) AverageAfter() float64 {
	return average(s.TokensAfter, s.Questions)
}

func average(total, count int) float64 {
	if count == 0 {
		return 0
	}
	return float64(total) / float64(count)
}

// CompressDataset returns a copy of dataset with every question replaced by
// its compressed form. The corpus index is built once; context counts are
// rebuilt for each paragraph.
func (c Compressor) CompressDataset(dataset squad.Dataset) (squad.Dataset, Stats) {
	out := dataset.Clone()
	corpus := CorpusIndex(dataset, c.tokenizer)
	stats := Stats{CorpusTokens: corpus.Total(), CorpusDistinct: corpus.Vocabulary()}

	for a := range out.Articles {
		paragraphs := out.Articles[a].Paragraphs
		for p := range paragraphs {
			context := ContextIndex(paragraphs[p].Context, c.tokenizer)
			stats.Paragraphs++
			for q := range paragraphs[p].QAs {
				qa := &paragraphs[p].QAs[q]
				tokens := c.tokenizer.Tokenize(qa.Question)
				selected := SelectTokens(tokens, corpus, context, c.length)
				qa.Question = strings.Join(selected, " ")
				stats.Questions++
				stats.TokensBefore += len(tokens)
				stats.TokensAfter += len(selected)
			}
		}
	}
	return out, stats
}

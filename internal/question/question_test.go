package question

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"squadtrim/internal/squad"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		opts TokenizerOptions
		text string
		want []string
	}{
		{name: "empty input", text: "", want: []string{}},
		{name: "strips punctuation and keeps case", text: "What does the fox do?", want: []string{"What", "does", "the", "fox", "do"}},
		{name: "drops tokens that clean to nothing", text: "Who - wrote it ?", want: []string{"Who", "wrote", "it"}},
		{name: "strips apostrophes by default", text: "Einstein's year", want: []string{"Einsteins", "year"}},
		{name: "keeps apostrophes when asked", opts: TokenizerOptions{KeepApostrophes: true}, text: "Einstein's year", want: []string{"Einstein's", "year"}},
		{name: "keeps hyphens and slashes when asked", opts: TokenizerOptions{KeepHyphens: true, KeepSlashes: true}, text: "well-known and/or (x)", want: []string{"well-known", "and/or", "x"}},
		{name: "non-ascii letters are stripped", text: "café über", want: []string{"caf", "ber"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := NewTokenizer(tc.opts).Tokenize(tc.text)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestFrequencyIndexCounts(t *testing.T) {
	index := NewFrequencyIndex([]string{"fox", "the", "fox"})
	assert.Equal(t, 2, index.Count("fox"))
	assert.Equal(t, 1, index.Count("the"))
	assert.Equal(t, 0, index.Count("unseen"))
	assert.Equal(t, 3, index.Total())
	assert.Equal(t, 2, index.Vocabulary())
}

func TestCorpusIndexUsesQuestionTokenizer(t *testing.T) {
	dataset := squad.Dataset{Articles: []squad.Article{{Paragraphs: []squad.Paragraph{
		{Context: "The fox. The end."},
		{Context: "fox, fox!"},
	}}}}
	corpus := CorpusIndex(dataset, NewTokenizer(TokenizerOptions{}))
	assert.Equal(t, 3, corpus.Count("fox"))
	assert.Equal(t, 2, corpus.Count("The"))
	assert.Equal(t, 0, corpus.Count("fox,"))
	assert.Equal(t, 6, corpus.Total())
}

// scoreFixture mirrors a question whose stopword is far more common in the
// corpus than in its own context.
func scoreFixture() (FrequencyIndex, FrequencyIndex) {
	corpus := NewFrequencyIndex(append(append(repeat("the", 50), repeat("fox", 3)...), "jumps"))
	context := NewFrequencyIndex([]string{"the", "the", "fox", "jumps"})
	return corpus, context
}

func repeat(token string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = token
	}
	return out
}

func TestSelectTokensScoresAndBreaksTiesByLaterPosition(t *testing.T) {
	corpus, context := scoreFixture()
	tokens := []string{"What", "does", "the", "fox", "do"}

	// What, does and do all score 0; ties go to the later word.
	assert.Equal(t, []string{"What", "does", "do"}, SelectTokens(tokens, corpus, context, 3))
	assert.Equal(t, []string{"does", "do"}, SelectTokens(tokens, corpus, context, 2))
	assert.Equal(t, []string{"What", "does", "fox", "do"}, SelectTokens(tokens, corpus, context, 4))
}

func TestSelectTokensBounds(t *testing.T) {
	corpus, context := scoreFixture()
	tokens := []string{"What", "does", "the", "fox", "do"}

	assert.Empty(t, SelectTokens(tokens, corpus, context, 0))
	assert.Empty(t, SelectTokens(tokens, corpus, context, -1))
	assert.Equal(t, tokens, SelectTokens(tokens, corpus, context, 5))
	assert.Equal(t, tokens, SelectTokens(tokens, corpus, context, 50))
	assert.Empty(t, SelectTokens(nil, corpus, context, 3))
}

func TestCompressQuestionLengthProperty(t *testing.T) {
	corpus, context := scoreFixture()
	tokenizer := NewTokenizer(TokenizerOptions{})
	questions := []string{
		"What does the fox do?",
		"Why?",
		"",
		"When did the quick brown fox jump over the lazy dog, and why?",
	}
	for _, question := range questions {
		tokens := tokenizer.Tokenize(question)
		for n := 0; n <= len(tokens)+2; n++ {
			compressed := NewCompressor(tokenizer, n).CompressQuestion(question, corpus, context)
			got := tokenizer.Tokenize(compressed)
			require.Len(t, got, min(n, len(tokens)), "question %q n=%d", question, n)
			if n >= len(tokens) {
				assert.Equal(t, strings.Join(tokens, " "), compressed)
			}
		}
	}
}

func TestCompressDataset(t *testing.T) {
	source := squad.Dataset{
		Version: "1.1",
		Articles: []squad.Article{{Paragraphs: []squad.Paragraph{
			{
				Context: "Paris is the capital of France.",
				QAs:     []squad.QA{{ID: "p", Question: "What is the capital of France?"}},
			},
			{
				Context: "Berlin is the capital of Germany. Berlin is big.",
				QAs: []squad.QA{
					{ID: "b1", Question: "Is Berlin the capital?"},
					{ID: "b2", Question: "?"},
				},
			},
		}}},
	}

	compressor := NewCompressor(NewTokenizer(TokenizerOptions{}), 3)
	compressed, stats := compressor.CompressDataset(source)

	qas := compressed.Articles[0].Paragraphs[1].QAs
	assert.Equal(t, "Is Berlin capital", qas[0].Question)
	assert.Equal(t, "", qas[1].Question)
	assert.Equal(t, "What is the capital of France?", source.Articles[0].Paragraphs[0].QAs[0].Question)
	assert.Equal(t, "1.1", compressed.Version)

	assert.Equal(t, 3, stats.Questions)
	assert.Equal(t, 2, stats.Paragraphs)
	assert.Equal(t, 10, stats.TokensBefore)
	assert.Equal(t, 6, stats.TokensAfter)
	assert.InDelta(t, 2.0, stats.AverageAfter(), 1e-9)
}

func TestCompressDatasetSingleParagraphKeepsLastWords(t *testing.T) {
	source := squad.Dataset{Articles: []squad.Article{{Paragraphs: []squad.Paragraph{{
		Context: "The quick brown fox jumps.",
		QAs:     []squad.QA{{ID: "q", Question: "What does the fox do?"}},
	}}}}}

	compressed, _ := NewCompressor(NewTokenizer(TokenizerOptions{}), 3).CompressDataset(source)
	// With a single context every score is zero, so the last three words win.
	assert.Equal(t, "the fox do", compressed.Articles[0].Paragraphs[0].QAs[0].Question)
}

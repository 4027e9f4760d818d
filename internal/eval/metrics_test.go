package eval

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"squadtrim/internal/squad"
)

func TestNormalizeAnswer(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "A, the Quick-Fox.", want: "quickfox"},
		{in: "  The   Eiffel  Tower ", want: "eiffel tower"},
		{in: "Seattle, WA", want: "seattle wa"},
		{in: "an apple a day", want: "apple day"},
		{in: "Theory of an Anthem", want: "theory of anthem"},
		{in: "ÉCOLE Normale", want: "école normale"},
		{in: "", want: ""},
		{in: "the", want: ""},
		{in: "the–war", want: "–war"},
		{in: "1990–the present", want: "1990– present"},
		{in: "the’s", want: "’s"},
		{in: "«the» story", want: "« » story"},
		{in: "the the a an", want: ""},
		{in: "theatre anthem", want: "theatre anthem"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, NormalizeAnswer(tc.in), "normalize %q", tc.in)
	}
}

func TestNormalizeAnswerIdempotent(t *testing.T) {
	inputs := []string{"A, the Quick-Fox.", "the the a", "Rock 'n' Roll", "  x\ty\nz  ", "a.the", "the–war", "a—the—an"}
	for _, in := range inputs {
		once := NormalizeAnswer(in)
		assert.Equal(t, once, NormalizeAnswer(once), "input %q", in)
	}
}

func TestExactMatchAndF1(t *testing.T) {
	assert.True(t, ExactMatch("The Seattle", "seattle"))
	assert.False(t, ExactMatch("Seattle", "Seattle, WA"))
	assert.True(t, ExactMatch("the–war", "–war"))

	assert.Equal(t, 1.0, F1("Denver Broncos", "the denver broncos"))
	assert.Equal(t, 0.0, F1("Carolina Panthers", "Denver Broncos"))
	assert.Equal(t, 0.0, F1("", "Denver"))

	// prediction {denver, broncos, won}, truth {denver, broncos}: p=2/3, r=1.
	assert.InDelta(t, 0.8, F1("Denver Broncos won", "Denver Broncos"), 1e-9)

	// Shared tokens are counted as a multiset.
	assert.InDelta(t, 2*0.5*1.0/1.5, F1("go go", "go"), 1e-9)
}

func TestBestOverGroundTruths(t *testing.T) {
	truths := []string{"Seattle, WA", "seattle"}
	assert.Equal(t, 1.0, BestExactMatch("Seattle", truths))
	assert.Equal(t, 1.0, BestF1("Seattle", truths))

	assert.Equal(t, 0.0, BestExactMatch("Seattle", nil))
	assert.Equal(t, 0.0, BestF1("Seattle", nil))
	assert.InDelta(t, 2.0/3.0, BestF1("Seattle", []string{"Seattle, WA"}), 1e-9)
}

func evalDataset() squad.Dataset {
	return squad.Dataset{Version: "1.1", Articles: []squad.Article{{Paragraphs: []squad.Paragraph{
		{
			Context: "Seattle is in Washington.",
			QAs: []squad.QA{
				{ID: "q1", Question: "Where?", Answers: []squad.Answer{{Text: "Seattle, WA"}, {Text: "seattle"}}},
				{ID: "q2", Question: "Which state?", Answers: []squad.Answer{{Text: "Washington"}}},
			},
		},
		{
			Context: "Denver won.",
			QAs: []squad.QA{
				{ID: "q3", Question: "Who won?", Answers: []squad.Answer{{Text: "Denver Broncos"}}},
				{ID: "q4", Question: "Who lost?", Answers: []squad.Answer{{Text: "Carolina"}}},
			},
		},
	}}}}
}

func TestEvaluate(t *testing.T) {
	predictions := squad.Predictions{
		"q1": "Seattle",
		"q2": "Oregon",
		"q3": "Denver",
	}
	result := Evaluate(evalDataset(), predictions)

	assert.Equal(t, 4, result.Total)
	assert.Equal(t, 3, result.Answered)
	assert.Equal(t, []string{"q1"}, result.ExactMatchIDs)
	assert.Equal(t, []string{"q4"}, result.Missing)
	assert.InDelta(t, 25.0, result.ExactMatch, 1e-9)
	// q1 = 1, q3 = 2/3 (p=1, r=1/2), others 0.
	assert.InDelta(t, 100*(1+2.0/3.0)/4, result.F1, 1e-9)
}

func TestEvaluateEmptyDataset(t *testing.T) {
	result := Evaluate(squad.Dataset{}, squad.Predictions{"x": "y"})
	assert.Equal(t, 0, result.Total)
	assert.Equal(t, 0.0, result.ExactMatch)
	assert.Equal(t, 0.0, result.F1)
	assert.Empty(t, result.ExactMatchIDs)
}

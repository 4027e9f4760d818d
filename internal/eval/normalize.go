package eval

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// punctuation is the ASCII punctuation set removed before comparison.
const punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// articlePattern matches a, an or the between word boundaries, where only
// letters, digits and underscore are word characters. Non-ASCII punctuation
// such as en dashes and curly quotes therefore acts as a boundary.
var articlePattern = regexp.MustCompile(`(^|[^\p{L}\p{N}_])(a|an|the)([^\p{L}\p{N}_]|$)`)

// NormalizeAnswer lowercases text, removes punctuation, drops the articles
// "a", "an" and "the", and collapses whitespace. It is idempotent.
func NormalizeAnswer(text string) string {
	lowered := cases.Lower(language.Und).String(text)
	stripped := strings.Map(func(r rune) rune {
		if r < 0x80 && strings.ContainsRune(punctuation, r) {
			return -1
		}
		return r
	}, lowered)
	return strings.Join(strings.Fields(removeArticles(stripped)), " ")
}

// answerTokens splits an answer into normalized tokens.
func answerTokens(text string) []string {
	return strings.Fields(NormalizeAnswer(text))
}

// removeArticles replaces every article with a space. Matches consume their
// trailing boundary, so adjacent articles need another pass.
func removeArticles(text string) string {
	for {
		next := articlePattern.ReplaceAllString(text, "${1} ${3}")
		if next == text {
			return next
		}
		text = next
	}
}

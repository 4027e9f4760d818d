package summary

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"squadtrim/internal/eval"
	"squadtrim/internal/question"
	"squadtrim/internal/report"
	"squadtrim/internal/review"
)

// Scores renders exact match and F1 for the original and compressed runs.
func Scores(rep review.Report, opts Options) string {
	rows := []table.Row{
		{"Exact match", report.FormatScore(rep.OriginalExactMatch), report.FormatScore(rep.NewExactMatch), report.FormatDelta(rep.OriginalExactMatch, rep.NewExactMatch)},
		{"F1", report.FormatScore(rep.OriginalF1), report.FormatScore(rep.NewF1), report.FormatDelta(rep.OriginalF1, rep.NewF1)},
	}
	columns := []table.Column{
		{Title: "Metric", Width: 12},
		{Title: "Original", Width: 10},
		{Title: "Compressed", Width: 10},
		{Title: "Delta", Width: 8},
	}
	var b strings.Builder
	b.WriteString(header(rep.RunID, opts))
	b.WriteString(renderTable(columns, rows, opts))
	b.WriteString("\n")
	line := fmt.Sprintf("Questions: %d  Both correct: %d  Newly incorrect: %d  Sampled: %d per set (seed %d)",
		rep.QuestionsTotal, rep.BothCorrectTotal, rep.NewIncorrectTotal, rep.SampleSize, rep.SampleSeed)
	b.WriteString(stylize(line, opts.NoColor, lipgloss.Color("242")))
	b.WriteString("\n")
	if !opts.NoColor && rep.NewExactMatch != rep.OriginalExactMatch {
		delta := rep.NewExactMatch - rep.OriginalExactMatch
		b.WriteString(stylize("Exact match change: "+report.FormatDelta(rep.OriginalExactMatch, rep.NewExactMatch), false, deltaColor(delta)))
		b.WriteString("\n")
	}
	return b.String()
}

// Compression renders token statistics for a compression run.
func Compression(runID string, stats question.Stats, length int, opts Options) string {
	rows := []table.Row{
		{"Paragraphs", strconv.Itoa(stats.Paragraphs)},
		{"Questions", strconv.Itoa(stats.Questions)},
		{"Question length", strconv.Itoa(length)},
		{"Tokens before", strconv.Itoa(stats.TokensBefore)},
		{"Tokens after", strconv.Itoa(stats.TokensAfter)},
		{"Avg tokens before", report.FormatScore(stats.AverageBefore())},
		{"Avg tokens after", report.FormatScore(stats.AverageAfter())},
		{"Corpus tokens", strconv.Itoa(stats.CorpusTokens)},
		{"Corpus vocabulary", strconv.Itoa(stats.CorpusDistinct)},
	}
	columns := []table.Column{
		{Title: "Statistic", Width: 18},
		{Title: "Value", Width: 10},
	}
	return header(runID, opts) + renderTable(columns, rows, opts) + "\n"
}

// Score renders a single evaluation result.
func Score(result eval.Result, opts Options) string {
	rows := []table.Row{
		{"Exact match", report.FormatScore(result.ExactMatch)},
		{"F1", report.FormatScore(result.F1)},
		{"Questions", strconv.Itoa(result.Total)},
		{"Unanswered", strconv.Itoa(len(result.Missing))},
	}
	columns := []table.Column{
		{Title: "Metric", Width: 12},
		{Title: "Value", Width: 10},
	}
	return renderTable(columns, rows, opts) + "\n"
}

func header(runID string, opts Options) string {
	if runID == "" {
		return ""
	}
	return stylize("Run "+runID, opts.NoColor, lipgloss.Color("33")) + "\n"
}

func renderTable(columns []table.Column, rows []table.Row, opts Options) string {
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(len(rows)+1),
	)
	t.SetStyles(tableStyles(opts.NoColor))
	return t.View()
}

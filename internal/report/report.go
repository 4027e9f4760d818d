package report

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/a-h/templ"

	"squadtrim/internal/review"
)

const pageStyle = `body{font-family:sans-serif;margin:2rem;max-width:70rem}
table{border-collapse:collapse}td,th{border:1px solid #ccc;padding:.3rem .6rem;text-align:left}
.record{border-top:1px solid #ddd;padding:.8rem 0}.context{color:#444;white-space:pre-wrap}
.lost{color:#b00020}.kept{color:#2e7d32}`

// ReviewPage renders a review report as a standalone HTML page.
func ReviewPage(rep review.Report) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := &pageWriter{w: w}
		p.printf("<!doctype html>\n<html><head><meta charset=\"utf-8\"><title>Question compression review</title><style>%s</style></head><body>\n", pageStyle)
		p.printf("<h1>Question compression review</h1>\n")
		if rep.RunID != "" {
			p.printf("<p>Run <code>%s</code></p>\n", templ.EscapeString(rep.RunID))
		}
		if rep.Cmd != "" {
			p.printf("<p><code>%s</code></p>\n", templ.EscapeString(rep.Cmd))
		}
		p.printf("<table><tr><th></th><th>Exact match</th><th>F1</th></tr>\n")
		p.printf("<tr><td>Original questions</td><td>%s</td><td>%s</td></tr>\n", FormatScore(rep.OriginalExactMatch), FormatScore(rep.OriginalF1))
		p.printf("<tr><td>Compressed questions</td><td>%s</td><td>%s</td></tr>\n", FormatScore(rep.NewExactMatch), FormatScore(rep.NewF1))
		p.printf("<tr><td>Change</td><td>%s</td><td>%s</td></tr></table>\n",
			FormatDelta(rep.OriginalExactMatch, rep.NewExactMatch), FormatDelta(rep.OriginalF1, rep.NewF1))

		p.section("Newly incorrect", "lost", rep.NewIncorrectTotal, rep.NewIncorrectContexts)
		p.section("Correct under both", "kept", rep.BothCorrectTotal, rep.BothCorrectContexts)
		p.printf("</body></html>\n")
		return p.err
	})
}

// RenderHTML renders the review page into a string.
func RenderHTML(ctx context.Context, rep review.Report) (string, error) {
	var builder strings.Builder
	if err := ReviewPage(rep).Render(ctx, &builder); err != nil {
		return "", err
	}
	return builder.String(), nil
}

type pageWriter struct {
	w   io.Writer
	err error
}

func (p *pageWriter) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *pageWriter) section(title, class string, total int, records map[string]review.Record) {
	p.printf("<h2 class=\"%s\">%s (%d sampled of %d)</h2>\n", class, title, len(records), total)
	ids := make([]string, 0, len(records))
	for id := range records {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for _, id := range ids {
		record := records[id]
		answers := make([]string, 0, len(record.Answers))
		for _, answer := range record.Answers {
			answers = append(answers, templ.EscapeString(answer.Text))
		}
		p.printf("<div class=\"record\" id=\"%s\"><h3>%s</h3>\n", templ.EscapeString(id), templ.EscapeString(id))
		p.printf("<p class=\"context\">%s</p>\n", templ.EscapeString(record.Context))
		p.printf("<table><tr><th>Answers</th><td>%s</td></tr>\n", strings.Join(answers, " | "))
		p.printf("<tr><th>Original question</th><td>%s</td></tr>\n", templ.EscapeString(record.OriginalQuestion))
		p.printf("<tr><th>Compressed question</th><td>%s</td></tr>\n", templ.EscapeString(record.NewQuestion))
		p.printf("<tr><th>Original prediction</th><td>%s</td></tr>\n", templ.EscapeString(record.OriginalPrediction))
		p.printf("<tr><th>Compressed prediction</th><td>%s</td></tr></table></div>\n", templ.EscapeString(record.NewPrediction))
	}
}

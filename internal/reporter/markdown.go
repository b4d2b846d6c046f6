package reporter

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/nao1215/markdown"

	"github.com/pthm/seoproof/internal/document"
	"github.com/pthm/seoproof/internal/engine"
)

const previewLength = 300

// MarkdownReporter writes the full proofreader report as Markdown, for
// sharing with content writers.
type MarkdownReporter struct {
	w         io.Writer
	threshold float64
	now       func() time.Time
}

// NewMarkdownReporter creates a new Markdown reporter
func NewMarkdownReporter(w io.Writer, threshold float64) *MarkdownReporter {
	return &MarkdownReporter{w: w, threshold: threshold, now: time.Now}
}

// WithClock overrides the timestamp source. Used by tests.
func (r *MarkdownReporter) WithClock(now func() time.Time) *MarkdownReporter {
	r.now = now
	return r
}

// Report writes the Markdown report
func (r *MarkdownReporter) Report(doc *document.Document, eval *engine.Evaluation) error {
	summary := ComputeSummary(eval, r.threshold)
	md := markdown.NewMarkdown(r.w)

	md.H1("SEO Proofreader Report")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Generated", r.now().Format("2006-01-02 15:04:05")},
			{"Page Type", strings.ToUpper(summary.PageType) + " PAGE"},
			{"Overall Score", fmt.Sprintf("%.1f%% (%s)", summary.Percentage, summary.Verdict)},
		},
	})
	md.PlainText("")

	r.writePreview(md, doc)
	r.writeKeywords(md, doc)
	r.writeScoreSummary(md, eval)
	r.writeScoreBreakdown(md, eval)
	r.writeDetails(md, eval)
	r.writeSuggestions(md, eval)

	md.HorizontalRule()
	md.PlainText("*Report generated by seoproof*")

	return md.Build()
}

func (r *MarkdownReporter) writePreview(md *markdown.Markdown, doc *document.Document) {
	md.H2("Content Preview")
	md.PlainText("")

	preview := doc.Text
	if len(preview) > previewLength {
		preview = preview[:previewLength] + "..."
	}
	md.CodeBlocks(markdown.SyntaxHighlightText, preview)
	md.PlainText("")
}

func (r *MarkdownReporter) writeKeywords(md *markdown.Markdown, doc *document.Document) {
	md.H2("Target Keywords")
	md.PlainText("")

	if len(doc.Keywords) == 0 {
		md.PlainText("No keywords provided.")
		md.PlainText("")
		return
	}

	shown := doc.Keywords
	if len(shown) > 10 {
		shown = shown[:10]
	}
	items := make([]string, len(shown))
	copy(items, shown)
	if extra := len(doc.Keywords) - len(shown); extra > 0 {
		items = append(items, fmt.Sprintf("... and %d more", extra))
	}
	md.BulletList(items...)
	md.PlainText("")
}

func (r *MarkdownReporter) writeScoreSummary(md *markdown.Markdown, eval *engine.Evaluation) {
	md.H2("Score Summary")
	md.PlainText("")

	rows := make([][]string, 0, eval.Report.Len())
	for _, name := range eval.Report.Names() {
		res, _ := eval.Report.Get(name)
		rows = append(rows, []string{
			displayName(name),
			fmt.Sprintf("%d/10", res.Score),
			statusEmoji(res.Score) + " " + titleCase(scoreBand(res.Score)),
		})
	}
	md.Table(markdown.TableSet{
		Header: []string{"Criteria", "Score", "Status"},
		Rows:   rows,
	})
	md.PlainText("")
}

func (r *MarkdownReporter) writeScoreBreakdown(md *markdown.Markdown, eval *engine.Evaluation) {
	md.H2("Score Breakdown")
	md.PlainText("")

	var sb strings.Builder
	for _, name := range eval.Report.Names() {
		res, _ := eval.Report.Get(name)
		label := displayName(name)
		if len(label) > 20 {
			label = label[:20]
		}
		bar := strings.Repeat("█", res.Score) + strings.Repeat("░", 10-res.Score)
		fmt.Fprintf(&sb, "%-20s |%s| %d/10\n", label, bar, res.Score)
	}
	md.CodeBlocks(markdown.SyntaxHighlightText, strings.TrimRight(sb.String(), "\n"))
	md.PlainText("")
}

func (r *MarkdownReporter) writeDetails(md *markdown.Markdown, eval *engine.Evaluation) {
	md.H2("Detailed Evaluation Results")
	md.PlainText("")

	for _, name := range eval.Report.Names() {
		res, _ := eval.Report.Get(name)
		md.H3(fmt.Sprintf("%s %s: %d/10", statusEmoji(res.Score), displayName(name), res.Score))
		md.PlainText("")

		details := make([]string, len(res.Details))
		for i, d := range res.Details {
			details[i] = d.String()
		}
		md.BulletList(details...)
		md.PlainText("")
	}
}

func (r *MarkdownReporter) writeSuggestions(md *markdown.Markdown, eval *engine.Evaluation) {
	md.H2("Top Improvement Suggestions")
	md.PlainText("")

	if len(eval.Suggestions) == 0 {
		md.PlainText("No specific improvements needed.")
		md.PlainText("")
		return
	}
	for i, suggestion := range eval.Suggestions {
		md.PlainTextf("%d. %s", i+1, suggestion)
	}
	md.PlainText("")
}

func statusEmoji(score int) string {
	switch {
	case score >= 8:
		return "✅"
	case score >= 5:
		return "⚠️"
	default:
		return "❌"
	}
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

package reporter

import (
	"fmt"
	"io"
	"strings"

	"github.com/pthm/seoproof/internal/document"
	"github.com/pthm/seoproof/internal/engine"
	"github.com/pthm/seoproof/internal/rules"
	"github.com/pthm/seoproof/internal/ui"
)

// TerminalReporter outputs results to the terminal with styled output
type TerminalReporter struct {
	w         io.Writer
	ui        *ui.UI
	threshold float64
	verbose   bool
}

// NewTerminalReporter creates a new terminal reporter
func NewTerminalReporter(w io.Writer, u *ui.UI, threshold float64, verbose bool) *TerminalReporter {
	return &TerminalReporter{w: w, ui: u, threshold: threshold, verbose: verbose}
}

// Report outputs the evaluation to the terminal
func (r *TerminalReporter) Report(doc *document.Document, eval *engine.Evaluation) error {
	s := r.ui.Styles

	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, s.Header.Render("SEO Checklist Results"))
	fmt.Fprintln(r.w, s.Subheader.Render(fmt.Sprintf("Page type: %s · %d keywords", eval.PageType, len(doc.Keywords))))
	fmt.Fprintln(r.w)

	for _, name := range eval.Report.Names() {
		res, _ := eval.Report.Get(name)
		r.printRule(name, res)
	}

	if len(eval.Suggestions) > 0 {
		fmt.Fprintln(r.w)
		fmt.Fprintln(r.w, s.Header.Render("Top Improvement Suggestions"))
		for i, suggestion := range eval.Suggestions {
			fmt.Fprintf(r.w, "  %d. %s\n", i+1, suggestion)
		}
	}

	r.printSummary(eval)
	return nil
}

func (r *TerminalReporter) printRule(name string, res rules.Result) {
	s := r.ui.Styles

	var icon string
	var style = s.Fail
	switch {
	case res.Score >= 8:
		icon, style = s.IconPass, s.Pass
	case res.Score >= 5:
		icon, style = s.IconPartial, s.Partial
	default:
		icon = s.IconFail
	}

	fmt.Fprintf(r.w, "  %s %s", style.Render(icon), displayName(name))
	fmt.Fprintf(r.w, " %s\n", s.Rule.Render(fmt.Sprintf("%d/10 (%s)", res.Score, scoreBand(res.Score))))

	if r.verbose {
		for _, d := range res.Details {
			fmt.Fprintf(r.w, "      %s\n", s.Subheader.Render(d.String()))
		}
	}
}

func (r *TerminalReporter) printSummary(eval *engine.Evaluation) {
	s := r.ui.Styles
	summary := ComputeSummary(eval, r.threshold)

	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, s.Separator.Render("─────────────────────────────────────"))

	verdictStyle := s.Pass
	if summary.Verdict == "FAIL" {
		verdictStyle = s.Fail
	}
	fmt.Fprintf(r.w, "Overall: %d/%d (%.1f%%) %s\n",
		summary.TotalScore, summary.MaxScore, summary.Percentage,
		verdictStyle.Render(summary.Verdict))
}

// displayAcronyms are rule-name words that stay fully upper-cased in labels.
var displayAcronyms = map[string]string{
	"faq": "FAQ",
	"seo": "SEO",
}

// displayName turns a rule identifier into a title-cased label.
func displayName(name string) string {
	words := strings.Split(name, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		if acronym, ok := displayAcronyms[w]; ok {
			words[i] = acronym
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

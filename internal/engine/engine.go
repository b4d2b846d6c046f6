// Package engine runs one document through the page-type classifier, the
// matching checklist, and the suggestion generator. An evaluation is
// stateless and touches no I/O, so concurrent evaluations of independent
// documents need no coordination.
package engine

import (
	"context"

	"github.com/pthm/seoproof/internal/classifier"
	"github.com/pthm/seoproof/internal/document"
	"github.com/pthm/seoproof/internal/profile"
	"github.com/pthm/seoproof/internal/rules"
	"github.com/pthm/seoproof/internal/suggest"
)

// DeepScorer scores checklist criteria with an external model. Implementors
// may fail; the engine falls back to the deterministic result per rule.
type DeepScorer interface {
	Score(ctx context.Context, doc *document.Document, pt classifier.PageType, names []string) (map[string]rules.Result, error)
}

// Options configures a single evaluation.
type Options struct {
	// ForcedType bypasses the classifier when non-nil.
	ForcedType *classifier.PageType

	// Profile supplies thresholds and suggestion text; nil means the
	// default profile.
	Profile *profile.Profile

	// Deep, when non-nil, overlays model-based scores on top of the
	// deterministic results.
	Deep DeepScorer

	// Progress hooks, used by the CLI for its progress display.
	OnRuleStart func(name string)
	OnRuleDone  func()
}

// Evaluation is the engine's complete output for one document.
type Evaluation struct {
	PageType    classifier.PageType
	Report      *rules.Report
	Suggestions []string
}

// Percentage is the aggregate score of the underlying report.
func (e *Evaluation) Percentage() float64 {
	return e.Report.Percentage()
}

// Evaluate runs the full pipeline on one document. The context is only
// consulted by a deep scorer; the deterministic path performs no blocking
// work.
func Evaluate(ctx context.Context, doc *document.Document, opts Options) *Evaluation {
	p := opts.Profile
	if p == nil {
		p = profile.Default()
	}

	pageType := classifier.Classify(doc.Text, doc.Keywords)
	if opts.ForcedType != nil {
		pageType = *opts.ForcedType
	}

	registry := rules.ForType(pageType)
	evalCtx := rules.NewEvalContext(doc)

	report := rules.NewReport()
	for _, rule := range registry.Rules() {
		if opts.OnRuleStart != nil {
			opts.OnRuleStart(rule.Name())
		}
		report.Add(rule.Name(), rule.Evaluate(evalCtx))
		if opts.OnRuleDone != nil {
			opts.OnRuleDone()
		}
	}

	if opts.Deep != nil {
		overlayDeep(ctx, doc, pageType, report, opts.Deep)
	}

	return &Evaluation{
		PageType:    pageType,
		Report:      report,
		Suggestions: suggest.Generate(report, pageType, p),
	}
}

// overlayDeep replaces deterministic results with model scores where the
// scorer produced one. Scorer failure leaves the report untouched.
func overlayDeep(ctx context.Context, doc *document.Document, pt classifier.PageType, report *rules.Report, scorer DeepScorer) {
	scored, err := scorer.Score(ctx, doc, pt, report.Names())
	if err != nil {
		return
	}
	for _, name := range report.Names() {
		if res, ok := scored[name]; ok {
			report.Add(name, res)
		}
	}
}

package engine

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/pthm/seoproof/internal/classifier"
	"github.com/pthm/seoproof/internal/document"
	"github.com/pthm/seoproof/internal/rules"
)

const costPage = `<h1>How Much Does a Plumber Cost in 2025?</h1>

Wondering what a plumber cost looks like this year? You are in the right place.
Most homeowners pay between $150 and $450 for common repairs. We break the
plumber prices down so you can budget with confidence.

<h2>Average Plumber Cost by Job</h2>

A standard price table helps you compare. Small repairs run $80 to $200, while
bathroom installations reach $2,500.

<table><tr><td>Job</td><td>Price</td></tr></table>

<h2>What Affects Plumber Prices</h2>

Labor, parts, and urgency all move the cost. Emergency calls carry a higher fee.

<ul><li><b>Labor</b> is the biggest driver.</li><li>Parts vary by brand.</li><li>Urgency adds a premium.</li></ul>

<h2>How to Save on Plumbing</h2>

Bundle small jobs together. See <a href="/plumbing-guide">our plumbing guide</a>,
<a href="/emergency-rates">emergency rate overview</a>, and
<a href="/quotes">request a quote</a> to compare offers.

<h2>FAQ</h2>

How much does a plumber charge per hour? Most charge $45 to $150 per hour.
What does a call-out fee cover? It covers travel and the first inspection.
Can I negotiate the price? Yes, especially for larger projects.
`

var costKeywords = []string{"plumber cost", "plumber prices"}

func TestEvaluate_CostPageEndToEnd(t *testing.T) {
	doc := document.New(costPage, costKeywords)

	eval := Evaluate(context.Background(), doc, Options{})

	if eval.PageType != classifier.PageTypeCost {
		t.Errorf("PageType = %v, want cost", eval.PageType)
	}
	if eval.Report.Len() != 8 {
		t.Errorf("Report.Len() = %d, want 8 cost rules", eval.Report.Len())
	}
	if pct := eval.Percentage(); pct < 70 {
		t.Errorf("Percentage() = %.1f, want >= 70 (PASS) for a well-formed cost page", pct)
	}
	if len(eval.Suggestions) != 5 {
		t.Errorf("len(Suggestions) = %d, want 5", len(eval.Suggestions))
	}
}

func TestEvaluate_RoundTripDeterminism(t *testing.T) {
	doc := document.New(costPage, costKeywords)

	a := Evaluate(context.Background(), doc, Options{})
	b := Evaluate(context.Background(), doc, Options{})

	if a.PageType != b.PageType {
		t.Errorf("PageType differs: %v vs %v", a.PageType, b.PageType)
	}
	if !reflect.DeepEqual(a.Report.Names(), b.Report.Names()) {
		t.Errorf("rule order differs: %v vs %v", a.Report.Names(), b.Report.Names())
	}
	for _, name := range a.Report.Names() {
		ra, _ := a.Report.Get(name)
		rb, _ := b.Report.Get(name)
		if !reflect.DeepEqual(ra, rb) {
			t.Errorf("rule %q differs across runs:\n%+v\n%+v", name, ra, rb)
		}
	}
	if !reflect.DeepEqual(a.Suggestions, b.Suggestions) {
		t.Errorf("suggestions differ: %v vs %v", a.Suggestions, b.Suggestions)
	}
}

func TestEvaluate_ForcedPageType(t *testing.T) {
	doc := document.New(costPage, costKeywords)

	forced := classifier.PageTypeCity
	eval := Evaluate(context.Background(), doc, Options{ForcedType: &forced})

	if eval.PageType != classifier.PageTypeCity {
		t.Errorf("PageType = %v, want forced city", eval.PageType)
	}
	if eval.Report.Len() != 6 {
		t.Errorf("Report.Len() = %d, want 6 city rules", eval.Report.Len())
	}
}

func TestEvaluate_EmptyDocumentNeverFails(t *testing.T) {
	eval := Evaluate(context.Background(), document.New("", nil), Options{})

	for _, name := range eval.Report.Names() {
		res, _ := eval.Report.Get(name)
		if res.Score < 0 || res.Score > 10 {
			t.Errorf("rule %q score %d out of bounds on empty input", name, res.Score)
		}
	}
	if eval.Percentage() > 20 {
		t.Errorf("Percentage() = %.1f on empty document, want near zero", eval.Percentage())
	}
}

func TestEvaluate_ProgressHooks(t *testing.T) {
	doc := document.New(costPage, costKeywords)

	started := 0
	done := 0
	Evaluate(context.Background(), doc, Options{
		OnRuleStart: func(string) { started++ },
		OnRuleDone:  func() { done++ },
	})

	if started != 8 || done != 8 {
		t.Errorf("progress hooks: started=%d done=%d, want 8 each", started, done)
	}
}

type fakeScorer struct {
	results map[string]rules.Result
	err     error
}

func (f *fakeScorer) Score(_ context.Context, _ *document.Document, _ classifier.PageType, _ []string) (map[string]rules.Result, error) {
	return f.results, f.err
}

func TestEvaluate_DeepOverlay(t *testing.T) {
	doc := document.New(costPage, costKeywords)

	scorer := &fakeScorer{results: map[string]rules.Result{
		"title_meta": {Score: 2, Details: []rules.Annotation{{Status: rules.StatusFail, Message: "model says weak"}}},
	}}
	eval := Evaluate(context.Background(), doc, Options{Deep: scorer})

	res, _ := eval.Report.Get("title_meta")
	if res.Score != 2 {
		t.Errorf("title_meta score = %d, want model overlay 2", res.Score)
	}

	// Rules the model did not score keep their deterministic result.
	base := Evaluate(context.Background(), doc, Options{})
	baseRes, _ := base.Report.Get("faq_section")
	overlaid, _ := eval.Report.Get("faq_section")
	if !reflect.DeepEqual(baseRes, overlaid) {
		t.Errorf("faq_section changed without a model score")
	}
}

func TestEvaluate_DeepFailureFallsBack(t *testing.T) {
	doc := document.New(costPage, costKeywords)

	eval := Evaluate(context.Background(), doc, Options{Deep: &fakeScorer{err: errors.New("api down")}})
	base := Evaluate(context.Background(), doc, Options{})

	for _, name := range base.Report.Names() {
		want, _ := base.Report.Get(name)
		got, _ := eval.Report.Get(name)
		if !reflect.DeepEqual(want, got) {
			t.Errorf("rule %q differs after scorer failure", name)
		}
	}
}

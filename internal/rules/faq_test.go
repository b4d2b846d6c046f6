package rules

import (
	"testing"

	"github.com/pthm/seoproof/internal/document"
)

func TestFAQSectionRule_FullSection(t *testing.T) {
	doc := document.New(`<h2>FAQ</h2>
How much does it cost? Around $100.
How long does it take? One hour.
Can I book online? Yes.`, nil)

	res := (&FAQSectionRule{}).Evaluate(NewEvalContext(doc))

	// Heading (+4), 3 questions (+4), natural phrasing (+2) = 10.
	if res.Score != 10 {
		t.Errorf("Score = %d, want 10\ndetails: %s", res.Score, res.DetailText())
	}
}

func TestFAQSectionRule_NoFAQ(t *testing.T) {
	doc := document.New("Plain content with statements only. Nothing else.", nil)

	res := (&FAQSectionRule{}).Evaluate(NewEvalContext(doc))

	if res.Score != 0 {
		t.Errorf("Score = %d, want 0\ndetails: %s", res.Score, res.DetailText())
	}
}

func TestFAQSectionRule_MentionWithoutHeading(t *testing.T) {
	doc := document.New("See the FAQ below. How much is it? How long? Why bother?", nil)

	res := (&FAQSectionRule{}).Evaluate(NewEvalContext(doc))

	// Partial mention (+2), 3 questions (+4), phrasing (+2) = 8.
	if res.Score != 8 {
		t.Errorf("Score = %d, want 8\ndetails: %s", res.Score, res.DetailText())
	}
}

func TestInternalLinkingRule_NoLinks(t *testing.T) {
	doc := document.New("<p>Content with no links at all.</p>", nil)

	res := (&InternalLinkingRule{}).Evaluate(NewEvalContext(doc))

	if res.Score != 0 {
		t.Errorf("Score = %d, want 0", res.Score)
	}
}

func TestInternalLinkingRule_StrongLinking(t *testing.T) {
	doc := document.New(`<p>
<a href="/pricing">detailed pricing overview</a>
<a href="/services">full service catalog</a>
<a href="/contact">contact and booking page</a>
</p>`, nil)

	res := (&InternalLinkingRule{}).Evaluate(NewEvalContext(doc))

	// Links found (+3), >=3 (+2), descriptive anchors (+3), internal (+2) = 10.
	if res.Score != 10 {
		t.Errorf("Score = %d, want 10\ndetails: %s", res.Score, res.DetailText())
	}
}

func TestInternalLinkingRule_WeakAnchors(t *testing.T) {
	doc := document.New(`<a href="https://other.example/a">here</a>
<a href="https://other.example/b">more</a>`, nil)

	res := (&InternalLinkingRule{}).Evaluate(NewEvalContext(doc))

	// Links found (+3), only 2 (+1), all anchors weak (0), none internal (0) = 4.
	if res.Score != 4 {
		t.Errorf("Score = %d, want 4\ndetails: %s", res.Score, res.DetailText())
	}
}

func TestCityFeaturesRule_UnknownCityDegrades(t *testing.T) {
	doc := document.New("Generic service content with no location at all.", []string{"plumbing"})

	ctx := NewEvalContext(doc)
	if ctx.CityName != UnknownCity {
		t.Fatalf("CityName = %q, want sentinel", ctx.CityName)
	}

	res := (&CityFeaturesRule{}).Evaluate(ctx)
	if res.Score != 0 {
		t.Errorf("Score = %d, want 0\ndetails: %s", res.Score, res.DetailText())
	}
}

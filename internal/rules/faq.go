package rules

import "strings"

// FAQSectionRule checks for a FAQ section with real questions. Cost pages
// only; pricing pages answer "how much" follow-ups or lose the featured
// snippet.
type FAQSectionRule struct{}

func (r *FAQSectionRule) Name() string {
	return "faq_section"
}

func (r *FAQSectionRule) Description() string {
	return "Checks for a FAQ section with enough real questions"
}

var questionStarters = []string{"how much", "how long", "what does", "what is", "why ", "can i", "do i need"}

func (r *FAQSectionRule) Evaluate(ctx *EvalContext) Result {
	sc := NewScorecard(0)

	faqHeading := false
	for _, h := range ctx.Features.AllHeadings() {
		if containsFold(h, "faq") || containsFold(h, "frequently asked") {
			faqHeading = true
			break
		}
	}
	switch {
	case faqHeading:
		sc.Pass(4, "FAQ section heading present")
	case containsFold(ctx.Doc.Text, "faq") || containsFold(ctx.Doc.Text, "frequently asked"):
		sc.Partial(2, "FAQ mentioned in the text but not as its own heading")
	default:
		sc.Fail("No FAQ section found")
	}

	questions := strings.Count(ctx.Doc.Text, "?")
	switch {
	case questions >= 3:
		sc.Pass(4, "%d question(s) asked and answered", questions)
	case questions >= 1:
		sc.Partial(2, "Only %d question(s); a FAQ needs at least 3", questions)
	default:
		sc.Fail("No questions found in the content")
	}

	if anyTermFold(ctx.Doc.Text, questionStarters) {
		sc.Pass(2, "Questions use natural search phrasing")
	} else {
		sc.Fail("No natural question phrasing (how much, what does, can I)")
	}

	return sc.Result()
}

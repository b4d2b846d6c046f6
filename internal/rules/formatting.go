package rules

// FormattingRule checks visual structure: paragraph breaks, headings, lists,
// emphasis, and a call to action. Shared by both checklists.
type FormattingRule struct{}

func (r *FormattingRule) Name() string {
	return "formatting"
}

func (r *FormattingRule) Description() string {
	return "Checks paragraph breaks, lists, emphasis, and calls to action"
}

var ctaPhrases = []string{"contact us", "get a quote", "call us", "request a", "book now", "get started"}

func (r *FormattingRule) Evaluate(ctx *EvalContext) Result {
	sc := NewScorecard(0)

	switch {
	case ctx.Metrics.ParagraphCount >= 3:
		sc.Pass(3, "Content is broken into %d paragraphs", ctx.Metrics.ParagraphCount)
	case ctx.Metrics.ParagraphCount == 2:
		sc.Partial(1, "Only 2 paragraphs; add more breaks")
	default:
		sc.Fail("Content is a single block with no paragraph breaks")
	}

	if ctx.Features.HasHeadings() {
		sc.Pass(2, "Headings break up the content")
	} else {
		sc.Fail("No headings found")
	}

	if ctx.Features.ListItemCount > 0 {
		sc.Pass(2, "Bulleted or numbered list present (%d items)", ctx.Features.ListItemCount)
	} else {
		sc.Fail("No lists; bullets make key points scannable")
	}

	if ctx.Features.BoldCount > 0 {
		sc.Pass(2, "Bold emphasis highlights key phrases")
	} else {
		sc.Fail("No bold emphasis anywhere in the content")
	}

	if ctx.Features.ButtonCount > 0 || anyTermFold(ctx.Doc.Text, ctaPhrases) {
		sc.Pass(1, "Call to action present")
	} else {
		sc.Fail("No call to action found")
	}

	return sc.Result()
}

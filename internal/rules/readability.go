package rules

// ToneReadabilityRule checks sentence and paragraph length bands and whether
// the copy addresses the reader directly. Shared by both checklists.
type ToneReadabilityRule struct{}

func (r *ToneReadabilityRule) Name() string {
	return "tone_readability"
}

func (r *ToneReadabilityRule) Description() string {
	return "Checks sentence and paragraph length and direct reader address"
}

func (r *ToneReadabilityRule) Evaluate(ctx *EvalContext) Result {
	sc := NewScorecard(0)
	m := ctx.Metrics

	switch {
	case m.SentenceCount == 0:
		sc.Fail("No sentences found")
	case m.AvgSentenceWords <= SentenceGoodMax:
		sc.Pass(4, "Average sentence length %.1f words is easy to read", m.AvgSentenceWords)
	case m.AvgSentenceWords <= SentenceAcceptableMax:
		sc.Partial(2, "Average sentence length %.1f words is acceptable (16-20)", m.AvgSentenceWords)
	default:
		sc.Fail("Average sentence length %.1f words is hard to read (over 20)", m.AvgSentenceWords)
	}

	switch {
	case m.ParagraphCount == 0:
		sc.Fail("No paragraphs found")
	case m.AvgParagraphWords <= ParagraphGoodMax:
		sc.Pass(3, "Average paragraph length %.1f words is scannable", m.AvgParagraphWords)
	case m.AvgParagraphWords <= ParagraphAcceptableMax:
		sc.Partial(2, "Average paragraph length %.1f words is acceptable (51-80)", m.AvgParagraphWords)
	default:
		sc.Fail("Average paragraph length %.1f words is a wall of text (over 80)", m.AvgParagraphWords)
	}

	if anyTermFold(ctx.Doc.Text, []string{"you ", "your ", "you'", "you."}) {
		sc.Pass(2, "Copy addresses the reader directly")
	} else {
		sc.Fail("Copy never addresses the reader directly (no second person)")
	}

	if m.SentenceCount >= 5 {
		sc.Pass(1, "Enough sentences (%d) to judge flow", m.SentenceCount)
	} else {
		sc.Fail("Too few sentences (%d) to establish flow", m.SentenceCount)
	}

	return sc.Result()
}

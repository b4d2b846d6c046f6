package rules

import "regexp"

// TitleMetaRule checks the page title: presence, primary keyword placement,
// meta-title length, and a concrete value proposition. Cost pages only.
type TitleMetaRule struct{}

func (r *TitleMetaRule) Name() string {
	return "title_meta"
}

func (r *TitleMetaRule) Description() string {
	return "Checks the title for the primary keyword, meta length, and a clear value proposition"
}

var titleNumberPattern = regexp.MustCompile(`\d`)

func (r *TitleMetaRule) Evaluate(ctx *EvalContext) Result {
	sc := NewScorecard(0)

	title := ctx.Doc.Title()
	if title == "" {
		sc.Fail("No title found (empty document or no leading text line)")
		return sc.Result()
	}
	sc.Pass(1, "Title present: %q", truncate(title, 60))

	primary := ctx.Doc.Primary()
	switch {
	case primary == "":
		sc.Fail("No keywords provided, cannot check primary keyword in title")
	case containsFold(title, primary):
		sc.Pass(4, "Primary keyword %q appears in the title", primary)
	default:
		sc.Fail("Primary keyword %q missing from the title", primary)
	}

	switch length := len(title); {
	case length >= 30 && length <= 60:
		sc.Pass(2, "Title length %d chars fits the 30-60 meta title window", length)
	case length >= 20 && length <= 70:
		sc.Partial(1, "Title length %d chars is close to the 30-60 meta title window", length)
	default:
		sc.Fail("Title length %d chars is outside the 30-60 meta title window", length)
	}

	if titleNumberPattern.MatchString(title) {
		sc.Pass(2, "Title contains a number, a concrete value signal for cost pages")
	} else {
		sc.Fail("Title has no number; cost titles convert better with concrete figures")
	}

	if anyTermFold(title, []string{"cost", "price", "pricing", "fee", "how much"}) {
		sc.Pass(1, "Title states the pricing intent")
	} else {
		sc.Fail("Title does not signal pricing intent (cost, price, how much)")
	}

	return sc.Result()
}

// anyTermFold reports whether s contains any of the terms, case-insensitively.
func anyTermFold(s string, terms []string) bool {
	for _, term := range terms {
		if containsFold(s, term) {
			return true
		}
	}
	return false
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}

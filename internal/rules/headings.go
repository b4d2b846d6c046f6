package rules

// HeadingsKeywordsRule checks heading structure and keyword placement in
// headings for cost pages.
type HeadingsKeywordsRule struct{}

func (r *HeadingsKeywordsRule) Name() string {
	return "headings_keywords"
}

func (r *HeadingsKeywordsRule) Description() string {
	return "Checks heading structure and keyword usage in headings"
}

func (r *HeadingsKeywordsRule) Evaluate(ctx *EvalContext) Result {
	sc := NewScorecard(0)

	h1s := ctx.Features.HeadingsAt(1)
	h2s := ctx.Features.HeadingsAt(2)
	h3s := ctx.Features.HeadingsAt(3)

	switch len(h1s) {
	case 0:
		sc.Fail("No H1 heading found")
	case 1:
		sc.Pass(2, "Exactly one H1 heading")
	default:
		sc.Partial(1, "%d H1 headings found; pages should carry exactly one", len(h1s))
	}

	switch {
	case len(h2s) >= 3:
		sc.Pass(2, "%d H2 subheadings structure the content", len(h2s))
	case len(h2s) >= 1:
		sc.Partial(1, "Only %d H2 subheadings; aim for at least 3", len(h2s))
	default:
		sc.Fail("No H2 subheadings found")
	}

	primary := ctx.Doc.Primary()
	switch {
	case primary == "":
		sc.Fail("No keywords provided, cannot check headings for the primary keyword")
	case anyContainsFold(h1s, primary):
		sc.Pass(3, "Primary keyword %q appears in the H1", primary)
	default:
		sc.Fail("Primary keyword %q missing from the H1", primary)
	}

	if keywordInAny(append(h2s, h3s...), ctx.Doc.Keywords) {
		sc.Pass(2, "A target keyword appears in the subheadings")
	} else {
		sc.Fail("No target keyword appears in any H2/H3 subheading")
	}

	if len(h3s) > 0 && len(h2s) == 0 {
		sc.Fail("H3 headings used without any H2 (broken hierarchy)")
	} else {
		sc.Pass(1, "Heading hierarchy is consistent")
	}

	return sc.Result()
}

// CityHeadingsRule is the city-page variant of the headings check: the city
// name takes the primary keyword's place in the H1 and subheadings.
type CityHeadingsRule struct{}

func (r *CityHeadingsRule) Name() string {
	return "headings_keywords"
}

func (r *CityHeadingsRule) Description() string {
	return "Checks heading structure and city name placement in headings"
}

func (r *CityHeadingsRule) Evaluate(ctx *EvalContext) Result {
	sc := NewScorecard(0)

	h1s := ctx.Features.HeadingsAt(1)
	h2s := ctx.Features.HeadingsAt(2)
	city := ctx.CityName

	switch len(h1s) {
	case 0:
		sc.Fail("No H1 heading found")
	case 1:
		sc.Pass(2, "Exactly one H1 heading")
	default:
		sc.Partial(1, "%d H1 headings found; pages should carry exactly one", len(h1s))
	}

	switch {
	case city == UnknownCity:
		sc.Fail("No city name could be extracted, cannot check it in the H1")
	case anyContainsFold(h1s, city):
		sc.Pass(3, "City name %q appears in the H1", city)
	default:
		sc.Fail("City name %q missing from the H1", city)
	}

	switch {
	case len(h2s) >= 3:
		sc.Pass(2, "%d H2 subheadings structure the content", len(h2s))
	case len(h2s) >= 1:
		sc.Partial(1, "Only %d H2 subheadings; aim for at least 3", len(h2s))
	default:
		sc.Fail("No H2 subheadings found")
	}

	if city != UnknownCity && anyContainsFold(h2s, city) {
		sc.Pass(2, "City name %q appears in a subheading", city)
	} else {
		sc.Fail("City name missing from all subheadings")
	}

	if keywordInAny(ctx.Features.AllHeadings(), ctx.Doc.Keywords) {
		sc.Pass(1, "A target keyword appears in the headings")
	} else {
		sc.Fail("No target keyword appears in any heading")
	}

	return sc.Result()
}

// keywordInAny reports whether any keyword occurs in any of the given texts.
func keywordInAny(texts []string, keywords []string) bool {
	for _, kw := range keywords {
		if anyContainsFold(texts, kw) {
			return true
		}
	}
	return false
}

package rules

import "github.com/pthm/seoproof/internal/analyzer"

// GeneralQualityRule checks overall content quality for cost pages: depth,
// keyword density, punctuation hygiene, and a substantial introduction.
type GeneralQualityRule struct{}

func (r *GeneralQualityRule) Name() string {
	return "general_quality"
}

func (r *GeneralQualityRule) Description() string {
	return "Checks content depth, keyword density, and punctuation hygiene"
}

func (r *GeneralQualityRule) Evaluate(ctx *EvalContext) Result {
	sc := NewScorecard(0)
	m := ctx.Metrics

	switch {
	case m.WordCount >= 300:
		sc.Pass(3, "Content depth is good: %d words", m.WordCount)
	case m.WordCount >= 150:
		sc.Partial(1, "Content is thin: %d words (aim for 300+)", m.WordCount)
	default:
		sc.Fail("Content is very thin: %d words", m.WordCount)
	}

	scoreDensity(sc, m.KeywordDensity, len(ctx.Doc.Keywords), 3, 1)
	scorePunctuation(sc, m.PunctuationIssues, 2, 1)

	paragraphs := analyzer.Paragraphs(ctx.Doc.Text)
	if len(paragraphs) > 0 && analyzer.WordCount(paragraphs[0]) >= 20 {
		sc.Pass(2, "Introduction paragraph is substantial")
	} else {
		sc.Fail("Introduction paragraph is missing or too short")
	}

	return sc.Result()
}

// CityQualityRule is the city-page variant of the quality check: it adds the
// city-mention density band and expects the city in the introduction.
type CityQualityRule struct{}

func (r *CityQualityRule) Name() string {
	return "general_quality"
}

func (r *CityQualityRule) Description() string {
	return "Checks content depth, keyword and city-mention density, and punctuation hygiene"
}

func (r *CityQualityRule) Evaluate(ctx *EvalContext) Result {
	sc := NewScorecard(0)
	m := ctx.Metrics

	switch {
	case m.WordCount >= 300:
		sc.Pass(2, "Content depth is good: %d words", m.WordCount)
	case m.WordCount >= 150:
		sc.Partial(1, "Content is thin: %d words (aim for 300+)", m.WordCount)
	default:
		sc.Fail("Content is very thin: %d words", m.WordCount)
	}

	scoreDensity(sc, m.KeywordDensity, len(ctx.Doc.Keywords), 2, 1)

	cityDensity := CityMentionDensity(ctx.Doc.Text, ctx.CityName)
	switch {
	case ctx.CityName == UnknownCity:
		sc.Fail("No city name could be extracted, cannot check city-mention density")
	case cityDensity >= CityDensityHealthyMin && cityDensity <= CityDensityHealthyMax:
		sc.Pass(3, "City-mention density %.2f%% is in the healthy 0.5-2%% band", cityDensity)
	case cityDensity > 0:
		sc.Partial(1, "City-mention density %.2f%% is outside the healthy 0.5-2%% band", cityDensity)
	default:
		sc.Fail("City name %q never appears in the content", ctx.CityName)
	}

	scorePunctuation(sc, m.PunctuationIssues, 2, 1)

	paragraphs := analyzer.Paragraphs(ctx.Doc.Text)
	if len(paragraphs) > 0 && ctx.CityName != UnknownCity && containsFold(paragraphs[0], ctx.CityName) {
		sc.Pass(1, "Introduction mentions %s", ctx.CityName)
	} else {
		sc.Fail("Introduction does not mention the city")
	}

	return sc.Result()
}

// scoreDensity applies the shared keyword density band: full points inside
// [1%,3%], partial points when merely non-negligible, fail otherwise.
func scoreDensity(sc *Scorecard, density float64, keywordCount, full, partial int) {
	switch {
	case keywordCount == 0:
		sc.Fail("No keywords provided to evaluate density")
	case density >= DensityHealthyMin && density <= DensityHealthyMax:
		sc.Pass(full, "Keyword density %.2f%% is in the healthy 1-3%% band", density)
	case density > 0.5 && density <= 5:
		sc.Partial(partial, "Keyword density %.2f%% is outside the healthy 1-3%% band", density)
	default:
		sc.Fail("Keyword density %.2f%% is unhealthy (stuffed or absent)", density)
	}
}

// scorePunctuation applies the shared punctuation hygiene check.
func scorePunctuation(sc *Scorecard, issues, full, partial int) {
	switch {
	case issues == 0:
		sc.Pass(full, "No punctuation spacing issues found")
	case issues <= 3:
		sc.Partial(partial, "%d punctuation spacing issue(s) found", issues)
	default:
		sc.Fail("%d punctuation spacing issues found", issues)
	}
}

// CityMentionDensity is the percentage of word tokens matched by occurrences
// of the city name. The sentinel city yields 0.
func CityMentionDensity(text, cityName string) float64 {
	if cityName == UnknownCity || cityName == "" {
		return 0
	}
	return analyzer.KeywordDensity(text, []string{cityName})
}

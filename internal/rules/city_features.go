package rules

import (
	"strings"

	"github.com/pthm/seoproof/internal/classifier"
)

// CityFeaturesRule checks the local signals a city page exists to provide: a
// recognizable city, healthy city-mention density, and locality vocabulary.
// City pages only.
type CityFeaturesRule struct{}

func (r *CityFeaturesRule) Name() string {
	return "city_features"
}

func (r *CityFeaturesRule) Description() string {
	return "Checks city name presence, mention density, and local vocabulary"
}

func (r *CityFeaturesRule) Evaluate(ctx *EvalContext) Result {
	sc := NewScorecard(0)
	city := ctx.CityName

	if city != UnknownCity {
		sc.Pass(2, "City identified: %s", city)
	} else {
		sc.Fail("No city name could be extracted from keywords or text")
	}

	density := CityMentionDensity(ctx.Doc.Text, city)
	switch {
	case density >= CityDensityHealthyMin && density <= CityDensityHealthyMax:
		sc.Pass(3, "City-mention density %.2f%% is in the healthy 0.5-2%% band", density)
	case density > 0:
		sc.Partial(1, "City-mention density %.2f%% is outside the healthy 0.5-2%% band", density)
	default:
		sc.Fail("City is never mentioned in the content")
	}

	lower := strings.ToLower(ctx.Doc.Text)
	distinct := 0
	for _, term := range classifier.CityIndicators {
		if strings.Contains(lower, term) {
			distinct++
		}
	}
	switch {
	case distinct >= 2:
		sc.Pass(2, "%d distinct locality terms used", distinct)
	case distinct == 1:
		sc.Partial(1, "Only one locality term used")
	default:
		sc.Fail("No locality vocabulary (local, area, district) anywhere")
	}

	if city != UnknownCity && containsFold(ctx.Doc.Text, "in "+city) {
		sc.Pass(2, "Content anchors the service to %q", "in "+city)
	} else {
		sc.Fail("Content never says the service operates in the city")
	}

	if locativePrep.MatchString(ctx.Doc.Text) || trailingLocative.MatchString(ctx.Doc.Text) {
		sc.Pass(1, "Locative phrasing reinforces the local intent")
	} else {
		sc.Fail("No locative phrasing (in X, near X, X area) in the content")
	}

	return sc.Result()
}

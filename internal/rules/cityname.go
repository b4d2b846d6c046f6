package rules

import "regexp"

// UnknownCity is the sentinel city name used when no locative pattern
// matches. Rules always have a city name to interpolate; none of them treat
// the sentinel as a real location.
const UnknownCity = "Unknown City"

var (
	// "in Rotterdam", "near New York" - a capitalized phrase after a
	// locative preposition.
	locativePrep = regexp.MustCompile(`\b(?:in|near)\s+([A-Z][a-z]+(?:\s[A-Z][a-z]+)?)`)

	// "Rotterdam area", "Hudson Valley region" - a capitalized phrase
	// trailed by a locality word.
	trailingLocative = regexp.MustCompile(`([A-Z][a-z]+(?:\s[A-Z][a-z]+)?)\s+(?:area|region|city)\b`)
)

// ExtractCityName finds the city a page targets. Keywords are searched before
// text, prepositional patterns before trailing ones, and the first match
// wins, so extraction is deterministic. Returns UnknownCity when nothing
// matches.
func ExtractCityName(text string, keywords []string) string {
	for _, kw := range keywords {
		if m := locativePrep.FindStringSubmatch(kw); m != nil {
			return m[1]
		}
	}

	if m := locativePrep.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	if m := trailingLocative.FindStringSubmatch(text); m != nil {
		return m[1]
	}

	return UnknownCity
}

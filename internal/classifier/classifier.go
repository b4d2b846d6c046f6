package classifier

import (
	"fmt"
	"strings"

	"github.com/pthm/seoproof/internal/analyzer"
)

// PageType is the category of a page, which determines the checklist that
// applies to it.
type PageType int

const (
	// PageTypeCost is a page about pricing and the financial side of a service
	PageTypeCost PageType = iota
	// PageTypeCity is a page about local services in a specific location
	PageTypeCity
)

func (p PageType) String() string {
	switch p {
	case PageTypeCost:
		return "cost"
	case PageTypeCity:
		return "city"
	default:
		return "unknown"
	}
}

// ParsePageType converts a CLI-supplied string into a PageType.
func ParsePageType(s string) (PageType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cost":
		return PageTypeCost, nil
	case "city":
		return PageTypeCity, nil
	default:
		return 0, fmt.Errorf("unknown page type %q (expected cost or city)", s)
	}
}

// CostIndicators is the lexicon of pricing vocabulary, shared with the
// cost-features rule. Lowercase; matched as substrings.
var CostIndicators = []string{
	"price", "pricing", "cost", "fee", "expense", "tariff",
	"affordable", "$", "€", "£",
}

// CityIndicators is the lexicon of locality vocabulary, shared with the
// city-features rule. Lowercase; matched as substrings.
var CityIndicators = []string{
	"city", "local", "area", "region", "district",
	"neighborhood", "neighbourhood",
}

// Classify decides the page type from indicator counts over the lower-cased
// text plus the joined keyword list. Cost wins only when its count is
// strictly higher; ties favor City. Deterministic for identical input.
func Classify(text string, keywords []string) PageType {
	joined := strings.Join(keywords, " ")

	costCount := analyzer.CountOccurrences(text, CostIndicators) +
		analyzer.CountOccurrences(joined, CostIndicators)
	cityCount := analyzer.CountOccurrences(text, CityIndicators) +
		analyzer.CountOccurrences(joined, CityIndicators)

	if costCount > cityCount {
		return PageTypeCost
	}
	return PageTypeCity
}

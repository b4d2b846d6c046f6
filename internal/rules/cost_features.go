package rules

import (
	"github.com/pthm/seoproof/internal/analyzer"
	"github.com/pthm/seoproof/internal/classifier"
)

// CostFeaturesRule checks the signals a cost page exists to provide: concrete
// prices, a realistic range, and a price table. Cost pages only.
type CostFeaturesRule struct{}

func (r *CostFeaturesRule) Name() string {
	return "cost_features"
}

func (r *CostFeaturesRule) Description() string {
	return "Checks concrete prices, range coverage, realism, and a price table"
}

var priceTablePhrases = []string{"price table", "cost table", "pricing table", "price overview"}

func (r *CostFeaturesRule) Evaluate(ctx *EvalContext) Result {
	sc := NewScorecard(0)

	prices := ctx.Metrics.Prices
	if len(prices) == 0 {
		sc.Fail("No concrete prices found on a cost page")
	} else {
		sc.Pass(3, "%d concrete price(s) found", len(prices))
	}

	if len(distinctInts(prices)) >= 2 {
		sc.Pass(2, "Price range coverage: multiple distinct price points")
	} else {
		sc.Fail("Only a single price point; ranges answer the reader's question better")
	}

	if len(prices) > 0 {
		realistic := 0
		for _, p := range prices {
			if p >= PriceRealisticMin && p <= PriceRealisticMax {
				realistic++
			}
		}
		switch {
		case realistic == len(prices):
			sc.Pass(2, "All prices fall in the realistic 10-10000 band")
		case realistic > 0:
			sc.Partial(1, "%d of %d prices fall outside the realistic 10-10000 band", len(prices)-realistic, len(prices))
		default:
			sc.Fail("Every price falls outside the realistic 10-10000 band")
		}
	} else {
		sc.Fail("No prices to check against the realistic band")
	}

	if ctx.Features.TableCount > 0 || anyTermFold(ctx.Doc.Text, priceTablePhrases) {
		sc.Pass(2, "Price table detected")
	} else {
		sc.Fail("No price table found")
	}

	if analyzer.CountOccurrences(ctx.Doc.Text, classifier.CostIndicators) >= 3 {
		sc.Pass(1, "Pricing vocabulary used throughout")
	} else {
		sc.Fail("Pricing vocabulary barely used")
	}

	return sc.Result()
}

func distinctInts(values []int) []int {
	seen := make(map[int]bool, len(values))
	var out []int
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}

// Package suggest turns low-scoring checklist results into a ranked,
// bounded list of actionable improvement suggestions.
package suggest

import (
	"sort"

	"github.com/pthm/seoproof/internal/classifier"
	"github.com/pthm/seoproof/internal/profile"
	"github.com/pthm/seoproof/internal/rules"
)

// Generate ranks rules scoring below the improvement threshold ascending by
// score (ties keep report order), maps each to its canned page-type-aware
// remediation sentence, and pads with generic suggestions (skipping
// duplicates) until the cap is reached or the generic list runs out.
func Generate(report *rules.Report, pt classifier.PageType, p *profile.Profile) []string {
	type candidate struct {
		name  string
		score int
	}

	var candidates []candidate
	for _, name := range report.Names() {
		res, ok := report.Get(name)
		if !ok {
			continue
		}
		if res.Score < p.ImprovementThreshold {
			candidates = append(candidates, candidate{name: name, score: res.Score})
		}
	}

	// Stable: equal scores keep checklist order.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score < candidates[j].score
	})

	max := p.MaxSuggestions
	suggestions := make([]string, 0, max)
	seen := make(map[string]bool)

	for _, c := range candidates {
		if len(suggestions) >= max {
			break
		}
		rem, ok := p.Remediation[c.name]
		if !ok {
			continue
		}
		text := rem.For(pt)
		if text == "" || seen[text] {
			continue
		}
		seen[text] = true
		suggestions = append(suggestions, text)
	}

	for _, generic := range p.GenericSuggestions {
		if len(suggestions) >= max {
			break
		}
		if seen[generic] {
			continue
		}
		seen[generic] = true
		suggestions = append(suggestions, generic)
	}

	return suggestions
}

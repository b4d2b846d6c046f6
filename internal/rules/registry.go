package rules

import "github.com/pthm/seoproof/internal/classifier"

// Registry holds the ordered rule set for one page type. Registration order
// is evaluation order, which fixes both detail ordering in the report and
// suggestion tie-breaking.
type Registry struct {
	rules []Rule
}

// NewRegistry creates an empty rule registry
func NewRegistry() *Registry {
	return &Registry{rules: make([]Rule, 0)}
}

// Register appends a rule to the registry
func (r *Registry) Register(rule Rule) {
	r.rules = append(r.rules, rule)
}

// Rules returns the registered rules in registration order
func (r *Registry) Rules() []Rule {
	return r.rules
}

// Get returns a rule by name, or nil when no rule matches
func (r *Registry) Get(name string) Rule {
	for _, rule := range r.rules {
		if rule.Name() == name {
			return rule
		}
	}
	return nil
}

// CostRegistry returns the fixed checklist for cost pages.
func CostRegistry() *Registry {
	r := NewRegistry()
	r.Register(&TitleMetaRule{})
	r.Register(&HeadingsKeywordsRule{})
	r.Register(&InternalLinkingRule{})
	r.Register(&GeneralQualityRule{})
	r.Register(&ToneReadabilityRule{})
	r.Register(&FormattingRule{})
	r.Register(&CostFeaturesRule{})
	r.Register(&FAQSectionRule{})
	return r
}

// CityRegistry returns the fixed checklist for city pages.
func CityRegistry() *Registry {
	r := NewRegistry()
	r.Register(&CityHeadingsRule{})
	r.Register(&InternalLinkingRule{})
	r.Register(&CityQualityRule{})
	r.Register(&ToneReadabilityRule{})
	r.Register(&FormattingRule{})
	r.Register(&CityFeaturesRule{})
	return r
}

// ForType returns the registry matching a page type.
func ForType(pt classifier.PageType) *Registry {
	if pt == classifier.PageTypeCost {
		return CostRegistry()
	}
	return CityRegistry()
}

package suggest

import (
	"reflect"
	"testing"

	"github.com/pthm/seoproof/internal/classifier"
	"github.com/pthm/seoproof/internal/profile"
	"github.com/pthm/seoproof/internal/rules"
)

func report(scores map[string]int, order []string) *rules.Report {
	r := rules.NewReport()
	for _, name := range order {
		r.Add(name, rules.Result{Score: scores[name]})
	}
	return r
}

func TestGenerate_AscendingScoreOrder(t *testing.T) {
	p := profile.Default()

	// Scores A:3 B:9 C:1 D:6 with threshold 7 must select C(1), A(3), D(6).
	rep := report(map[string]int{
		"title_meta":        3,
		"headings_keywords": 9,
		"cost_features":     1,
		"faq_section":       6,
	}, []string{"title_meta", "headings_keywords", "cost_features", "faq_section"})

	got := Generate(rep, classifier.PageTypeCost, p)

	wantPrefix := []string{
		p.Remediation["cost_features"].For(classifier.PageTypeCost),
		p.Remediation["title_meta"].For(classifier.PageTypeCost),
		p.Remediation["faq_section"].For(classifier.PageTypeCost),
	}
	if len(got) != 5 {
		t.Fatalf("len = %d, want 5 (padded with generics)", len(got))
	}
	if !reflect.DeepEqual(got[:3], wantPrefix) {
		t.Errorf("ranked prefix = %v, want %v", got[:3], wantPrefix)
	}
	// Remaining two are the first generic suggestions.
	if got[3] != p.GenericSuggestions[0] || got[4] != p.GenericSuggestions[1] {
		t.Errorf("generic padding = %v, want first two generics", got[3:])
	}
}

func TestGenerate_TiesKeepChecklistOrder(t *testing.T) {
	p := profile.Default()

	rep := report(map[string]int{
		"title_meta":       4,
		"internal_linking": 4,
		"formatting":       4,
	}, []string{"title_meta", "internal_linking", "formatting"})

	got := Generate(rep, classifier.PageTypeCost, p)

	want := []string{
		p.Remediation["title_meta"].For(classifier.PageTypeCost),
		p.Remediation["internal_linking"].For(classifier.PageTypeCost),
		p.Remediation["formatting"].For(classifier.PageTypeCost),
	}
	if !reflect.DeepEqual(got[:3], want) {
		t.Errorf("tie order = %v, want checklist order %v", got[:3], want)
	}
}

func TestGenerate_NoDuplicates(t *testing.T) {
	p := profile.Default()

	rep := report(map[string]int{
		"title_meta":        2,
		"headings_keywords": 3,
		"internal_linking":  1,
		"general_quality":   0,
		"tone_readability":  4,
		"formatting":        5,
	}, []string{
		"title_meta", "headings_keywords", "internal_linking",
		"general_quality", "tone_readability", "formatting",
	})

	got := Generate(rep, classifier.PageTypeCost, p)

	if len(got) > 5 {
		t.Fatalf("len = %d, want at most 5", len(got))
	}
	seen := make(map[string]bool)
	for _, s := range got {
		if seen[s] {
			t.Errorf("duplicate suggestion: %q", s)
		}
		seen[s] = true
	}
}

func TestGenerate_AllHealthyPadsWithGenerics(t *testing.T) {
	p := profile.Default()

	rep := report(map[string]int{
		"title_meta": 9,
		"formatting": 10,
	}, []string{"title_meta", "formatting"})

	got := Generate(rep, classifier.PageTypeCost, p)

	if !reflect.DeepEqual(got, p.GenericSuggestions) {
		t.Errorf("suggestions = %v, want the 5 generics in order", got)
	}
}

func TestGenerate_PageTypeBranch(t *testing.T) {
	p := profile.Default()

	rep := report(map[string]int{"headings_keywords": 2}, []string{"headings_keywords"})

	costFirst := Generate(rep, classifier.PageTypeCost, p)[0]
	cityFirst := Generate(rep, classifier.PageTypeCity, p)[0]

	if costFirst == cityFirst {
		t.Errorf("cost and city suggestions identical for headings_keywords: %q", costFirst)
	}
}

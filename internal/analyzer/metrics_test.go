package analyzer

import (
	"math"
	"reflect"
	"strings"
	"testing"
)

func TestKeywordDensity(t *testing.T) {
	// 10 words, "plumber" twice and "cost" twice = 4 occurrences = 40%.
	text := "plumber cost guide for the plumber who wants cost data"

	got := KeywordDensity(text, []string{"plumber", "cost"})
	if math.Abs(got-40.0) > 1e-9 {
		t.Errorf("KeywordDensity() = %v, want 40.0", got)
	}
}

func TestKeywordDensity_CaseInsensitive(t *testing.T) {
	text := "Plumber PLUMBER plumber here"

	got := KeywordDensity(text, []string{"plumber"})
	if math.Abs(got-75.0) > 1e-9 {
		t.Errorf("KeywordDensity() = %v, want 75.0", got)
	}
}

func TestKeywordDensity_ZeroGuards(t *testing.T) {
	if got := KeywordDensity("some text here", nil); got != 0 {
		t.Errorf("KeywordDensity(text, nil) = %v, want 0", got)
	}
	if got := KeywordDensity("some text here", []string{}); got != 0 {
		t.Errorf("KeywordDensity(text, empty) = %v, want 0", got)
	}
	if got := KeywordDensity("", []string{"plumber"}); got != 0 {
		t.Errorf("KeywordDensity(empty, keywords) = %v, want 0", got)
	}
}

func TestSentences(t *testing.T) {
	text := "First sentence. Second one! Third?? And a fourth..."

	got := Sentences(text)
	want := []string{"First sentence", "Second one", "Third", "And a fourth"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Sentences() = %v, want %v", got, want)
	}
}

func TestSentences_Empty(t *testing.T) {
	if got := Sentences(""); got != nil {
		t.Errorf("Sentences(\"\") = %v, want nil", got)
	}
	if got := Sentences("..!!??"); got != nil {
		t.Errorf("Sentences(punctuation only) = %v, want nil", got)
	}
}

func TestParagraphs(t *testing.T) {
	text := "First paragraph line one.\nStill first.\n\nSecond paragraph.\n\n   \n\nThird."

	got := Paragraphs(text)
	want := []string{"First paragraph line one.\nStill first.", "Second paragraph.", "Third."}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Paragraphs() = %v, want %v", got, want)
	}
}

func TestPriceMatches(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []int
	}{
		{"dollar amounts", "Expect $150 to $1,200 for repairs.", []int{150, 1200}},
		{"euro and pound", "Around €80 or £ 95 per hour.", []int{80, 95}},
		{"currency codes", "Roughly USD 500 or eur 450.", []int{500, 450}},
		{"no marker no match", "Call 555-1234 for a quote of 900.", nil},
		{"empty", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PriceMatches(tt.text); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("PriceMatches() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPunctuationIssueCount(t *testing.T) {
	text := "This is wrong . And this,too."

	// One space-before-period, one letter jammed after comma.
	if got := PunctuationIssueCount(text); got != 2 {
		t.Errorf("PunctuationIssueCount() = %d, want 2", got)
	}

	if got := PunctuationIssueCount("Clean text, properly spaced. Done."); got != 0 {
		t.Errorf("PunctuationIssueCount(clean) = %d, want 0", got)
	}
}

func TestComputeMetrics(t *testing.T) {
	text := "Plumber rates vary a lot. Expect to pay $200 for small jobs.\n\nLarger jobs cost more."

	m := ComputeMetrics(text, []string{"plumber"})

	if m.SentenceCount != 3 {
		t.Errorf("SentenceCount = %d, want 3", m.SentenceCount)
	}
	if m.ParagraphCount != 2 {
		t.Errorf("ParagraphCount = %d, want 2", m.ParagraphCount)
	}
	if !reflect.DeepEqual(m.Prices, []int{200}) {
		t.Errorf("Prices = %v, want [200]", m.Prices)
	}
	if m.KeywordDensity <= 0 {
		t.Errorf("KeywordDensity = %v, want > 0", m.KeywordDensity)
	}
}

func TestComputeMetrics_EmptyText(t *testing.T) {
	m := ComputeMetrics("", []string{"plumber"})

	if m.WordCount != 0 || m.SentenceCount != 0 || m.ParagraphCount != 0 {
		t.Errorf("expected zero counts, got %+v", m)
	}
	if m.AvgSentenceWords != 0 || m.AvgParagraphWords != 0 {
		t.Errorf("expected zero averages, got %+v", m)
	}
}

func TestCountOccurrences(t *testing.T) {
	text := "The price is right. Price, cost and PRICE again."

	got := CountOccurrences(text, []string{"price", "cost"})
	if got != 4 {
		t.Errorf("CountOccurrences() = %d, want 4", got)
	}
}

func TestComputeMetrics_Deterministic(t *testing.T) {
	text := strings.Repeat("Plumber costs vary by region. ", 20)
	keywords := []string{"plumber", "costs"}

	a := ComputeMetrics(text, keywords)
	b := ComputeMetrics(text, keywords)

	if !reflect.DeepEqual(a, b) {
		t.Errorf("ComputeMetrics not deterministic: %+v vs %+v", a, b)
	}
}

package analyzer

import (
	"regexp"
	"strconv"
	"strings"
)

// Metrics contains the computed text metrics for a document. All fields are
// derived from pure functions over the text; ratios with zero denominators
// evaluate to 0.
type Metrics struct {
	WordCount         int
	SentenceCount     int
	ParagraphCount    int
	AvgSentenceWords  float64
	AvgParagraphWords float64
	KeywordDensity    float64
	Prices            []int
	PunctuationIssues int
}

// ComputeMetrics computes metrics for a document's text and keyword list.
func ComputeMetrics(text string, keywords []string) *Metrics {
	m := &Metrics{
		WordCount:         WordCount(text),
		KeywordDensity:    KeywordDensity(text, keywords),
		Prices:            PriceMatches(text),
		PunctuationIssues: PunctuationIssueCount(text),
	}

	sentences := Sentences(text)
	m.SentenceCount = len(sentences)
	if len(sentences) > 0 {
		total := 0
		for _, s := range sentences {
			total += WordCount(s)
		}
		m.AvgSentenceWords = float64(total) / float64(len(sentences))
	}

	paragraphs := Paragraphs(text)
	m.ParagraphCount = len(paragraphs)
	if len(paragraphs) > 0 {
		total := 0
		for _, p := range paragraphs {
			total += WordCount(p)
		}
		m.AvgParagraphWords = float64(total) / float64(len(paragraphs))
	}

	return m
}

// WordCount returns the number of whitespace-separated tokens in text.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// KeywordDensity returns the percentage of document word tokens matched by
// keyword occurrences: the case-insensitive occurrence counts of every
// keyword summed, divided by the word count. Empty text or an empty keyword
// list yields 0.
func KeywordDensity(text string, keywords []string) float64 {
	words := WordCount(text)
	if words == 0 || len(keywords) == 0 {
		return 0
	}

	lower := strings.ToLower(text)
	occurrences := 0
	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw == "" {
			continue
		}
		occurrences += strings.Count(lower, kw)
	}

	return float64(occurrences) / float64(words) * 100
}

var sentenceSplit = regexp.MustCompile(`[.!?]+`)

// Sentences splits text on runs of sentence terminators, trimming whitespace
// and dropping empty results.
func Sentences(text string) []string {
	var sentences []string
	for _, part := range sentenceSplit.Split(text, -1) {
		part = strings.TrimSpace(part)
		if part != "" {
			sentences = append(sentences, part)
		}
	}
	return sentences
}

var paragraphSplit = regexp.MustCompile(`\n\s*\n`)

// Paragraphs splits text on blank-line separators, trimming whitespace and
// dropping empty results.
func Paragraphs(text string) []string {
	var paragraphs []string
	for _, part := range paragraphSplit.Split(text, -1) {
		part = strings.TrimSpace(part)
		if part != "" {
			paragraphs = append(paragraphs, part)
		}
	}
	return paragraphs
}

var pricePattern = regexp.MustCompile(`(?i)(?:[$€£]|usd|eur|gbp)\s*(\d{1,3}(?:,\d{3})*|\d+)`)

// PriceMatches returns the numeric values following a currency marker, in
// document order. Thousands separators are tolerated.
func PriceMatches(text string) []int {
	var prices []int
	for _, match := range pricePattern.FindAllStringSubmatch(text, -1) {
		raw := strings.ReplaceAll(match[1], ",", "")
		value, err := strconv.Atoi(raw)
		if err != nil {
			continue
		}
		prices = append(prices, value)
	}
	return prices
}

var punctuationIssuePattern = regexp.MustCompile(`\s+[,.?!]|[,.?!][a-zA-Z]`)

// PunctuationIssueCount counts spacing mistakes around punctuation: a space
// before a terminator, or a letter jammed against one.
func PunctuationIssueCount(text string) int {
	return len(punctuationIssuePattern.FindAllString(text, -1))
}

// CountOccurrences sums case-insensitive occurrence counts of every term in
// the text. Shared by the classifier and the lexicon-based rules.
func CountOccurrences(text string, terms []string) int {
	lower := strings.ToLower(text)
	total := 0
	for _, term := range terms {
		total += strings.Count(lower, term)
	}
	return total
}

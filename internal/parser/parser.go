package parser

import (
	"regexp"
	"strings"
)

// Format represents the markup flavor of a document
type Format int

const (
	FormatPlain Format = iota
	FormatHTML
	FormatMarkdown
)

func (f Format) String() string {
	switch f {
	case FormatHTML:
		return "html"
	case FormatMarkdown:
		return "markdown"
	default:
		return "plain"
	}
}

// Link is a single extracted anchor: its destination and visible text.
type Link struct {
	Href   string
	Anchor string
}

// Features holds the markup signals extracted from a document. Extraction is
// total: malformed or absent markup yields empty fields, never an error.
type Features struct {
	Format        Format
	Headings      map[int][]string
	Links         []Link
	BoldCount     int
	ButtonCount   int
	TableCount    int
	ListItemCount int
}

func newFeatures(format Format) *Features {
	return &Features{
		Format:   format,
		Headings: make(map[int][]string),
	}
}

// HeadingsAt returns the inner text of all headings at the given level.
func (f *Features) HeadingsAt(level int) []string {
	return f.Headings[level]
}

// AllHeadings returns heading texts across levels 1-6 in level order.
func (f *Features) AllHeadings() []string {
	var all []string
	for level := 1; level <= 6; level++ {
		all = append(all, f.Headings[level]...)
	}
	return all
}

// HasHeadings reports whether any heading was found at any level.
func (f *Features) HasHeadings() bool {
	for _, hs := range f.Headings {
		if len(hs) > 0 {
			return true
		}
	}
	return false
}

var htmlTagPattern = regexp.MustCompile(`(?i)<\s*(h[1-6]|a|p|b|strong|em|button|table|ul|ol|li|div|span)\b`)

// Detect sniffs the markup format of a document. HTML wins over Markdown when
// both kinds of syntax appear, matching how exported pages mix the two.
func Detect(text string) Format {
	if htmlTagPattern.MatchString(text) {
		return FormatHTML
	}
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* ") {
			return FormatMarkdown
		}
	}
	if markdownLinkPattern.MatchString(text) {
		return FormatMarkdown
	}
	return FormatPlain
}

// Extract pulls markup features from a document using the extractor matching
// its detected format. Plain documents yield empty features.
func Extract(text string) *Features {
	switch Detect(text) {
	case FormatHTML:
		return extractHTML(text)
	case FormatMarkdown:
		return extractMarkdown(text)
	default:
		return newFeatures(FormatPlain)
	}
}

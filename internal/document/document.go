package document

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Document is a single page under evaluation: its raw text content and the
// ordered target keyword list. The first keyword is the primary keyword.
// A Document is immutable once constructed.
type Document struct {
	Text     string
	Keywords []string
}

// New creates a Document, trimming keywords and dropping empty entries.
func New(text string, keywords []string) *Document {
	kws := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		kw = strings.TrimSpace(kw)
		if kw != "" {
			kws = append(kws, kw)
		}
	}
	return &Document{Text: text, Keywords: kws}
}

// Primary returns the primary (first) keyword, or "" when no keywords exist.
func (d *Document) Primary() string {
	if len(d.Keywords) == 0 {
		return ""
	}
	return d.Keywords[0]
}

// Title returns the first non-empty line of the document with markup tags
// stripped. Pages exported from doc editors carry the title as the first line.
func (d *Document) Title() string {
	for _, line := range strings.Split(d.Text, "\n") {
		line = stripTags(strings.TrimSpace(line))
		line = strings.TrimLeft(line, "# ")
		if line != "" {
			return line
		}
	}
	return ""
}

// stripTags removes anything between < and > without requiring well-formed
// markup. An unclosed tag swallows the rest of the line.
func stripTags(s string) string {
	var sb strings.Builder
	inTag := false
	for _, r := range s {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			sb.WriteRune(r)
		}
	}
	return strings.TrimSpace(sb.String())
}

// ReadText reads a document's text content from a file.
func ReadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read document: %w", err)
	}
	return string(data), nil
}

// ReadKeywords reads a keyword list from a file. CSV files are searched for a
// column whose header contains "keyword" (falling back to the first column);
// any other file is treated as one keyword per line.
func ReadKeywords(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read keywords: %w", err)
	}

	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return parseKeywordCSV(string(data))
	}
	return parseKeywordLines(string(data)), nil
}

func parseKeywordLines(content string) []string {
	var keywords []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			keywords = append(keywords, line)
		}
	}
	return keywords
}

func parseKeywordCSV(content string) ([]string, error) {
	reader := csv.NewReader(strings.NewReader(content))
	reader.FieldsPerRecord = -1 // tolerate ragged rows

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse keyword CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	// Find the keyword column from the header row; default to the first.
	col := 0
	for idx, name := range records[0] {
		if strings.Contains(strings.ToLower(name), "keyword") {
			col = idx
			break
		}
	}

	var keywords []string
	for _, row := range records[1:] {
		if len(row) <= col {
			continue
		}
		kw := strings.TrimSpace(row[col])
		if kw != "" {
			keywords = append(keywords, kw)
		}
	}
	return keywords, nil
}

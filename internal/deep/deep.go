// Package deep scores checklist criteria with the Anthropic API. It mirrors
// the deterministic checklist: the same rule names, the same 0-10 scale, and
// a per-rule fallback to the local result when the model cannot answer.
package deep

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/pthm/seoproof/internal/classifier"
	"github.com/pthm/seoproof/internal/document"
	"github.com/pthm/seoproof/internal/rules"
)

const maxContentChars = 8000

// Analyzer scores documents with Claude.
type Analyzer struct {
	client anthropic.Client
}

// New creates an Analyzer, or returns nil when ANTHROPIC_API_KEY is unset.
func New() *Analyzer {
	apiKey := os.Getenv("ANTHROPIC_API_KEY")
	if apiKey == "" {
		return nil
	}
	return &Analyzer{client: anthropic.NewClient(option.WithAPIKey(apiKey))}
}

// Score asks the model to score each named criterion 0-10 with a brief
// explanation. Missing or malformed entries are simply absent from the
// returned map; the engine keeps its deterministic result for those.
func (a *Analyzer) Score(ctx context.Context, doc *document.Document, pt classifier.PageType, names []string) (map[string]rules.Result, error) {
	if a == nil {
		return nil, fmt.Errorf("deep analyzer not initialized (missing ANTHROPIC_API_KEY)")
	}

	prompt := buildPrompt(doc, pt, names)

	resp, err := a.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.ModelClaude3_5Haiku20241022,
		MaxTokens: 2000,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("Claude API error: %w", err)
	}

	var responseText string
	for _, block := range resp.Content {
		if block.Type == "text" {
			responseText = block.Text
			break
		}
	}

	var parsed struct {
		Results map[string]struct {
			Score   int    `json:"score"`
			Details string `json:"details"`
		} `json:"results"`
	}
	if err := json.Unmarshal([]byte(extractJSON(responseText)), &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse Claude response: %w", err)
	}

	results := make(map[string]rules.Result, len(parsed.Results))
	for _, name := range names {
		entry, ok := parsed.Results[name]
		if !ok {
			continue
		}
		score := entry.Score
		if score < 0 {
			score = 0
		}
		if score > 10 {
			score = 10
		}
		results[name] = rules.Result{
			Score:   score,
			Details: []rules.Annotation{{Status: statusForScore(score), Message: entry.Details}},
		}
	}
	return results, nil
}

func buildPrompt(doc *document.Document, pt classifier.PageType, names []string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "You are an expert SEO content analyzer for %s pages.\n\n", pt)
	fmt.Fprintf(&sb, "Score this %s page 0-10 on each of these criteria: %s.\n\n", pt, strings.Join(names, ", "))

	sb.WriteString("Content:\n")
	sb.WriteString(truncate(doc.Text, maxContentChars))
	sb.WriteString("\n\nTarget keywords:\n")

	keywords := doc.Keywords
	if len(keywords) > 10 {
		keywords = keywords[:10]
	}
	sb.WriteString(strings.Join(keywords, ", "))

	sb.WriteString("\n\nRespond with ONLY JSON in this shape:\n")
	sb.WriteString(`{"results": {"<criterion>": {"score": 0, "details": "brief explanation"}}}`)
	return sb.String()
}

func statusForScore(score int) rules.Status {
	switch {
	case score >= 8:
		return rules.StatusPass
	case score >= 5:
		return rules.StatusPartial
	default:
		return rules.StatusFail
	}
}

// extractJSON strips a markdown code fence if the model wrapped its answer.
func extractJSON(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "{") {
		return s
	}
	if start := strings.Index(s, "{"); start != -1 {
		if end := strings.LastIndex(s, "}"); end > start {
			return s[start : end+1]
		}
	}
	return s
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "\n...[truncated]..."
}

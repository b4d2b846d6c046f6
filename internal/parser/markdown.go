package parser

import (
	"regexp"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

var markdownLinkPattern = regexp.MustCompile(`\[[^\]]+\]\([^)]+\)`)

// extractMarkdown walks a goldmark AST and collects the same signals the HTML
// extractor produces, so rules stay format-agnostic.
func extractMarkdown(content string) *Features {
	f := newFeatures(FormatMarkdown)
	source := []byte(content)

	md := goldmark.New()
	reader := text.NewReader(source)
	doc := md.Parser().Parse(reader)

	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *ast.Heading:
			title := string(node.Text(source))
			if title != "" {
				f.Headings[node.Level] = append(f.Headings[node.Level], title)
			}

		case *ast.Link:
			f.Links = append(f.Links, Link{
				Href:   string(node.Destination),
				Anchor: string(node.Text(source)),
			})

		case *ast.Emphasis:
			// Level 2 is ** bold **; level 1 italics carries no weight here.
			if node.Level == 2 {
				f.BoldCount++
			}

		case *ast.ListItem:
			f.ListItemCount++
		}

		return ast.WalkContinue, nil
	})

	return f
}

package parser

import (
	"strings"

	"golang.org/x/net/html"
)

// extractHTML tokenizes HTML-style markup and collects heading, link, and
// formatting signals. The tokenizer never fails: malformed input produces an
// ErrorToken at worst, so an unclosed tag simply ends its capture at EOF.
func extractHTML(text string) *Features {
	f := newFeatures(FormatHTML)

	z := html.NewTokenizer(strings.NewReader(text))

	var headingLevel int
	var headingText strings.Builder
	var anchorHref string
	var anchorText strings.Builder
	inAnchor := false

	flushHeading := func() {
		if headingLevel > 0 {
			title := strings.TrimSpace(headingText.String())
			if title != "" {
				f.Headings[headingLevel] = append(f.Headings[headingLevel], title)
			}
			headingLevel = 0
			headingText.Reset()
		}
	}
	flushAnchor := func() {
		if inAnchor {
			f.Links = append(f.Links, Link{
				Href:   anchorHref,
				Anchor: strings.TrimSpace(anchorText.String()),
			})
			inAnchor = false
			anchorHref = ""
			anchorText.Reset()
		}
	}

	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			// EOF or malformed remainder: flush any open captures.
			flushHeading()
			flushAnchor()
			return f

		case html.TextToken:
			text := string(z.Text())
			if headingLevel > 0 {
				headingText.WriteString(text)
			}
			if inAnchor {
				anchorText.WriteString(text)
			}

		case html.StartTagToken, html.SelfClosingTagToken:
			name, hasAttr := z.TagName()
			switch tag := string(name); tag {
			case "h1", "h2", "h3", "h4", "h5", "h6":
				flushHeading()
				headingLevel = int(tag[1] - '0')
			case "a":
				flushAnchor()
				inAnchor = true
				for hasAttr {
					var key, val []byte
					key, val, hasAttr = z.TagAttr()
					if string(key) == "href" {
						anchorHref = string(val)
					}
				}
			case "b", "strong":
				f.BoldCount++
			case "button":
				f.ButtonCount++
			case "table":
				f.TableCount++
			case "li":
				f.ListItemCount++
			}

		case html.EndTagToken:
			name, _ := z.TagName()
			switch tag := string(name); {
			case headingLevel > 0 && len(tag) == 2 && tag[0] == 'h' && int(tag[1]-'0') == headingLevel:
				flushHeading()
			case tag == "a":
				flushAnchor()
			}
		}
	}
}

package rules

import "strings"

// InternalLinkingRule checks link presence, anchor text quality, and whether
// any link points at related content on the same site. Shared by both
// checklists.
type InternalLinkingRule struct{}

func (r *InternalLinkingRule) Name() string {
	return "internal_linking"
}

func (r *InternalLinkingRule) Description() string {
	return "Checks internal link coverage and anchor text quality"
}

// Anchor texts that tell the reader (and crawler) nothing.
var weakAnchors = []string{"click here", "here", "read more", "more", "link", "this"}

func (r *InternalLinkingRule) Evaluate(ctx *EvalContext) Result {
	sc := NewScorecard(0)

	links := ctx.Features.Links
	if len(links) == 0 {
		sc.Fail("No links found in the content")
		return sc.Result()
	}
	sc.Pass(3, "%d link(s) found", len(links))

	if len(links) >= 3 {
		sc.Pass(2, "Link coverage is healthy (3 or more)")
	} else {
		sc.Partial(1, "Only %d link(s); aim for at least 3", len(links))
	}

	weak := 0
	for _, link := range links {
		anchor := strings.ToLower(strings.TrimSpace(link.Anchor))
		if anchor == "" || len(anchor) < 4 {
			weak++
			continue
		}
		for _, wa := range weakAnchors {
			if anchor == wa {
				weak++
				break
			}
		}
	}
	switch {
	case weak == 0:
		sc.Pass(3, "All anchor texts are descriptive")
	case weak < len(links):
		sc.Partial(1, "%d of %d anchor texts are generic or too short", weak, len(links))
	default:
		sc.Fail("Every anchor text is generic or too short")
	}

	internal := 0
	for _, link := range links {
		if isInternalHref(link.Href) {
			internal++
		}
	}
	if internal > 0 {
		sc.Pass(2, "%d internal link(s) to related content", internal)
	} else {
		sc.Fail("No internal links; every link points off-site")
	}

	return sc.Result()
}

// isInternalHref treats relative paths, fragments, and scheme-less hrefs as
// internal.
func isInternalHref(href string) bool {
	href = strings.TrimSpace(href)
	if href == "" {
		return false
	}
	if strings.HasPrefix(href, "/") || strings.HasPrefix(href, "#") || strings.HasPrefix(href, "./") || strings.HasPrefix(href, "../") {
		return true
	}
	return !strings.Contains(href, "://") && !strings.HasPrefix(strings.ToLower(href), "mailto:")
}

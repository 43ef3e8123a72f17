package linkcheck

import (
	"regexp"
	"sort"
	"strings"
)

var (
	markdownLinkRegex = regexp.MustCompile(`\[[^\]]*\]\(\s*<?([^)\s>]+)>?(?:\s+"[^"]*")?\s*\)`)
	hrefDoubleRegex   = regexp.MustCompile(`href="([^"]*)"`)
	hrefSingleRegex   = regexp.MustCompile(`href='([^']*)'`)
	schemeRegex       = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.-]*:`)

	linkPatterns = []*regexp.Regexp{markdownLinkRegex, hrefDoubleRegex, hrefSingleRegex}
)

// Link is a link found in a content file.
type Link struct {
	File   string
	Line   int
	Target string

	offset int
}

// ExtractLinks returns every link of content in document order.
func ExtractLinks(file string, content string) []*Link {
	var res []*Link
	for _, re := range linkPatterns {
		for _, match := range re.FindAllStringSubmatchIndex(content, -1) {
			start, end := match[2], match[3]
			res = append(res, &Link{
				File:   file,
				Line:   1 + strings.Count(content[:start], "\n"),
				Target: content[start:end],
				offset: start,
			})
		}
	}

	sort.SliceStable(res, func(i, j int) bool {
		return res[i].offset < res[j].offset
	})
	return res
}

// IsInternal reports whether the link points into the documentation tree.
// Scheme-prefixed links (https:, mailto:, tel:), protocol-relative links
// and pure anchors are not checked.
func IsInternal(target string) bool {
	target = strings.TrimSpace(target)
	switch {
	case target == "":
		return false
	case strings.HasPrefix(target, "#"):
		return false
	case strings.HasPrefix(target, "//"):
		return false
	case schemeRegex.MatchString(target):
		return false
	}
	return true
}

// stripFragment removes the #fragment and ?query parts.
func stripFragment(target string) string {
	if i := strings.IndexAny(target, "#?"); i >= 0 {
		return target[:i]
	}
	return target
}

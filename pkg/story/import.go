// import.go converts existing HTML back into story Markdown, a starting
// point for migrating a hypertext into macro-annotated sources.
package story

import (
	"regexp"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
)

var (
	sectionOpenPattern  = regexp.MustCompile(`<div[^>]*\bid="([^"]*)"[^>]*\bclass="section"[^>]*>`)
	sectionClosePattern = regexp.MustCompile(`</div>`)
	gotoAnchorPattern   = regexp.MustCompile(`<a[^>]*\bdata-goto-section="([^"]*)"[^>]*>(.*?)</a>`)
	callAnchorPattern   = regexp.MustCompile(`<a[^>]*\bdata-call-function="([^"]*)"[^>]*>(.*?)</a>`)
	expandSpanPattern   = regexp.MustCompile(`<span[^>]*\bdata-expand-macro="([^"]*)"[^>]*>\s*</span>`)
)

// ImportHTML converts an HTML page into story Markdown. Compiled story
// markup is mapped back to macro syntax first, so re-importing a built
// document round-trips its sections, links, and expansion points; any
// other HTML converts to plain Markdown.
func ImportHTML(html string) (string, error) {
	if html == "" {
		return "", nil
	}

	html = sectionOpenPattern.ReplaceAllString(html, "\n\n{{$1}}\n\n")
	html = sectionClosePattern.ReplaceAllString(html, "")
	html = gotoAnchorPattern.ReplaceAllString(html, "[$2]({@$1})")
	html = callAnchorPattern.ReplaceAllString(html, "[$2]({#$1})")
	html = expandSpanPattern.ReplaceAllString(html, "{$1}")

	markdown, err := htmltomarkdown.ConvertString(html)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(markdown) + "\n", nil
}

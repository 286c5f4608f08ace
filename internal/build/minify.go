// minify.go shrinks the assembled document.
package build

import (
	"github.com/tdewolff/minify/v2"
	mhtml "github.com/tdewolff/minify/v2/html"
)

// minifyHTML minifies the final document. Quotes and end tags are kept so
// the engine's data-attribute selectors and section nesting survive intact.
func minifyHTML(doc string) (string, error) {
	m := minify.New()
	m.Add("text/html", &mhtml.Minifier{
		KeepQuotes:       true,
		KeepEndTags:      true,
		KeepDocumentTags: true,
	})
	return m.String("text/html", doc)
}

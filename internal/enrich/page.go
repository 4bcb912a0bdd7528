// internal/enrich/page.go
package enrich

import (
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// parsePage extracts the first <title> text and the meta description
// from an HTML body. A meta tag named "description" wins; the Open
// Graph og:description tag is the fallback. Unparseable markup yields
// empty strings, which callers map to the "N/A" sentinel.
func parsePage(body io.Reader) (title, description string) {
	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return "", ""
	}

	title = strings.TrimSpace(doc.Find("title").First().Text())

	if content, ok := doc.Find(`meta[name="description"]`).First().Attr("content"); ok {
		description = strings.TrimSpace(content)
	} else if content, ok := doc.Find(`meta[property="og:description"]`).First().Attr("content"); ok {
		description = strings.TrimSpace(content)
	}

	return title, description
}

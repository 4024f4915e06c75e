package extract

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// DOM extracts links by parsing the page into a document and selecting
// anchor elements. It survives attribute reordering and markup noise that
// would defeat the raw-text scan.
type DOM struct{}

var _ Extractor = DOM{}

// Links returns the de-duplicated anchor hrefs under /study/history/{slug}/
// in document order.
func (DOM) Links(body, slug string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse listing page: %w", err)
	}

	prefix := "/study/history/" + slug + "/"
	var links []string
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, ok := sel.Attr("href")
		if !ok || !strings.HasPrefix(href, prefix) {
			return
		}
		links = append(links, href)
	})
	return dedupe(links), nil
}

package extract

import (
	"fmt"
	"regexp"
)

// Regex extracts links by scanning raw markup for href attributes. No DOM is
// built; this trades robustness against markup changes for simplicity.
type Regex struct{}

var _ Extractor = Regex{}

// Links returns the de-duplicated href values under /study/history/{slug}/
// in first-occurrence order.
func (Regex) Links(body, slug string) ([]string, error) {
	pattern, err := regexp.Compile(`href="(/study/history/` + regexp.QuoteMeta(slug) + `/[^" ]*)"`)
	if err != nil {
		return nil, fmt.Errorf("compile link pattern for slug %q: %w", slug, err)
	}

	matches := pattern.FindAllStringSubmatch(body, -1)
	links := make([]string, 0, len(matches))
	for _, match := range matches {
		links = append(links, match[1])
	}
	return dedupe(links), nil
}

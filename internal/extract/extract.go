// Package extract discovers chapter and episode links on listing pages.
//
// The default extractor is deliberate pattern matching over raw markup; a
// DOM-based extractor backed by goquery can be selected through
// configuration. Both return the same shape: relative links under
// /study/history/{slug}/, de-duplicated in first-seen order.
package extract

import (
	"fmt"
	"regexp"
)

// Extractor finds sub-page links on a listing-page body for a given slug.
type Extractor interface {
	Links(body, slug string) ([]string, error)
}

// New returns the extractor selected by name: "regex" or "dom".
func New(name string) (Extractor, error) {
	switch name {
	case "regex":
		return Regex{}, nil
	case "dom":
		return DOM{}, nil
	default:
		return nil, fmt.Errorf("unknown extractor %q", name)
	}
}

var (
	chapterShape = regexp.MustCompile(`/\d{2}-`)
	episodeShape = regexp.MustCompile(`/s\d+-episode-\d+`)
)

// Chapters keeps only links carrying a two-digit chapter prefix segment.
func Chapters(links []string) []string {
	return filter(links, chapterShape)
}

// Episodes keeps only links carrying an sN-episode-N segment.
func Episodes(links []string) []string {
	return filter(links, episodeShape)
}

func filter(links []string, shape *regexp.Regexp) []string {
	out := make([]string, 0, len(links))
	for _, link := range links {
		if shape.MatchString(link) {
			out = append(out, link)
		}
	}
	return out
}

// dedupe drops repeated links, keeping each at its earliest position.
func dedupe(links []string) []string {
	seen := make(map[string]struct{}, len(links))
	out := make([]string, 0, len(links))
	for _, link := range links {
		if _, ok := seen[link]; ok {
			continue
		}
		seen[link] = struct{}{}
		out = append(out, link)
	}
	return out
}

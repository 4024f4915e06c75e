package pipeline

import (
	"fmt"
	"regexp"

	"saints/internal/catalog"
	"saints/internal/textutil"
)

var (
	chapterPrefix = regexp.MustCompile(`/(\d{2})-`)
	episodePrefix = regexp.MustCompile(`/(s\d+-episode-\d+)`)
)

// Prefix extracts the ordering prefix from a link path: the two-digit
// chapter number for volumes, the sNN-episode-NN code for podcasts. Returns
// "" when the link carries no prefix.
func Prefix(kind catalog.Kind, link string) string {
	pattern := chapterPrefix
	if kind == catalog.KindPodcast {
		pattern = episodePrefix
	}
	match := pattern.FindStringSubmatch(link)
	if match == nil {
		return ""
	}
	return match[1]
}

// Filename builds "{prefix} {cleaned title}.mp3". Leading digits are
// stripped from the title because metadata titles sometimes repeat the
// chapter number already present in the prefix; slashes become hyphens so
// the name stays a single path component.
func Filename(prefix, title string) string {
	cleaned := textutil.StripLeadingDigits(title)
	return textutil.SanitizeFileName(fmt.Sprintf("%s %s.mp3", prefix, cleaned))
}

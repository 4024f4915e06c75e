package textutil

import (
	"regexp"
	"strings"
)

// fileNameReplacer replaces path separators that would otherwise split a
// filename into directories. Titles come from site metadata and occasionally
// contain slashes ("Mission to the Sandwich Islands / Hawaii").
var fileNameReplacer = strings.NewReplacer(
	"/", "-",
)

// SanitizeFileName makes a metadata title safe to use as a single path
// component. Forward slashes become hyphens; surrounding whitespace is
// trimmed.
func SanitizeFileName(name string) string {
	return strings.TrimSpace(fileNameReplacer.Replace(name))
}

var leadingDigits = regexp.MustCompile(`^\d+\s*`)

// StripLeadingDigits removes a leading run of digits (and the whitespace
// after it) from a title. Chapter titles sometimes repeat the chapter number
// that already appears in the link path prefix.
func StripLeadingDigits(title string) string {
	return leadingDigits.ReplaceAllString(title, "")
}

package textutil

import "testing"

func TestSanitizeFileName(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "An Eye Single", "An Eye Single"},
		{"slash", "Mission to A/B", "Mission to A-B"},
		{"multiple slashes", "a/b/c", "a-b-c"},
		{"whitespace trimmed", "  padded  ", "padded"},
		{"empty", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := SanitizeFileName(tc.in); got != tc.want {
				t.Fatalf("SanitizeFileName(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestStripLeadingDigits(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"number and space", "3 An Eye Single", "An Eye Single"},
		{"multi-digit", "42 The Answer", "The Answer"},
		{"no digits", "Prologue", "Prologue"},
		{"digits only", "12", ""},
		{"digits inside stay", "Top 10 Events", "Top 10 Events"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := StripLeadingDigits(tc.in); got != tc.want {
				t.Fatalf("StripLeadingDigits(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

package resolve

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"saints/internal/fetch"
)

// stateMarker locates the embedded page state: a base64 string literal
// assigned to the global the site's reader app boots from.
var stateMarker = regexp.MustCompile(`window\.__INITIAL_STATE__="([^"]+)"`)

// defaultTitle is used when a content entry carries no title of its own.
const defaultTitle = "chapter"

// preferredVariant is the narration variant picked when present.
const preferredVariant = "male"

type pageState struct {
	Reader struct {
		ContentStore map[string]contentEntry `json:"contentStore"`
	} `json:"reader"`
}

type contentEntry struct {
	Meta struct {
		Title string         `json:"title"`
		Audio []audioVariant `json:"audio"`
	} `json:"meta"`
}

type audioVariant struct {
	Variant  string `json:"variant"`
	MediaURL string `json:"mediaUrl"`
}

// Resolution is the outcome of resolving one chapter or episode page.
// Found is false when the page has no embedded state or no content entry
// matches the link; that is an expected soft miss, not an error. AudioURL
// may be empty even when Found is true (entry with an empty audio list).
type Resolution struct {
	AudioURL string
	Title    string
	Found    bool
}

// Resolver fetches detail pages and extracts their audio metadata.
type Resolver struct {
	client  *fetch.Client
	baseURL string
}

// New creates a Resolver that fetches pages relative to baseURL.
func New(client *fetch.Client, baseURL string) *Resolver {
	return &Resolver{client: client, baseURL: strings.TrimRight(baseURL, "/")}
}

// Resolve fetches the detail page for link and extracts its audio metadata.
// Network and decode failures are errors; an unresolvable page is a soft
// miss reported through Resolution.Found.
func (r *Resolver) Resolve(ctx context.Context, link string) (Resolution, error) {
	body, err := r.client.Text(ctx, r.baseURL+link)
	if err != nil {
		return Resolution{}, err
	}
	return ResolvePage(body, link)
}

// ResolvePage extracts audio metadata for link from an already-fetched page
// body. Exposed separately so the lookup logic is testable without a server.
func ResolvePage(body, link string) (Resolution, error) {
	match := stateMarker.FindStringSubmatch(body)
	if match == nil {
		return Resolution{}, nil
	}

	decoded, err := base64.StdEncoding.DecodeString(match[1])
	if err != nil {
		return Resolution{}, fmt.Errorf("decode page state for %s: %w", link, err)
	}

	var state pageState
	if err := json.Unmarshal(decoded, &state); err != nil {
		return Resolution{}, fmt.Errorf("parse page state for %s: %w", link, err)
	}

	entry, ok := lookupEntry(state.Reader.ContentStore, link)
	if !ok {
		return Resolution{}, nil
	}

	title := entry.Meta.Title
	if title == "" {
		title = defaultTitle
	}
	return Resolution{
		AudioURL: pickAudioURL(entry.Meta.Audio),
		Title:    title,
		Found:    true,
	}, nil
}

// lookupEntry reconciles the browsable link with the store's internal
// addressing. The store keys do not consistently match the page URL, so
// three strategies are tried in order, first hit wins:
//  1. the link with its leading /study segment stripped
//  2. the same with the query string removed
//  3. any key whose final path segment matches the link's final segment
func lookupEntry(store map[string]contentEntry, link string) (contentEntry, bool) {
	for _, candidate := range []func() (contentEntry, bool){
		func() (contentEntry, bool) {
			entry, ok := store[strings.TrimPrefix(link, "/study")]
			return entry, ok
		},
		func() (contentEntry, bool) {
			entry, ok := store[strings.TrimPrefix(stripQuery(link), "/study")]
			return entry, ok
		},
		func() (contentEntry, bool) {
			return suffixScan(store, link)
		},
	} {
		if entry, ok := candidate(); ok {
			return entry, true
		}
	}
	return contentEntry{}, false
}

func suffixScan(store map[string]contentEntry, link string) (contentEntry, bool) {
	path := stripQuery(link)
	segment := path[strings.LastIndex(path, "/")+1:]
	if segment == "" {
		return contentEntry{}, false
	}

	// Sorted scan keeps the result deterministic when several keys share the
	// same trailing segment.
	keys := make([]string, 0, len(store))
	for key := range store {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if strings.HasSuffix(key, "/"+segment) {
			return store[key], true
		}
	}
	return contentEntry{}, false
}

func stripQuery(link string) string {
	if i := strings.IndexByte(link, '?'); i >= 0 {
		return link[:i]
	}
	return link
}

// pickAudioURL prefers the male narration variant and falls back to the
// first listed variant, including when the preferred variant has no URL.
// An empty list yields no URL.
func pickAudioURL(variants []audioVariant) string {
	var url string
	for _, v := range variants {
		if v.Variant == preferredVariant {
			url = v.MediaURL
			break
		}
	}
	if url == "" && len(variants) > 0 {
		url = variants[0].MediaURL
	}
	return url
}

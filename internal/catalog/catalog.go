// Package catalog defines the immutable volume and podcast-season
// descriptors the pipeline processes. The built-in tables cover the Saints
// audiobook volumes and podcast seasons; configuration may replace either
// list.
package catalog

import "saints/internal/config"

// Kind distinguishes audiobook volumes from podcast seasons. The two kinds
// share the pipeline but use different link shapes and filename prefixes.
type Kind string

const (
	KindVolume  Kind = "volume"
	KindPodcast Kind = "podcast"
)

// Collection pairs a display name with the URL path segment under
// /study/history/ where its listing page lives. Collections are defined at
// startup and never mutated.
type Collection struct {
	Name string
	Slug string
	Kind Kind
}

func defaultVolumes() []Collection {
	return []Collection{
		{Name: "Volume 1", Slug: "saints-v1", Kind: KindVolume},
		{Name: "Volume 2", Slug: "saints-v2", Kind: KindVolume},
		{Name: "Volume 3", Slug: "saints-v3", Kind: KindVolume},
		{Name: "Volume 4", Slug: "saints-v4", Kind: KindVolume},
	}
}

func defaultPodcasts() []Collection {
	return []Collection{
		{Name: "Podcast Season 1", Slug: "saints-podcast/season-01", Kind: KindPodcast},
		{Name: "Podcast Season 2", Slug: "saints-podcast/season-02", Kind: KindPodcast},
		{Name: "Podcast Season 3", Slug: "saints-podcast/season-03", Kind: KindPodcast},
		{Name: "Podcast Season 4", Slug: "saints-podcast/season-04", Kind: KindPodcast},
	}
}

// Volumes returns the audiobook volume descriptors, honoring any
// configuration override.
func Volumes(cfg *config.Config) []Collection {
	if cfg == nil || len(cfg.Catalog.Volumes) == 0 {
		return defaultVolumes()
	}
	out := make([]Collection, 0, len(cfg.Catalog.Volumes))
	for _, entry := range cfg.Catalog.Volumes {
		out = append(out, Collection{Name: entry.Name, Slug: entry.Slug, Kind: KindVolume})
	}
	return out
}

// Podcasts returns the podcast-season descriptors, honoring any
// configuration override.
func Podcasts(cfg *config.Config) []Collection {
	if cfg == nil || len(cfg.Catalog.Podcasts) == 0 {
		return defaultPodcasts()
	}
	out := make([]Collection, 0, len(cfg.Catalog.Podcasts))
	for _, entry := range cfg.Catalog.Podcasts {
		out = append(out, Collection{Name: entry.Name, Slug: entry.Slug, Kind: KindPodcast})
	}
	return out
}

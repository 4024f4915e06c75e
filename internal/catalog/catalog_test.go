package catalog

import (
	"testing"

	"saints/internal/config"
)

func TestVolumesDefaults(t *testing.T) {
	vols := Volumes(nil)
	if len(vols) != 4 {
		t.Fatalf("expected 4 volumes, got %d", len(vols))
	}
	if vols[0].Name != "Volume 1" || vols[0].Slug != "saints-v1" {
		t.Fatalf("unexpected first volume: %+v", vols[0])
	}
	for _, v := range vols {
		if v.Kind != KindVolume {
			t.Fatalf("volume %q has kind %q", v.Name, v.Kind)
		}
	}
}

func TestPodcastsDefaults(t *testing.T) {
	seasons := Podcasts(&config.Config{})
	if len(seasons) != 4 {
		t.Fatalf("expected 4 seasons, got %d", len(seasons))
	}
	if seasons[3].Slug != "saints-podcast/season-04" {
		t.Fatalf("unexpected last season slug: %q", seasons[3].Slug)
	}
	for _, s := range seasons {
		if s.Kind != KindPodcast {
			t.Fatalf("season %q has kind %q", s.Name, s.Kind)
		}
	}
}

func TestConfigOverridesReplaceDefaults(t *testing.T) {
	cfg := &config.Config{}
	cfg.Catalog.Volumes = []config.Collection{{Name: "Only One", Slug: "only-one"}}

	vols := Volumes(cfg)
	if len(vols) != 1 {
		t.Fatalf("expected override to replace defaults, got %d entries", len(vols))
	}
	if vols[0].Slug != "only-one" || vols[0].Kind != KindVolume {
		t.Fatalf("unexpected override entry: %+v", vols[0])
	}

	// Podcasts were not overridden and keep their defaults.
	if len(Podcasts(cfg)) != 4 {
		t.Fatal("podcast defaults should survive a volume-only override")
	}
}

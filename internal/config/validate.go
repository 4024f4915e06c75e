package config

import (
	"errors"
	"fmt"
	"net/url"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateSite(); err != nil {
		return err
	}
	if err := c.validateCatalog(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateSite() error {
	if c.Site.BaseURL == "" {
		return errors.New("site.base_url must be set")
	}
	parsed, err := url.Parse(c.Site.BaseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("site.base_url %q is not an absolute URL", c.Site.BaseURL)
	}
	if c.Site.Language == "" {
		return errors.New("site.language must be set")
	}
	if c.Site.UserAgent == "" {
		return errors.New("site.user_agent must be set")
	}
	switch c.Site.Extractor {
	case "regex", "dom":
	default:
		return fmt.Errorf("site.extractor must be \"regex\" or \"dom\", got %q", c.Site.Extractor)
	}
	if c.Site.TimeoutSeconds < 0 {
		return errors.New("site.timeout_seconds must not be negative (use 0 to disable the timeout)")
	}
	return nil
}

func (c *Config) validateCatalog() error {
	for _, entry := range c.Catalog.Volumes {
		if entry.Name == "" || entry.Slug == "" {
			return errors.New("catalog.volume entries need both name and slug")
		}
	}
	for _, entry := range c.Catalog.Podcasts {
		if entry.Name == "" || entry.Slug == "" {
			return errors.New("catalog.podcast entries need both name and slug")
		}
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be \"console\" or \"json\", got %q", c.Logging.Format)
	}
	return nil
}

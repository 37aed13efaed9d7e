package config

import (
	"fmt"
	"net/url"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if c.Server.MaxBodyBytes <= 0 {
		return fmt.Errorf("server.max_body_bytes must be > 0 (got %d)", c.Server.MaxBodyBytes)
	}

	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns (%d) must not exceed database.max_conns (%d)",
			c.Database.MinConns, c.Database.MaxConns)
	}

	if err := c.Unsplash.validate(); err != nil {
		return fmt.Errorf("unsplash: %w", err)
	}

	if err := c.Photos.validate(); err != nil {
		return fmt.Errorf("photos: %w", err)
	}

	return nil
}

func (u *UnsplashConfig) validate() error {
	parsed, err := url.Parse(u.BaseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("base_url must be an absolute URL (got %q)", u.BaseURL)
	}
	u.BaseURL = strings.TrimRight(u.BaseURL, "/")
	if u.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %s)", u.Timeout)
	}
	return nil
}

func (p *PhotosConfig) validate() error {
	if !strings.HasPrefix(p.TrustedImagePrefix, "https://") {
		return fmt.Errorf("trusted_image_prefix must start with https:// (got %q)", p.TrustedImagePrefix)
	}
	return nil
}

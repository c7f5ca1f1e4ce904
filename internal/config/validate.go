package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate checks that all required fields are set and values are valid.
func (c *Config) Validate() error {
	if c.PlatformURL == "" {
		return errors.New("platform_url is required")
	}
	if !strings.HasPrefix(c.PlatformURL, "http://") && !strings.HasPrefix(c.PlatformURL, "https://") {
		return fmt.Errorf("platform_url must start with http:// or https://, got %q", c.PlatformURL)
	}
	if c.Login == "" {
		return errors.New("login is required")
	}
	if c.Password == "" {
		return errors.New("password is required")
	}

	if c.TrackingMethod == "" {
		return errors.New("tracking_method must not be empty")
	}
	if c.PageSize < 1 {
		return fmt.Errorf("page_size must be >= 1, got %d", c.PageSize)
	}
	if c.RequestDelay < 0 {
		return fmt.Errorf("request_delay must not be negative, got %v", c.RequestDelay)
	}

	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("log_format must be \"text\" or \"json\", got %q", c.LogFormat)
	}

	return nil
}

package config

import (
	"fmt"
	"time"

	"github.com/go-pg/pg/v10"
)

type Config struct {
	Database pg.Options
	App      struct {
		Host string
		Port int
	}
	Blog struct {
		// category IDs whose posts render as standalone pages
		PageCategoryIDs []int
	}
	Auth struct {
		Secret   string
		TokenTTL string
	}
	LogQueries bool
}

// SessionTTL parses Auth.TokenTTL, defaulting to 24h when unset.
func (c *Config) SessionTTL() (time.Duration, error) {
	if c.Auth.TokenTTL == "" {
		return 24 * time.Hour, nil
	}

	ttl, err := time.ParseDuration(c.Auth.TokenTTL)
	if err != nil {
		return 0, fmt.Errorf("parse auth.tokenttl: %w", err)
	}

	return ttl, nil
}

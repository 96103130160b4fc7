// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package config maps environment variables onto the bookstore's runtime settings.

It uses 'caarlos0/env' so that required values fail fast at startup and
everything else has a documented default.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Once loaded the configuration is read-only and passed to constructors.
*/
package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/caarlos0/env/v11"
)

// # Configuration Schema

// Config holds all runtime configuration for the bookstore API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Relational store (PostgreSQL)
	DatabaseURL string `env:"DATABASE_URL,required,notEmpty"`

	// MigrationPath is the filesystem path to the SQL migrations directory.
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./data/migrations"`

	// Key-value store (Redis), used by the alternate publisher directory
	RedisURL string `env:"REDIS_URL,required,notEmpty"`

	// PublisherDirectoryKey is the Redis hash holding the publisher directory.
	PublisherDirectoryKey string `env:"PUBLISHER_DIRECTORY_KEY" envDefault:"catalog:publisher_directory"`

	// Staff tokens are verified against this RS256 public key
	JWTPubKeyPath string `env:"JWT_PUBLIC_KEY_PATH,required,notEmpty"`
	JWTIssuer     string `env:"JWT_ISSUER" envDefault:"bookstore.app"`

	// Catalog listing sizes
	RelatedLimit int `env:"CATALOG_RELATED_LIMIT" envDefault:"8"`
	ExploreLimit int `env:"CATALOG_EXPLORE_LIMIT" envDefault:"12"`

	// Cross-Origin Resource Sharing
	PrimaryDomain string `env:"PRIMARY_DOMAIN" envDefault:"bookstore.app"`
	ExtraOrigins  string `env:"EXTRA_ORIGINS"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {
	cfg := &Config{}

	// Fails if any 'required' variable is missing.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if cfg.RelatedLimit < 1 || cfg.ExploreLimit < 1 {
		return nil, fmt.Errorf("config: catalog limits must be positive (related=%d, explore=%d)", cfg.RelatedLimit, cfg.ExploreLimit)
	}

	return cfg, nil
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// AllowsOrigin reports whether a browser origin may call the API.
//
// Any subdomain of PrimaryDomain is accepted, plus the exact origins listed
// in EXTRA_ORIGINS (comma separated).
func (c *Config) AllowsOrigin(origin string) bool {
	if c.PrimaryDomain != "" {
		if parsed, err := url.Parse(origin); err == nil {
			host := parsed.Hostname()
			if host == c.PrimaryDomain || strings.HasSuffix(host, "."+c.PrimaryDomain) {
				return true
			}
		}
	}
	for _, extra := range strings.Split(c.ExtraOrigins, ",") {
		if strings.TrimSpace(extra) == origin && origin != "" {
			return true
		}
	}
	return false
}

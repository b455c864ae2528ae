// Package config reads the service configuration from the process
// environment. A .env file, if present, is loaded by main before this runs.
package config

import (
	"errors"
	"os"
)

type Config struct {
	Port          string
	MongoURI      string
	MongoDB       string
	AdminEmail    string
	AdminPassword string
	SessionSecret []byte
}

// Load collects configuration, applying the same defaults the dashboard has
// always shipped with. MONGO_URI and SESSION_SECRET have no sane default and
// are mandatory.
func Load() (*Config, error) {
	cfg := &Config{
		Port:          getenv("PORT", "8000"),
		MongoURI:      os.Getenv("MONGO_URI"),
		MongoDB:       getenv("MONGO_DB", "study-dashboard"),
		AdminEmail:    getenv("ADMIN_EMAIL", "admin@yourdomain.com"),
		AdminPassword: getenv("ADMIN_PASSWORD", "admin123"),
		SessionSecret: []byte(os.Getenv("SESSION_SECRET")),
	}
	if cfg.MongoURI == "" {
		return nil, errors.New("MONGO_URI not set")
	}
	if len(cfg.SessionSecret) == 0 {
		return nil, errors.New("SESSION_SECRET not set")
	}
	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Package config loads application configuration from an optional YAML
// file overlaid with LOCI_* environment variables.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config is the application configuration.
type Config struct {
	API    APIConfig    `koanf:"api"`
	Events EventsConfig `koanf:"events"`
	Geo    GeoConfig    `koanf:"geo"`
	UI     UIConfig     `koanf:"ui"`
}

// APIConfig configures the nearby-spots data source.
type APIConfig struct {
	BaseURL    string   `koanf:"base_url"`
	Key        string   `koanf:"key"`
	RadiusM    int      `koanf:"radius_m"`
	TimeoutSec int      `koanf:"timeout_sec"`
	EventFeeds []string `koanf:"event_feeds"` // optional GeoRSS feeds merged into the feed
}

// EventsConfig configures interaction recording.
type EventsConfig struct {
	// Enabled gates recording entirely. When false (or when no API key
	// identifies the user) interactions are silently discarded.
	Enabled bool   `koanf:"enabled"`
	DBPath  string `koanf:"db_path"`
	Buffer  int    `koanf:"buffer"`
}

// GeoConfig configures the location provider.
type GeoConfig struct {
	// Mode is "fixed", "ip", or "denied".
	Mode       string  `koanf:"mode"`
	Lat        float64 `koanf:"lat"`
	Lng        float64 `koanf:"lng"`
	IPEndpoint string  `koanf:"ip_endpoint"`
}

// UIConfig tunes the visibility contract and presentation.
type UIConfig struct {
	// CoverageThreshold is the viewport fraction a card must hold
	// before it can become dominant.
	CoverageThreshold float64 `koanf:"coverage_threshold"`
	// MinDwellMs is how long a card must hold that coverage before the
	// tracker hears about it.
	MinDwellMs int `koanf:"min_dwell_ms"`
}

// DataDir returns the per-user data directory.
func DataDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".loci")
}

// DefaultPath returns the path to the config file.
func DefaultPath() string {
	return filepath.Join(DataDir(), "config.yaml")
}

// defaults returns the baseline configuration.
func defaults() map[string]interface{} {
	return map[string]interface{}{
		"api.base_url":          "https://api.loci.example",
		"api.radius_m":          2000,
		"api.timeout_sec":       15,
		"events.enabled":        true,
		"events.db_path":        filepath.Join(DataDir(), "loci.db"),
		"events.buffer":         256,
		"geo.mode":              "ip",
		"ui.coverage_threshold": 0.8,
		"ui.min_dwell_ms":       100,
	}
}

// Load reads the config file at path (missing file is fine), overlays
// LOCI_* environment variables, and fills defaults for anything unset.
// LOCI_API_KEY becomes api.key, LOCI_GEO_MODE becomes geo.mode, etc.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	if err := k.Load(env.Provider("LOCI_", ".", func(s string) string {
		return strings.Replace(strings.ToLower(strings.TrimPrefix(s, "LOCI_")), "_", ".", 1)
	}), nil); err != nil {
		return nil, err
	}

	for key, val := range defaults() {
		if !k.Exists(key) {
			k.Set(key, val)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Package config loads runtime settings from the environment, optionally
// seeded from a .env file in the working directory.
package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Anchor names accepted by GEOFRAME_DEFAULT_ANCHOR and the server tools.
const (
	AnchorCorner = "corner"
	AnchorCenter = "center"
)

// Config holds the settings shared by the geoframe commands.
type Config struct {
	// LogLevel is "debug" to enable verbose logging; anything else is quiet.
	LogLevel string

	// DefaultAnchor is used by server tools whose arguments omit "anchor".
	DefaultAnchor string
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		LogLevel:      "info",
		DefaultAnchor: AnchorCorner,
	}
}

// Load reads .env (if present) and then the process environment.
//
// A missing .env file is not an error. An unknown GEOFRAME_DEFAULT_ANCHOR
// falls back to the corner anchor.
func Load() Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Failed to read .env: %v", err)
	}

	cfg := Default()
	cfg.LogLevel = strings.ToLower(Get("GEOFRAME_LOG_LEVEL", cfg.LogLevel))

	anchor := strings.ToLower(Get("GEOFRAME_DEFAULT_ANCHOR", cfg.DefaultAnchor))
	switch anchor {
	case AnchorCorner, AnchorCenter:
		cfg.DefaultAnchor = anchor
	default:
		log.Printf("Unknown GEOFRAME_DEFAULT_ANCHOR %q, using %q", anchor, AnchorCorner)
	}

	return cfg
}

// Debug reports whether verbose logging is enabled.
func (c Config) Debug() bool { return c.LogLevel == "debug" }

// Get returns the trimmed value of key, or fallback when it is unset or blank.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

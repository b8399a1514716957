package config

import (
	"log"
	"os"
	"path/filepath"
)

// Config holds application configuration
type Config struct {
	// Server settings
	ListenAddr string
	Debug      bool

	// Directories
	UploadsDirectory string
	StaticDirectory  string
}

// DefaultConfig returns configuration with sensible defaults
func DefaultConfig() *Config {
	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}

	return &Config{
		ListenAddr:       ":5000",
		Debug:            false,
		UploadsDirectory: filepath.Join(wd, "uploads"),
		StaticDirectory:  filepath.Join(wd, "web", "static"),
	}
}

// Load loads configuration from environment variables
func Load() *Config {
	cfg := DefaultConfig()

	if addr := os.Getenv("FINSIGHT_LISTEN_ADDR"); addr != "" {
		cfg.ListenAddr = addr
	}
	if debug := os.Getenv("FINSIGHT_DEBUG"); debug == "true" || debug == "1" {
		cfg.Debug = true
	}
	if uploadsDir := os.Getenv("FINSIGHT_UPLOADS_DIR"); uploadsDir != "" {
		cfg.UploadsDirectory = uploadsDir
	}
	if staticDir := os.Getenv("FINSIGHT_STATIC_DIR"); staticDir != "" {
		cfg.StaticDirectory = staticDir
	}

	cfg.ensureDirectories()

	return cfg
}

// ensureDirectories creates the upload scratch directory if missing.
// The static directory is only read, never created.
func (c *Config) ensureDirectories() {
	if err := os.MkdirAll(c.UploadsDirectory, 0755); err != nil {
		log.Printf("Warning: could not create directory %s: %v", c.UploadsDirectory, err)
	}
}

package config

import "github.com/ziadkadry99/folio/internal/content"

// DefaultConfigFile is the config file name looked up in the working directory.
const DefaultConfigFile = ".folio.yml"

// DefaultDatabase is the SQLite file used by the sqlite source and import.
const DefaultDatabase = ".folio/content.db"

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Content: ContentConfig{
			Source:     SourceSample,
			Database:   DefaultDatabase,
			RetryDelay: content.DefaultRetryDelay,
		},
		OutputDir: "dist",
		Server: ServerConfig{
			Port: 8080,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

package config

import "time"

// SourceType selects where content is loaded from.
type SourceType string

const (
	SourceSample SourceType = "sample"
	SourceFile   SourceType = "file"
	SourceSQLite SourceType = "sqlite"
)

// Config is the top-level folio configuration, corresponding to .folio.yml.
type Config struct {
	Content   ContentConfig `yaml:"content" koanf:"content"`
	PagesDir  string        `yaml:"pages_dir" koanf:"pages_dir"`
	ThemeDir  string        `yaml:"theme_dir" koanf:"theme_dir"`
	OutputDir string        `yaml:"output_dir" koanf:"output_dir"`
	Server    ServerConfig  `yaml:"server" koanf:"server"`
	Log       LogConfig     `yaml:"log" koanf:"log"`
}

// ContentConfig describes the content payload.
type ContentConfig struct {
	Source     SourceType    `yaml:"source" koanf:"source"`
	Path       string        `yaml:"path" koanf:"path"`
	Database   string        `yaml:"database" koanf:"database"`
	RetryDelay time.Duration `yaml:"retry_delay" koanf:"retry_delay"`
	Watch      bool          `yaml:"watch" koanf:"watch"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            int  `yaml:"port" koanf:"port"`
	AllowAllOrigins bool `yaml:"allow_all_origins" koanf:"allow_all_origins"`
	LiveReload      bool `yaml:"live_reload" koanf:"live_reload"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string `yaml:"level" koanf:"level"`
	Format string `yaml:"format" koanf:"format"`
}

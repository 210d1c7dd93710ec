package config

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
)

// App holds application settings outside the LLM provider config.
// Every field binds to a PEDAGOGUE_-prefixed environment variable.
type App struct {
	StandardsDir string `envconfig:"STANDARDS_DIR" default:"standards"`
	CacheDir     string `envconfig:"CACHE_DIR" default:".cache/pedagogue"`
	ExportDir    string `envconfig:"EXPORT_DIR" default:"."`
	LogLevel     string `envconfig:"LOG_LEVEL" default:"info"`
	SearchURL    string `envconfig:"SEARCH_URL" default:"https://mon.gov.ua/osvita-2/zagalna-serednya-osvita/navchalni-programi"`
	SnapshotKeep int    `envconfig:"SNAPSHOT_KEEP" default:"10"`
}

// Load reads App settings from the environment.
func Load() (App, error) {
	var app App
	if err := envconfig.Process("pedagogue", &app); err != nil {
		return App{}, fmt.Errorf("load config: %w", err)
	}
	return app, nil
}

// NewLogger builds the application logger writing to stderr at the
// configured level. Unknown levels fall back to info.
func NewLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(lvl).
		With().Timestamp().Logger()
}

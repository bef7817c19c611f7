// config/config.go
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const appDirName = "automation-toolkit"

// Config holds the application settings. Everything has a usable default;
// a config file and environment variables only override.
type Config struct {
	Debug         bool
	LogDir        string
	DataDir       string
	WindowWidth   int
	WindowHeight  int
	GridColumns   int
	WatchDebounce time.Duration
}

// Load reads config.yaml from $XDG_CONFIG_HOME/automation-toolkit (or the
// working directory), applies AUTOKIT_* environment overrides, and falls
// back to defaults when nothing is configured. A missing file is fine; a
// malformed one is an error.
func Load() (*Config, error) {
	// best-effort .env for development overrides
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(filepath.Join(xdg.ConfigHome, appDirName))
	v.AddConfigPath(".")

	v.SetEnvPrefix("AUTOKIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault("debug", false)
	v.SetDefault("log_dir", filepath.Join(xdg.StateHome, appDirName, "logs"))
	v.SetDefault("data_dir", filepath.Join(xdg.DataHome, appDirName))
	v.SetDefault("window_width", 1024)
	v.SetDefault("window_height", 768)
	v.SetDefault("grid_columns", 3)
	v.SetDefault("watch_debounce", 300*time.Millisecond)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{
		Debug:         v.GetBool("debug"),
		LogDir:        v.GetString("log_dir"),
		DataDir:       v.GetString("data_dir"),
		WindowWidth:   v.GetInt("window_width"),
		WindowHeight:  v.GetInt("window_height"),
		GridColumns:   v.GetInt("grid_columns"),
		WatchDebounce: v.GetDuration("watch_debounce"),
	}
	if cfg.GridColumns < 1 {
		cfg.GridColumns = 1
	}
	if cfg.WatchDebounce <= 0 {
		cfg.WatchDebounce = 300 * time.Millisecond
	}
	return cfg, nil
}

// HistoryPath is the sqlite journal location under the data directory.
func (c *Config) HistoryPath() string {
	return filepath.Join(c.DataDir, "history.db")
}

// PresetsDir is where one tool keeps its named presets.
func (c *Config) PresetsDir(tool string) string {
	return filepath.Join(c.DataDir, tool, "presets")
}

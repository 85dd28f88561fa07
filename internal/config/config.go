package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/geurime/geurime-tui/internal/i18n"
	"github.com/geurime/geurime-tui/internal/logging"
	"github.com/geurime/geurime-tui/internal/route"
)

// Config holds application configuration.
type Config struct {
	UI      UIConfig            `mapstructure:"ui"`
	History HistoryConfig       `mapstructure:"history"`
	Log     LogConfig           `mapstructure:"log"`
	Keys    map[string][]string `mapstructure:"keys"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Language   string `mapstructure:"language"`
	StartRoute string `mapstructure:"start_route"`
	Mouse      bool   `mapstructure:"mouse"`
	Animations bool   `mapstructure:"animations"`
	AltScreen  bool   `mapstructure:"alt_screen"`
}

// HistoryConfig holds the sqlite visit log settings.
type HistoryConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
	Limit   int    `mapstructure:"limit"`
	Keep    int    `mapstructure:"keep"`
}

// LogConfig holds log file settings. An empty File disables logging.
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

func setDefaults(v *viper.Viper) {
	home := os.Getenv("HOME")
	v.SetDefault("ui.language", i18n.DefaultLanguage)
	v.SetDefault("ui.start_route", string(route.Main))
	v.SetDefault("ui.mouse", true)
	v.SetDefault("ui.animations", true)
	v.SetDefault("ui.alt_screen", true)
	v.SetDefault("history.enabled", true)
	v.SetDefault("history.path", filepath.Join(home, ".local", "share", "geurime", "geurime.db"))
	v.SetDefault("history.limit", 10)
	v.SetDefault("history.keep", 1000)
	v.SetDefault("log.file", filepath.Join(home, ".local", "state", "geurime", "geurime.log"))
	v.SetDefault("log.level", "info")
}

// Default returns the configuration used when no file or env overrides exist.
func Default() Config {
	v := viper.New()
	setDefaults(v)
	var c Config
	_ = v.Unmarshal(&c)
	return c
}

// Path is the config file location: $GEURIME_CONFIG or ~/.config/geurime/config.toml.
func Path() string {
	if p := os.Getenv("GEURIME_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "geurime", "config.toml")
}

// Load reads configuration from file and env. Env var overrides use prefix GEURIME_.
// A missing config file is not an error; a malformed one is.
func Load() (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("toml")
	v.SetConfigFile(Path())

	v.SetEnvPrefix("GEURIME")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	c.History.Path = expandHome(c.History.Path)
	c.Log.File = expandHome(c.Log.File)
	return c, nil
}

// Validate reports the first setting the application cannot run with.
func (c Config) Validate() error {
	if !i18n.Supported(c.UI.Language) {
		return fmt.Errorf("ui.language %q: unsupported language", c.UI.Language)
	}
	if _, err := route.Parse(c.UI.StartRoute); err != nil {
		return fmt.Errorf("ui.start_route: %w", err)
	}
	if c.History.Enabled {
		if c.History.Limit <= 0 {
			return fmt.Errorf("history.limit must be positive, got %d", c.History.Limit)
		}
		if c.History.Keep < 0 {
			return fmt.Errorf("history.keep must not be negative, got %d", c.History.Keep)
		}
		if strings.TrimSpace(c.History.Path) == "" {
			return fmt.Errorf("history.path is empty")
		}
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	return nil
}

// Save writes the provided config to disk, creating the config directory if needed.
func Save(cfg Config) error {
	path := Path()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("ui.language", cfg.UI.Language)
	v.Set("ui.start_route", cfg.UI.StartRoute)
	v.Set("ui.mouse", cfg.UI.Mouse)
	v.Set("ui.animations", cfg.UI.Animations)
	v.Set("ui.alt_screen", cfg.UI.AltScreen)
	v.Set("history.enabled", cfg.History.Enabled)
	v.Set("history.path", cfg.History.Path)
	v.Set("history.limit", cfg.History.Limit)
	v.Set("history.keep", cfg.History.Keep)
	v.Set("log.file", cfg.Log.File)
	v.Set("log.level", cfg.Log.Level)
	for action, keys := range cfg.Keys {
		v.Set("keys."+action, keys)
	}

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func expandHome(p string) string {
	if p == "~" || strings.HasPrefix(p, "~/") {
		return filepath.Join(os.Getenv("HOME"), strings.TrimPrefix(p, "~"))
	}
	return p
}
